package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nording/deskbot/internal/eventbus"
	"github.com/nording/deskbot/internal/present"
	"github.com/nording/deskbot/ui/components"
)

// HandleKeyMsgWithEventBus handles keyboard input. While a notice is up it
// only accepts a dismissal; otherwise Enter submits and everything else
// flows into the textarea.
func HandleKeyMsgWithEventBus(state *State, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if state.Notice != "" {
		switch keyMsg.String() {
		case "ctrl+c":
			return tea.Quit
		case "enter", "esc":
			state.Notice = ""
			state.Status = "Ready"
			state.Input.Focus()
		}
		return nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		return submit(state, eb)
	}

	if state.Busy {
		// Input surface is disabled while an invocation is in flight.
		return nil
	}

	var cmd tea.Cmd
	state.Input, cmd = state.Input.Update(keyMsg)
	return cmd
}

// submit implements the submission path: no-op on blank input, otherwise
// append the user entry, disable input, start the indicator, and hand the
// message to the core.
func submit(state *State, eb *eventbus.EventBus) tea.Cmd {
	if state.Busy {
		return nil
	}
	text := strings.TrimSpace(state.Input.Value())
	if text == "" {
		return nil
	}

	state.Machine.AppendUser(text)
	state.Input.Reset()
	state.Input.Blur()
	state.Busy = true
	state.Status = "Waiting for " + state.Machine.BotName()

	state.Machine.RequestStarted()
	RefreshViewport(state)

	if err := eb.SendToCore(eventbus.SendMessageEvent{Message: text}); err != nil {
		state.Machine.ResponseFailed()
		state.Busy = false
		state.Input.Focus()
		state.Status = "Error sending message: " + err.Error()
		RefreshViewport(state)
		return nil
	}

	return IndicatorTickCmd()
}

// CoreEventMsg wraps core events for bubbletea.
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent routes events from the core into the presentation
// machine.
func HandleCoreEvent(state *State, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.GreetingEvent:
		state.Machine.AppendBot(event.Greeting)
		state.Status = "Ready"
		RefreshViewport(state)
		return nil

	case eventbus.ReplyEvent:
		state.Machine.ResponseReceived(event.Text)
		// Input comes back immediately; the reveal keeps running behind it.
		state.Busy = false
		state.Input.Focus()
		state.Status = "Ready"
		RefreshViewport(state)
		return RevealTickCmd()

	case eventbus.ReplyFailedEvent:
		state.Machine.ResponseFailed()
		state.Busy = false
		state.Notice = event.Err.Error()
		state.Status = "Error"
		RefreshViewport(state)
		return nil
	}

	return nil
}

type IndicatorTickMsg time.Time

type RevealTickMsg time.Time

func IndicatorTickCmd() tea.Cmd {
	return tea.Tick(present.IndicatorTickInterval, func(t time.Time) tea.Msg {
		return IndicatorTickMsg(t)
	})
}

func RevealTickCmd() tea.Cmd {
	return tea.Tick(present.RevealTickInterval, func(t time.Time) tea.Msg {
		return RevealTickMsg(t)
	})
}

// HandleIndicatorTick advances the dots while the indicator is showing and
// reschedules itself. Once the machine has moved on the tick source stops;
// a reveal runs on its own cadence.
func HandleIndicatorTick(state *State) tea.Cmd {
	if state.Machine.Phase() != present.TypingIndicator {
		return nil
	}
	state.Machine.Tick()
	RefreshViewport(state)
	return IndicatorTickCmd()
}

// HandleRevealTick reveals one more character and reschedules until the
// reveal settles.
func HandleRevealTick(state *State) tea.Cmd {
	if state.Machine.Phase() != present.Revealing {
		return nil
	}
	keepTicking := state.Machine.Tick()
	RefreshViewport(state)
	if !keepTicking {
		return nil
	}
	return RevealTickCmd()
}

func HandleWindowSizeMsg(state *State, sizeMsg tea.WindowSizeMsg) {
	state.Width = sizeMsg.Width
	state.Height = sizeMsg.Height

	inputHeight := 3 // bordered textarea
	statusHeight := 1
	chatHeight := sizeMsg.Height - inputHeight - statusHeight
	if chatHeight < 1 {
		chatHeight = 1
	}

	if !state.Ready {
		state.Viewport = viewportFor(sizeMsg.Width, chatHeight)
		state.Ready = true
	} else {
		state.Viewport.Width = sizeMsg.Width
		state.Viewport.Height = chatHeight
	}
	state.Input.SetWidth(sizeMsg.Width - 4)
	RefreshViewport(state)
}

// RefreshViewport recomputes the whole displayed list from the machine's
// entries and scrolls to the newest one. Deliberately non-incremental so
// the display always matches the machine state.
func RefreshViewport(state *State) {
	if !state.Ready {
		return
	}
	state.Viewport.SetContent(components.RenderMessages(state.Machine.Entries(), state.Width))
	state.Viewport.GotoBottom()
}
