package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nording/deskbot/internal/eventbus"
)

func HandleUpdateWithEventBus(state *State, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(state, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(state, msg)
		return nil
	case IndicatorTickMsg:
		return HandleIndicatorTick(state)
	case RevealTickMsg:
		return HandleRevealTick(state)
	case CoreEventMsg:
		return HandleCoreEvent(state, msg)
	}

	var cmd tea.Cmd
	state.Input, cmd = state.Input.Update(msg)
	return cmd
}
