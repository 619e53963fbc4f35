package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nording/deskbot/internal/eventbus"
	"github.com/nording/deskbot/internal/present"
)

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func typeRunes(state *State, text string) {
	for _, r := range text {
		HandleKeyMsgWithEventBus(state, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, eventbus.NewEventBus())
	}
}

func TestSubmitSendsMessageAndStartsIndicator(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Input.SetValue("my printer is on fire")

	cmd := HandleKeyMsgWithEventBus(&state, enterKey(), eb)

	require.NotNil(t, cmd, "submission must schedule the indicator tick")
	assert.True(t, state.Busy)
	assert.Equal(t, "Waiting for Elsa", state.Status)
	assert.Equal(t, present.TypingIndicator, state.Machine.Phase())
	assert.Empty(t, state.Input.Value())

	entries := state.Machine.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, present.UserSpeaker, entries[0].Speaker)
	assert.Equal(t, "my printer is on fire", entries[0].HTML)
	assert.Equal(t, "Elsa", entries[1].Speaker)

	select {
	case event := <-eb.UIToCore():
		sendMsg, ok := event.(eventbus.SendMessageEvent)
		require.True(t, ok)
		assert.Equal(t, "my printer is on fire", sendMsg.Message)
	default:
		t.Fatal("expected a message on the UI-to-core channel")
	}
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Input.SetValue("   ")

	cmd := HandleKeyMsgWithEventBus(&state, enterKey(), eb)

	assert.Nil(t, cmd)
	assert.False(t, state.Busy)
	assert.Empty(t, state.Machine.Entries())

	select {
	case <-eb.UIToCore():
		t.Fatal("blank input must not reach the core")
	default:
	}
}

func TestSubmitIgnoredWhileBusy(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Busy = true
	state.Input.SetValue("queued text")

	cmd := HandleKeyMsgWithEventBus(&state, enterKey(), eb)

	assert.Nil(t, cmd)
	assert.Equal(t, "queued text", state.Input.Value())
	assert.Empty(t, state.Machine.Entries())
}

func TestTypingDisabledWhileBusy(t *testing.T) {
	state := NewState("Elsa")
	state.Busy = true

	typeRunes(&state, "abc")

	assert.Empty(t, state.Input.Value())
}

func TestTypingReachesInputWhenIdle(t *testing.T) {
	state := NewState("Elsa")

	typeRunes(&state, "hej")

	assert.Equal(t, "hej", state.Input.Value())
}

func TestNoticeDismissal(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Notice = "model invocation timed out"
	state.Status = "Error"

	// Ordinary keys do nothing while the notice is up.
	HandleKeyMsgWithEventBus(&state, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, eb)
	assert.Equal(t, "model invocation timed out", state.Notice)
	assert.Empty(t, state.Input.Value())

	HandleKeyMsgWithEventBus(&state, enterKey(), eb)
	assert.Empty(t, state.Notice)
	assert.Equal(t, "Ready", state.Status)
}

func TestGreetingEventAppendsSettledEntry(t *testing.T) {
	state := NewState("Elsa")

	cmd := HandleCoreEvent(&state, CoreEventMsg{Event: eventbus.GreetingEvent{
		BotName:  "Elsa",
		Greeting: "Hello! How can I help?",
	}})

	assert.Nil(t, cmd)
	assert.Equal(t, present.Idle, state.Machine.Phase())

	entries := state.Machine.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Elsa", entries[0].Speaker)
	assert.Equal(t, "Hello! How can I help?", entries[0].HTML)
}

func TestReplyEventStartsReveal(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Input.SetValue("help")
	HandleKeyMsgWithEventBus(&state, enterKey(), eb)

	cmd := HandleCoreEvent(&state, CoreEventMsg{Event: eventbus.ReplyEvent{Text: "ok"}})

	require.NotNil(t, cmd, "a reply must schedule the reveal tick")
	assert.False(t, state.Busy)
	assert.Equal(t, present.Revealing, state.Machine.Phase())
	assert.Equal(t, "Ready", state.Status)

	// The indicator entry is gone; the reveal entry starts empty.
	entries := state.Machine.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "", entries[1].HTML)
}

func TestReplyFailedEventRaisesNotice(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Input.SetValue("help")
	HandleKeyMsgWithEventBus(&state, enterKey(), eb)

	cmd := HandleCoreEvent(&state, CoreEventMsg{Event: eventbus.ReplyFailedEvent{
		Err: errors.New("model invocation timed out after 120s"),
	}})

	assert.Nil(t, cmd)
	assert.False(t, state.Busy)
	assert.Equal(t, "model invocation timed out after 120s", state.Notice)
	assert.Equal(t, "Error", state.Status)
	assert.Equal(t, present.Idle, state.Machine.Phase())

	// Only the user's entry remains.
	entries := state.Machine.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, present.UserSpeaker, entries[0].Speaker)
}

func TestIndicatorTickAdvancesAndReschedules(t *testing.T) {
	eb := eventbus.NewEventBus()
	state := NewState("Elsa")
	state.Input.SetValue("help")
	HandleKeyMsgWithEventBus(&state, enterKey(), eb)

	cmd := HandleIndicatorTick(&state)

	require.NotNil(t, cmd)
	assert.Equal(t, 1, state.Machine.Dots())
}

func TestIndicatorTickStopsWhenIdle(t *testing.T) {
	state := NewState("Elsa")

	assert.Nil(t, HandleIndicatorTick(&state))
}

func TestRevealTickRunsToCompletion(t *testing.T) {
	state := NewState("Elsa")
	state.Machine.RequestStarted()
	state.Machine.ResponseReceived("hej")

	for i := 0; i < 2; i++ {
		require.NotNil(t, HandleRevealTick(&state), "tick %d must reschedule", i)
	}
	assert.Nil(t, HandleRevealTick(&state), "final tick must not reschedule")
	assert.Equal(t, present.Idle, state.Machine.Phase())

	entries := state.Machine.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "hej", entries[0].HTML)
}

func TestRevealTickStopsWhenIdle(t *testing.T) {
	state := NewState("Elsa")

	assert.Nil(t, HandleRevealTick(&state))
}

func TestWindowSizeMsgMakesViewportReady(t *testing.T) {
	state := NewState("Elsa")

	HandleWindowSizeMsg(&state, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, state.Ready)
	assert.Equal(t, 80, state.Viewport.Width)
	assert.Equal(t, 20, state.Viewport.Height)

	HandleWindowSizeMsg(&state, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, state.Viewport.Width)
	assert.Equal(t, 36, state.Viewport.Height)
}
