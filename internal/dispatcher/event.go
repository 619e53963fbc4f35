// Package dispatcher bridges core events into bubbletea messages.
package dispatcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nording/deskbot/internal/eventbus"
	"github.com/nording/deskbot/internal/update"
)

type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ListenForUIEvents blocks on the core-to-UI channel and surfaces the next
// event as a tea.Msg. The UI re-issues it after each delivery so exactly
// one listener is pending at a time.
func (ed *EventDispatcher) ListenForUIEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ed.ctx.Done():
			return nil
		case event, ok := <-ed.eventBus.CoreToUI():
			if !ok {
				return nil
			}
			return update.CoreEventMsg{Event: event}
		}
	}
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
