package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nording/deskbot/internal/update"
	"github.com/nording/deskbot/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Core events continue the listen loop after handling.
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.state, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.state, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	if !m.state.Ready {
		return "Starting deskbot..."
	}

	var b strings.Builder

	b.WriteString(m.state.Viewport.View())
	b.WriteString("\n")
	if m.state.Notice != "" {
		b.WriteString(components.RenderNotice(m.state.Notice, m.state.Width))
	} else {
		b.WriteString(components.RenderInput(m.state.Input, m.state.Busy, m.state.Width))
	}
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.state.Status, m.state.Busy, m.state.Machine.Dots(), m.state.Width))

	return b.String()
}
