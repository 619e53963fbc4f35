package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nording/deskbot/internal/config"
	"github.com/nording/deskbot/internal/core"
	"github.com/nording/deskbot/internal/dispatcher"
	"github.com/nording/deskbot/internal/eventbus"
	"github.com/nording/deskbot/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ChatService
	model      *AppModel
}

type AppModel struct {
	state      update.State
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)

	// The service picks the session persona; the UI needs its name for
	// speaker labels before the first core event arrives.
	chatService := core.NewChatService(cfg, eb)

	model := &AppModel{
		state:      update.NewState(chatService.Store().BotLabel()),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    chatService,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}
