package core

import (
	"context"

	"github.com/nording/deskbot/internal/config"
	"github.com/nording/deskbot/internal/convo"
	"github.com/nording/deskbot/internal/eventbus"
	"github.com/nording/deskbot/internal/invoker"
)

// Invoker runs one model invocation against the serialized transcript.
type Invoker interface {
	Invoke(ctx context.Context, transcript string) (string, error)
}

// ChatService owns the conversation store and the model boundary. It runs
// an event loop on its own goroutine; the UI talks to it only through the
// event bus, so store writes never race with the interactive thread.
type ChatService struct {
	invoker      Invoker
	store        *convo.Store
	eventBus     *eventbus.EventBus
	systemPrompt string
	greeting     string
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewChatService(cfg *config.Config, eb *eventbus.EventBus) *ChatService {
	botName := cfg.GetBotName()
	if botName == "" {
		botName = PickBotName()
	}
	systemPrompt := cfg.GetSystemPrompt()
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	inv := invoker.NewOllama(cfg.GetBinary(), cfg.GetModel(), invoker.DefaultTimeout)
	return newChatService(inv, convo.NewStore(botName), eb, systemPrompt, PickWelcomeMessage())
}

func newChatService(inv Invoker, store *convo.Store, eb *eventbus.EventBus, systemPrompt, greeting string) *ChatService {
	ctx, cancel := context.WithCancel(context.Background())

	cs := &ChatService{
		invoker:      inv,
		store:        store,
		eventBus:     eb,
		systemPrompt: systemPrompt,
		greeting:     greeting,
		ctx:          ctx,
		cancel:       cancel,
	}

	// The greeting is the initial Bot turn; it is part of the model context
	// like any other turn.
	cs.store.AppendBot(greeting)

	return cs
}

// Start announces the greeting and runs the event loop in a goroutine.
func (cs *ChatService) Start() {
	cs.pushGreeting()
	go cs.eventLoop()
}

func (cs *ChatService) Stop() {
	cs.cancel()
}

func (cs *ChatService) Store() *convo.Store {
	return cs.store
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendMessageEvent:
		cs.processMessage(e.Message)
	}
}

// processMessage appends the user turn, runs the invocation synchronously
// on the event loop goroutine (one in flight at a time), and reports the
// outcome to the UI. The store append always happens before the invocation,
// so transcript order is deterministic.
func (cs *ChatService) processMessage(text string) {
	cs.store.AppendUser(text)

	reply, err := cs.invoker.Invoke(cs.ctx, BuildPrompt(cs.systemPrompt, cs.store))
	if err != nil {
		cs.send(eventbus.ReplyFailedEvent{Err: err})
		return
	}

	reply = StripSpeakerPrefix(reply, cs.store.BotLabel())
	cs.store.AppendBot(reply)
	cs.send(eventbus.ReplyEvent{Text: reply})
}

func (cs *ChatService) pushGreeting() {
	cs.send(eventbus.GreetingEvent{
		BotName:  cs.store.BotLabel(),
		Greeting: cs.greeting,
	})
}

func (cs *ChatService) send(event eventbus.CoreEvent) {
	// Delivery failures are swallowed; the bus circuit breaker already
	// tracks them and the UI cannot be helped if its channel is wedged.
	_ = cs.eventBus.SendToUI(event)
}
