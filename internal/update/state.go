package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/nording/deskbot/internal/present"
)

// State is the UI-side state: the presentation machine plus the input,
// display and status surfaces. All mutation happens on the bubbletea
// update goroutine.
type State struct {
	Machine  *present.Machine
	Input    textarea.Model
	Viewport viewport.Model

	Status string
	// Busy is true from submission until the success/failure event lands.
	// The input surface is disabled for that window; a running reveal does
	// not set it.
	Busy bool
	// Notice holds a blocking error message; non-empty means modal.
	Notice string

	Width  int
	Height int
	Ready  bool
}

func NewState(botName string) State {
	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.Prompt = "> "
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	// Enter submits; Alt+Enter inserts a line break instead.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	return State{
		Machine: present.NewMachine(botName),
		Input:   ta,
		Status:  "Ready",
	}
}

func viewportFor(width, height int) viewport.Model {
	return viewport.New(width, height)
}
