// Package present manages the per-message display states: the typing
// indicator while an invocation is in flight, the character reveal of a
// finished reply, and the settled message list. The machine owns the view
// entries; the displayed list is recomputed from them on every change so
// state and display can never drift apart.
package present

import (
	"strings"
	"time"

	"github.com/nording/deskbot/internal/markdown"
	"github.com/nording/deskbot/internal/models"
)

const (
	// UserSpeaker is the display label for the user's own messages.
	UserSpeaker = "You"

	IndicatorTickInterval = 250 * time.Millisecond
	RevealTickInterval    = 18 * time.Millisecond

	maxDots = 3
)

type Phase int

const (
	Idle Phase = iota
	TypingIndicator
	Revealing
)

// Entry is one displayed message: a speaker label plus its current rendered
// HTML. The same underlying turn renders differently mid-reveal.
type Entry struct {
	Speaker string
	Role    models.Role
	HTML    string
}

// Machine holds the entry list and at most one active animation. The
// animated entry is always the last one in the list.
type Machine struct {
	botName  string
	entries  []Entry
	phase    Phase
	dots     int
	reveal   []rune
	revealed int
}

func NewMachine(botName string) *Machine {
	return &Machine{
		botName: botName,
		entries: make([]Entry, 0),
	}
}

func (m *Machine) Phase() Phase {
	return m.phase
}

func (m *Machine) Dots() int {
	return m.dots
}

func (m *Machine) BotName() string {
	return m.botName
}

// Entries returns a copy of the current display list.
func (m *Machine) Entries() []Entry {
	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

// AppendUser adds a settled user entry, rendered immediately with no
// animation.
func (m *Machine) AppendUser(text string) {
	m.settle()
	m.entries = append(m.entries, Entry{
		Speaker: UserSpeaker,
		Role:    models.User,
		HTML:    markdown.Render(text),
	})
}

// AppendBot adds a settled bot entry, bypassing the reveal. Used for the
// greeting.
func (m *Machine) AppendBot(text string) {
	m.settle()
	m.entries = append(m.entries, Entry{
		Speaker: m.botName,
		Role:    models.Bot,
		HTML:    markdown.Render(text),
	})
}

// RequestStarted appends the typing indicator entry and enters
// TypingIndicator. The caller schedules the periodic tick.
func (m *Machine) RequestStarted() {
	m.settle()
	m.dots = 0
	m.entries = append(m.entries, Entry{
		Speaker: m.botName,
		Role:    models.Bot,
		HTML:    "",
	})
	m.phase = TypingIndicator
}

// ResponseReceived swaps the indicator for an empty placeholder and enters
// Revealing; each subsequent tick reveals one more character into it.
func (m *Machine) ResponseReceived(text string) {
	m.removeIndicator()
	m.entries = append(m.entries, Entry{
		Speaker: m.botName,
		Role:    models.Bot,
		HTML:    "",
	})
	m.reveal = []rune(text)
	m.revealed = 0
	m.phase = Revealing
}

// ResponseFailed removes the indicator and returns to Idle. Surfacing the
// error is the caller's concern.
func (m *Machine) ResponseFailed() {
	m.removeIndicator()
	m.phase = Idle
}

// Tick advances whichever animation is active. It reports whether the
// machine still wants ticks; false means the tick source must stop.
func (m *Machine) Tick() bool {
	switch m.phase {
	case TypingIndicator:
		m.dots = (m.dots + 1) % (maxDots + 1)
		m.entries[len(m.entries)-1].HTML = strings.Repeat(".", m.dots)
		return true
	case Revealing:
		if m.revealed < len(m.reveal) {
			m.revealed++
			// Re-render the whole growing prefix so markup that only
			// completes near the end still settles correctly.
			m.entries[len(m.entries)-1].HTML = markdown.Render(string(m.reveal[:m.revealed]))
		}
		if m.revealed == len(m.reveal) {
			m.phase = Idle
			m.reveal = nil
			m.revealed = 0
			return false
		}
		return true
	default:
		return false
	}
}

// settle finalizes any in-progress animation before a new entry lands, so
// the animated entry is always the last one. A running reveal snaps to its
// full text; a dangling indicator is dropped.
func (m *Machine) settle() {
	switch m.phase {
	case Revealing:
		m.entries[len(m.entries)-1].HTML = markdown.Render(string(m.reveal))
		m.reveal = nil
		m.revealed = 0
	case TypingIndicator:
		m.entries = m.entries[:len(m.entries)-1]
	}
	m.phase = Idle
}

func (m *Machine) removeIndicator() {
	if m.phase == TypingIndicator && len(m.entries) > 0 {
		m.entries = m.entries[:len(m.entries)-1]
	}
}
