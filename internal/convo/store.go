// Package convo holds the append-only conversation log. The serialized
// transcript is the literal context window sent to the model, so append
// order is semantically significant and never reordered.
package convo

import (
	"strings"
	"sync"

	"github.com/nording/deskbot/internal/models"
)

// UserLabel is the transcript label for user turns. The bot label varies
// per session (the persona name is picked at startup).
const UserLabel = "User"

// Store is the ordered log of conversation turns. It only grows; no removal
// operation exists. Writes happen on the core service goroutine while the
// application reads a snapshot at startup, hence the mutex.
type Store struct {
	mu       sync.RWMutex
	turns    []models.Message
	botLabel string
}

func NewStore(botLabel string) *Store {
	return &Store{
		turns:    make([]models.Message, 0),
		botLabel: botLabel,
	}
}

func (s *Store) BotLabel() string {
	return s.botLabel
}

func (s *Store) Append(turn models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
}

func (s *Store) AppendUser(content string) models.Message {
	turn := models.NewMessage(models.User, content)
	s.Append(turn)
	return turn
}

func (s *Store) AppendBot(content string) models.Message {
	turn := models.NewMessage(models.Bot, content)
	s.Append(turn)
	return turn
}

// Turns returns a copy of the log in exact append order.
func (s *Store) Turns() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Message, len(s.turns))
	copy(result, s.turns)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Transcript serializes every turn as "{label}: {text}" lines in append
// order, joined with newlines.
func (s *Store) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]string, 0, len(s.turns))
	for _, turn := range s.turns {
		lines = append(lines, s.label(turn.Role)+": "+turn.Content)
	}
	return strings.Join(lines, "\n")
}

func (s *Store) label(role models.Role) string {
	if role == models.Bot {
		return s.botLabel
	}
	return UserLabel
}
