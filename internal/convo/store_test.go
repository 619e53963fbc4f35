package convo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nording/deskbot/internal/models"
)

func TestStore_AppendPreservesOrder(t *testing.T) {
	s := NewStore("Elsa")

	s.AppendBot("welcome")
	s.AppendUser("first")
	s.AppendBot("reply one")
	s.AppendUser("second")
	s.AppendBot("reply two")

	turns := s.Turns()
	require.Len(t, turns, 5)

	wantContents := []string{"welcome", "first", "reply one", "second", "reply two"}
	wantRoles := []models.Role{models.Bot, models.User, models.Bot, models.User, models.Bot}
	for i, turn := range turns {
		assert.Equal(t, wantContents[i], turn.Content)
		assert.Equal(t, wantRoles[i], turn.Role)
		assert.NotEmpty(t, turn.ID)
	}
}

func TestStore_TurnsReturnsCopy(t *testing.T) {
	s := NewStore("Elsa")
	s.AppendUser("hello")

	turns := s.Turns()
	turns[0].Content = "mutated"

	assert.Equal(t, "hello", s.Turns()[0].Content)
}

func TestStore_Transcript(t *testing.T) {
	s := NewStore("Freja")
	s.AppendBot("Hi! How can I help?")
	s.AppendUser("my wifi is down")
	s.AppendBot("Have you restarted the router?")

	want := strings.Join([]string{
		"Freja: Hi! How can I help?",
		"User: my wifi is down",
		"Freja: Have you restarted the router?",
	}, "\n")
	assert.Equal(t, want, s.Transcript())
}

func TestStore_TranscriptEndsWithLatestUserTurn(t *testing.T) {
	s := NewStore("Axel")
	s.AppendBot("greeting")
	s.AppendUser("hello")

	assert.True(t, strings.HasSuffix(s.Transcript(), "User: hello"))
}

func TestStore_Empty(t *testing.T) {
	s := NewStore("Kim")
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Transcript())
}
