package models

import (
	"time"

	"github.com/google/uuid"
)

type Role int

const (
	User Role = iota
	Bot
)

// Message is one turn of the conversation. Turns are immutable once created
// and are only ever appended, never edited.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
