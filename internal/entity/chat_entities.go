package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one advising conversation.
type ChatSession struct {
	Id        uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ChatMessage is one persisted turn half (user or bot).
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	IntentTag     string
	CreatedAt     time.Time
}

// UsageStat is a per-intent counter maintained by the usage consumer.
type UsageStat struct {
	Id        uint
	IntentTag string
	Count     int64
	UpdatedAt time.Time
}
