// Package domain contains core concepts of the assistant.
// This file defines chat sessions and their messages.
// Messages are immutable and appended in order; the core never deletes them.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage represents an immutable chat event inside a session.
type ChatMessage struct {
	ID        uuid.UUID // unique identifier
	SessionID string
	UserID    string
	Role      Role
	Content   string
	Language  string // ISO 639-1 code, best effort detection
	CreatedAt time.Time
}

// ChatSession owns an ordered, append-only transcript.
// Sessions are created on first reference; their lifecycle is owned
// by the session-management layer, not by the core.
type ChatSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
