package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation, persisted so context survives
// restarts.
type Turn struct {
	ID        int64
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Apology is the canned reply when the text-generation service fails. The
// user re-triggers by resubmitting; nothing is retried automatically.
const Apology = "Sorry, I'm having trouble responding right now. Please try again in a moment."
