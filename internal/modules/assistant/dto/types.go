package dto

import "time"

type AskInput struct {
	Message string
}

type ReplyOutput struct {
	Reply string
	// Matched reports whether a command rule intercepted the message;
	// Mutated additionally reports that state changed.
	Matched bool
	Mutated bool
}

type TurnOutput struct {
	Role      string
	Content   string
	CreatedAt time.Time
}
