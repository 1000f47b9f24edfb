// Package dialogue generates short AI scripted conversations used as story
// prompts. The generator is a narrow external collaborator: the session core
// never depends on it succeeding.
package dialogue

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no generation backend is configured
var ErrUnavailable = errors.New("dialogue generation is not configured")

// Turn is a single line of a generated conversation
type Turn struct {
	Character string `json:"character"`
	Dialogue  string `json:"dialogue"`
}

// Generator produces a conversation about a topic between the given
// characters, roughly wordCount words in total.
type Generator interface {
	Conversation(ctx context.Context, topic string, characters []string, wordCount int) ([]Turn, error)
}

// Disabled is the generator used when no API key is configured
type Disabled struct{}

// Conversation always reports the backend as unavailable
func (Disabled) Conversation(context.Context, string, []string, int) ([]Turn, error) {
	return nil, ErrUnavailable
}
