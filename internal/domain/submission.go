package domain

import "time"

// Submission is one player's answer for a given round, timestamped on
// receipt. Immutable once recorded; at most one accepted submission exists
// per (player, round) pair.
type Submission struct {
	PlayerID   string    `json:"playerId"`
	Name       string    `json:"name"`
	Round      int       `json:"round"`
	Answer     string    `json:"answer"`
	Correct    bool      `json:"correct"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// NewSubmission records an answer received at the given time
func NewSubmission(playerID, name string, round int, answer string, correct bool, receivedAt time.Time) *Submission {
	return &Submission{
		PlayerID:   playerID,
		Name:       name,
		Round:      round,
		Answer:     answer,
		Correct:    correct,
		ReceivedAt: receivedAt,
	}
}

// StoryEntry is one player's story submission together with the required
// words the server detected in it.
type StoryEntry struct {
	PlayerID   string    `json:"playerId"`
	Name       string    `json:"name"`
	Story      string    `json:"story"`
	UsedWords  []string  `json:"usedWords"`
	ReceivedAt time.Time `json:"receivedAt"`
}
