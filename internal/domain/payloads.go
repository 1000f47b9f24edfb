package domain

// Wire payload types shared by the session core and the transport layer.

// PlayerScore is one player's cumulative score for broadcasting
type PlayerScore struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Score int    `json:"score"`
}

// Question is the prompt of a translation round. The correct option is never
// flagged to the client.
type Question struct {
	Round       int      `json:"round"`
	TotalRounds int      `json:"totalRounds"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
}

// RoundOutcome is the decided result of a single translation round
type RoundOutcome struct {
	Round         int           `json:"round"`
	WinnerID      string        `json:"winnerId,omitempty"`
	WinnerName    string        `json:"winnerName,omitempty"`
	Scores        []PlayerScore `json:"playerScores"`
	CorrectAnswer string        `json:"correctAnswer"`
	Submissions   []*Submission `json:"submissions"`
}

// FinalResult is the overall outcome of a translation match
type FinalResult struct {
	WinnerID   string        `json:"winnerId,omitempty"`
	WinnerName string        `json:"winnerName,omitempty"`
	IsDraw     bool          `json:"isDraw"`
	Scores     []PlayerScore `json:"finalScores"`
}

// StoryOutcome is the final result of a story match
type StoryOutcome struct {
	Entries    []*StoryEntry `json:"stories"`
	WinnerID   string        `json:"winnerId,omitempty"`
	WinnerName string        `json:"winnerName,omitempty"`
	IsDraw     bool          `json:"isDraw"`
}
