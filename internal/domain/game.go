package domain

import (
	"math/rand"
	"time"
)

// PlayerColors are assigned by pairing order: first player, second player.
var PlayerColors = [2]string{"blue", "red"}

// Player is one of the two participants of a game session
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
	Score  int    `json:"score"`
}

// Game is the state machine for one two-player match. It holds pure state
// and rules only: timers, locking and broadcasting belong to the session
// wrapper that owns it. Invariants: exactly two players; the round number is
// monotonically non-decreasing and never exceeds TotalRounds while playing.
type Game struct {
	ID          string
	Mode        GameMode
	SubMode     TranslationMode
	AnswerMode  AnswerMode
	Players     [2]*Player
	Status      Status
	Round       int // 1-based
	TotalRounds int
	TimeLimit   time.Duration
	Words       []Word
	Items       []TranslationItem
	Submissions []*Submission
	Stories     []*StoryEntry
	CreatedAt   time.Time
}

// NewGame creates a session for a freshly paired pair of players. The first
// player keeps pairing order (queue head, or room host).
func NewGame(id string, mode GameMode, subMode TranslationMode, first, second Player, words []Word, items []TranslationItem, timeLimit time.Duration) *Game {
	first.Color = PlayerColors[0]
	second.Color = PlayerColors[1]
	first.Score = 0
	second.Score = 0

	g := &Game{
		ID:        id,
		Mode:      mode,
		SubMode:   subMode,
		Players:   [2]*Player{&first, &second},
		TimeLimit: timeLimit,
		Words:     words,
		Items:     items,
		CreatedAt: time.Now(),
	}

	switch mode {
	case ModeStory:
		// The whole story session counts as a single round.
		g.Status = StatusCollecting
		g.Round = 1
		g.TotalRounds = 1
	default:
		g.Status = StatusSelectingAnswerMode
		g.TotalRounds = len(items)
	}

	return g
}

// Player returns the participant with the given id
func (g *Game) Player(id string) (*Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPlayerNotInGame
}

// Opponent returns the other participant
func (g *Game) Opponent(id string) (*Player, error) {
	if _, err := g.Player(id); err != nil {
		return nil, err
	}
	if g.Players[0].ID == id {
		return g.Players[1], nil
	}
	return g.Players[0], nil
}

// IsHost reports whether the player was first in pairing order
func (g *Game) IsHost(id string) bool {
	return g.Players[0].ID == id
}

// Scores returns the current cumulative scores of both players
func (g *Game) Scores() []PlayerScore {
	scores := make([]PlayerScore, 0, 2)
	for _, p := range g.Players {
		scores = append(scores, PlayerScore{
			ID:    p.ID,
			Name:  p.Name,
			Color: p.Color,
			Score: p.Score,
		})
	}
	return scores
}

// SelectAnswerMode records the host's answer-mode choice and starts round 1
func (g *Game) SelectAnswerMode(playerID string, mode AnswerMode) error {
	if _, err := g.Player(playerID); err != nil {
		return err
	}
	if !g.IsHost(playerID) {
		return ErrNotHost
	}
	if g.Status != StatusSelectingAnswerMode {
		return ErrInvalidPhase
	}

	g.AnswerMode = mode
	g.Round = 1
	g.Status = StatusPlaying
	return nil
}

// CurrentQuestion builds the prompt for the current round. The options are
// shuffled and the correct one is never flagged.
func (g *Game) CurrentQuestion() *Question {
	item := g.Items[g.Round-1]

	options := make([]string, 0, len(item.Distractors)+1)
	options = append(options, item.Correct)
	options = append(options, item.Distractors...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{
		Round:       g.Round,
		TotalRounds: g.TotalRounds,
		Text:        item.English,
		Options:     options,
	}
}

// SubmitTranslation records an answer for the current round. It returns a
// non-nil outcome once the round is decided: immediately on the first correct
// answer, or once both players have submitted incorrect ones. A nil outcome
// with nil error means the answer was accepted but the round continues.
func (g *Game) SubmitTranslation(playerID, answer string, receivedAt time.Time) (*RoundOutcome, error) {
	player, err := g.Player(playerID)
	if err != nil {
		return nil, err
	}
	if normalize(answer) == "" {
		return nil, ErrEmptyAnswer
	}

	switch g.Status {
	case StatusPlaying:
	case StatusShowingResult, StatusCompleted:
		// Tolerates duplicate network delivery after the round was decided.
		return nil, ErrStaleSubmission
	default:
		return nil, ErrInvalidPhase
	}

	roundSubs := g.roundSubmissions(g.Round)
	for _, s := range roundSubs {
		if s.PlayerID == playerID {
			return nil, ErrAlreadySubmitted
		}
	}

	target := g.Items[g.Round-1].Correct
	sub := NewSubmission(playerID, player.Name, g.Round, answer, IsCorrect(answer, target), receivedAt)
	g.Submissions = append(g.Submissions, sub)
	roundSubs = append(roundSubs, sub)

	if sub.Correct {
		player.Score++
		return g.closeRound(sub, roundSubs, target), nil
	}

	if len(roundSubs) == 2 {
		return g.closeRound(nil, roundSubs, target), nil
	}

	return nil, nil
}

// closeRound decides the current round and freezes further submissions
func (g *Game) closeRound(winner *Submission, subs []*Submission, correctAnswer string) *RoundOutcome {
	g.Status = StatusShowingResult

	outcome := &RoundOutcome{
		Round:         g.Round,
		Scores:        g.Scores(),
		CorrectAnswer: correctAnswer,
		Submissions:   subs,
	}
	if winner != nil {
		outcome.WinnerID = winner.PlayerID
		outcome.WinnerName = winner.Name
	}
	return outcome
}

// AdvanceRound moves past a decided round. It returns true once the game is
// over, after which FinalResult holds the match outcome.
func (g *Game) AdvanceRound() (bool, error) {
	if g.Status != StatusShowingResult {
		return false, ErrInvalidPhase
	}

	g.Round++
	if g.Round > g.TotalRounds {
		g.Status = StatusCompleted
		return true, nil
	}

	g.Status = StatusPlaying
	return false, nil
}

// FinalResult computes the overall match result from cumulative scores.
// Equal scores are an explicit draw.
func (g *Game) FinalResult() *FinalResult {
	result := &FinalResult{Scores: g.Scores()}

	switch {
	case g.Players[0].Score > g.Players[1].Score:
		result.WinnerID = g.Players[0].ID
		result.WinnerName = g.Players[0].Name
	case g.Players[1].Score > g.Players[0].Score:
		result.WinnerID = g.Players[1].ID
		result.WinnerName = g.Players[1].Name
	default:
		result.IsDraw = true
	}
	return result
}

// SubmitStory records a player's story. Each player submits exactly once; the
// required words are re-detected server side. A non-nil outcome is returned
// once both stories are in, at which point the game is completed.
func (g *Game) SubmitStory(playerID, story string, receivedAt time.Time) (*StoryOutcome, error) {
	player, err := g.Player(playerID)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusCollecting {
		return nil, ErrStaleSubmission
	}
	for _, e := range g.Stories {
		if e.PlayerID == playerID {
			return nil, ErrAlreadySubmitted
		}
	}

	g.Stories = append(g.Stories, &StoryEntry{
		PlayerID:   playerID,
		Name:       player.Name,
		Story:      story,
		UsedWords:  UsedWords(story, g.Words),
		ReceivedAt: receivedAt,
	})

	if len(g.Stories) < 2 {
		return nil, nil
	}

	g.Status = StatusCompleted

	outcome := &StoryOutcome{Entries: g.Stories}
	switch StoryWinner(g.Stories[0], g.Stories[1]) {
	case 0:
		outcome.WinnerID = g.Stories[0].PlayerID
		outcome.WinnerName = g.Stories[0].Name
	case 1:
		outcome.WinnerID = g.Stories[1].PlayerID
		outcome.WinnerName = g.Stories[1].Name
	default:
		outcome.IsDraw = true
	}
	return outcome, nil
}

// roundSubmissions returns the submissions recorded for a given round
func (g *Game) roundSubmissions(round int) []*Submission {
	subs := make([]*Submission, 0, 2)
	for _, s := range g.Submissions {
		if s.Round == round {
			subs = append(subs, s)
		}
	}
	return subs
}
