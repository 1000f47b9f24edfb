package app

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"wordduel/internal/domain"
)

// GameStartPayload is sent to each player when a session begins, from that
// player's own perspective.
type GameStartPayload struct {
	GameID           string                 `json:"gameId"`
	GameMode         domain.GameMode        `json:"gameMode"`
	TranslationMode  domain.TranslationMode `json:"translationMode,omitempty"`
	Players          []domain.PlayerScore   `json:"players"`
	Words            []domain.Word          `json:"words,omitempty"`
	TotalRounds      int                    `json:"totalRounds"`
	TimeLimitSeconds int                    `json:"timeLimit"`
	IsFirstPlayer    bool                   `json:"isFirstPlayer"`
}

// SelectAnswerModePayload tells a player whether the mode choice is theirs
type SelectAnswerModePayload struct {
	IsHost bool `json:"isHost"`
}

// GameSession wraps a game with its lock, timers and broadcasting. All state
// mutations for one match go through the session mutex, which makes the
// round-decision sequence atomic: two correct answers for the same round can
// never both win.
type GameSession struct {
	mu     sync.Mutex
	game   *domain.Game
	sender Sender
	logger *zap.Logger

	advanceDelay time.Duration
	advanceTimer *time.Timer
	closed       bool

	// onComplete is invoked once the match reaches its final state, so the
	// hub can schedule teardown after the result-display grace period.
	onComplete func(sessionID string)
}

// NewGameSession wraps a freshly created game
func NewGameSession(game *domain.Game, sender Sender, advanceDelay time.Duration, onComplete func(string), logger *zap.Logger) *GameSession {
	return &GameSession{
		game:         game,
		sender:       sender,
		logger:       logger,
		advanceDelay: advanceDelay,
		onComplete:   onComplete,
	}
}

// ID returns the session id
func (s *GameSession) ID() string {
	return s.game.ID
}

// Mode returns the session's game mode
func (s *GameSession) Mode() domain.GameMode {
	return s.game.Mode
}

// PlayerIDs returns both participant ids in pairing order
func (s *GameSession) PlayerIDs() []string {
	return []string{s.game.Players[0].ID, s.game.Players[1].ID}
}

// Start emits the initial state to both players. Each perspective is
// distinct: the first player is told so, and in translation mode is offered
// the answer-mode choice.
func (s *GameSession) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.game.Players {
		payload := &GameStartPayload{
			GameID:           s.game.ID,
			GameMode:         s.game.Mode,
			TranslationMode:  s.game.SubMode,
			Players:          s.game.Scores(),
			TotalRounds:      s.game.TotalRounds,
			TimeLimitSeconds: int(s.game.TimeLimit.Seconds()),
			IsFirstPlayer:    i == 0,
		}
		if s.game.Mode == domain.ModeStory {
			payload.Words = s.game.Words
		}
		s.sender.Send(p.ID, MsgGameStart, payload)
	}

	if s.game.Mode == domain.ModeTranslation {
		for i, p := range s.game.Players {
			s.sender.Send(p.ID, MsgSelectAnswerMode, &SelectAnswerModePayload{IsHost: i == 0})
		}
	}

	s.logger.Info("game started",
		zap.String("gameId", s.game.ID),
		zap.String("mode", string(s.game.Mode)),
		zap.Int("totalRounds", s.game.TotalRounds),
	)
}

// SelectAnswerMode records the host's choice and opens round 1
func (s *GameSession) SelectAnswerMode(playerID string, mode domain.AnswerMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.SelectAnswerMode(playerID, mode); err != nil {
		return err
	}

	s.broadcast(MsgNextRound, s.game.CurrentQuestion())
	return nil
}

// SubmitTranslation arbitrates one player's answer for the current round.
// Stale and duplicate submissions are swallowed silently to tolerate
// duplicate network delivery.
func (s *GameSession) SubmitTranslation(playerID, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.game.SubmitTranslation(playerID, answer, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrStaleSubmission) || errors.Is(err, domain.ErrAlreadySubmitted) {
			s.logger.Debug("late submission ignored",
				zap.String("gameId", s.game.ID),
				zap.String("playerId", playerID),
				zap.Int("round", s.game.Round),
			)
			return nil
		}
		return err
	}

	if outcome == nil {
		// Accepted, round still open: waiting on the other player.
		return nil
	}

	s.broadcast(MsgRoundResult, outcome)
	s.scheduleAdvance()
	return nil
}

// SubmitStory records one player's story; the match completes once both are in
func (s *GameSession) SubmitStory(playerID, story string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.game.SubmitStory(playerID, story, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrStaleSubmission) || errors.Is(err, domain.ErrAlreadySubmitted) {
			s.logger.Debug("duplicate story ignored",
				zap.String("gameId", s.game.ID),
				zap.String("playerId", playerID),
			)
			return nil
		}
		return err
	}

	if outcome == nil {
		return nil
	}

	s.broadcast(MsgGameResults, outcome)
	s.complete()
	return nil
}

// NotifyDisconnect tells the remaining player their opponent dropped. The
// session itself stays alive until the hub's grace timer fires.
func (s *GameSession) NotifyDisconnect(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opponent, err := s.game.Opponent(clientID)
	if err != nil {
		return
	}
	s.sender.Send(opponent.ID, MsgOpponentDisconnected, struct{}{})
}

// Status returns the current game status
func (s *GameSession) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status
}

// Game exposes the underlying state machine for inspection
func (s *GameSession) Game() *domain.Game {
	return s.game
}

// Close cancels pending timers and freezes the session
func (s *GameSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.advanceTimer != nil {
		s.advanceTimer.Stop()
		s.advanceTimer = nil
	}
}

// scheduleAdvance arms the short fixed delay before the next round opens.
// Caller must hold the session lock.
func (s *GameSession) scheduleAdvance() {
	if s.advanceTimer != nil {
		s.advanceTimer.Stop()
	}
	s.advanceTimer = time.AfterFunc(s.advanceDelay, s.advanceRound)
}

// advanceRound moves past a decided round, opening the next one or ending
// the match.
func (s *GameSession) advanceRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	done, err := s.game.AdvanceRound()
	if err != nil {
		return
	}

	if done {
		s.broadcast(MsgGameResults, s.game.FinalResult())
		s.complete()
		return
	}

	s.broadcast(MsgNextRound, s.game.CurrentQuestion())
}

// complete reports the finished match to the hub. Caller must hold the lock.
func (s *GameSession) complete() {
	s.logger.Info("game completed", zap.String("gameId", s.game.ID))
	if s.onComplete != nil {
		go s.onComplete(s.game.ID)
	}
}

// broadcast sends to both players. Caller must hold the session lock.
func (s *GameSession) broadcast(msgType string, payload any) {
	s.sender.Broadcast(s.PlayerIDs(), msgType, payload)
}
