package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wordduel/internal/content"
	"wordduel/internal/dialogue"
	"wordduel/internal/domain"
)

// Options are the tunable parameters of the coordination engine
type Options struct {
	StoryWordCount        int
	TranslationRounds     int
	StoryTimeLimit        time.Duration
	RoundTimeLimit        time.Duration
	RoundAdvanceDelay     time.Duration
	DisconnectGrace       time.Duration
	MobileDisconnectGrace time.Duration
	ResultGrace           time.Duration
	Difficulty            string
	ConversationTimeout   time.Duration
}

// DefaultOptions returns the production defaults
func DefaultOptions() Options {
	return Options{
		StoryWordCount:        5,
		TranslationRounds:     15,
		StoryTimeLimit:        3 * time.Minute,
		RoundTimeLimit:        30 * time.Second,
		RoundAdvanceDelay:     3 * time.Second,
		DisconnectGrace:       45 * time.Second,
		MobileDisconnectGrace: 90 * time.Second,
		ResultGrace:           60 * time.Second,
		Difficulty:            "medium",
		ConversationTimeout:   30 * time.Second,
	}
}

// Hub is the explicitly owned store of all coordination state: the
// connection registry, matchmaking queue, room directory and active
// sessions. It is constructed at server start, passed by reference into
// every handler, and torn down at stop. The hub mutex serializes queue and
// room mutations so that pairing and session creation form one transaction.
type Hub struct {
	registry *Registry
	queue    *Queue
	rooms    *RoomDirectory
	sessions map[string]*GameSession
	reaper   *Reaper

	sender    Sender
	content   content.Provider
	generator dialogue.Generator
	opts      Options
	logger    *zap.Logger

	mu sync.Mutex // guards queue, rooms, sessions
}

// NewHub assembles the coordination engine
func NewHub(sender Sender, provider content.Provider, generator dialogue.Generator, opts Options, logger *zap.Logger) *Hub {
	return &Hub{
		registry:  NewRegistry(logger),
		queue:     NewQueue(),
		rooms:     NewRoomDirectory(),
		sessions:  make(map[string]*GameSession),
		reaper:    NewReaper(logger),
		sender:    sender,
		content:   provider,
		generator: generator,
		opts:      opts,
		logger:    logger,
	}
}

// Connect registers a fresh connection
func (h *Hub) Connect(clientID string, mobile bool) {
	h.registry.Register(domain.NewClient(clientID, mobile))
}

// Disconnect performs immediate cleanup for a dropped connection and defers
// session deletion by the grace period.
func (h *Hub) Disconnect(clientID string) {
	client, err := h.registry.Lookup(clientID)
	if err != nil {
		return
	}

	h.mu.Lock()
	if h.queue.Remove(clientID) {
		h.broadcastWaitingLocked()
	}
	if room, found := h.rooms.RemoveMember(clientID); found && room != nil {
		ids := roomMemberIDs(room)
		h.sender.Broadcast(ids, MsgRoomUpdated, room)
		h.sender.Broadcast(ids, MsgPlayerLeft, map[string]string{"name": client.Name})
	}
	session := h.sessions[client.SessionID]
	h.mu.Unlock()

	h.registry.Remove(clientID)

	if session == nil {
		return
	}

	// The remaining player learns immediately; the session record survives
	// until the grace timer fires, longer for mobile clients to tolerate
	// transient network handoffs.
	session.NotifyDisconnect(clientID)

	grace := h.opts.DisconnectGrace
	if client.Mobile {
		grace = h.opts.MobileDisconnectGrace
	}
	sessionID := session.ID()
	h.reaper.Schedule(sessionID, grace, func() {
		h.logger.Info("disconnect grace expired", zap.String("gameId", sessionID))
		h.removeSession(sessionID)
	})
}

// JoinGame puts a client into the matchmaking queue and pairs it if a
// compatible opponent is already waiting.
func (h *Hub) JoinGame(clientID, name, avatar string, mode domain.GameMode, subMode domain.TranslationMode) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrMissingName
	}
	if !mode.IsValid() {
		return domain.ErrInvalidMode
	}
	if _, err := h.registry.Lookup(clientID); err != nil {
		return err
	}

	h.registry.SetProfile(clientID, name, avatar)

	h.mu.Lock()
	h.queue.Enqueue(&domain.WaitingEntry{
		ClientID: clientID,
		Name:     name,
		Avatar:   avatar,
		Mode:     mode,
		SubMode:  subMode,
		JoinedAt: time.Now(),
	})
	h.broadcastWaitingLocked()
	first, second, matched := h.queue.TryMatch()
	if matched {
		h.broadcastWaitingLocked()
	}
	h.mu.Unlock()

	if matched {
		h.startSession(
			domain.Player{ID: first.ClientID, Name: first.Name, Avatar: first.Avatar},
			domain.Player{ID: second.ClientID, Name: second.Name, Avatar: second.Avatar},
			first.Mode, first.SubMode,
		)
	}
	return nil
}

// LeaveQueue removes a client from the waiting list
func (h *Hub) LeaveQueue(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.queue.Remove(clientID) {
		h.broadcastWaitingLocked()
	}
}

// CreateRoom opens a private room hosted by the client
func (h *Hub) CreateRoom(clientID, name, avatar string, mode domain.GameMode, subMode domain.TranslationMode) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrMissingName
	}
	if !mode.IsValid() {
		return domain.ErrInvalidMode
	}
	if _, err := h.registry.Lookup(clientID); err != nil {
		return err
	}

	h.registry.SetProfile(clientID, name, avatar)

	h.mu.Lock()
	room := h.rooms.Create(domain.RoomPlayer{ID: clientID, Name: name, Avatar: avatar}, mode, subMode)
	h.mu.Unlock()

	h.registry.AssociateRoom(clientID, room.Code)
	h.sender.Send(clientID, MsgRoomCreated, room)
	h.logger.Info("room created", zap.String("code", room.Code), zap.String("hostId", clientID))
	return nil
}

// JoinRoom adds a client to a private room by code; once both players are
// present the match starts.
func (h *Hub) JoinRoom(clientID, code, name, avatar string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrMissingName
	}
	if _, err := h.registry.Lookup(clientID); err != nil {
		return err
	}

	h.registry.SetProfile(clientID, name, avatar)

	h.mu.Lock()
	room, err := h.rooms.Join(code, domain.RoomPlayer{ID: clientID, Name: name, Avatar: avatar})
	var full bool
	if err == nil {
		full = room.IsFull()
		if full {
			room.Status = domain.RoomStarted
		}
	}
	h.mu.Unlock()

	if err != nil {
		return err
	}

	h.registry.AssociateRoom(clientID, room.Code)
	h.sender.Broadcast(roomMemberIDs(room), MsgRoomUpdated, room)

	if full {
		host := room.Players[0]
		guest := room.Players[1]
		h.startSession(
			domain.Player{ID: host.ID, Name: host.Name, Avatar: host.Avatar},
			domain.Player{ID: guest.ID, Name: guest.Name, Avatar: guest.Avatar},
			room.Mode, room.SubMode,
		)
	}
	return nil
}

// SelectAnswerMode forwards the host's answer-mode choice to their session
func (h *Hub) SelectAnswerMode(clientID, gameID string, mode domain.AnswerMode) error {
	session, err := h.sessionFor(clientID, gameID)
	if err != nil {
		return err
	}
	return session.SelectAnswerMode(clientID, mode)
}

// SubmitTranslation forwards an answer to the client's session
func (h *Hub) SubmitTranslation(clientID, gameID, answer string) error {
	session, err := h.sessionFor(clientID, gameID)
	if err != nil {
		return err
	}
	return session.SubmitTranslation(clientID, answer)
}

// SubmitStory forwards a story to the client's session
func (h *Hub) SubmitStory(clientID, gameID, story string) error {
	session, err := h.sessionFor(clientID, gameID)
	if err != nil {
		return err
	}
	return session.SubmitStory(clientID, story)
}

// GenerateConversation delegates to the external dialogue generator and
// replies asynchronously so slow generation never stalls message handling.
func (h *Hub) GenerateConversation(clientID, topic string, characters []string, wordCount int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.opts.ConversationTimeout)
		defer cancel()

		turns, err := h.generator.Conversation(ctx, topic, characters, wordCount)
		if err != nil {
			h.logger.Warn("conversation generation failed", zap.Error(err))
			h.sender.Send(clientID, MsgConversationError, map[string]string{"message": err.Error()})
			return
		}
		h.sender.Send(clientID, MsgConversation, map[string]any{"turns": turns})
	}()
}

// Stats reports engine counters for diagnostics
func (h *Hub) Stats() map[string]int {
	h.mu.Lock()
	waiting := h.queue.Len()
	rooms := h.rooms.Count()
	active := len(h.sessions)
	h.mu.Unlock()

	return map[string]int{
		"connections":    h.registry.Count(),
		"waitingPlayers": waiting,
		"rooms":          rooms,
		"activeGames":    active,
	}
}

// Room returns a live room by code
func (h *Hub) Room(code string) (*domain.Room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rooms.Get(code)
}

// Session returns an active session by id
func (h *Hub) Session(id string) (*GameSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Close tears down every session and pending timer
func (h *Hub) Close() {
	h.reaper.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.sessions {
		s.Close()
		delete(h.sessions, id)
	}
}

// startSession creates and starts a match for a freshly paired pair. The
// pair is already removed from queue or room, so content fetching happens
// outside the hub lock.
func (h *Hub) startSession(first, second domain.Player, mode domain.GameMode, subMode domain.TranslationMode) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		words []domain.Word
		items []domain.TranslationItem
		limit time.Duration
	)
	if mode == domain.ModeStory {
		words = h.content.Words(ctx, h.opts.StoryWordCount, h.opts.Difficulty)
		limit = h.opts.StoryTimeLimit
	} else {
		items = h.content.TranslationItems(ctx, h.opts.TranslationRounds, h.opts.Difficulty, subMode == domain.TranslationMetaphorical)
		limit = h.opts.RoundTimeLimit
	}

	game := domain.NewGame(uuid.New().String(), mode, subMode, first, second, words, items, limit)
	session := NewGameSession(game, h.sender, h.opts.RoundAdvanceDelay, h.onSessionComplete, h.logger)

	h.mu.Lock()
	h.sessions[game.ID] = session
	h.mu.Unlock()

	h.registry.AssociateSession(first.ID, game.ID)
	h.registry.AssociateSession(second.ID, game.ID)

	h.logger.Info("players paired",
		zap.String("gameId", game.ID),
		zap.String("mode", string(mode)),
		zap.String("firstPlayer", first.ID),
		zap.String("secondPlayer", second.ID),
	)

	session.Start()
}

// onSessionComplete schedules teardown after the result-display grace period
func (h *Hub) onSessionComplete(sessionID string) {
	h.reaper.Schedule(sessionID, h.opts.ResultGrace, func() {
		h.removeSession(sessionID)
	})
}

// removeSession deletes a session and cancels any timer still tied to it
func (h *Hub) removeSession(sessionID string) {
	h.reaper.Cancel(sessionID)

	h.mu.Lock()
	session, ok := h.sessions[sessionID]
	if ok {
		delete(h.sessions, sessionID)
	}
	h.mu.Unlock()

	if !ok {
		return
	}

	session.Close()
	for _, id := range session.PlayerIDs() {
		h.registry.ClearSession(id)
	}
	h.logger.Info("session removed", zap.String("gameId", sessionID))
}

// sessionFor resolves the session a submission addresses. An explicit game
// id wins; otherwise the client's association is used.
func (h *Hub) sessionFor(clientID, gameID string) (*GameSession, error) {
	if gameID == "" {
		client, err := h.registry.Lookup(clientID)
		if err != nil {
			return nil, domain.ErrGameNotFound
		}
		gameID = client.SessionID
	}

	h.mu.Lock()
	session, ok := h.sessions[gameID]
	h.mu.Unlock()

	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return session, nil
}

// broadcastWaitingLocked pushes the public waiting list to every connected
// client. Caller must hold the hub lock.
func (h *Hub) broadcastWaitingLocked() {
	h.sender.Broadcast(h.registry.IDs(), MsgWaitingPlayersUpdate, h.queue.Waiting())
}

func roomMemberIDs(room *domain.Room) []string {
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	return ids
}
