package domain

import "errors"

// Domain errors
var (
	ErrGameNotFound       = errors.New("game not found")
	ErrPlayerNotInGame    = errors.New("player is not part of this game")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrRoomAlreadyStarted = errors.New("room already started")
	ErrNotHost            = errors.New("only the host can perform this action")
	ErrInvalidPhase       = errors.New("invalid action for current game status")
	ErrStaleSubmission    = errors.New("submission for an already decided round")
	ErrAlreadySubmitted   = errors.New("already submitted this round")
	ErrMissingName        = errors.New("player name is required")
	ErrInvalidMode        = errors.New("unknown game mode")
	ErrClientNotFound     = errors.New("client not found")
	ErrEmptyAnswer        = errors.New("answer cannot be empty")
)
