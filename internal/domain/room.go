package domain

import "time"

// RoomStatus is the lifecycle state of a private room
type RoomStatus string

const (
	RoomWaiting RoomStatus = "waiting"
	RoomStarted RoomStatus = "started"
)

// RoomPlayer is a member of a private room
type RoomPlayer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Room is a code-addressed private lobby for two specific players.
// The host is always Players[0]. A room is deleted once empty.
type Room struct {
	Code      string          `json:"code"`
	HostID    string          `json:"hostId"`
	Players   []RoomPlayer    `json:"players"`
	Mode      GameMode        `json:"gameMode"`
	SubMode   TranslationMode `json:"translationMode,omitempty"`
	Status    RoomStatus      `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewRoom creates a waiting room with the host as its first player
func NewRoom(code string, host RoomPlayer, mode GameMode, subMode TranslationMode) *Room {
	return &Room{
		Code:      code,
		HostID:    host.ID,
		Players:   []RoomPlayer{host},
		Mode:      mode,
		SubMode:   subMode,
		Status:    RoomWaiting,
		CreatedAt: time.Now(),
	}
}

// AddPlayer appends a player to the room
func (r *Room) AddPlayer(p RoomPlayer) error {
	if r.Status != RoomWaiting {
		return ErrRoomAlreadyStarted
	}
	if len(r.Players) >= 2 {
		return ErrRoomFull
	}
	r.Players = append(r.Players, p)
	return nil
}

// RemovePlayer drops a player from the room; returns whether a removal occurred
func (r *Room) RemovePlayer(clientID string) bool {
	for i, p := range r.Players {
		if p.ID == clientID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// IsEmpty reports whether the room has no players left
func (r *Room) IsEmpty() bool {
	return len(r.Players) == 0
}

// IsFull reports whether the room has both players
func (r *Room) IsFull() bool {
	return len(r.Players) == 2
}
