package domain

import "time"

// Client represents a live connection and the metadata the player supplied.
// One Client exists per connection; it is destroyed on disconnect.
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	Mobile      bool      `json:"mobile"`
	SessionID   string    `json:"sessionId,omitempty"`
	RoomCode    string    `json:"roomCode,omitempty"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// NewClient creates a client record for a fresh connection
func NewClient(id string, mobile bool) *Client {
	return &Client{
		ID:          id,
		Mobile:      mobile,
		ConnectedAt: time.Now(),
	}
}

// WaitingEntry is one client queued for random matchmaking.
// At most one entry exists per client id at any time.
type WaitingEntry struct {
	ClientID string
	Name     string
	Avatar   string
	Mode     GameMode
	SubMode  TranslationMode
	JoinedAt time.Time
}

// Compatible reports whether two entries can be paired into a match
func (e *WaitingEntry) Compatible(other *WaitingEntry) bool {
	return e.Mode == other.Mode && e.SubMode == other.SubMode
}

// WaitingPlayer is the externally visible view of a queued client.
// Internal ids are deliberately absent.
type WaitingPlayer struct {
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	GameMode GameMode  `json:"gameMode"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ToWaiting converts an entry to its public view
func (e *WaitingEntry) ToWaiting() WaitingPlayer {
	return WaitingPlayer{
		Name:     e.Name,
		Avatar:   e.Avatar,
		GameMode: e.Mode,
		JoinedAt: e.JoinedAt,
	}
}
