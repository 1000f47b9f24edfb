package app

import (
	"crypto/rand"
	"strings"

	"wordduel/internal/domain"
)

// Room codes are exactly six uppercase alphanumeric characters
const (
	roomCodeLength = 6
	roomCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// RoomDirectory holds the live private rooms, keyed by their normalized
// code. Like the queue, it is synchronized by the hub.
type RoomDirectory struct {
	rooms map[string]*domain.Room
}

// NewRoomDirectory creates an empty directory
func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{rooms: make(map[string]*domain.Room)}
}

// Create makes a new waiting room hosted by the given player
func (d *RoomDirectory) Create(host domain.RoomPlayer, mode domain.GameMode, subMode domain.TranslationMode) *domain.Room {
	var code string
	for {
		code = generateRoomCode()
		if _, exists := d.rooms[code]; !exists {
			break
		}
	}

	room := domain.NewRoom(code, host, mode, subMode)
	d.rooms[code] = room
	return room
}

// Get returns the room for a code; lookup is case-insensitive
func (d *RoomDirectory) Get(code string) (*domain.Room, error) {
	room, ok := d.rooms[strings.ToUpper(code)]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

// Join adds a player to the room with the given code
func (d *RoomDirectory) Join(code string, player domain.RoomPlayer) (*domain.Room, error) {
	room, err := d.Get(code)
	if err != nil {
		return nil, err
	}
	if err := room.AddPlayer(player); err != nil {
		return nil, err
	}
	return room, nil
}

// Remove deletes a room
func (d *RoomDirectory) Remove(code string) {
	delete(d.rooms, strings.ToUpper(code))
}

// RemoveMember drops a client from whichever room holds it. The emptied
// room is deleted; otherwise the updated room is returned for broadcasting.
func (d *RoomDirectory) RemoveMember(clientID string) (*domain.Room, bool) {
	for code, room := range d.rooms {
		if room.RemovePlayer(clientID) {
			if room.IsEmpty() {
				delete(d.rooms, code)
				return nil, true
			}
			return room, true
		}
	}
	return nil, false
}

// Count returns the number of live rooms
func (d *RoomDirectory) Count() int {
	return len(d.rooms)
}

// generateRoomCode draws a random 6-character uppercase alphanumeric code
func generateRoomCode() string {
	b := make([]byte, roomCodeLength)
	rand.Read(b)

	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeChars[int(b[i])%len(roomCodeChars)]
	}
	return string(code)
}
