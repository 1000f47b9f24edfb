package app

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordduel/internal/domain"
)

func TestRoomDirectory_CreateGeneratesValidCodes(t *testing.T) {
	d := NewRoomDirectory()
	codeFormat := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		room := d.Create(domain.RoomPlayer{ID: "host"}, domain.ModeStory, "")
		assert.Regexp(t, codeFormat, room.Code)
		assert.False(t, seen[room.Code], "codes must be unique among live rooms")
		seen[room.Code] = true
	}
}

func TestRoomDirectory_JoinIsCaseInsensitive(t *testing.T) {
	d := NewRoomDirectory()
	room := d.Create(domain.RoomPlayer{ID: "host", Name: "Ana"}, domain.ModeTranslation, domain.TranslationStandard)

	joined, err := d.Join(strings.ToLower(room.Code), domain.RoomPlayer{ID: "guest", Name: "Ben"})
	require.NoError(t, err)
	assert.Equal(t, room.Code, joined.Code)
	assert.Len(t, joined.Players, 2)
	assert.Equal(t, "host", joined.Players[0].ID, "host stays first")
}

func TestRoomDirectory_JoinErrors(t *testing.T) {
	d := NewRoomDirectory()

	_, err := d.Join("NOPE99", domain.RoomPlayer{ID: "guest"})
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	room := d.Create(domain.RoomPlayer{ID: "host"}, domain.ModeStory, "")
	_, err = d.Join(room.Code, domain.RoomPlayer{ID: "guest"})
	require.NoError(t, err)

	// A third join attempt on a full room fails and membership stays at 2.
	_, err = d.Join(room.Code, domain.RoomPlayer{ID: "third"})
	assert.ErrorIs(t, err, domain.ErrRoomFull)
	assert.Len(t, room.Players, 2)

	room.Status = domain.RoomStarted
	room.Players = room.Players[:1]
	_, err = d.Join(room.Code, domain.RoomPlayer{ID: "late"})
	assert.ErrorIs(t, err, domain.ErrRoomAlreadyStarted)
}

func TestRoomDirectory_RemoveMember(t *testing.T) {
	d := NewRoomDirectory()
	room := d.Create(domain.RoomPlayer{ID: "host"}, domain.ModeStory, "")
	_, err := d.Join(room.Code, domain.RoomPlayer{ID: "guest"})
	require.NoError(t, err)

	remaining, found := d.RemoveMember("guest")
	require.True(t, found)
	require.NotNil(t, remaining)
	assert.Len(t, remaining.Players, 1)

	// Last member leaving deletes the room.
	emptied, found := d.RemoveMember("host")
	assert.True(t, found)
	assert.Nil(t, emptied)
	assert.Equal(t, 0, d.Count())

	_, found = d.RemoveMember("stranger")
	assert.False(t, found)
}
