package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordduel/internal/domain"
)

func entry(id string, mode domain.GameMode, sub domain.TranslationMode) *domain.WaitingEntry {
	return &domain.WaitingEntry{
		ClientID: id,
		Name:     "player-" + id,
		Mode:     mode,
		SubMode:  sub,
		JoinedAt: time.Now(),
	}
}

func TestQueue_EnqueueReplacesExistingEntry(t *testing.T) {
	q := NewQueue()

	q.Enqueue(entry("c1", domain.ModeStory, ""))
	q.Enqueue(entry("c1", domain.ModeTranslation, domain.TranslationStandard))

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, domain.ModeTranslation, q.Waiting()[0].GameMode)
}

func TestQueue_TryMatchPairsCompatibleEntries(t *testing.T) {
	q := NewQueue()

	q.Enqueue(entry("c1", domain.ModeTranslation, domain.TranslationStandard))
	q.Enqueue(entry("c2", domain.ModeStory, ""))
	q.Enqueue(entry("c3", domain.ModeTranslation, domain.TranslationMetaphorical))
	q.Enqueue(entry("c4", domain.ModeTranslation, domain.TranslationStandard))

	first, second, ok := q.TryMatch()
	require.True(t, ok)
	assert.Equal(t, "c1", first.ClientID, "head is always the first player")
	assert.Equal(t, "c4", second.ClientID, "mode and sub-mode must both match")
	assert.Equal(t, 2, q.Len())

	// Remaining entries are incompatible with each other.
	_, _, ok = q.TryMatch()
	assert.False(t, ok)
	assert.Equal(t, 2, q.Len(), "failed match leaves the queue unchanged")
}

func TestQueue_TryMatchNeverReusesAClient(t *testing.T) {
	q := NewQueue()
	q.Enqueue(entry("c1", domain.ModeStory, ""))
	q.Enqueue(entry("c2", domain.ModeStory, ""))
	q.Enqueue(entry("c3", domain.ModeStory, ""))
	q.Enqueue(entry("c4", domain.ModeStory, ""))

	seen := map[string]bool{}
	for {
		a, b, ok := q.TryMatch()
		if !ok {
			break
		}
		for _, e := range []*domain.WaitingEntry{a, b} {
			assert.False(t, seen[e.ClientID], "client %s matched twice", e.ClientID)
			seen[e.ClientID] = true
		}
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_TryMatchScansInQueueOrder(t *testing.T) {
	q := NewQueue()
	q.Enqueue(entry("c1", domain.ModeStory, ""))
	q.Enqueue(entry("c2", domain.ModeStory, ""))
	q.Enqueue(entry("c3", domain.ModeStory, ""))

	_, second, ok := q.TryMatch()
	require.True(t, ok)
	assert.Equal(t, "c2", second.ClientID, "first compatible entry by scan order wins")
}

func TestQueue_Remove(t *testing.T) {
	q := NewQueue()
	q.Enqueue(entry("c1", domain.ModeStory, ""))

	assert.True(t, q.Remove("c1"))
	assert.False(t, q.Remove("c1"))
	assert.Equal(t, 0, q.Len())
}

func TestQueue_WaitingIsInQueueOrder(t *testing.T) {
	q := NewQueue()
	q.Enqueue(entry("c1", domain.ModeStory, ""))
	q.Enqueue(entry("c2", domain.ModeTranslation, domain.TranslationStandard))

	waiting := q.Waiting()
	require.Len(t, waiting, 2)
	assert.Equal(t, "player-c1", waiting[0].Name)
	assert.Equal(t, "player-c2", waiting[1].Name)
}
