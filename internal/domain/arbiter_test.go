package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCorrect(t *testing.T) {
	assert.True(t, IsCorrect("la casa roja", "la casa roja"))
	assert.True(t, IsCorrect("  La Casa ROJA  ", "la casa roja"))
	assert.True(t, IsCorrect("la casa roja", "  LA CASA ROJA\n"))
	assert.False(t, IsCorrect("la casa azul", "la casa roja"))
	assert.False(t, IsCorrect("", "la casa roja"))
	assert.False(t, IsCorrect("la casa", "la casa roja"))
}

func TestPickWinner_EarliestCorrect(t *testing.T) {
	base := time.Now()

	subs := []*Submission{
		{PlayerID: "p1", Correct: false, ReceivedAt: base.Add(1000 * time.Millisecond)},
		{PlayerID: "p2", Correct: true, ReceivedAt: base.Add(1200 * time.Millisecond)},
	}
	winner := PickWinner(subs)
	require.NotNil(t, winner)
	assert.Equal(t, "p2", winner.PlayerID)

	subs = []*Submission{
		{PlayerID: "p1", Correct: true, ReceivedAt: base.Add(500 * time.Millisecond)},
		{PlayerID: "p2", Correct: true, ReceivedAt: base.Add(900 * time.Millisecond)},
	}
	winner = PickWinner(subs)
	require.NotNil(t, winner)
	assert.Equal(t, "p1", winner.PlayerID)
}

func TestPickWinner_NoneCorrect(t *testing.T) {
	subs := []*Submission{
		{PlayerID: "p1", Correct: false, ReceivedAt: time.Now()},
		{PlayerID: "p2", Correct: false, ReceivedAt: time.Now()},
	}
	assert.Nil(t, PickWinner(subs))
	assert.Nil(t, PickWinner(nil))
}

func TestUsedWords(t *testing.T) {
	required := []Word{
		{Word: "mountain"}, {Word: "whisper"}, {Word: "journey"},
	}

	used := UsedWords("The Mountain heard a WHISPER on our journey.", required)
	assert.Equal(t, []string{"mountain", "whisper", "journey"}, used)

	used = UsedWords("A quiet walk home.", required)
	assert.Empty(t, used)

	// Substring matching is intentional: "journeys" counts.
	used = UsedWords("many journeys", required)
	assert.Equal(t, []string{"journey"}, used)
}

func TestStoryWinner(t *testing.T) {
	a := &StoryEntry{PlayerID: "a", Story: "short", UsedWords: []string{"x", "y", "z"}}
	b := &StoryEntry{PlayerID: "b", Story: "tiny", UsedWords: []string{"v", "w", "x", "y", "z"}}
	assert.Equal(t, 1, StoryWinner(a, b), "more required words wins")

	// Equal word counts break on story length.
	a = &StoryEntry{Story: "a much longer story text", UsedWords: []string{"x"}}
	b = &StoryEntry{Story: "short", UsedWords: []string{"y"}}
	assert.Equal(t, 0, StoryWinner(a, b))

	// Full draw.
	a = &StoryEntry{Story: "equal", UsedWords: []string{"x"}}
	b = &StoryEntry{Story: "equal", UsedWords: []string{"y"}}
	assert.Equal(t, -1, StoryWinner(a, b))
}
