package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []TranslationItem {
	return []TranslationItem{
		{English: "good morning", Correct: "buenos dias", Distractors: []string{"a", "b", "c"}},
		{English: "time is money", Correct: "el tiempo es oro", Distractors: []string{"d", "e", "f"}},
	}
}

func newTranslationGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame("g1", ModeTranslation, TranslationStandard,
		Player{ID: "p1", Name: "Ana"},
		Player{ID: "p2", Name: "Ben"},
		nil, testItems(), 30*time.Second)
	require.Equal(t, StatusSelectingAnswerMode, g.Status)
	require.NoError(t, g.SelectAnswerMode("p1", AnswerModeChoice))
	return g
}

func TestNewGame_AssignsColorsAndRounds(t *testing.T) {
	g := NewGame("g1", ModeTranslation, TranslationStandard,
		Player{ID: "p1"}, Player{ID: "p2"}, nil, testItems(), 30*time.Second)

	assert.Equal(t, "blue", g.Players[0].Color)
	assert.Equal(t, "red", g.Players[1].Color)
	assert.Equal(t, 2, g.TotalRounds)
	assert.True(t, g.IsHost("p1"))
	assert.False(t, g.IsHost("p2"))
}

func TestSelectAnswerMode_HostOnly(t *testing.T) {
	g := NewGame("g1", ModeTranslation, TranslationStandard,
		Player{ID: "p1"}, Player{ID: "p2"}, nil, testItems(), 30*time.Second)

	assert.ErrorIs(t, g.SelectAnswerMode("p2", AnswerModeChoice), ErrNotHost)
	assert.ErrorIs(t, g.SelectAnswerMode("nobody", AnswerModeChoice), ErrPlayerNotInGame)

	require.NoError(t, g.SelectAnswerMode("p1", AnswerModeTyping))
	assert.Equal(t, StatusPlaying, g.Status)
	assert.Equal(t, 1, g.Round)

	// A second selection is a phase violation.
	assert.ErrorIs(t, g.SelectAnswerMode("p1", AnswerModeChoice), ErrInvalidPhase)
}

func TestCurrentQuestion_NeverFlagsCorrectOption(t *testing.T) {
	g := newTranslationGame(t)

	q := g.CurrentQuestion()
	assert.Equal(t, 1, q.Round)
	assert.Equal(t, "good morning", q.Text)
	assert.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, "buenos dias")
}

func TestSubmitTranslation_ImmediateWin(t *testing.T) {
	g := newTranslationGame(t)
	now := time.Now()

	outcome, err := g.SubmitTranslation("p1", "  Buenos DIAS ", now)
	require.NoError(t, err)
	require.NotNil(t, outcome, "first correct answer ends the round right away")
	assert.Equal(t, "p1", outcome.WinnerID)
	assert.Equal(t, "buenos dias", outcome.CorrectAnswer)
	assert.Equal(t, 1, g.Players[0].Score)
	assert.Equal(t, StatusShowingResult, g.Status)

	// The opponent's late answer for the decided round is ignored.
	late, err := g.SubmitTranslation("p2", "buenos dias", now.Add(time.Second))
	assert.Nil(t, late)
	assert.ErrorIs(t, err, ErrStaleSubmission)
	assert.Equal(t, 1, g.Players[0].Score)
	assert.Equal(t, 0, g.Players[1].Score)
}

func TestSubmitTranslation_BothWrongEndsWithoutWinner(t *testing.T) {
	g := newTranslationGame(t)
	now := time.Now()

	outcome, err := g.SubmitTranslation("p1", "wrong", now)
	require.NoError(t, err)
	assert.Nil(t, outcome, "round stays open until the second player submits")

	outcome, err = g.SubmitTranslation("p2", "also wrong", now.Add(200*time.Millisecond))
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Empty(t, outcome.WinnerID)
	assert.Len(t, outcome.Submissions, 2)
	assert.Equal(t, 0, g.Players[0].Score)
	assert.Equal(t, 0, g.Players[1].Score)
}

func TestSubmitTranslation_DuplicateFromSamePlayer(t *testing.T) {
	g := newTranslationGame(t)
	now := time.Now()

	_, err := g.SubmitTranslation("p1", "wrong", now)
	require.NoError(t, err)

	_, err = g.SubmitTranslation("p1", "buenos dias", now.Add(time.Millisecond))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, 0, g.Players[0].Score)
}

func TestSubmitTranslation_UnknownPlayer(t *testing.T) {
	g := newTranslationGame(t)
	_, err := g.SubmitTranslation("ghost", "buenos dias", time.Now())
	assert.ErrorIs(t, err, ErrPlayerNotInGame)
}

func TestSubmitTranslation_EmptyAnswer(t *testing.T) {
	g := newTranslationGame(t)
	_, err := g.SubmitTranslation("p1", "   ", time.Now())
	assert.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Empty(t, g.Submissions)
}

func TestAdvanceRound_ThroughCompletion(t *testing.T) {
	g := newTranslationGame(t)
	now := time.Now()

	_, err := g.SubmitTranslation("p2", "buenos dias", now)
	require.NoError(t, err)

	done, err := g.AdvanceRound()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 2, g.Round)
	assert.Equal(t, StatusPlaying, g.Status)

	_, err = g.SubmitTranslation("p2", "el tiempo es oro", now.Add(time.Second))
	require.NoError(t, err)

	done, err = g.AdvanceRound()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, StatusCompleted, g.Status)

	result := g.FinalResult()
	assert.Equal(t, "p2", result.WinnerID)
	assert.False(t, result.IsDraw)
}

func TestFinalResult_EqualScoresAreADraw(t *testing.T) {
	g := newTranslationGame(t)
	now := time.Now()

	_, err := g.SubmitTranslation("p1", "buenos dias", now)
	require.NoError(t, err)
	_, err = g.AdvanceRound()
	require.NoError(t, err)

	_, err = g.SubmitTranslation("p2", "el tiempo es oro", now.Add(time.Second))
	require.NoError(t, err)
	done, err := g.AdvanceRound()
	require.NoError(t, err)
	require.True(t, done)

	result := g.FinalResult()
	assert.True(t, result.IsDraw)
	assert.Empty(t, result.WinnerID)
}

func TestAdvanceRound_RequiresDecidedRound(t *testing.T) {
	g := newTranslationGame(t)
	_, err := g.AdvanceRound()
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func storyWords() []Word {
	return []Word{
		{Word: "mountain"}, {Word: "whisper"}, {Word: "journey"},
		{Word: "shadow"}, {Word: "lantern"},
	}
}

func TestSubmitStory_WinnerByWordCount(t *testing.T) {
	g := NewGame("g2", ModeStory, "", Player{ID: "p1", Name: "Ana"}, Player{ID: "p2", Name: "Ben"},
		storyWords(), nil, 3*time.Minute)
	require.Equal(t, StatusCollecting, g.Status)

	outcome, err := g.SubmitStory("p1", "A mountain, a whisper, a journey.", time.Now())
	require.NoError(t, err)
	assert.Nil(t, outcome, "waits for the second story")

	outcome, err = g.SubmitStory("p2", "The mountain shadow held a lantern while a whisper crossed our journey.", time.Now())
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, "p2", outcome.WinnerID)
	assert.Equal(t, StatusCompleted, g.Status)
}

func TestSubmitStory_TieBrokenByLength(t *testing.T) {
	g := NewGame("g2", ModeStory, "", Player{ID: "p1"}, Player{ID: "p2"},
		storyWords(), nil, 3*time.Minute)

	_, err := g.SubmitStory("p1", "mountain whisper journey shadow lantern", time.Now())
	require.NoError(t, err)

	outcome, err := g.SubmitStory("p2", "The mountain whisper journey shadow lantern tale went on and on.", time.Now())
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.Equal(t, "p2", outcome.WinnerID, "equal word counts fall back to the longer story")
}

func TestSubmitStory_DuplicateIgnored(t *testing.T) {
	g := NewGame("g2", ModeStory, "", Player{ID: "p1"}, Player{ID: "p2"},
		storyWords(), nil, 3*time.Minute)

	_, err := g.SubmitStory("p1", "first story", time.Now())
	require.NoError(t, err)

	_, err = g.SubmitStory("p1", "second story", time.Now())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Len(t, g.Stories, 1)
}
