package dialogue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTurns_ToleratesSurroundingProse(t *testing.T) {
	text := "Sure, here is the conversation:\n" +
		`[{"character":"Maria","dialogue":"Hola!"},{"character":"Juan","dialogue":"Buenos dias."}]` +
		"\nLet me know if you want another."

	turns, err := parseTurns(text)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "Maria", turns[0].Character)
	assert.Equal(t, "Buenos dias.", turns[1].Dialogue)
}

func TestParseTurns_RejectsNonArrayResponses(t *testing.T) {
	_, err := parseTurns("I cannot produce that conversation.")
	assert.Error(t, err)

	_, err = parseTurns("[]")
	assert.Error(t, err)

	_, err = parseTurns("[not json]")
	assert.Error(t, err)
}

func TestDisabled_ReturnsUnavailable(t *testing.T) {
	_, err := Disabled{}.Conversation(context.Background(), "travel", []string{"Maria"}, 100)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewAnthropicGenerator_RequiresKey(t *testing.T) {
	_, err := NewAnthropicGenerator("   ", "")
	assert.Error(t, err)
}
