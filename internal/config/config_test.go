package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestValidateRejectsNonsense(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Game.StoryWordCount = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Game.TranslationRounds = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Game.DisconnectGrace = 0
	assert.Error(t, cfg.Validate())
}
