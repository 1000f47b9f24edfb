package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Game     GameConfig
	Content  ContentConfig
	Dialogue DialogueConfig
	Logging  LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Bind      string
	Port      int
	PublicURL string
}

// GameConfig holds the engine's tunable parameters
type GameConfig struct {
	StoryWordCount        int
	TranslationRounds     int
	StoryTimeLimit        time.Duration
	RoundTimeLimit        time.Duration
	RoundAdvanceDelay     time.Duration
	DisconnectGrace       time.Duration
	MobileDisconnectGrace time.Duration
	ResultGrace           time.Duration
	Difficulty            string
}

// ContentConfig points at the external content service. An empty URL means
// the built-in default content is used exclusively.
type ContentConfig struct {
	URL     string
	Timeout time.Duration
}

// DialogueConfig configures the external AI dialogue generator. An empty
// API key disables generation.
type DialogueConfig struct {
	AnthropicAPIKey string
	Model           string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Default returns the configuration defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Bind: "0.0.0.0",
			Port: 8080,
		},
		Game: GameConfig{
			StoryWordCount:        5,
			TranslationRounds:     15,
			StoryTimeLimit:        3 * time.Minute,
			RoundTimeLimit:        30 * time.Second,
			RoundAdvanceDelay:     3 * time.Second,
			DisconnectGrace:       45 * time.Second,
			MobileDisconnectGrace: 90 * time.Second,
			ResultGrace:           60 * time.Second,
			Difficulty:            "medium",
		},
		Content: ContentConfig{
			Timeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for nonsense values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Server.Port)
	}
	if c.Game.StoryWordCount < 1 {
		return fmt.Errorf("story word count must be positive: %d", c.Game.StoryWordCount)
	}
	if c.Game.TranslationRounds < 1 {
		return fmt.Errorf("translation rounds must be positive: %d", c.Game.TranslationRounds)
	}
	if c.Game.DisconnectGrace <= 0 || c.Game.MobileDisconnectGrace <= 0 {
		return fmt.Errorf("disconnect grace periods must be positive")
	}
	return nil
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Bind, strconv.Itoa(c.Server.Port))
}
