package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"wordduel/internal/app"
	"wordduel/internal/config"
	"wordduel/internal/content"
	"wordduel/internal/dialogue"
	"wordduel/internal/logging"
	httptransport "wordduel/internal/transport/http"
	"wordduel/internal/transport/ws"
)

const version = "1.2.0"

func main() {
	cfg := config.Default()

	if err := newCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCmd(cfg *config.Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDDUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wordduel",
		Short:         "Realtime coordination server for two-player word-game matches.",
		Args:          cobra.ExactArgs(0),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.Server.Bind, "bind", "b", cfg.Server.Bind, "address to bind to (env: WORDDUEL_BIND)")
	fs.IntVarP(&cfg.Server.Port, "port", "p", cfg.Server.Port, "port to listen on (env: WORDDUEL_PORT)")
	fs.StringVar(&cfg.Server.PublicURL, "public-url", cfg.Server.PublicURL, "externally reachable base URL for invite links (env: WORDDUEL_PUBLIC_URL)")
	fs.IntVar(&cfg.Game.StoryWordCount, "story-words", cfg.Game.StoryWordCount, "required words per story match (env: WORDDUEL_STORY_WORDS)")
	fs.IntVar(&cfg.Game.TranslationRounds, "translation-rounds", cfg.Game.TranslationRounds, "rounds per translation match (env: WORDDUEL_TRANSLATION_ROUNDS)")
	fs.DurationVar(&cfg.Game.StoryTimeLimit, "story-time-limit", cfg.Game.StoryTimeLimit, "time limit for a story session (env: WORDDUEL_STORY_TIME_LIMIT)")
	fs.DurationVar(&cfg.Game.RoundTimeLimit, "round-time-limit", cfg.Game.RoundTimeLimit, "time limit per translation round (env: WORDDUEL_ROUND_TIME_LIMIT)")
	fs.DurationVar(&cfg.Game.RoundAdvanceDelay, "round-advance-delay", cfg.Game.RoundAdvanceDelay, "pause between round result and next round (env: WORDDUEL_ROUND_ADVANCE_DELAY)")
	fs.DurationVar(&cfg.Game.DisconnectGrace, "disconnect-grace", cfg.Game.DisconnectGrace, "grace period before a disconnected player's session is deleted (env: WORDDUEL_DISCONNECT_GRACE)")
	fs.DurationVar(&cfg.Game.MobileDisconnectGrace, "mobile-disconnect-grace", cfg.Game.MobileDisconnectGrace, "grace period for mobile clients (env: WORDDUEL_MOBILE_DISCONNECT_GRACE)")
	fs.DurationVar(&cfg.Game.ResultGrace, "result-grace", cfg.Game.ResultGrace, "time finished matches stay visible before teardown (env: WORDDUEL_RESULT_GRACE)")
	fs.StringVar(&cfg.Game.Difficulty, "difficulty", cfg.Game.Difficulty, "content difficulty requested from the content service (env: WORDDUEL_DIFFICULTY)")
	fs.StringVar(&cfg.Content.URL, "content-url", cfg.Content.URL, "base URL of the content service; empty uses built-in content (env: WORDDUEL_CONTENT_URL)")
	fs.DurationVar(&cfg.Content.Timeout, "content-timeout", cfg.Content.Timeout, "content service request timeout (env: WORDDUEL_CONTENT_TIMEOUT)")
	fs.StringVar(&cfg.Dialogue.AnthropicAPIKey, "anthropic-api-key", cfg.Dialogue.AnthropicAPIKey, "API key for conversation generation; empty disables it (env: WORDDUEL_ANTHROPIC_API_KEY)")
	fs.StringVar(&cfg.Dialogue.Model, "anthropic-model", cfg.Dialogue.Model, "model used for conversation generation (env: WORDDUEL_ANTHROPIC_MODEL)")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (env: WORDDUEL_LOG_LEVEL)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format, json or console (env: WORDDUEL_LOG_FORMAT)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordduel v{{.Version}}\n")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting wordduel server",
		zap.String("version", version),
		zap.String("addr", cfg.Addr()),
	)

	var provider content.Provider
	if cfg.Content.URL != "" {
		provider = content.NewRemote(cfg.Content.URL, cfg.Content.Timeout, logger)
	} else {
		provider = content.NewFallback()
	}

	var generator dialogue.Generator = dialogue.Disabled{}
	if cfg.Dialogue.AnthropicAPIKey != "" {
		generator, err = dialogue.NewAnthropicGenerator(cfg.Dialogue.AnthropicAPIKey, cfg.Dialogue.Model)
		if err != nil {
			return err
		}
	}

	clients := ws.NewClientSet()

	opts := app.DefaultOptions()
	opts.StoryWordCount = cfg.Game.StoryWordCount
	opts.TranslationRounds = cfg.Game.TranslationRounds
	opts.StoryTimeLimit = cfg.Game.StoryTimeLimit
	opts.RoundTimeLimit = cfg.Game.RoundTimeLimit
	opts.RoundAdvanceDelay = cfg.Game.RoundAdvanceDelay
	opts.DisconnectGrace = cfg.Game.DisconnectGrace
	opts.MobileDisconnectGrace = cfg.Game.MobileDisconnectGrace
	opts.ResultGrace = cfg.Game.ResultGrace
	opts.Difficulty = cfg.Game.Difficulty

	hub := app.NewHub(clients, provider, generator, opts, logger)
	defer hub.Close()

	wsHandler := ws.NewHandler(hub, clients, logger)
	server := httptransport.NewServer(cfg, hub, wsHandler, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
