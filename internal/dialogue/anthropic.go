package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultModel     = "claude-3-5-haiku-20241022"
	defaultMaxTokens = 1024
)

// AnthropicGenerator implements Generator using the official Anthropic SDK
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicGenerator creates a generator backed by the Anthropic API
func NewAnthropicGenerator(apiKey, model string) (*AnthropicGenerator, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("anthropic generator requires an API key")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(key)),
		model:  model,
	}, nil
}

// Conversation asks the model for a JSON array of dialogue turns
func (g *AnthropicGenerator) Conversation(ctx context.Context, topic string, characters []string, wordCount int) ([]Turn, error) {
	prompt := buildPrompt(topic, characters, wordCount)

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: defaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic conversation failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	turns, err := parseTurns(text.String())
	if err != nil {
		return nil, err
	}
	return turns, nil
}

func buildPrompt(topic string, characters []string, wordCount int) string {
	return fmt.Sprintf(
		"Write a short conversation about %q between the characters %s, "+
			"roughly %d words in total. Respond with ONLY a JSON array of "+
			"objects with keys \"character\" and \"dialogue\", no prose.",
		topic, strings.Join(characters, ", "), wordCount)
}

// parseTurns extracts the JSON turn array, tolerating surrounding prose
func parseTurns(text string) ([]Turn, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var turns []Turn
	if err := json.Unmarshal([]byte(text[start:end+1]), &turns); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	if len(turns) == 0 {
		return nil, fmt.Errorf("model returned an empty conversation")
	}
	return turns, nil
}
