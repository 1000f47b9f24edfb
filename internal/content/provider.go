// Package content supplies the word lists and translation items consumed by
// game sessions at creation time. The primary source is a remote content
// service; every provider degrades to the built-in default set rather than
// failing a session.
package content

import (
	"context"
	"math/rand"

	"wordduel/internal/domain"
)

// Provider supplies mode-specific content batches
type Provider interface {
	Words(ctx context.Context, count int, difficulty string) []domain.Word
	TranslationItems(ctx context.Context, count int, difficulty string, metaphorical bool) []domain.TranslationItem
}

// Fallback serves the built-in default set. It is the provider of last
// resort and never fails.
type Fallback struct{}

// NewFallback returns a provider backed only by the built-in defaults
func NewFallback() *Fallback {
	return &Fallback{}
}

// Words returns up to count default words, shuffled
func (f *Fallback) Words(_ context.Context, count int, _ string) []domain.Word {
	return sample(defaultWords, count)
}

// TranslationItems returns up to count default items, shuffled
func (f *Fallback) TranslationItems(_ context.Context, count int, _ string, metaphorical bool) []domain.TranslationItem {
	if metaphorical {
		return sample(defaultMetaphors, count)
	}
	return sample(defaultTranslations, count)
}

// sample returns up to count elements drawn without replacement
func sample[T any](pool []T, count int) []T {
	idx := rand.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]T, 0, count)
	for _, i := range idx[:count] {
		out = append(out, pool[i])
	}
	return out
}
