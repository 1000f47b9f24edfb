package domain

import "strings"

// Pure round arbitration. No I/O, no clock, no transport: everything here is
// decided from the arguments alone so it can be tested in isolation.

// IsCorrect reports whether an answer matches the target translation.
// Comparison is whitespace-trimmed and case-insensitive.
func IsCorrect(answer, target string) bool {
	return normalize(answer) == normalize(target)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PickWinner returns the earliest correct submission of a round, or nil if
// no submission was correct.
func PickWinner(subs []*Submission) *Submission {
	var winner *Submission
	for _, s := range subs {
		if !s.Correct {
			continue
		}
		if winner == nil || s.ReceivedAt.Before(winner.ReceivedAt) {
			winner = s
		}
	}
	return winner
}

// UsedWords returns the subset of required words present in the story,
// matched as case-insensitive substrings.
func UsedWords(story string, required []Word) []string {
	lowered := strings.ToLower(story)
	used := make([]string, 0, len(required))
	for _, w := range required {
		if strings.Contains(lowered, strings.ToLower(w.Word)) {
			used = append(used, w.Word)
		}
	}
	return used
}

// StoryWinner compares two story entries. It returns 0 if the first entry
// wins, 1 if the second wins and -1 on a full draw. More required words used
// wins; ties are broken by the longer story string.
func StoryWinner(a, b *StoryEntry) int {
	switch {
	case len(a.UsedWords) > len(b.UsedWords):
		return 0
	case len(b.UsedWords) > len(a.UsedWords):
		return 1
	case len(a.Story) > len(b.Story):
		return 0
	case len(b.Story) > len(a.Story):
		return 1
	default:
		return -1
	}
}
