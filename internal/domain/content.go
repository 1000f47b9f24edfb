package domain

// Word is a single required word for story mode
type Word struct {
	Word       string `json:"word"`
	Difficulty string `json:"difficulty"`
}

// TranslationItem is one translation prompt: the source text, its correct
// translation, and the wrong options shown alongside it.
type TranslationItem struct {
	English     string   `json:"english"`
	Correct     string   `json:"correct"`
	Distractors []string `json:"distractors"`
	Difficulty  string   `json:"difficulty"`
}
