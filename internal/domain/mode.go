package domain

// GameMode selects which of the two match formats a session runs
type GameMode string

const (
	ModeStory       GameMode = "story"
	ModeTranslation GameMode = "translation"
)

// IsValid reports whether the mode is one of the known formats
func (m GameMode) IsValid() bool {
	return m == ModeStory || m == ModeTranslation
}

// TranslationMode is the optional sub-mode of translation matches
type TranslationMode string

const (
	TranslationStandard     TranslationMode = "standard"
	TranslationMetaphorical TranslationMode = "metaphorical"
)

// AnswerMode is how translation answers are entered, chosen by the host
type AnswerMode string

const (
	AnswerModeChoice AnswerMode = "multiple-choice"
	AnswerModeTyping AnswerMode = "typing"
)

// Status represents the current status of a game session
type Status string

const (
	// Story mode
	StatusCollecting Status = "collecting-submissions"

	// Translation mode
	StatusSelectingAnswerMode Status = "selecting-answer-mode"
	StatusPlaying             Status = "playing"
	StatusShowingResult       Status = "showing-result"

	StatusCompleted Status = "completed"
)

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}
