package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ArtifactKind identifies a study artifact derivable from a transcript
type ArtifactKind string

const (
	KindSummary    ArtifactKind = "summary"
	KindFlashcards ArtifactKind = "flashcards"
	KindQuiz       ArtifactKind = "quiz"

	// KindAll is a request-level convenience that expands to every kind
	KindAll ArtifactKind = "all"
)

// Valid reports whether the kind names a single generatable artifact
func (k ArtifactKind) Valid() bool {
	switch k {
	case KindSummary, KindFlashcards, KindQuiz:
		return true
	}
	return false
}

// AllKinds lists every generatable artifact kind
func AllKinds() []ArtifactKind {
	return []ArtifactKind{KindSummary, KindFlashcards, KindQuiz}
}

// Flashcard is a single question/answer study card
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuizQuestion is a multiple-choice question with exactly four options.
// CorrectAnswer must equal one of Options; this is enforced at parse
// time, never trusted from the provider.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// FlashcardList stores an ordered flashcard set as a JSON text column
type FlashcardList []Flashcard

// Value implements driver.Valuer
func (l FlashcardList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *FlashcardList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into FlashcardList", value)
	}
}

// QuizQuestionList stores an ordered quiz as a JSON text column
type QuizQuestionList []QuizQuestion

// Value implements driver.Valuer
func (l QuizQuestionList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *QuizQuestionList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into QuizQuestionList", value)
	}
}

// TranscriptRecord is a per-user transcription document whose artifact
// fields are filled in progressively. RawText is set once by the
// transcription pipeline; Summary, Flashcards and Quiz are owned by the
// insight pipeline and each is replaced as a unit.
type TranscriptRecord struct {
	ID            string           `gorm:"primarykey" json:"id"`
	UserID        string           `gorm:"index:idx_records_user;not null" json:"-"`
	SourcePath    string           `gorm:"not null" json:"originalFile"`
	RawText       string           `gorm:"type:text" json:"text"`
	FormattedText string           `gorm:"type:text" json:"markdown,omitempty"`
	Summary       string           `gorm:"type:text" json:"summary,omitempty"`
	Flashcards    FlashcardList    `gorm:"type:text" json:"flashcards,omitempty"`
	Quiz          QuizQuestionList `gorm:"type:text" json:"quiz,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"-"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TableName specifies the table name for TranscriptRecord
func (TranscriptRecord) TableName() string {
	return "transcript_records"
}
