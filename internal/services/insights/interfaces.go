package insights

import (
	"context"

	"github.com/voxnote/study-api/internal/models"
)

// Result holds the outcome of one generation request. Each requested
// kind ends up either in its value field or in Errors, never both.
type Result struct {
	Summary    string                         `json:"summary,omitempty"`
	Flashcards models.FlashcardList           `json:"flashcards,omitempty"`
	Quiz       models.QuizQuestionList        `json:"quiz,omitempty"`
	Errors     map[models.ArtifactKind]string `json:"errors,omitempty"`
}

// Failed reports whether the given kind ended in failure
func (r *Result) Failed(kind models.ArtifactKind) bool {
	_, ok := r.Errors[kind]
	return ok
}

// Service defines the interface for generating study artifacts from a
// transcript
type Service interface {
	// Generate produces the requested artifact kinds from the transcript
	// text and merges each successful one into the record. Kinds fail
	// independently; the returned error is non-nil only when every
	// requested kind failed.
	Generate(ctx context.Context, userID, recordID, text string, kinds []models.ArtifactKind) (*Result, error)
}
