package insights

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voxnote/study-api/internal/models"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// Provider JSON mode guarantees syntactically valid JSON at best; the
// shape is still unverified. Envelopes use pointer slices so an absent
// key is distinguishable from an empty array.

type flashcardEnvelope struct {
	Flashcards *[]models.Flashcard `json:"flashcards"`
}

type quizEnvelope struct {
	Quiz *[]models.QuizQuestion `json:"quiz"`
}

// parseFlashcards validates a structured flashcards payload
func parseFlashcards(raw string) (models.FlashcardList, error) {
	var envelope flashcardEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, apperrors.MalformedArtifactError(string(models.KindFlashcards), "payload is not valid JSON").WithCause(err)
	}
	if envelope.Flashcards == nil {
		return nil, apperrors.MalformedArtifactError(string(models.KindFlashcards), "missing 'flashcards' key")
	}

	cards := *envelope.Flashcards
	if len(cards) == 0 {
		return nil, apperrors.MalformedArtifactError(string(models.KindFlashcards), "'flashcards' array is empty")
	}
	for i, card := range cards {
		if strings.TrimSpace(card.Question) == "" || strings.TrimSpace(card.Answer) == "" {
			return nil, apperrors.MalformedArtifactError(string(models.KindFlashcards),
				fmt.Sprintf("item %d is missing a question or answer", i))
		}
	}

	return models.FlashcardList(cards), nil
}

// parseQuiz validates a structured quiz payload. Every item must carry
// exactly 4 options and a correctAnswer that is one of them; a payload
// violating this is rejected as a whole, never partially stored.
func parseQuiz(raw string) (models.QuizQuestionList, error) {
	var envelope quizEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, apperrors.MalformedArtifactError(string(models.KindQuiz), "payload is not valid JSON").WithCause(err)
	}
	if envelope.Quiz == nil {
		return nil, apperrors.MalformedArtifactError(string(models.KindQuiz), "missing 'quiz' key")
	}

	questions := *envelope.Quiz
	if len(questions) == 0 {
		return nil, apperrors.MalformedArtifactError(string(models.KindQuiz), "'quiz' array is empty")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, apperrors.MalformedArtifactError(string(models.KindQuiz),
				fmt.Sprintf("item %d is missing a question", i))
		}
		if len(q.Options) != 4 {
			return nil, apperrors.MalformedArtifactError(string(models.KindQuiz),
				fmt.Sprintf("item %d has %d options, expected 4", i, len(q.Options)))
		}
		if !containsOption(q.Options, q.CorrectAnswer) {
			return nil, apperrors.MalformedArtifactError(string(models.KindQuiz),
				fmt.Sprintf("item %d correctAnswer does not match any option", i))
		}
	}

	return models.QuizQuestionList(questions), nil
}

func containsOption(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}
