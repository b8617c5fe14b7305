package insights

import (
	"context"
	"errors"
	"log"
	"sync"

	"gorm.io/gorm"

	"github.com/voxnote/study-api/internal/models"
	"github.com/voxnote/study-api/internal/services/genai"
	"github.com/voxnote/study-api/internal/services/records"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// service implements the Service interface
type service struct {
	completer genai.Completer
	records   records.Service
}

// NewService creates a new insight generation service
func NewService(completer genai.Completer, recordService records.Service) Service {
	return &service{
		completer: completer,
		records:   recordService,
	}
}

// expandKinds resolves the requested kinds into a deduplicated set of
// concrete artifact kinds
func expandKinds(kinds []models.ArtifactKind) ([]models.ArtifactKind, error) {
	seen := make(map[models.ArtifactKind]bool)
	var expanded []models.ArtifactKind

	for _, kind := range kinds {
		// KindAll is a request convenience, not a generatable kind, so
		// it expands before validation
		if kind == models.KindAll {
			for _, k := range models.AllKinds() {
				if !seen[k] {
					seen[k] = true
					expanded = append(expanded, k)
				}
			}
			continue
		}
		if !kind.Valid() {
			return nil, apperrors.ValidationError("type", "unknown artifact kind: "+string(kind))
		}
		if !seen[kind] {
			seen[kind] = true
			expanded = append(expanded, kind)
		}
	}

	if len(expanded) == 0 {
		return nil, apperrors.MissingFieldError("type")
	}
	return expanded, nil
}

// Generate produces the requested artifact kinds concurrently. Kinds own
// disjoint record fields, so their merges cannot conflict and completion
// order does not matter.
func (s *service) Generate(ctx context.Context, userID, recordID, text string, kinds []models.ArtifactKind) (*Result, error) {
	expanded, err := expandKinds(kinds)
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: make(map[models.ArtifactKind]string)}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, kind := range expanded {
		wg.Add(1)
		go func(kind models.ArtifactKind) {
			defer wg.Done()

			value, genErr := s.generateKind(ctx, kind, text)
			if genErr == nil {
				genErr = s.merge(ctx, userID, recordID, kind, value)
			}

			mu.Lock()
			defer mu.Unlock()
			if genErr != nil {
				log.Printf("[ERROR] Insight generation failed for kind %s on record %s: %v", kind, recordID, genErr)
				result.Errors[kind] = failureMessage(genErr)
				return
			}
			switch kind {
			case models.KindSummary:
				result.Summary = value.(string)
			case models.KindFlashcards:
				result.Flashcards = value.(models.FlashcardList)
			case models.KindQuiz:
				result.Quiz = value.(models.QuizQuestionList)
			}
		}(kind)
	}
	wg.Wait()

	if len(result.Errors) == 0 {
		result.Errors = nil
	} else if len(result.Errors) == len(expanded) {
		return result, apperrors.New(apperrors.ErrCodeProvider, "all requested insight kinds failed")
	}

	return result, nil
}

// generateKind runs the provider call and validation for one kind
func (s *service) generateKind(ctx context.Context, kind models.ArtifactKind, text string) (interface{}, error) {
	turns := []genai.Message{{Role: genai.RoleUser, Content: text}}

	switch kind {
	case models.KindSummary:
		summary, err := s.completer.Complete(ctx, summaryPrompt, turns, genai.Options{
			Temperature: summaryTemperature,
		})
		if err != nil {
			return nil, apperrors.ProviderError("generative-text", err)
		}
		return summary, nil

	case models.KindFlashcards:
		raw, err := s.completer.Complete(ctx, flashcardsPrompt, turns, genai.Options{
			JSONMode:    true,
			Temperature: flashcardsTemperature,
		})
		if err != nil {
			return nil, apperrors.ProviderError("generative-text", err)
		}
		return parseFlashcards(raw)

	case models.KindQuiz:
		raw, err := s.completer.Complete(ctx, quizPrompt, turns, genai.Options{
			JSONMode:    true,
			Temperature: quizTemperature,
		})
		if err != nil {
			return nil, apperrors.ProviderError("generative-text", err)
		}
		return parseQuiz(raw)
	}

	return nil, apperrors.ValidationError("type", "unknown artifact kind: "+string(kind))
}

// merge persists a validated artifact onto its record field
func (s *service) merge(ctx context.Context, userID, recordID string, kind models.ArtifactKind, value interface{}) error {
	if err := s.records.SaveArtifact(ctx, userID, recordID, kind, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("transcript record", recordID)
		}
		return apperrors.PersistenceError(string(kind), err)
	}
	return nil
}

// failureMessage yields the short, provider-neutral message surfaced to
// the client for a failed kind
func failureMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "generation failed"
}
