package records

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/voxnote/study-api/internal/models"
)

// service implements the Service interface
type service struct {
	repo Repository
	hub  *watchHub
}

// NewService creates a new transcript record service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		hub:  newWatchHub(),
	}
}

// CreateRecord persists a new transcript record
func (s *service) CreateRecord(ctx context.Context, record *models.TranscriptRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if record.ID == "" || record.UserID == "" {
		return errors.New("record id and user id are required")
	}

	return s.repo.Create(ctx, record)
}

// GetRecord retrieves a record by id for the given user
func (s *service) GetRecord(ctx context.Context, userID, recordID string) (*models.TranscriptRecord, error) {
	return s.repo.GetByID(ctx, userID, recordID)
}

// ListRecords retrieves all records for the given user, newest first
func (s *service) ListRecords(ctx context.Context, userID string) ([]models.TranscriptRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

// artifactColumn maps a kind to the column it owns
func artifactColumn(kind models.ArtifactKind) (string, error) {
	switch kind {
	case models.KindSummary:
		return "summary", nil
	case models.KindFlashcards:
		return "flashcards", nil
	case models.KindQuiz:
		return "quiz", nil
	default:
		return "", fmt.Errorf("unknown artifact kind: %s", kind)
	}
}

// SaveArtifact replaces one artifact field of a record as a unit. The
// update is column-scoped, so concurrent saves of different kinds cannot
// conflict; concurrent saves of the same kind are last-write-wins.
func (s *service) SaveArtifact(ctx context.Context, userID, recordID string, kind models.ArtifactKind, value interface{}) error {
	column, err := artifactColumn(kind)
	if err != nil {
		return err
	}

	switch kind {
	case models.KindSummary:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("summary value must be a string, got %T", value)
		}
	case models.KindFlashcards:
		if _, ok := value.(models.FlashcardList); !ok {
			return fmt.Errorf("flashcards value must be a FlashcardList, got %T", value)
		}
	case models.KindQuiz:
		if _, ok := value.(models.QuizQuestionList); !ok {
			return fmt.Errorf("quiz value must be a QuizQuestionList, got %T", value)
		}
	}

	if err := s.repo.UpdateColumn(ctx, userID, recordID, column, value); err != nil {
		return err
	}

	// Notify watchers with a fresh snapshot
	if record, err := s.repo.GetByID(ctx, userID, recordID); err == nil && record != nil {
		s.hub.publish(*record)
	}

	return nil
}

// DeleteRecord removes a record and ends any live watches on it
func (s *service) DeleteRecord(ctx context.Context, userID, recordID string) error {
	if err := s.repo.Delete(ctx, userID, recordID); err != nil {
		return err
	}

	s.hub.dropAll(userID, recordID)
	return nil
}

// Watch subscribes to snapshots of a record. The current snapshot is
// delivered immediately; subsequent snapshots arrive after each
// successful artifact merge until cancel is called or the context ends.
// Deleting the record delivers a final event with Deleted set before
// the channel closes.
func (s *service) Watch(ctx context.Context, userID, recordID string) (<-chan WatchEvent, func(), error) {
	// Subscribe before reading the snapshot so a merge landing between
	// the read and the subscription is delivered, not silently missed
	ch, cancel := s.hub.subscribe(userID, recordID)

	record, err := s.repo.GetByID(ctx, userID, recordID)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if record == nil {
		cancel()
		return nil, nil, gorm.ErrRecordNotFound
	}

	if !s.hub.sendInitial(userID, recordID, ch, *record) {
		// Deleted between subscribe and snapshot read
		return nil, nil, gorm.ErrRecordNotFound
	}

	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			cancel()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	return ch, stop, nil
}
