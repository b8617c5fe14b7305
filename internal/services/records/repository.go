package records

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voxnote/study-api/internal/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new transcript record repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new record
func (r *repository) Create(ctx context.Context, record *models.TranscriptRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// GetByID retrieves a record by (user, id)
func (r *repository) GetByID(ctx context.Context, userID, recordID string) (*models.TranscriptRecord, error) {
	var record models.TranscriptRecord

	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", recordID, userID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &record, nil
}

// ListByUser retrieves all records for a user, newest first
func (r *repository) ListByUser(ctx context.Context, userID string) ([]models.TranscriptRecord, error) {
	var records []models.TranscriptRecord

	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// UpdateColumn updates a single column of a record. Scoping the update to
// one column is what keeps artifact kinds independent: replacing one kind
// can never clear another.
func (r *repository) UpdateColumn(ctx context.Context, userID, recordID, column string, value interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.TranscriptRecord{}).
		Where("id = ? AND user_id = ?", recordID, userID).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes a record
func (r *repository) Delete(ctx context.Context, userID, recordID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.TranscriptRecord{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
