package records

import (
	"context"

	"github.com/voxnote/study-api/internal/models"
)

// Service defines the interface for transcript record operations.
// All operations are scoped to the owning user; a record id from another
// user behaves exactly like a missing record.
type Service interface {
	// CreateRecord persists a new transcript record
	CreateRecord(ctx context.Context, record *models.TranscriptRecord) error

	// GetRecord retrieves a record by id for the given user
	GetRecord(ctx context.Context, userID, recordID string) (*models.TranscriptRecord, error)

	// ListRecords retrieves all records for the given user, newest first
	ListRecords(ctx context.Context, userID string) ([]models.TranscriptRecord, error)

	// SaveArtifact replaces one artifact field of a record as a unit.
	// Other artifact fields are never touched.
	SaveArtifact(ctx context.Context, userID, recordID string, kind models.ArtifactKind, value interface{}) error

	// DeleteRecord removes a record
	DeleteRecord(ctx context.Context, userID, recordID string) error

	// Watch subscribes to snapshots of a record. The current snapshot is
	// delivered first, then one snapshot after every successful artifact
	// merge. Deletion delivers a final WatchEvent with Deleted set before
	// the channel closes; cancellation closes it without the marker.
	Watch(ctx context.Context, userID, recordID string) (<-chan WatchEvent, func(), error)
}

// Repository defines the interface for transcript record persistence
type Repository interface {
	// Create creates a new record
	Create(ctx context.Context, record *models.TranscriptRecord) error

	// GetByID retrieves a record by (user, id); returns (nil, nil) when absent
	GetByID(ctx context.Context, userID, recordID string) (*models.TranscriptRecord, error)

	// ListByUser retrieves all records for a user, newest first
	ListByUser(ctx context.Context, userID string) ([]models.TranscriptRecord, error)

	// UpdateColumn updates a single column of a record
	UpdateColumn(ctx context.Context, userID, recordID, column string, value interface{}) error

	// Delete removes a record
	Delete(ctx context.Context, userID, recordID string) error
}
