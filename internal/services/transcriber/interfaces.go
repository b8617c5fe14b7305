package transcriber

import (
	"context"

	"github.com/voxnote/study-api/internal/models"
)

// Service defines the interface for the transcription pipeline
type Service interface {
	// Transcribe runs the full pipeline for one blob: fetch, speech-to-
	// text, best-effort markdown formatting, persist. Returns the created
	// record.
	Transcribe(ctx context.Context, userID, sourcePath string) (*models.TranscriptRecord, error)

	// Delete removes a record's document and then, best-effort, its
	// backing blob. A blob deletion failure is logged, never surfaced.
	Delete(ctx context.Context, userID, recordID, sourcePath string) error
}
