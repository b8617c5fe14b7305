package transcriber

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voxnote/study-api/internal/models"
	"github.com/voxnote/study-api/internal/services/blobstore"
	"github.com/voxnote/study-api/internal/services/genai"
	"github.com/voxnote/study-api/internal/services/records"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// markdownPrompt turns a raw transcript into readable markdown. This
// step is best-effort; the raw text is the fallback.
const markdownPrompt = "You are a professional editor. Format the following raw transcription into clean, " +
	"organized Markdown. Use headers (##, ###), bullet points, bold text, and other markdown formatting " +
	"where appropriate to improve readability. Preserve all content but structure it professionally."

const markdownTemperature = 0.3

// service implements the Service interface
type service struct {
	gateway     blobstore.Gateway
	transcriber genai.Transcriber
	completer   genai.Completer
	records     records.Service
}

// NewService creates a new transcription pipeline service
func NewService(gateway blobstore.Gateway, stt genai.Transcriber, completer genai.Completer, recordService records.Service) Service {
	return &service{
		gateway:     gateway,
		transcriber: stt,
		completer:   completer,
		records:     recordService,
	}
}

// Transcribe runs fetch, speech-to-text, formatting and persist in
// strict order. The namespace check comes first so a foreign path never
// reaches storage or a provider.
func (s *service) Transcribe(ctx context.Context, userID, sourcePath string) (*models.TranscriptRecord, error) {
	if sourcePath == "" {
		return nil, apperrors.MissingFieldError("storagePath")
	}
	if !s.gateway.Owns(userID, sourcePath) {
		log.Printf("[WARN] Security alert: user %s attempted to access %s", userID, sourcePath)
		return nil, apperrors.Forbidden("you do not have access to this file")
	}

	tempPath, cleanup, err := s.gateway.FetchToTemp(ctx, sourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NotFound("audio file", sourcePath)
		}
		return nil, apperrors.StorageError("fetch", err)
	}
	defer cleanup()

	rawText, err := s.transcriber.Transcribe(ctx, tempPath)
	if err != nil {
		return nil, apperrors.TranscriptionError(err)
	}

	formatted := s.formatMarkdown(ctx, rawText)

	record := &models.TranscriptRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		SourcePath:    sourcePath,
		RawText:       rawText,
		FormattedText: formatted,
	}
	if err := s.records.CreateRecord(ctx, record); err != nil {
		return nil, apperrors.PersistenceError("transcription result", err)
	}

	return record, nil
}

// formatMarkdown asks the provider to restructure the raw transcript.
// Any failure falls back to the raw text so the pipeline still succeeds.
func (s *service) formatMarkdown(ctx context.Context, rawText string) string {
	formatted, err := s.completer.Complete(ctx, markdownPrompt,
		[]genai.Message{{Role: genai.RoleUser, Content: rawText}},
		genai.Options{Temperature: markdownTemperature})
	if err != nil {
		log.Printf("[WARN] Markdown formatting failed, using raw text: %v", err)
		return rawText
	}
	if formatted == "" {
		return rawText
	}
	return formatted
}

// Delete removes the document first, then the blob. Document removal is
// authoritative; a stale blob is harmless and retried by the next
// cleanup, so its deletion never fails the call.
func (s *service) Delete(ctx context.Context, userID, recordID, sourcePath string) error {
	if err := s.records.DeleteRecord(ctx, userID, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("transcript record", recordID)
		}
		return apperrors.PersistenceError("record deletion", err)
	}

	if sourcePath == "" || !s.gateway.Owns(userID, sourcePath) {
		return nil
	}
	if err := s.gateway.Delete(ctx, sourcePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] Blob deletion failed for %s, file may already be gone: %v", sourcePath, err)
	}

	return nil
}
