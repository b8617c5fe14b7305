package types

import (
	"github.com/voxnote/study-api/internal/models"
	"github.com/voxnote/study-api/internal/services/genai"
)

// TranscribeRequest asks the pipeline to process an uploaded blob
type TranscribeRequest struct {
	// StoragePath is the blob path under the caller's namespace
	StoragePath string `json:"storagePath" binding:"required"`
	// FileURL is accepted for client convenience but the server only
	// trusts StoragePath
	FileURL string `json:"fileUrl"`
}

// InsightsRequest asks for one or more study artifacts
type InsightsRequest struct {
	TranscriptionID string              `json:"transcriptionId" binding:"required"`
	Text            string              `json:"text" binding:"required"`
	Type            models.ArtifactKind `json:"type" binding:"required"`
}

// ChatRequest carries the full turn history plus the transcript context
type ChatRequest struct {
	Messages    []genai.Message `json:"messages" binding:"required"`
	ContextText string          `json:"contextText" binding:"required"`
}

// DeleteRequest identifies the record and its backing blob
type DeleteRequest struct {
	TranscriptionID string `json:"transcriptionId" binding:"required"`
	StoragePath     string `json:"storagePath" binding:"required"`
}
