package types

import "github.com/voxnote/study-api/internal/models"

// ErrorResponse is the uniform failure body
type ErrorResponse struct {
	Error string `json:"error"`
}

// TranscribeResponse returns the freshly created record
type TranscribeResponse struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Markdown string `json:"markdown,omitempty"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Message string `json:"message"`
}

// DeleteResponse acknowledges a completed deletion
type DeleteResponse struct {
	Success bool `json:"success"`
}

// RecordListResponse lists a user's transcript records, newest first
type RecordListResponse struct {
	Transcriptions []models.TranscriptRecord `json:"transcriptions"`
	Count          int                       `json:"count"`
}
