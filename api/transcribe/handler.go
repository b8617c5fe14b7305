package transcribe

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voxnote/study-api/api/auth"
	"github.com/voxnote/study-api/api/types"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// Post runs the transcription pipeline for an uploaded blob
// @Summary      Transcribe an uploaded audio file
// @Description  Fetch the blob at storagePath, run speech-to-text, format the transcript as
// @Description  markdown (best-effort) and persist the resulting record. The path must lie
// @Description  inside the caller's own namespace.
// @Tags         transcribe
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.TranscribeRequest true "Blob location"
// @Success      200 {object} types.TranscribeResponse "Transcript text and markdown"
// @Failure      400 {object} types.ErrorResponse "Missing or malformed fields"
// @Failure      403 {object} types.ErrorResponse "Path outside the caller's namespace"
// @Failure      404 {object} types.ErrorResponse "Blob not found"
// @Failure      502 {object} types.ErrorResponse "Speech-to-text provider failure"
// @Router       /api/v1/transcribe [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TranscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing required fields: storagePath"})
			return
		}

		userID := apiauth.UserID(c)

		record, err := deps.Transcriber.Transcribe(c.Request.Context(), userID, req.StoragePath)
		if err != nil {
			log.Printf("[ERROR] Transcription failed for user %s: %v", userID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: userMessage(err)})
			return
		}

		c.JSON(http.StatusOK, types.TranscribeResponse{
			ID:       record.ID,
			Text:     record.RawText,
			Markdown: record.FormattedText,
		})
	}
}

// userMessage keeps provider-internal error text out of responses
func userMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Internal Server Error"
}
