package transcriptions

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apiauth "github.com/voxnote/study-api/api/auth"
	"github.com/voxnote/study-api/api/types"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// List returns the caller's transcript records, newest first
// @Summary      List transcriptions
// @Tags         transcriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} types.RecordListResponse
// @Failure      500 {object} types.ErrorResponse "Store read failure"
// @Router       /api/v1/transcriptions [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := apiauth.UserID(c)

		list, err := deps.RecordService.ListRecords(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[ERROR] Failed to list records for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to load transcriptions"})
			return
		}

		c.JSON(http.StatusOK, types.RecordListResponse{Transcriptions: list, Count: len(list)})
	}
}

// Get returns a single transcript record
// @Summary      Get a transcription
// @Tags         transcriptions
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Record id"
// @Success      200 {object} models.TranscriptRecord
// @Failure      404 {object} types.ErrorResponse "No such record for this user"
// @Router       /api/v1/transcriptions/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := apiauth.UserID(c)
		recordID := c.Param("id")

		record, err := deps.RecordService.GetRecord(c.Request.Context(), userID, recordID)
		if err != nil {
			log.Printf("[ERROR] Failed to load record %s: %v", recordID, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to load transcription"})
			return
		}
		if record == nil {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Transcription not found"})
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// Watch streams record snapshots over server-sent events. The current
// state arrives first; a new snapshot follows every artifact merge until
// the client disconnects or the record is deleted.
// @Summary      Watch a transcription
// @Description  Server-sent event stream of record snapshots. Clients observe artifact
// @Description  fields filling in instead of polling.
// @Tags         transcriptions
// @Security     BearerAuth
// @Produce      text/event-stream
// @Param        id path string true "Record id"
// @Success      200 {object} models.TranscriptRecord "Snapshot stream"
// @Failure      404 {object} types.ErrorResponse "No such record for this user"
// @Router       /api/v1/transcriptions/{id}/watch [get]
func Watch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := apiauth.UserID(c)
		recordID := c.Param("id")

		snapshots, stop, err := deps.RecordService.Watch(c.Request.Context(), userID, recordID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Transcription not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to watch transcription"})
			return
		}
		defer stop()

		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			ev, open := <-snapshots
			if !open {
				// Watch cancelled; the record still exists
				return false
			}
			if ev.Deleted {
				c.SSEvent("deleted", gin.H{"id": recordID})
				return false
			}
			c.SSEvent("snapshot", ev.Record)
			return true
		})
	}
}

// Delete removes a record and, best-effort, its backing blob
// @Summary      Delete a transcription
// @Description  Removes the record document first, then the blob. A blob deletion failure
// @Description  is logged server-side and never fails the call.
// @Tags         transcriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.DeleteRequest true "Record id and blob path"
// @Success      200 {object} types.DeleteResponse
// @Failure      400 {object} types.ErrorResponse "Missing ids"
// @Failure      404 {object} types.ErrorResponse "Record already gone"
// @Router       /api/v1/transcriptions/delete [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.DeleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing IDs"})
			return
		}

		userID := apiauth.UserID(c)

		if err := deps.Transcriber.Delete(c.Request.Context(), userID, req.TranscriptionID, req.StoragePath); err != nil {
			log.Printf("[ERROR] Delete failed for record %s: %v", req.TranscriptionID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: userMessage(err)})
			return
		}

		c.JSON(http.StatusOK, types.DeleteResponse{Success: true})
	}
}

func userMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Internal Server Error"
}
