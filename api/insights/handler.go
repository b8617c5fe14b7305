package insights

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voxnote/study-api/api/auth"
	"github.com/voxnote/study-api/api/types"
	"github.com/voxnote/study-api/internal/models"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// Post generates study artifacts for a transcript
// @Summary      Generate study artifacts
// @Description  Generate a summary, flashcards and/or a quiz from the given transcript text
// @Description  and merge the results onto the record. Kinds fail independently: a partial
// @Description  failure still returns 200 with per-kind errors; only a fully failed request
// @Description  returns a non-2xx status.
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.InsightsRequest true "Record id, transcript text and requested kind"
// @Success      200 {object} insights.Result "Per-kind values, plus per-kind errors on partial failure"
// @Failure      400 {object} types.ErrorResponse "Missing fields or unknown kind"
// @Failure      502 {object} insights.Result "Every requested kind failed"
// @Router       /api/v1/ai/insights [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.InsightsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing required fields"})
			return
		}

		userID := apiauth.UserID(c)

		result, err := deps.InsightService.Generate(c.Request.Context(), userID, req.TranscriptionID, req.Text,
			[]models.ArtifactKind{req.Type})
		if err != nil {
			if result != nil && len(result.Errors) > 0 {
				// Every requested kind failed; the per-kind reasons are
				// still worth returning
				log.Printf("[ERROR] All insight kinds failed for record %s: %v", req.TranscriptionID, err)
				c.JSON(apperrors.GetHTTPCode(err), result)
				return
			}
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: userMessage(err)})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func userMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Internal Server Error"
}
