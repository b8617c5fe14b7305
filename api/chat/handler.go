package chat

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apiauth "github.com/voxnote/study-api/api/auth"
	"github.com/voxnote/study-api/api/types"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

// Post answers a question about a transcript
// @Summary      Chat about a transcript
// @Description  Stateless, context-bound conversation: the assistant answers only from the
// @Description  supplied transcript context and declines anything outside it. Callers resend
// @Description  the full turn history on each request.
// @Tags         ai
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.ChatRequest true "Turn history and transcript context"
// @Success      200 {object} types.ChatResponse "Assistant reply"
// @Failure      400 {object} types.ErrorResponse "Missing turns or context"
// @Failure      502 {object} types.ErrorResponse "Provider failure"
// @Router       /api/v1/ai/chat [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing required fields: messages, contextText"})
			return
		}

		reply, err := deps.ChatService.Reply(c.Request.Context(), req.Messages, req.ContextText)
		if err != nil {
			log.Printf("[ERROR] Chat reply failed for user %s: %v", apiauth.UserID(c), err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: userMessage(err)})
			return
		}

		c.JSON(http.StatusOK, types.ChatResponse{Message: reply})
	}
}

func userMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Internal Server Error"
}
