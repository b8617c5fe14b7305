package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiauth "github.com/voxnote/study-api/api/auth"
	"github.com/voxnote/study-api/api/types"
	authService "github.com/voxnote/study-api/internal/services/auth"
	"github.com/voxnote/study-api/internal/services/genai"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

const devToken = "test-dev-token"

// stubAssistant returns a canned reply
type stubAssistant struct {
	reply string
	err   error
}

func (s *stubAssistant) Reply(ctx context.Context, turns []genai.Message, contextText string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := apiauth.NewHandler(authService.NewDevService(devToken))
	ai := router.Group("/api/v1/ai")
	ai.Use(handler.AuthMiddleware())
	RegisterRoutes(ai, deps)

	return router
}

func doPost(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/ai/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+devToken)
	router.ServeHTTP(w, req)
	return w
}

func TestPost(t *testing.T) {
	t.Run("reply surfaced verbatim", func(t *testing.T) {
		decline := "I can only discuss the content of the transcription."
		deps := &types.Dependencies{ChatService: &stubAssistant{reply: decline}}
		router := setupRouter(deps)

		w := doPost(router, `{"messages":[{"role":"user","content":"hello"}],"contextText":"a transcript"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, decline, resp.Message)
	})

	t.Run("missing context", func(t *testing.T) {
		router := setupRouter(&types.Dependencies{ChatService: &stubAssistant{}})

		w := doPost(router, `{"messages":[{"role":"user","content":"hello"}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		deps := &types.Dependencies{ChatService: &stubAssistant{
			err: apperrors.ProviderError("generative-text", assert.AnError),
		}}
		router := setupRouter(deps)

		w := doPost(router, `{"messages":[{"role":"user","content":"hello"}],"contextText":"a transcript"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
