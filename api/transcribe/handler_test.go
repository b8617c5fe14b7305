package transcribe

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
	"github.com/voxnote/study-api/internal/models"
	authService "github.com/voxnote/study-api/internal/services/auth"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

const devToken = "test-dev-token"

// stubPipeline implements the pipeline service with canned results
type stubPipeline struct {
	record *models.TranscriptRecord
	err    error
}

func (s *stubPipeline) Transcribe(ctx context.Context, userID, sourcePath string) (*models.TranscriptRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func (s *stubPipeline) Delete(ctx context.Context, userID, recordID, sourcePath string) error {
	return s.err
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := apiauth.NewHandler(authService.NewDevService(devToken))
	v1 := router.Group("/api/v1")
	v1.Use(handler.AuthMiddleware())
	RegisterRoutes(v1, deps)

	return router
}

func doPost(router *gin.Engine, body string, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/transcribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestPost(t *testing.T) {
	t.Run("successful transcription", func(t *testing.T) {
		deps := &types.Dependencies{Transcriber: &stubPipeline{
			record: &models.TranscriptRecord{
				ID:            "rec-1",
				RawText:       "raw words",
				FormattedText: "## raw words",
			},
		}}
		router := setupRouter(deps)

		w := doPost(router, `{"storagePath":"users/dev-user-001/uploads/a.mp3"}`, devToken)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp types.TranscribeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "rec-1", resp.ID)
		assert.Equal(t, "raw words", resp.Text)
		assert.Equal(t, "## raw words", resp.Markdown)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		router := setupRouter(&types.Dependencies{Transcriber: &stubPipeline{}})

		w := doPost(router, `{"storagePath":"users/dev-user-001/uploads/a.mp3"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing storage path", func(t *testing.T) {
		router := setupRouter(&types.Dependencies{Transcriber: &stubPipeline{}})

		w := doPost(router, `{}`, devToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden path", func(t *testing.T) {
		deps := &types.Dependencies{Transcriber: &stubPipeline{
			err: apperrors.Forbidden("you do not have access to this file"),
		}}
		router := setupRouter(deps)

		w := doPost(router, `{"storagePath":"users/someone-else/uploads/a.mp3"}`, devToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "forbidden")
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		deps := &types.Dependencies{Transcriber: &stubPipeline{
			err: apperrors.TranscriptionError(assert.AnError),
		}}
		router := setupRouter(deps)

		w := doPost(router, `{"storagePath":"users/dev-user-001/uploads/a.mp3"}`, devToken)
		assert.Equal(t, http.StatusBadGateway, w.Code)

		// Provider-internal error text must not leak
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotContains(t, resp.Error, assert.AnError.Error())
	})
}
