package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnote/study-api/internal/database"
	"github.com/voxnote/study-api/internal/models"
	"github.com/voxnote/study-api/internal/services/genai"
	"github.com/voxnote/study-api/internal/services/records"
	apperrors "github.com/voxnote/study-api/pkg/errors"
)

const (
	validFlashcardsJSON = `{"flashcards":[{"question":"What is Go?","answer":"A programming language"},{"question":"Who made it?","answer":"Google"}]}`
	validQuizJSON       = `{"quiz":[{"question":"What is Go?","options":["a language","a fruit","a planet","a color"],"correctAnswer":"a language","explanation":"Go is a programming language"}]}`
)

func newTestRecords(t *testing.T) records.Service {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(&models.TranscriptRecord{}))

	svc := records.NewService(records.NewRepository(db.DB))
	require.NoError(t, svc.CreateRecord(context.Background(), &models.TranscriptRecord{
		ID:      "rec-1",
		UserID:  "user-a",
		RawText: "the lecture transcript",
	}))
	return svc
}

// routingCompleter answers based on which kind's prompt it receives
func routingCompleter(summary, flashcards, quiz string, failKinds ...string) *genai.MockCompleter {
	failed := make(map[string]bool)
	for _, k := range failKinds {
		failed[k] = true
	}

	return &genai.MockCompleter{
		CompleteFunc: func(ctx context.Context, system string, turns []genai.Message, opts genai.Options) (string, error) {
			switch {
			case strings.HasPrefix(system, "Summarize"):
				if failed["summary"] {
					return "", errors.New("upstream unavailable")
				}
				return summary, nil
			case strings.Contains(system, "flashcards"):
				if failed["flashcards"] {
					return "", errors.New("upstream unavailable")
				}
				return flashcards, nil
			default:
				if failed["quiz"] {
					return "", errors.New("upstream unavailable")
				}
				return quiz, nil
			}
		},
	}
}

func TestGenerateAllKinds(t *testing.T) {
	recordSvc := newTestRecords(t)
	completer := routingCompleter("- a bullet point", validFlashcardsJSON, validQuizJSON)
	svc := NewService(completer, recordSvc)

	result, err := svc.Generate(context.Background(), "user-a", "rec-1", "the lecture transcript", []models.ArtifactKind{models.KindAll})
	require.NoError(t, err)

	assert.Equal(t, "- a bullet point", result.Summary)
	assert.Len(t, result.Flashcards, 2)
	assert.Len(t, result.Quiz, 1)
	assert.Empty(t, result.Errors)

	// All three kinds merged onto the record
	record, err := recordSvc.GetRecord(context.Background(), "user-a", "rec-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "- a bullet point", record.Summary)
	assert.Len(t, record.Flashcards, 2)
	assert.Len(t, record.Quiz, 1)
}

func TestGeneratePartialFailure(t *testing.T) {
	recordSvc := newTestRecords(t)
	completer := routingCompleter("- a bullet point", validFlashcardsJSON, validQuizJSON, "quiz")
	svc := NewService(completer, recordSvc)

	result, err := svc.Generate(context.Background(), "user-a", "rec-1", "the lecture transcript", []models.ArtifactKind{models.KindAll})
	require.NoError(t, err, "partial failure is not an overall failure")

	assert.Equal(t, "- a bullet point", result.Summary)
	assert.Len(t, result.Flashcards, 2)
	assert.Empty(t, result.Quiz)
	assert.True(t, result.Failed(models.KindQuiz))
	assert.False(t, result.Failed(models.KindSummary))
	assert.False(t, result.Failed(models.KindFlashcards))

	record, err := recordSvc.GetRecord(context.Background(), "user-a", "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "- a bullet point", record.Summary)
	assert.Len(t, record.Flashcards, 2)
	assert.Empty(t, record.Quiz, "failed kind must not be persisted")
}

func TestGenerateAllFail(t *testing.T) {
	recordSvc := newTestRecords(t)
	completer := routingCompleter("", "", "", "summary", "flashcards", "quiz")
	svc := NewService(completer, recordSvc)

	result, err := svc.Generate(context.Background(), "user-a", "rec-1", "text", []models.ArtifactKind{models.KindAll})
	require.Error(t, err)
	require.NotNil(t, result, "per-kind errors accompany the overall failure")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeProvider))
	assert.Len(t, result.Errors, 3)
}

func TestGenerateLeavesOtherKindsUntouched(t *testing.T) {
	recordSvc := newTestRecords(t)
	ctx := context.Background()

	require.NoError(t, recordSvc.SaveArtifact(ctx, "user-a", "rec-1", models.KindSummary, "- existing summary"))
	require.NoError(t, recordSvc.SaveArtifact(ctx, "user-a", "rec-1", models.KindQuiz, models.QuizQuestionList{
		{Question: "old?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", Explanation: "old"},
	}))

	completer := routingCompleter("", validFlashcardsJSON, "")
	svc := NewService(completer, recordSvc)

	_, err := svc.Generate(ctx, "user-a", "rec-1", "text", []models.ArtifactKind{models.KindFlashcards})
	require.NoError(t, err)

	record, err := recordSvc.GetRecord(ctx, "user-a", "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "- existing summary", record.Summary)
	assert.Len(t, record.Quiz, 1)
	assert.Equal(t, "old?", record.Quiz[0].Question)
	assert.Len(t, record.Flashcards, 2)
}

func TestGenerateMalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.ArtifactKind
		payload string
	}{
		{"flashcards not json", models.KindFlashcards, "sorry, I cannot do that"},
		{"flashcards missing key", models.KindFlashcards, `{"cards":[]}`},
		{"flashcards empty array", models.KindFlashcards, `{"flashcards":[]}`},
		{"flashcards blank question", models.KindFlashcards, `{"flashcards":[{"question":"","answer":"a"}]}`},
		{"quiz not json", models.KindQuiz, "{broken"},
		{"quiz missing key", models.KindQuiz, `{"questions":[]}`},
		{"quiz three options", models.KindQuiz, `{"quiz":[{"question":"q","options":["a","b","c"],"correctAnswer":"a","explanation":"e"}]}`},
		{"quiz answer not in options", models.KindQuiz, `{"quiz":[{"question":"q","options":["a","b","c","d"],"correctAnswer":"z","explanation":"e"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recordSvc := newTestRecords(t)
			completer := &genai.MockCompleter{Response: tt.payload}
			svc := NewService(completer, recordSvc)

			result, err := svc.Generate(context.Background(), "user-a", "rec-1", "text", []models.ArtifactKind{tt.kind})
			require.Error(t, err, "single requested kind failing means the whole request failed")
			require.NotNil(t, result)
			assert.True(t, result.Failed(tt.kind))

			// Nothing persisted
			record, getErr := recordSvc.GetRecord(context.Background(), "user-a", "rec-1")
			require.NoError(t, getErr)
			assert.Empty(t, record.Flashcards)
			assert.Empty(t, record.Quiz)
		})
	}
}

func TestGenerateUnknownRecord(t *testing.T) {
	recordSvc := newTestRecords(t)
	completer := routingCompleter("- summary", "", "")
	svc := NewService(completer, recordSvc)

	result, err := svc.Generate(context.Background(), "user-a", "rec-404", "text", []models.ArtifactKind{models.KindSummary})
	require.Error(t, err)
	assert.Contains(t, result.Errors, models.KindSummary)
}

func TestExpandKinds(t *testing.T) {
	tests := []struct {
		name    string
		input   []models.ArtifactKind
		want    int
		wantErr bool
	}{
		{"single kind", []models.ArtifactKind{models.KindSummary}, 1, false},
		{"all expands to three", []models.ArtifactKind{models.KindAll}, 3, false},
		{"duplicates collapse", []models.ArtifactKind{models.KindQuiz, models.KindQuiz}, 1, false},
		{"all plus explicit", []models.ArtifactKind{models.KindSummary, models.KindAll}, 3, false},
		{"empty", nil, 0, true},
		{"unknown kind", []models.ArtifactKind{"poem"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded, err := expandKinds(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, expanded, tt.want)
		})
	}

	t.Run("all never reaches the provider unexpanded", func(t *testing.T) {
		expanded, err := expandKinds([]models.ArtifactKind{models.KindAll})
		require.NoError(t, err)
		assert.ElementsMatch(t, models.AllKinds(), expanded)
		assert.NotContains(t, expanded, models.KindAll)
	})
}

func TestGenerateJSONModeRequested(t *testing.T) {
	recordSvc := newTestRecords(t)
	completer := &genai.MockCompleter{Response: validQuizJSON}
	svc := NewService(completer, recordSvc)

	_, err := svc.Generate(context.Background(), "user-a", "rec-1", "text", []models.ArtifactKind{models.KindQuiz})
	require.NoError(t, err)

	require.Len(t, completer.Calls, 1)
	assert.True(t, completer.Calls[0].Opts.JSONMode)
	assert.InDelta(t, 0.7, completer.Calls[0].Opts.Temperature, 0.001)
}
