package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/voxnote/study-api/internal/database"
	"github.com/voxnote/study-api/internal/models"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.AutoMigrate(&models.TranscriptRecord{}))

	return NewService(NewRepository(db.DB))
}

func seedRecord(t *testing.T, svc Service, userID, recordID string) *models.TranscriptRecord {
	t.Helper()

	record := &models.TranscriptRecord{
		ID:         recordID,
		UserID:     userID,
		SourcePath: "users/" + userID + "/uploads/lecture.mp3",
		RawText:    "the raw transcript",
	}
	require.NoError(t, svc.CreateRecord(context.Background(), record))
	return record
}

func TestCreateAndGetRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedRecord(t, svc, "user-a", "rec-1")

	t.Run("owner can read", func(t *testing.T) {
		record, err := svc.GetRecord(ctx, "user-a", "rec-1")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "the raw transcript", record.RawText)
	})

	t.Run("other user cannot read", func(t *testing.T) {
		record, err := svc.GetRecord(ctx, "user-b", "rec-1")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("missing id", func(t *testing.T) {
		record, err := svc.GetRecord(ctx, "user-a", "rec-404")
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}

func TestListRecords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedRecord(t, svc, "user-a", "rec-1")
	seedRecord(t, svc, "user-a", "rec-2")
	seedRecord(t, svc, "user-b", "rec-3")

	records, err := svc.ListRecords(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = svc.ListRecords(ctx, "user-b")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSaveArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces only the targeted kind", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		require.NoError(t, svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindSummary, "- first point"))
		require.NoError(t, svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindQuiz, models.QuizQuestionList{
			{Question: "Q?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", Explanation: "because"},
		}))

		// Regenerating flashcards must leave summary and quiz untouched
		require.NoError(t, svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindFlashcards, models.FlashcardList{
			{Question: "Q1", Answer: "A1"},
		}))

		record, err := svc.GetRecord(ctx, "user-a", "rec-1")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "- first point", record.Summary)
		assert.Len(t, record.Quiz, 1)
		assert.Len(t, record.Flashcards, 1)
	})

	t.Run("regeneration replaces, never appends", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		require.NoError(t, svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindFlashcards, models.FlashcardList{
			{Question: "old-1", Answer: "a"},
			{Question: "old-2", Answer: "b"},
		}))
		require.NoError(t, svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindFlashcards, models.FlashcardList{
			{Question: "new-1", Answer: "c"},
		}))

		record, err := svc.GetRecord(ctx, "user-a", "rec-1")
		require.NoError(t, err)
		require.Len(t, record.Flashcards, 1)
		assert.Equal(t, "new-1", record.Flashcards[0].Question)
	})

	t.Run("wrong owner", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		err := svc.SaveArtifact(ctx, "user-b", "rec-1", models.KindSummary, "stolen")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("mistyped value", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		err := svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindSummary, 42)
		assert.Error(t, err)
	})
}

func TestDeleteRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seedRecord(t, svc, "user-a", "rec-1")

	require.NoError(t, svc.DeleteRecord(ctx, "user-a", "rec-1"))

	// Second delete reports not found
	err := svc.DeleteRecord(ctx, "user-a", "rec-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWatch(t *testing.T) {
	ctx := context.Background()

	t.Run("initial snapshot then updates", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		ch, stop, err := svc.Watch(watchCtx, "user-a", "rec-1")
		require.NoError(t, err)
		defer stop()

		first := <-ch
		assert.False(t, first.Deleted)
		assert.Equal(t, "the raw transcript", first.Record.RawText)
		assert.Empty(t, first.Record.Summary)

		require.NoError(t, svc.SaveArtifact(ctx, "user-a", "rec-1", models.KindSummary, "- point"))

		select {
		case next := <-ch:
			assert.Equal(t, "- point", next.Record.Summary)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for snapshot")
		}
	})

	t.Run("watch of missing record", func(t *testing.T) {
		svc := newTestService(t)

		_, _, err := svc.Watch(ctx, "user-a", "rec-404")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete marks the stream before closing", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		ch, stop, err := svc.Watch(ctx, "user-a", "rec-1")
		require.NoError(t, err)
		defer stop()

		<-ch // initial snapshot

		require.NoError(t, svc.DeleteRecord(ctx, "user-a", "rec-1"))

		select {
		case ev, open := <-ch:
			require.True(t, open, "deletion marker must precede the close")
			assert.True(t, ev.Deleted)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for deletion marker")
		}

		select {
		case _, open := <-ch:
			assert.False(t, open, "channel should be closed after the marker")
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for channel close")
		}
	})

	t.Run("cancel closes without a deletion marker", func(t *testing.T) {
		svc := newTestService(t)
		seedRecord(t, svc, "user-a", "rec-1")

		ch, stop, err := svc.Watch(ctx, "user-a", "rec-1")
		require.NoError(t, err)

		<-ch // initial snapshot
		stop()

		select {
		case ev, open := <-ch:
			assert.False(t, open, "cancel should close the channel")
			assert.False(t, ev.Deleted, "the record still exists")
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for channel close")
		}

		record, err := svc.GetRecord(ctx, "user-a", "rec-1")
		require.NoError(t, err)
		assert.NotNil(t, record)
	})
}
