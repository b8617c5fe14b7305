package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactKindValid(t *testing.T) {
	tests := []struct {
		kind ArtifactKind
		want bool
	}{
		{KindSummary, true},
		{KindFlashcards, true},
		{KindQuiz, true},
		{KindAll, false},
		{ArtifactKind("poem"), false},
		{ArtifactKind(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Valid())
		})
	}
}

func TestAllKinds(t *testing.T) {
	kinds := AllKinds()
	assert.Len(t, kinds, 3)
	for _, k := range kinds {
		assert.True(t, k.Valid())
	}
}

func TestFlashcardListColumn(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := FlashcardList{{Question: "q1", Answer: "a1"}}

		value, err := original.Value()
		require.NoError(t, err)

		var scanned FlashcardList
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, original, scanned)
	})

	t.Run("nil stores as NULL", func(t *testing.T) {
		var empty FlashcardList
		value, err := empty.Value()
		require.NoError(t, err)
		assert.Nil(t, value)

		var scanned FlashcardList
		require.NoError(t, scanned.Scan(nil))
		assert.Nil(t, scanned)
	})

	t.Run("scans sqlite string columns", func(t *testing.T) {
		var scanned FlashcardList
		require.NoError(t, scanned.Scan(`[{"question":"q","answer":"a"}]`))
		require.Len(t, scanned, 1)
		assert.Equal(t, "q", scanned[0].Question)
	})

	t.Run("rejects unexpected column types", func(t *testing.T) {
		var scanned FlashcardList
		assert.Error(t, scanned.Scan(42))
	})
}

func TestQuizQuestionListColumn(t *testing.T) {
	original := QuizQuestionList{{
		Question:      "q1",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "b",
		Explanation:   "because",
	}}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned QuizQuestionList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}
