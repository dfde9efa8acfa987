package emotion

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
)

// writeArtifacts drops a small but consistent artifact pair into dir.
// Vocabulary terms are post-normalization stems, as the training job emits.
func writeArtifacts(t *testing.T, dir string, vectorizer, classifier any) {
	t.Helper()

	vb, err := json.Marshal(vectorizer)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tfidf_vectorizer.json"), vb, 0o644))

	cb, err := json.Marshal(classifier)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emotion_classifier.json"), cb, 0o644))
}

func testArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	vectorizer := vectorizerArtifact{
		Vocabulary: map[string]int{"happi": 0, "sad": 1, "terribl": 2},
		IDF:        []float64{1.0, 1.5, 2.0},
	}
	// joy fires on "happi", sadness on "sad"/"terribl"; biased
	// intercepts make joy win on an all-zero vector.
	classifier := classifierArtifact{
		Coef: [][]float64{
			{0, 3, 3},
			{3, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		},
		Intercept: []float64{0.1, 0.3, 0, 0, 0, 0},
	}

	writeArtifacts(t, dir, vectorizer, classifier)
	return dir
}

func TestLoadAndClassify(t *testing.T) {
	clf, err := Load(testArtifacts(t))
	require.NoError(t, err)

	tests := []struct {
		name    string
		message string
		want    domain.Mood
	}{
		{"happy message", "I feel so happy today", domain.MoodJoy},
		{"terrible message", "everything is terrible", domain.MoodSadness},
		{"sad message", "so sad right now", domain.MoodSadness},
		{"out-of-vocabulary text uses intercepts", "completely unrelated words", domain.MoodJoy},
		{"empty message uses intercepts", "", domain.MoodJoy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mood, err := clf.Classify(context.Background(), tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mood)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	clf, err := Load(testArtifacts(t))
	require.NoError(t, err)

	first, err := clf.Classify(context.Background(), "a terribly sad and happy mix")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := clf.Classify(context.Background(), "a terribly sad and happy mix")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestVectorizeTFIDF(t *testing.T) {
	dir := testArtifacts(t)
	vec, err := loadVectorizer(filepath.Join(dir, "tfidf_vectorizer.json"))
	require.NoError(t, err)

	// "happi happi sad": tf(happi)=2, tf(sad)=1 -> raw [2*1.0, 1*1.5],
	// then L2 normalization.
	got := vec.Vectorize("happi happi sad")
	norm := math.Sqrt(2.0*2.0 + 1.5*1.5)
	assert.Len(t, got, 2)
	assert.InDelta(t, 2.0/norm, got[0], 1e-12)
	assert.InDelta(t, 1.5/norm, got[1], 1e-12)

	// out-of-vocabulary terms are ignored
	assert.Empty(t, vec.Vectorize("unknown terms only"))
	assert.Empty(t, vec.Vectorize(""))
}

func TestLoadRejectsBrokenArtifacts(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("idf length mismatch", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir,
			vectorizerArtifact{Vocabulary: map[string]int{"a": 0, "b": 1}, IDF: []float64{1.0}},
			classifierArtifact{Coef: [][]float64{{0, 0}}, Intercept: []float64{0}},
		)
		_, err := Load(dir)
		assert.Error(t, err)
	})

	t.Run("vocabulary index out of range", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir,
			vectorizerArtifact{Vocabulary: map[string]int{"a": 5}, IDF: []float64{1.0}},
			classifierArtifact{Coef: [][]float64{{0}}, Intercept: []float64{0}},
		)
		_, err := Load(dir)
		assert.Error(t, err)
	})

	t.Run("coef width mismatch", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir,
			vectorizerArtifact{Vocabulary: map[string]int{"a": 0}, IDF: []float64{1.0}},
			classifierArtifact{Coef: [][]float64{{0, 1, 2}}, Intercept: []float64{0}},
		)
		_, err := Load(dir)
		assert.Error(t, err)
	})

	t.Run("intercept count mismatch", func(t *testing.T) {
		dir := t.TempDir()
		writeArtifacts(t, dir,
			vectorizerArtifact{Vocabulary: map[string]int{"a": 0}, IDF: []float64{1.0}},
			classifierArtifact{Coef: [][]float64{{0}, {1}}, Intercept: []float64{0}},
		)
		_, err := Load(dir)
		assert.Error(t, err)
	})
}
