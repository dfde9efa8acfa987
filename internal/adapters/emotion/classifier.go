package emotion

import (
	"context"
	"path/filepath"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/domain"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
)

// Artifact filenames inside the model directory. Both are produced by the
// offline training job and never written by this process.
const (
	vectorizerFile = "tfidf_vectorizer.json"
	classifierFile = "emotion_classifier.json"
)

// Classifier predicts a mood from raw text using the frozen vectorizer and
// linear model. It is immutable after Load and safe for concurrent requests.
type Classifier struct {
	vectorizer *Vectorizer
	model      *linearModel
}

// compile-time interface assertion
var _ ports.MoodClassifier = (*Classifier)(nil)

// Load reads both frozen artifacts from dir. Any missing or inconsistent
// artifact is an error; callers are expected to treat that as fatal.
func Load(dir string) (*Classifier, error) {
	vectorizer, err := loadVectorizer(filepath.Join(dir, vectorizerFile))
	if err != nil {
		return nil, err
	}

	model, err := loadModel(filepath.Join(dir, classifierFile), vectorizer.dim())
	if err != nil {
		return nil, err
	}

	return &Classifier{vectorizer: vectorizer, model: model}, nil
}

// Classify runs normalize -> vectorize -> predict and translates the raw
// label through the fixed ordinal mood mapping.
func (c *Classifier) Classify(_ context.Context, message string) (domain.Mood, error) {
	vec := c.vectorizer.Vectorize(Normalize(message))
	return domain.MoodFromLabel(c.model.predict(vec)), nil
}
