package emotion

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Vectorizer applies the TF-IDF transform frozen at training time: term
// counts weighted by the stored IDF values, L2-normalized. Terms outside the
// frozen vocabulary are ignored. Read-only after load, safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

type vectorizerArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

func loadVectorizer(path string) (*Vectorizer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("emotion: read vectorizer artifact: %w", err)
	}

	var artifact vectorizerArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("emotion: decode vectorizer artifact: %w", err)
	}

	if len(artifact.Vocabulary) == 0 {
		return nil, fmt.Errorf("emotion: vectorizer artifact %s has an empty vocabulary", path)
	}
	if len(artifact.IDF) != len(artifact.Vocabulary) {
		return nil, fmt.Errorf("emotion: vectorizer artifact %s: %d idf weights for %d vocabulary terms",
			path, len(artifact.IDF), len(artifact.Vocabulary))
	}
	for term, idx := range artifact.Vocabulary {
		if idx < 0 || idx >= len(artifact.IDF) {
			return nil, fmt.Errorf("emotion: vectorizer artifact %s: term %q has out-of-range index %d", path, term, idx)
		}
	}

	return &Vectorizer{vocabulary: artifact.Vocabulary, idf: artifact.IDF}, nil
}

// dim is the width of produced feature vectors.
func (v *Vectorizer) dim() int {
	return len(v.idf)
}

// Vectorize maps normalized text to a sparse feature vector keyed by
// vocabulary column index. Deterministic for a given artifact.
func (v *Vectorizer) Vectorize(normalized string) map[int]float64 {
	vec := make(map[int]float64)
	for _, term := range strings.Fields(normalized) {
		idx, ok := v.vocabulary[term]
		if !ok {
			continue
		}
		vec[idx] += v.idf[idx]
	}

	var sumSquares float64
	for _, val := range vec {
		sumSquares += val * val
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for idx, val := range vec {
			vec[idx] = val / norm
		}
	}

	return vec
}
