package emotion

import (
	"encoding/json"
	"fmt"
	"os"
)

// linearModel holds the frozen multinomial linear classifier: one weight row
// and one intercept per class, in training label order.
type linearModel struct {
	coef      [][]float64
	intercept []float64
}

type classifierArtifact struct {
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

func loadModel(path string, dim int) (*linearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("emotion: read classifier artifact: %w", err)
	}

	var artifact classifierArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("emotion: decode classifier artifact: %w", err)
	}

	if len(artifact.Coef) == 0 {
		return nil, fmt.Errorf("emotion: classifier artifact %s has no classes", path)
	}
	if len(artifact.Intercept) != len(artifact.Coef) {
		return nil, fmt.Errorf("emotion: classifier artifact %s: %d intercepts for %d classes",
			path, len(artifact.Intercept), len(artifact.Coef))
	}
	for class, row := range artifact.Coef {
		if len(row) != dim {
			return nil, fmt.Errorf("emotion: classifier artifact %s: class %d has %d weights, vectorizer has %d features",
				path, class, len(row), dim)
		}
	}

	return &linearModel{coef: artifact.Coef, intercept: artifact.Intercept}, nil
}

// predict scores the sparse feature vector against every class and returns
// the label with the highest score. Ties resolve to the lowest label.
func (m *linearModel) predict(vec map[int]float64) int {
	best := 0
	bestScore := 0.0
	for class, row := range m.coef {
		score := m.intercept[class]
		for idx, val := range vec {
			score += row[idx] * val
		}
		if class == 0 || score > bestScore {
			best = class
			bestScore = score
		}
	}
	return best
}
