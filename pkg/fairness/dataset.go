package fairness

import (
	"errors"
	"fmt"
)

// Dataset is a binary-label dataset: per-row feature vectors, one observed
// label, and a protected attribute already encoded as 1.0 (privileged) or
// 0.0 (unprivileged).
type Dataset struct {
	Features       [][]float64
	Labels         []float64
	Protected      []float64
	FavorableLabel float64
}

func NewDataset(features [][]float64, labels, protected []float64) (*Dataset, error) {
	if len(labels) == 0 {
		return nil, errors.New("dataset has no rows")
	}
	if len(protected) != len(labels) {
		return nil, fmt.Errorf("got %d protected values for %d labels", len(protected), len(labels))
	}
	if features != nil && len(features) != len(labels) {
		return nil, fmt.Errorf("got %d feature rows for %d labels", len(features), len(labels))
	}

	for i, p := range protected {
		if p != 0.0 && p != 1.0 {
			return nil, fmt.Errorf("protected attribute must be 0.0 or 1.0, row %d has %v", i, p)
		}
	}

	return &Dataset{
		Features:       features,
		Labels:         labels,
		Protected:      protected,
		FavorableLabel: 1.0,
	}, nil
}
