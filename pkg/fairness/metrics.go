package fairness

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics computes group-fairness metrics over a binary-label dataset.
type Metrics struct {
	ds *Dataset
}

func NewMetrics(ds *Dataset) *Metrics {
	return &Metrics{ds: ds}
}

// BaseRate is the fraction of favorable labels within one group. An empty
// group yields NaN.
func (m *Metrics) BaseRate(privileged bool) float64 {
	group := 0.0
	if privileged {
		group = 1.0
	}

	var favorable []float64
	for i, p := range m.ds.Protected {
		if p != group {
			continue
		}
		if m.ds.Labels[i] == m.ds.FavorableLabel {
			favorable = append(favorable, 1)
		} else {
			favorable = append(favorable, 0)
		}
	}

	if len(favorable) == 0 {
		return math.NaN()
	}
	return stat.Mean(favorable, nil)
}

// MeanDifference is the unprivileged base rate minus the privileged one,
// also known as statistical disparity.
func (m *Metrics) MeanDifference() float64 {
	return m.BaseRate(false) - m.BaseRate(true)
}

// DisparateImpact is the ratio of the unprivileged to the privileged base
// rate. A zero privileged rate propagates as Inf, or NaN when both are zero.
func (m *Metrics) DisparateImpact() float64 {
	return m.BaseRate(false) / m.BaseRate(true)
}
