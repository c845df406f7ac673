package bias

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestAnalyzeComputesMetrics(t *testing.T) {
	// privileged "A": labels 1,1 -> rate 1.0; unprivileged "B": labels 1,0 -> rate 0.5
	records := []map[string]any{
		{"gender": "A", "label": 1.0},
		{"gender": "A", "label": 1.0},
		{"gender": "B", "label": 1.0},
		{"gender": "B", "label": 0.0},
	}

	results, err := Analyze(records, []string{"gender"}, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(results))

	disparity := results[0]
	assert.Equal(t, "Statistical Disparity", disparity.MetricName)
	assert.Equal(t, -0.5, *disparity.Score)
	assert.Equal(t, "fail", disparity.Status)

	impact := results[1]
	assert.Equal(t, "Disparate Impact", impact.MetricName)
	assert.Equal(t, 0.5, *impact.Score)
	assert.Equal(t, "fail", impact.Status)
}

func TestAnalyzeBalancedDatasetPasses(t *testing.T) {
	records := []map[string]any{
		{"gender": "A", "label": 1.0},
		{"gender": "A", "label": 0.0},
		{"gender": "B", "label": 1.0},
		{"gender": "B", "label": 0.0},
	}

	results, err := Analyze(records, []string{"gender"}, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, "pass", results[0].Status)
	assert.Equal(t, "pass", results[1].Status)
	assert.Equal(t, 1.0, *results[1].Score)
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	_, err := Analyze(nil, []string{"gender"}, nil)
	assert.NotEqual(t, nil, err)

	_, ok := err.(*ValidationError)
	assert.Equal(t, true, ok)
}

func TestAnalyzeNoProtectedAttributes(t *testing.T) {
	_, err := Analyze([]map[string]any{{"gender": "A", "label": 1.0}}, nil, nil)
	assert.NotEqual(t, nil, err)
}

func TestAnalyzeMissingLabelColumn(t *testing.T) {
	records := []map[string]any{
		{"gender": "A", "outcome": 1.0},
	}

	_, err := Analyze(records, []string{"gender"}, nil)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "label"))
}

func TestAnalyzeUnknownProtectedAttribute(t *testing.T) {
	records := []map[string]any{
		{"gender": "A", "label": 1.0},
		{"gender": "B", "label": 0.0},
	}

	_, err := Analyze(records, []string{"ethnicity"}, nil)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "ethnicity"))
}

func TestAnalyzeSingleColumnDataset(t *testing.T) {
	_, err := Analyze([]map[string]any{{"label": 1.0}}, []string{"label"}, nil)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "two columns"))
}

func TestAnalyzeExplicitMappingEndToEnd(t *testing.T) {
	records := []map[string]any{
		{"race": "A", "label": 1.0},
		{"race": "B", "label": 0.0},
		{"race": "C", "label": 1.0},
		{"race": "D", "label": 1.0},
	}
	mappings := map[string]GroupMapping{
		"race": {Privileged: GroupValues{"A"}, Unprivileged: GroupValues{"B", "C"}},
	}

	// D rows dropped: priv rate 1.0, unpriv rate 0.5
	results, err := Analyze(records, []string{"race"}, mappings)

	assert.Equal(t, nil, err)
	assert.Equal(t, -0.5, *results[0].Score)
	assert.Equal(t, 0.5, *results[1].Score)
}
