package bias

import (
	"math"
	"strings"
)

// Score is one raw metric value before formatting.
type Score struct {
	Name  string
	Value float64
}

// Result is one formatted metric row. Score is nil when the raw value was
// NaN or infinite.
type Result struct {
	MetricName       string   `json:"metric_name"`
	Score            *float64 `json:"score"`
	Threshold        float64  `json:"threshold"`
	Status           string   `json:"status"`
	DemographicGroup string   `json:"demographic_group"`
}

var thresholds = map[string]float64{
	"statistical_disparity":   0.1,
	"disparate_impact":        0.8,
	"equal_opportunity":       0.1,
	"average_odds_difference": 0.1,
}

const defaultThreshold = 0.1

// FormatResults attaches the fixed threshold and pass/fail status to each
// score, preserving order.
func FormatResults(scores []Score) []Result {
	results := make([]Result, 0, len(scores))
	for _, s := range scores {
		threshold, ok := thresholds[s.Name]
		if !ok {
			threshold = defaultThreshold
		}
		results = append(results, Result{
			MetricName:       displayName(s.Name),
			Score:            safeFloat(s.Value),
			Threshold:        threshold,
			Status:           metricStatus(s.Name, s.Value),
			DemographicGroup: "overall",
		})
	}
	return results
}

// metricStatus applies the pass/fail rule. Disparate impact passes inside
// the two-sided four-fifths band [0.8, 1.2]; every other metric passes when
// its magnitude stays under the threshold. Unavailable scores fail.
func metricStatus(name string, score float64) string {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "fail"
	}
	if name == "disparate_impact" {
		if score >= 0.8 && score <= 1.2 {
			return "pass"
		}
		return "fail"
	}

	threshold, ok := thresholds[name]
	if !ok {
		threshold = defaultThreshold
	}
	if math.Abs(score) < threshold {
		return "pass"
	}
	return "fail"
}

// safeFloat replaces NaN and infinities with nil so they serialize as null
// instead of breaking the JSON encoder.
func safeFloat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
