package bias

import (
	"fmt"

	"frontierwatch/pkg/fairness"
	"frontierwatch/pkg/tabular"
)

// Analyze runs the full pipeline over raw row maps. Failures caused by the
// input surface as *ValidationError; anything else is an internal fault.
func Analyze(records []map[string]any, protectedAttrs []string, mappings map[string]GroupMapping) ([]Result, error) {
	if len(records) == 0 {
		return nil, Validationf("empty dataset provided")
	}

	frame, err := tabular.FromRecords(records)
	if err != nil {
		return nil, Validationf("error converting data to frame: %v", err)
	}

	return AnalyzeFrame(frame, protectedAttrs, mappings)
}

// AnalyzeFrame is the shared pipeline behind every entry point: validate
// shape, detect the label column, preprocess, build the labeled dataset and
// compute the formatted metrics. Grouping uses the first protected attribute.
func AnalyzeFrame(f *tabular.Frame, protectedAttrs []string, mappings map[string]GroupMapping) ([]Result, error) {
	if len(protectedAttrs) == 0 {
		return nil, Validationf("no protected attributes specified")
	}
	if f.Len() == 0 {
		return nil, Validationf("empty dataset provided")
	}
	if len(f.Columns()) < 2 {
		return nil, Validationf("dataset must contain at least two columns")
	}

	labelCol, err := FindLabelColumn(f)
	if err != nil {
		return nil, err
	}

	attr := protectedAttrs[0]
	if !f.Has(attr) {
		return nil, Validationf("protected attribute %q not found in data columns: %v", attr, f.Columns())
	}

	if err := Preprocess(f, protectedAttrs, mappings); err != nil {
		return nil, err
	}

	ds, err := buildDataset(f, labelCol, attr)
	if err != nil {
		return nil, err
	}

	metrics := fairness.NewMetrics(ds)
	scores := []Score{
		{Name: "statistical_disparity", Value: metrics.MeanDifference()},
		{Name: "disparate_impact", Value: metrics.DisparateImpact()},
	}

	return FormatResults(scores), nil
}

func buildDataset(f *tabular.Frame, labelCol, attr string) (*fairness.Dataset, error) {
	labels := numericColumn(f, labelCol)
	protected := numericColumn(f, attr)

	features := make([][]float64, f.Len())
	for i := range features {
		features[i] = make([]float64, 0, len(f.Columns())-1)
	}
	for _, col := range f.Columns() {
		if col == labelCol {
			continue
		}
		for i, v := range f.Column(col) {
			features[i] = append(features[i], v.Num)
		}
	}

	ds, err := fairness.NewDataset(features, labels, protected)
	if err != nil {
		return nil, fmt.Errorf("create dataset: %w", err)
	}
	return ds, nil
}

func numericColumn(f *tabular.Frame, col string) []float64 {
	vals := f.Column(col)
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v.Num
	}
	return out
}
