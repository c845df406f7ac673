package bias

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"frontierwatch/pkg/tabular"
)

var labelCandidates = []string{"label", "true_label", "target"}

// FindLabelColumn returns the first recognized label column.
func FindLabelColumn(f *tabular.Frame) (string, error) {
	for _, col := range labelCandidates {
		if f.Has(col) {
			return col, nil
		}
	}
	return "", Validationf("no label column found, expected one of: %v", labelCandidates)
}

// Preprocess coerces every non-protected column to numbers and rewrites the
// protected attributes into the {0.0, 1.0} group encoding. After it returns,
// every cell in the frame is numeric.
func Preprocess(f *tabular.Frame, protectedAttrs []string, mappings map[string]GroupMapping) error {
	protected := make(map[string]bool, len(protectedAttrs))
	for _, attr := range protectedAttrs {
		protected[attr] = true
	}

	for _, col := range f.Columns() {
		if protected[col] {
			continue
		}
		encodeColumn(f, col)
	}

	for _, attr := range protectedAttrs {
		if !f.Has(attr) {
			continue
		}
		mapping, ok := mappings[attr]
		if ok {
			if err := applyExplicitMapping(f, attr, mapping); err != nil {
				return err
			}
		} else {
			if err := applyFallbackMapping(f, attr); err != nil {
				return err
			}
		}
	}

	return nil
}

// encodeColumn converts one column to numbers: direct numeric coercion when
// every cell parses, otherwise successive integer codes assigned in
// first-seen order of the distinct values.
func encodeColumn(f *tabular.Frame, col string) {
	vals := f.Column(col)

	nums := make([]tabular.Value, len(vals))
	numeric := true
	for i, v := range vals {
		switch v.Kind {
		case tabular.KindNumeric:
			nums[i] = v
		case tabular.KindMissing:
			nums[i] = tabular.Num(math.NaN())
		default:
			n, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
			if err != nil {
				numeric = false
			} else {
				nums[i] = tabular.Num(n)
			}
		}
		if !numeric {
			break
		}
	}
	if numeric {
		f.SetColumn(col, nums)
		return
	}

	codes := make(map[string]int)
	encoded := make([]tabular.Value, len(vals))
	for i, v := range vals {
		s := v.String()
		code, ok := codes[s]
		if !ok {
			code = len(codes)
			codes[s] = code
		}
		encoded[i] = tabular.Num(float64(code))
	}
	f.SetColumn(col, encoded)
}

// applyExplicitMapping encodes matches of the caller's privileged and
// unprivileged value sets to 1.0 and 0.0; rows matching neither are dropped
// and the remaining rows reindexed.
func applyExplicitMapping(f *tabular.Frame, attr string, mapping GroupMapping) error {
	if len(mapping.Privileged) == 0 || len(mapping.Unprivileged) == 0 {
		return Validationf("invalid group mapping for %q: both privileged and unprivileged values must be specified", attr)
	}

	vals := f.Column(attr)
	encoded := make([]tabular.Value, len(vals))
	keep := make([]bool, len(vals))
	dropped := 0
	for i, v := range vals {
		s := v.String()
		switch {
		case mapping.Privileged.contains(s):
			encoded[i] = tabular.Num(1.0)
			keep[i] = true
		case mapping.Unprivileged.contains(s):
			encoded[i] = tabular.Num(0.0)
			keep[i] = true
		default:
			dropped++
		}
	}

	f.SetColumn(attr, encoded)
	if dropped > 0 {
		f.Filter(keep)
	}

	return checkBothGroups(f, attr)
}

// applyFallbackMapping encodes the two lexicographically smallest distinct
// values as privileged and unprivileged respectively. Any other cardinality
// is a hard failure naming the attribute and the observed values.
func applyFallbackMapping(f *tabular.Frame, attr string) error {
	vals := f.Column(attr)

	seen := make(map[string]bool)
	var unique []string
	for _, v := range vals {
		s := v.String()
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	sort.Strings(unique)

	if len(unique) > 2 {
		return Validationf("protected attribute %q has more than two unique values: %v; provide group_mappings for this attribute", attr, unique)
	}
	if len(unique) < 2 {
		return Validationf("not enough unique values for protected attribute %q, found: %v", attr, unique)
	}

	privileged, unprivileged := unique[0], unique[1]
	encoded := make([]tabular.Value, len(vals))
	for i, v := range vals {
		switch v.String() {
		case privileged:
			encoded[i] = tabular.Num(1.0)
		case unprivileged:
			encoded[i] = tabular.Num(0.0)
		}
	}
	f.SetColumn(attr, encoded)

	return checkBothGroups(f, attr)
}

// checkBothGroups enforces the post-mapping invariant: both group encodings
// must be present in the column.
func checkBothGroups(f *tabular.Frame, attr string) error {
	var hasPrivileged, hasUnprivileged bool
	observedSet := make(map[float64]bool)
	for _, v := range f.Column(attr) {
		observedSet[v.Num] = true
		if v.Num == 1.0 {
			hasPrivileged = true
		}
		if v.Num == 0.0 {
			hasUnprivileged = true
		}
	}

	if !hasPrivileged || !hasUnprivileged {
		observed := make([]float64, 0, len(observedSet))
		for v := range observedSet {
			observed = append(observed, v)
		}
		sort.Float64s(observed)
		return Validationf("after mapping, both privileged (1.0) and unprivileged (0.0) values must exist in %q, found: %v", attr, observed)
	}
	return nil
}
