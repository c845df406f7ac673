package bias

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// GroupValues accepts a JSON scalar or array and normalizes every member to
// its string form, matching how attribute cells are compared.
type GroupValues []string

func (g *GroupValues) UnmarshalJSON(data []byte) error {
	var list []any
	if err := json.Unmarshal(data, &list); err == nil {
		vals := make(GroupValues, 0, len(list))
		for _, v := range list {
			vals = append(vals, stringify(v))
		}
		*g = vals
		return nil
	}

	var scalar any
	if err := json.Unmarshal(data, &scalar); err != nil {
		return err
	}
	*g = GroupValues{stringify(scalar)}
	return nil
}

func (g GroupValues) contains(s string) bool {
	for _, v := range g {
		if v == s {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// GroupMapping names the attribute values that define each population group.
type GroupMapping struct {
	Privileged   GroupValues `json:"privileged"`
	Unprivileged GroupValues `json:"unprivileged"`
}

// ParseGroupMappings decodes the group_mappings query parameter. Only strict
// JSON is accepted.
func ParseGroupMappings(raw string) (map[string]GroupMapping, error) {
	if raw == "" {
		return nil, nil
	}
	var m map[string]GroupMapping
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, Validationf("invalid group_mappings JSON format")
	}
	return m, nil
}
