package matches

import (
	"fmt"
	"strconv"
	"strings"
)

// AllUnits is the UnitID sentinel for "no unit constraint".
const AllUnits int64 = 0

// Criteria selects matches. The zero value selects everything.
type Criteria struct {
	UnitID   int64    `json:"unit_id" yaml:"unit_id"`
	Kind     Kind     `json:"kind" yaml:"kind,omitempty"`
	Category Category `json:"category" yaml:"category,omitempty"`
	Search   string   `json:"q" yaml:"q,omitempty"`
}

func isAll(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todas", "todos":
		return true
	}
	return false
}

// ParseCriteria builds Criteria from raw form values. Blank or "all" leaves a
// field unconstrained.
func ParseCriteria(unit, kind, category, search string) (Criteria, error) {
	var c Criteria
	if !isAll(unit) {
		id, err := strconv.ParseInt(strings.TrimSpace(unit), 10, 64)
		if err != nil || id <= 0 {
			return Criteria{}, fmt.Errorf("invalid unit %q", unit)
		}
		c.UnitID = id
	}
	if !isAll(kind) {
		k, err := ParseKind(kind)
		if err != nil {
			return Criteria{}, err
		}
		c.Kind = k
	}
	if !isAll(category) {
		cat, err := ParseCategory(category)
		if err != nil {
			return Criteria{}, err
		}
		c.Category = cat
	}
	c.Search = search
	return c, nil
}

// Matches reports whether m satisfies every constrained field.
func (c Criteria) Matches(m Match) bool {
	if c.UnitID != AllUnits && m.UnitID != c.UnitID {
		return false
	}
	if c.Kind != "" && m.Kind != c.Kind {
		return false
	}
	if c.Category != "" && m.Category != c.Category {
		return false
	}
	if c.Search != "" && !strings.Contains(strings.ToLower(m.Opponent), strings.ToLower(c.Search)) {
		return false
	}
	return true
}

// Filter returns the matches satisfying c, in their original order. It does
// not modify all.
func Filter(all []Match, c Criteria) []Match {
	out := make([]Match, 0, len(all))
	for _, m := range all {
		if c.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}
