package students

import (
	"fmt"
	"strconv"
	"strings"
)

// Criteria selects students; zero fields are unconstrained.
type Criteria struct {
	UnitID    int64    `json:"unit_id"`
	Class     string   `json:"class"`
	BirthYear int      `json:"birth_year"`
	Position  Position `json:"position"`
	Search    string   `json:"q"`
}

func isAll(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todas", "todos":
		return true
	}
	return false
}

func ParseCriteria(unit, class, birthYear, position, search string) (Criteria, error) {
	c := Criteria{Search: search}
	if !isAll(unit) {
		id, err := strconv.ParseInt(strings.TrimSpace(unit), 10, 64)
		if err != nil || id <= 0 {
			return Criteria{}, fmt.Errorf("invalid unit %q", unit)
		}
		c.UnitID = id
	}
	if !isAll(class) {
		c.Class = strings.ToUpper(strings.TrimSpace(class))
	}
	if !isAll(birthYear) {
		y, err := strconv.Atoi(strings.TrimSpace(birthYear))
		if err != nil || y <= 0 {
			return Criteria{}, fmt.Errorf("invalid birth year %q", birthYear)
		}
		c.BirthYear = y
	}
	if !isAll(position) {
		p, err := ParsePosition(position)
		if err != nil {
			return Criteria{}, err
		}
		c.Position = p
	}
	return c, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (c Criteria) searchHit(s Student) bool {
	if containsFold(s.Name, c.Search) || containsFold(s.Guardian, c.Search) {
		return true
	}
	for _, g := range s.Guardians {
		if containsFold(g.Name, c.Search) {
			return true
		}
	}
	return false
}

func (c Criteria) Matches(s Student) bool {
	if c.UnitID != 0 && s.UnitID != c.UnitID {
		return false
	}
	if c.Class != "" && s.Class != c.Class {
		return false
	}
	if c.BirthYear != 0 && s.BirthYear != c.BirthYear {
		return false
	}
	if c.Position != "" && s.Position != c.Position {
		return false
	}
	if c.Search != "" && !c.searchHit(s) {
		return false
	}
	return true
}

// Filter keeps the students satisfying c in their original order.
func Filter(all []Student, c Criteria) []Student {
	out := make([]Student, 0, len(all))
	for _, s := range all {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}
