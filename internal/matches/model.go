package matches

import (
	"fmt"
	"strings"
)

type Category string

const (
	U11 Category = "u11"
	U13 Category = "u13"
	U15 Category = "u15"
)

// ParseCategory accepts u11/u13/u15 and the sub-11 style used by the staff.
func ParseCategory(s string) (Category, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.NewReplacer("-", "", " ", "", "_", "").Replace(k)
	k = strings.Replace(k, "sub", "u", 1)
	switch Category(k) {
	case U11, U13, U15:
		return Category(k), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Kind string

const (
	Championship Kind = "Championship"
	Friendly     Kind = "Friendly"
)

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "championship", "campeonato":
		return Championship, nil
	case "friendly", "amistoso":
		return Friendly, nil
	}
	return "", fmt.Errorf("unknown match kind %q", s)
}

type Venue string

const (
	Home Venue = "Home"
	Away Venue = "Away"
)

func ParseVenue(s string) (Venue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home", "casa":
		return Home, nil
	case "away", "fora":
		return Away, nil
	}
	return "", fmt.Errorf("unknown venue %q", s)
}

type EventKind string

const (
	Goal       EventKind = "Goal"
	YellowCard EventKind = "YellowCard"
	RedCard    EventKind = "RedCard"
)

// Unit is an academy branch. Matches, students and fixtures belong to one.
type Unit struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Event struct {
	Kind   EventKind `json:"kind"`
	Minute int       `json:"minute"`
	Player Player    `json:"player"`
}

type Match struct {
	ID           int64    `json:"id" gorm:"primaryKey"`
	Date         string   `json:"date"` // dd/mm/yyyy
	UnitID       int64    `json:"unit_id" gorm:"index"`
	Category     Category `json:"category"`
	Kind         Kind     `json:"kind"`
	Opponent     string   `json:"opponent"`
	Venue        Venue    `json:"venue"`
	GoalsFor     int      `json:"goals_for"`
	GoalsAgainst int      `json:"goals_against"`
	Lineup       []Player `json:"lineup" gorm:"serializer:json"`
	Events       []Event  `json:"events" gorm:"serializer:json"`
}

type Outcome string

const (
	Win  Outcome = "W"
	Draw Outcome = "D"
	Loss Outcome = "L"
)

func (m Match) Outcome() Outcome {
	switch {
	case m.GoalsFor > m.GoalsAgainst:
		return Win
	case m.GoalsFor < m.GoalsAgainst:
		return Loss
	}
	return Draw
}

// Goals returns the goal events in the order they were recorded.
func (m Match) Goals() []Event {
	out := []Event{}
	for _, e := range m.Events {
		if e.Kind == Goal {
			out = append(out, e)
		}
	}
	return out
}
