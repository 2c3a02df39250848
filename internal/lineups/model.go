package lineups

import (
	"sort"

	"github.com/xaitan80/academy/internal/matches"
)

// Fixture is an upcoming game of a unit.
type Fixture struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	UnitID   int64  `json:"unit_id" gorm:"index"`
	Date     string `json:"date"` // dd/mm/yyyy
	Time     string `json:"time"` // hh:mm
	Opponent string `json:"opponent"`
}

// Slot puts a player on a position code such as GK or ZAG1.
type Slot struct {
	Position string         `json:"position"`
	Player   matches.Player `json:"player"`
}

// Lineup is the starting eleven of one category for one fixture.
type Lineup struct {
	ID        int64            `json:"-" gorm:"primaryKey"`
	FixtureID int64            `json:"fixture_id" gorm:"uniqueIndex:idx_fixture_category"`
	Category  matches.Category `json:"category" gorm:"uniqueIndex:idx_fixture_category"`
	Slots     []Slot           `json:"slots" gorm:"serializer:json"`
}

// Assign puts p on position, replacing whoever held it. Slots stay sorted by
// position code.
func (l *Lineup) Assign(position string, p matches.Player) {
	for i := range l.Slots {
		if l.Slots[i].Position == position {
			l.Slots[i].Player = p
			return
		}
	}
	l.Slots = append(l.Slots, Slot{Position: position, Player: p})
	sort.SliceStable(l.Slots, func(i, j int) bool { return l.Slots[i].Position < l.Slots[j].Position })
}

// Players returns the assigned players in slot order.
func (l Lineup) Players() []matches.Player {
	out := make([]matches.Player, 0, len(l.Slots))
	for _, s := range l.Slots {
		out = append(out, s.Player)
	}
	return out
}
