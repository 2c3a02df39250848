// Package mockdata creates the record tables and fills them with the data
// the console ships with.
package mockdata

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbpkg "github.com/xaitan80/academy/internal/db"
	"github.com/xaitan80/academy/internal/lineups"
	"github.com/xaitan80/academy/internal/matches"
	"github.com/xaitan80/academy/internal/payments"
	"github.com/xaitan80/academy/internal/students"
)

// Models lists every table the console uses.
func Models() []any {
	return []any{
		&matches.Unit{}, &matches.Match{},
		&payments.Payment{},
		&students.Student{},
		&lineups.Fixture{}, &lineups.Lineup{},
	}
}

var (
	units = []matches.Unit{{ID: 1, Name: "Unidade Centro"}, {ID: 2, Name: "Unidade Zona Sul"}}

	lucas  = matches.Player{ID: 101, Name: "Lucas Silva"}
	pedro  = matches.Player{ID: 102, Name: "Pedro Alves"}
	rafael = matches.Player{ID: 201, Name: "Rafael Gomes"}
	vini   = matches.Player{ID: 202, Name: "Vinicius Melo"}
	victor = matches.Player{ID: 301, Name: "Victor Hugo"}
	renan  = matches.Player{ID: 302, Name: "Renan Castro"}
)

func goal(min int, p matches.Player) matches.Event {
	return matches.Event{Kind: matches.Goal, Minute: min, Player: p}
}

func matchFixtures() []matches.Match {
	return []matches.Match{
		{ID: 1, Date: "10/05/2025", UnitID: 1, Category: matches.U15, Kind: matches.Championship,
			Opponent: "EC Esperança", Venue: matches.Home, GoalsFor: 3, GoalsAgainst: 1,
			Lineup: []matches.Player{victor, renan},
			Events: []matches.Event{goal(22, victor), goal(45, renan), goal(78, victor)}},
		{ID: 2, Date: "12/05/2025", UnitID: 2, Category: matches.U13, Kind: matches.Friendly,
			Opponent: "Unidos da Vila", Venue: matches.Away, GoalsFor: 2, GoalsAgainst: 2,
			Lineup: []matches.Player{rafael, vini},
			Events: []matches.Event{goal(15, rafael), goal(60, rafael)}},
		{ID: 3, Date: "18/05/2025", UnitID: 1, Category: matches.U15, Kind: matches.Championship,
			Opponent: "Rio Claro FC", Venue: matches.Away, GoalsFor: 0, GoalsAgainst: 1,
			Lineup: []matches.Player{victor, renan}, Events: []matches.Event{}},
	}
}

func paymentFixtures() []payments.Payment {
	pay := func(id int64, student, guardian string, st payments.Status, date string, cents int64) payments.Payment {
		return payments.Payment{ID: id, Student: student, Guardian: guardian, Status: st, Date: date, AmountCents: cents}
	}
	return []payments.Payment{
		pay(1, "João da Silva", "Carlos Silva", payments.Paid, "01/06/2025", 10000),
		pay(2, "Maria Oliveira", "Luiz Oliveira", payments.Pending, "05/06/2025", 9000),
		pay(3, "Carlos Eduardo", "Pedro Eduardo", payments.Paid, "10/06/2025", 12000),
		pay(4, "Ana Paula", "Julia Paula", payments.Pending, "12/06/2025", 11000),
		pay(5, "Marcos Vinicius", "Ricardo Vinicius", payments.Paid, "15/06/2025", 13000),
		pay(6, "Fernanda Lima", "Sandra Lima", payments.Pending, "18/06/2025", 9500),
		pay(7, "Rafael Souza", "Marcelo Souza", payments.Paid, "20/06/2025", 10500),
		pay(8, "Isabela Costa", "Patricia Costa", payments.Paid, "22/06/2025", 11500),
		pay(9, "Bruno Martins", "Helena Martins", payments.Pending, "25/06/2025", 10000),
		pay(10, "Larissa Gomes", "Roberto Gomes", payments.Paid, "27/06/2025", 12000),
	}
}

func studentFixtures() []students.Student {
	st := func(id int64, name, class string, year int, pos students.Position, guardian string, unit int64) students.Student {
		return students.Student{
			ID: id, Name: name, Enrollment: fmt.Sprintf("2025%03d", id), UnitID: unit,
			Class: class, BirthYear: year, Position: pos, Guardian: guardian,
			Guardians: []students.Guardian{{Name: guardian}},
		}
	}
	return []students.Student{
		st(1, "João da Silva", "A", 2010, students.Goalkeeper, "Carlos Silva", 1),
		st(2, "Maria Oliveira", "B", 2012, students.Forward, "Luiz Oliveira", 1),
		st(3, "Carlos Eduardo", "A", 2011, students.Defender, "Pedro Eduardo", 2),
		st(4, "Ana Paula", "C", 2013, students.Midfielder, "Julia Paula", 2),
		st(5, "Marcos Vinicius", "B", 2010, students.Fullback, "Ricardo Vinicius", 1),
	}
}

func fixtureFixtures() []lineups.Fixture {
	return []lineups.Fixture{
		{ID: 101, UnitID: 1, Date: "15/07/2025", Time: "10:00", Opponent: "EC Esperança"},
		{ID: 102, UnitID: 1, Date: "22/07/2025", Time: "14:30", Opponent: "AA Ponte Firme"},
		{ID: 201, UnitID: 2, Date: "29/07/2025", Time: "09:00", Opponent: "Rio Claro FC"},
		{ID: 202, UnitID: 2, Date: "05/08/2025", Time: "11:00", Opponent: "Unidos da Vila"},
	}
}

type assignment struct {
	category matches.Category
	position string
	player   matches.Player
}

var fixture101 = []assignment{
	{matches.U11, "GK", lucas}, {matches.U11, "DF", pedro},
	{matches.U13, "GK", rafael}, {matches.U13, "ZAG1", vini},
	{matches.U15, "GK", victor}, {matches.U15, "ZAG_E", renan},
}

// Seed migrates d and inserts the fixtures. It does nothing when units are
// already present, so it is safe to run on every start.
func Seed(ctx context.Context, d *gorm.DB) error {
	if err := dbpkg.AutoMigrate(d, Models()...); err != nil {
		return err
	}
	mrepo := matches.NewRepo(d)
	existing, err := mrepo.Units(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, u := range units {
		u := u
		if err := mrepo.CreateUnit(ctx, &u); err != nil {
			return fmt.Errorf("seed unit %d: %w", u.ID, err)
		}
	}
	for _, m := range matchFixtures() {
		m := m
		if err := mrepo.Create(ctx, &m); err != nil {
			return fmt.Errorf("seed match %d: %w", m.ID, err)
		}
	}

	prepo := payments.NewRepo(d)
	for _, p := range paymentFixtures() {
		p := p
		if err := prepo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed payment %d: %w", p.ID, err)
		}
	}

	srepo := students.NewRepo(d)
	for _, s := range studentFixtures() {
		s := s
		if err := srepo.Create(ctx, &s); err != nil {
			return fmt.Errorf("seed student %d: %w", s.ID, err)
		}
	}

	lrepo := lineups.NewRepo(d)
	for _, f := range fixtureFixtures() {
		f := f
		if err := lrepo.CreateFixture(ctx, &f); err != nil {
			return fmt.Errorf("seed fixture %d: %w", f.ID, err)
		}
	}
	for _, a := range fixture101 {
		if _, err := lrepo.Assign(ctx, 101, a.category, a.position, a.player); err != nil {
			return fmt.Errorf("seed lineup: %w", err)
		}
	}
	return nil
}
