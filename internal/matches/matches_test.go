package matches

import (
	"context"
	"path/filepath"
	"testing"

	dbpkg "github.com/xaitan80/academy/internal/db"
)

var (
	victor = Player{ID: 301, Name: "Victor Hugo"}
	renan  = Player{ID: 302, Name: "Renan Castro"}
	rafael = Player{ID: 201, Name: "Rafael Gomes"}
)

// fixtures mirrors the console's seeded history.
func fixtures() []Match {
	return []Match{
		{ID: 1, Date: "10/05/2025", UnitID: 1, Category: U15, Kind: Championship, Opponent: "EC Esperança", Venue: Home,
			GoalsFor: 3, GoalsAgainst: 1, Lineup: []Player{victor, renan},
			Events: []Event{{Goal, 22, victor}, {YellowCard, 30, renan}, {Goal, 45, renan}, {Goal, 78, victor}}},
		{ID: 2, Date: "12/05/2025", UnitID: 2, Category: U13, Kind: Friendly, Opponent: "Unidos da Vila", Venue: Away,
			GoalsFor: 2, GoalsAgainst: 2, Lineup: []Player{rafael},
			Events: []Event{{Goal, 15, rafael}, {Goal, 60, rafael}}},
		{ID: 3, Date: "18/05/2025", UnitID: 1, Category: U15, Kind: Championship, Opponent: "Rio Claro FC", Venue: Away,
			GoalsFor: 0, GoalsAgainst: 1, Lineup: []Player{victor, renan}},
	}
}

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	d, err := dbpkg.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.AutoMigrate(d, &Unit{}, &Match{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(d)
}

func ids(list []Match) []int64 {
	out := make([]int64, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestParseCategory_Aliases(t *testing.T) {
	for in, want := range map[string]Category{"u11": U11, "SUB13": U13, "sub-15": U15, " U 11 ": U11} {
		got, err := ParseCategory(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		assertEq(t, got, want)
	}
	if _, err := ParseCategory("u17"); err == nil {
		t.Fatal("expected error for u17")
	}
}

func TestParseKindAndVenue(t *testing.T) {
	k, err := ParseKind("Amistoso")
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, k, Friendly)
	v, err := ParseVenue("fora")
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, v, Away)
	if _, err := ParseKind("cup"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMatch_GoalsKeepsOrderAndSkipsCards(t *testing.T) {
	goals := fixtures()[0].Goals()
	assertEq(t, len(goals), 3)
	assertEq(t, goals[0].Minute, 22)
	assertEq(t, goals[1].Player.Name, "Renan Castro")
	assertEq(t, goals[2].Minute, 78)
	assertEq(t, len(fixtures()[2].Goals()), 0)
}

func TestRepo_ListOrdersByIDAndKeepsJSONColumns(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	fx := fixtures()
	for _, i := range []int{2, 0, 1} {
		if err := repo.Create(ctx, &fx[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, len(list), 3)
	assertEq(t, list[0].ID, int64(1))
	assertEq(t, list[2].ID, int64(3))
	assertEq(t, len(list[0].Events), 4)
	assertEq(t, list[0].Lineup[1].Name, "Renan Castro")

	if _, err := repo.Get(ctx, 99); err == nil {
		t.Fatal("expected not found")
	}
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
