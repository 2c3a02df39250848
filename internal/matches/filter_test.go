package matches

import (
	"testing"
)

func TestFilter_IdentityForZeroCriteria(t *testing.T) {
	all := fixtures()
	got := Filter(all, Criteria{})
	assertEq(t, len(got), len(all))
	for i := range all {
		assertEq(t, got[i].ID, all[i].ID)
	}
}

func TestFilter_ByUnit(t *testing.T) {
	got := Filter(fixtures(), Criteria{UnitID: 1})
	assertEq(t, len(got), 2)
	for _, m := range got {
		if m.UnitID != 1 {
			t.Fatalf("unit %d leaked into unit 1 filter", m.UnitID)
		}
	}
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	got := Filter(fixtures(), Criteria{Search: "esperança"})
	assertEq(t, len(got), 1)
	assertEq(t, got[0].Opponent, "EC Esperança")

	got = Filter(fixtures(), Criteria{Search: "RIO CLARO"})
	assertEq(t, len(got), 1)
	assertEq(t, got[0].ID, int64(3))
}

func TestFilter_AllFieldsAreConjunctive(t *testing.T) {
	all := fixtures()
	assertEq(t, len(Filter(all, Criteria{UnitID: 1, Kind: Championship, Category: U15})), 2)
	assertEq(t, len(Filter(all, Criteria{UnitID: 1, Kind: Friendly})), 0)
	assertEq(t, len(Filter(all, Criteria{Category: U13, Search: "vila"})), 1)
	assertEq(t, len(Filter(all, Criteria{Category: U13, Search: "clar"})), 0)
}

func TestFilter_SubsequenceAndIdempotent(t *testing.T) {
	all := fixtures()
	// add a few more so the order check has something to bite on
	for i := int64(4); i <= 12; i++ {
		m := all[i%3]
		m.ID = i
		all = append(all, m)
	}
	cases := []Criteria{
		{},
		{UnitID: 1},
		{UnitID: 2},
		{Kind: Friendly},
		{Category: U15, Search: "e"},
		{Search: "zzz"},
	}
	for _, c := range cases {
		once := Filter(all, c)
		twice := Filter(once, c)
		assertEq(t, len(twice), len(once))
		for i := range once {
			assertEq(t, twice[i].ID, once[i].ID)
		}
		// strictly increasing ids means relative order was kept
		for i := 1; i < len(once); i++ {
			if once[i-1].ID >= once[i].ID {
				t.Fatalf("%+v: order broken at %d: %v", c, i, ids(once))
			}
		}
		for _, m := range once {
			if !c.Matches(m) {
				t.Fatalf("%+v: %d should not pass", c, m.ID)
			}
		}
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	all := fixtures()
	_ = Filter(all, Criteria{UnitID: 2})
	assertEq(t, len(all), 3)
	assertEq(t, all[0].ID, int64(1))
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria("all", "todos", "", "vila")
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, c, Criteria{Search: "vila"})

	c, err = ParseCriteria("2", "Amistoso", "sub13", "")
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, c, Criteria{UnitID: 2, Kind: Friendly, Category: U13})

	for _, bad := range [][3]string{{"x", "", ""}, {"-1", "", ""}, {"", "cup", ""}, {"", "", "u99"}} {
		if _, err := ParseCriteria(bad[0], bad[1], bad[2], ""); err == nil {
			t.Fatalf("expected error for %v", bad)
		}
	}
}
