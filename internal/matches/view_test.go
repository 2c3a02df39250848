package matches

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/xaitan80/academy/internal/fetch"
)

func manyMatches(n int) []Match {
	base := fixtures()
	out := make([]Match, 0, n)
	for i := 0; i < n; i++ {
		m := base[i%len(base)]
		m.ID = int64(i + 1)
		out = append(out, m)
	}
	return out
}

func TestRun_PastLastPageIsEmpty(t *testing.T) {
	res := NewView(5).GotoPage(2).Run(fixtures())
	assertEq(t, len(res.Page.Items), 0)
	assertEq(t, res.Page.Total, 3)
}

func TestRun_StatisticsCoverWholeFilteredSet(t *testing.T) {
	all := manyMatches(12)
	res := NewView(5).GotoPage(3).Run(all)
	assertEq(t, len(res.Page.Items), 2)
	assertEq(t, res.Stats.Played, 12)
	assertEq(t, res.Stats, ComputeStatistics(all))
}

func TestApplyFilterChange_ResetsPage(t *testing.T) {
	v := NewView(5).GotoPage(3)
	assertEq(t, v.Page, 3)
	v = ApplyFilterChange(v, Criteria{UnitID: 2})
	assertEq(t, v.Page, 1)
	assertEq(t, v.Criteria.UnitID, int64(2))
	assertEq(t, v.PageSize, 5)

	// the next cycle runs against page 1 of the new set
	res := v.Run(manyMatches(12))
	assertEq(t, res.Page.Number, 1)
	assertEq(t, res.Page.Total, 4)
	assertEq(t, len(res.Page.Items), 4)
}

type staticSource []Match

func (s staticSource) List(context.Context) ([]Match, error) { return s, nil }

func TestBrowser_FilterChangeResetsPage(t *testing.T) {
	b := NewBrowser(staticSource(manyMatches(15)), 5, 0)
	ctx := context.Background()

	res, err := b.SetPage(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, res.Page.Number, 3)
	assertEq(t, len(res.Page.Items), 5)

	res, err = b.SetCriteria(ctx, Criteria{Kind: Friendly})
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, res.View.Page, 1)
	assertEq(t, res.Page.Total, 5)
	assertEq(t, res.Stats.Played, 5)

	cur, ok := b.Current()
	if !ok {
		t.Fatal("expected a current result")
	}
	assertEq(t, cur.View, res.View)
}

// gatedSource blocks the first List call until released.
type gatedSource struct {
	all     []Match
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (g *gatedSource) List(context.Context) ([]Match, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.started)
		<-g.release
	}
	return g.all, nil
}

func TestBrowser_SlowOldFilterDoesNotOverwriteNewer(t *testing.T) {
	src := &gatedSource{all: manyMatches(9), started: make(chan struct{}), release: make(chan struct{})}
	b := NewBrowser(src, 5, 0)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := b.SetCriteria(ctx, Criteria{UnitID: 2})
		done <- err
	}()
	<-src.started

	res, err := b.SetCriteria(ctx, Criteria{UnitID: 1})
	if err != nil {
		t.Fatal(err)
	}
	assertEq(t, res.Page.Total, 6)

	close(src.release)
	if err := <-done; !errors.Is(err, fetch.ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	cur, _ := b.Current()
	assertEq(t, cur.View.Criteria.UnitID, int64(1))
	assertEq(t, cur.Page.Total, 6)
}
