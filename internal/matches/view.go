package matches

import (
	"context"
	"sync"
	"time"

	"github.com/xaitan80/academy/internal/fetch"
	"github.com/xaitan80/academy/internal/paging"
)

// View is the state of one match-history screen.
type View struct {
	Criteria Criteria `json:"criteria"`
	Page     int      `json:"page"`
	PageSize int      `json:"size"`
}

func NewView(pageSize int) View {
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	return View{Page: 1, PageSize: pageSize}
}

// ApplyFilterChange installs new criteria and always goes back to page 1,
// so the current page can never point past a shrunken result set.
func ApplyFilterChange(v View, c Criteria) View {
	v.Criteria = c
	v.Page = 1
	return v
}

// GotoPage moves to page n, keeping the criteria.
func (v View) GotoPage(n int) View {
	if n < 1 {
		n = 1
	}
	v.Page = n
	return v
}

// Result is what a screen renders: one page plus statistics over the whole
// filtered set.
type Result struct {
	View  View               `json:"view"`
	Page  paging.Page[Match] `json:"page"`
	Stats Statistics         `json:"stats"`
}

// Run filters, paginates and computes statistics in that order.
func (v View) Run(all []Match) Result {
	filtered := Filter(all, v.Criteria)
	return Result{
		View:  v,
		Page:  paging.Paginate(filtered, v.Page, v.PageSize),
		Stats: ComputeStatistics(filtered),
	}
}

// Source is anything that can list every known match.
type Source interface {
	List(ctx context.Context) ([]Match, error)
}

// Browser keeps a View and reloads it from a Source on every change. Loads
// go through a fetch.Loader, so a slow reload for old criteria can never
// replace the result of a newer one.
type Browser struct {
	mu     sync.Mutex
	view   View
	loader *fetch.Loader[View, Result]
}

// NewBrowser returns a browser on page 1 with no filter. latency simulates
// the round trip of a remote source.
func NewBrowser(src Source, pageSize int, latency time.Duration) *Browser {
	load := func(ctx context.Context, v View) (Result, error) {
		all, err := src.List(ctx)
		if err != nil {
			return Result{}, err
		}
		return v.Run(all), nil
	}
	return &Browser{
		view:   NewView(pageSize),
		loader: fetch.NewLoader(fetch.Delay(latency, load)),
	}
}

// SetCriteria applies a filter change and reloads.
func (b *Browser) SetCriteria(ctx context.Context, c Criteria) (Result, error) {
	b.mu.Lock()
	b.view = ApplyFilterChange(b.view, c)
	v := b.view
	b.mu.Unlock()
	return b.loader.Load(ctx, v)
}

// SetPage moves to another page of the current filter and reloads.
func (b *Browser) SetPage(ctx context.Context, n int) (Result, error) {
	b.mu.Lock()
	b.view = b.view.GotoPage(n)
	v := b.view
	b.mu.Unlock()
	return b.loader.Load(ctx, v)
}

// Refresh reloads the current view.
func (b *Browser) Refresh(ctx context.Context) (Result, error) {
	b.mu.Lock()
	v := b.view
	b.mu.Unlock()
	return b.loader.Load(ctx, v)
}

// Current returns the last applied result. ok is false until a load has
// completed.
func (b *Browser) Current() (res Result, ok bool) {
	res, token := b.loader.Latest()
	return res, token != 0
}
