package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/mgeorge47/canteen-console-api/internal/domain"
)

// ViewState is the lifecycle of a sales view: Idle until the first fetch,
// then Fetching -> Loaded or Failed on every filter change. Failed is
// distinct from Loaded with zero records so the UI can tell "no data" from
// "fetch broke".
type ViewState string

const (
	StateIdle     ViewState = "idle"
	StateFetching ViewState = "fetching"
	StateLoaded   ViewState = "loaded"
	StateFailed   ViewState = "failed"
)

// SalesView tracks the committed filter state for one session's sales page
// and orchestrates refetches. All mutations are serialized through one
// mutex; the fetch itself runs outside the lock, and a monotonic generation
// counter discards any response that no longer matches the latest filter.
type SalesView struct {
	mu       sync.Mutex
	reporter Reporter

	state  ViewState
	filter domain.SalesFilter
	gen    uint64
	report *SalesReport
	err    error
}

// Snapshot is the rendered outcome of a view at one point in time.
type Snapshot struct {
	State  ViewState          `json:"state"`
	Filter domain.SalesFilter `json:"filter"`
	Report *SalesReport       `json:"report,omitempty"`
	Err    error              `json:"-"`
}

func NewSalesView(reporter Reporter) *SalesView {
	return &SalesView{
		reporter: reporter,
		state:    StateIdle,
	}
}

// Apply commits the requested filter and refetches when it differs from the
// current one. A change to date or store resets the page index to 0 before
// fetching. Re-applying the already-loaded filter returns the cached report
// without issuing a request. When concurrent Applies overlap, only the
// response matching the latest committed filter is retained; superseded
// responses are discarded even though their calls complete normally.
func (v *SalesView) Apply(ctx context.Context, credential string, date time.Time, store, page int) Snapshot {
	v.mu.Lock()

	next := domain.SalesFilter{Date: date, Store: store, Page: page}
	if !next.Date.Equal(v.filter.Date) || next.Store != v.filter.Store {
		next.Page = 0
	}

	if v.state == StateLoaded && next.Equal(v.filter) {
		snap := v.snapshotLocked()
		v.mu.Unlock()
		return snap
	}

	v.filter = next
	v.gen++
	gen := v.gen
	v.state = StateFetching
	v.mu.Unlock()

	report, err := v.reporter.LoadSales(ctx, credential, next)

	v.mu.Lock()
	defer v.mu.Unlock()

	// A newer Apply superseded this fetch; its outcome is dropped entirely.
	if gen == v.gen {
		if err != nil {
			v.state = StateFailed
			v.err = err
			v.report = nil
		} else {
			v.state = StateLoaded
			v.report = report
			v.err = nil
		}
	}

	return v.snapshotLocked()
}

// Snapshot returns the current view outcome without triggering a fetch.
func (v *SalesView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *SalesView) snapshotLocked() Snapshot {
	return Snapshot{
		State:  v.state,
		Filter: v.filter,
		Report: v.report,
		Err:    v.err,
	}
}

// ViewRegistry hands out one SalesView per console session.
type ViewRegistry struct {
	mu       sync.Mutex
	reporter Reporter
	views    map[string]*SalesView
}

func NewViewRegistry(reporter Reporter) *ViewRegistry {
	return &ViewRegistry{
		reporter: reporter,
		views:    make(map[string]*SalesView),
	}
}

// ForSession returns the session's view, creating it on first access.
func (r *ViewRegistry) ForSession(sessionID string) *SalesView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[sessionID]
	if !ok {
		view = NewSalesView(r.reporter)
		r.views[sessionID] = view
	}

	return view
}

// Drop discards the session's view, typically on logout.
func (r *ViewRegistry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.views, sessionID)
}
