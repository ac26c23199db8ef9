package reporting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
)

// fakeReporter records every filter it is asked to load and can park a
// fetch on a gate channel, so tests can interleave concurrent Applies
// deterministically.
type fakeReporter struct {
	mu      sync.Mutex
	calls   []domain.SalesFilter
	started map[int]chan struct{}
	gates   map[int]chan struct{}
	err     error
}

func newFakeReporter() *fakeReporter {
	return &fakeReporter{
		started: make(map[int]chan struct{}),
		gates:   make(map[int]chan struct{}),
	}
}

func (f *fakeReporter) LoadSales(_ context.Context, _ string, filter domain.SalesFilter) (*SalesReport, error) {
	f.mu.Lock()
	f.calls = append(f.calls, filter)
	started := f.started[filter.Store]
	gate := f.gates[filter.Store]
	err := f.err
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}

	if err != nil {
		return nil, err
	}

	return &SalesReport{Filter: filter}, nil
}

func (f *fakeReporter) Dashboard(context.Context, string, domain.DateRange, *int) (*posdomain.DashboardSummary, error) {
	return nil, nil
}

func (f *fakeReporter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeReporter) lastCall() domain.SalesFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func TestSalesView_Apply_FirstFetch(t *testing.T) {
	reporter := newFakeReporter()
	view := NewSalesView(reporter)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	snap := view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)

	assert.Equal(t, StateLoaded, snap.State)
	require.NotNil(t, snap.Report)
	assert.Equal(t, domain.SalesFilter{Date: date, Store: domain.StoreErnakulam, Page: 0}, snap.Filter)
	assert.Equal(t, 1, reporter.callCount())
}

func TestSalesView_Apply_SameFilterServedFromCache(t *testing.T) {
	reporter := newFakeReporter()
	view := NewSalesView(reporter)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	first := view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)
	second := view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)

	assert.Equal(t, StateLoaded, second.State)
	assert.Equal(t, first.Report, second.Report)
	assert.Equal(t, 1, reporter.callCount(), "re-applying the loaded filter must not refetch")
}

func TestSalesView_Apply_StoreChangeResetsPage(t *testing.T) {
	reporter := newFakeReporter()
	view := NewSalesView(reporter)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)
	view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 3)

	require.Equal(t, 3, reporter.lastCall().Page, "paging within the same date/store keeps the requested page")

	snap := view.Apply(context.Background(), "cred", date, domain.StoreAluva, 3)

	assert.Equal(t, 0, snap.Filter.Page)
	assert.Equal(t, 0, reporter.lastCall().Page, "store change must land on the first page")
}

func TestSalesView_Apply_DateChangeResetsPage(t *testing.T) {
	reporter := newFakeReporter()
	view := NewSalesView(reporter)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 2)

	nextDay := date.AddDate(0, 0, 1)
	snap := view.Apply(context.Background(), "cred", nextDay, domain.StoreErnakulam, 2)

	assert.Equal(t, 0, snap.Filter.Page)
	assert.Equal(t, nextDay, snap.Filter.Date)
}

func TestSalesView_Apply_FetchFailureMarksFailed(t *testing.T) {
	reporter := newFakeReporter()
	reporter.err = errors.New("upstream unavailable")
	view := NewSalesView(reporter)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	snap := view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)

	assert.Equal(t, StateFailed, snap.State)
	assert.Nil(t, snap.Report)
	require.Error(t, snap.Err)

	// A failed state never satisfies the cache check, so the same filter
	// triggers another attempt.
	reporter.err = nil
	retry := view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)
	assert.Equal(t, StateLoaded, retry.State)
	assert.Equal(t, 2, reporter.callCount())
}

func TestSalesView_Apply_StaleResponseDiscarded(t *testing.T) {
	reporter := newFakeReporter()
	view := NewSalesView(reporter)

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	startedErnakulam := make(chan struct{})
	gateErnakulam := make(chan struct{})
	reporter.started[domain.StoreErnakulam] = startedErnakulam
	reporter.gates[domain.StoreErnakulam] = gateErnakulam

	slowDone := make(chan Snapshot, 1)
	go func() {
		slowDone <- view.Apply(context.Background(), "cred", date, domain.StoreErnakulam, 0)
	}()

	// Wait until the Ernakulam fetch is in flight, then supersede it.
	<-startedErnakulam
	fast := view.Apply(context.Background(), "cred", date, domain.StoreAluva, 0)

	require.Equal(t, StateLoaded, fast.State)
	assert.Equal(t, domain.StoreAluva, fast.Filter.Store)

	// Release the superseded fetch; its result must not overwrite the view.
	close(gateErnakulam)
	slow := <-slowDone

	assert.Equal(t, StateLoaded, slow.State)
	assert.Equal(t, domain.StoreAluva, slow.Filter.Store, "superseded fetch reports the winning filter")
	require.NotNil(t, slow.Report)
	assert.Equal(t, domain.StoreAluva, slow.Report.Filter.Store)

	final := view.Snapshot()
	assert.Equal(t, domain.StoreAluva, final.Filter.Store)
}

func TestViewRegistry_SessionIsolation(t *testing.T) {
	reporter := newFakeReporter()
	registry := NewViewRegistry(reporter)

	a := registry.ForSession("session-a")
	b := registry.ForSession("session-b")

	assert.NotSame(t, a, b)
	assert.Same(t, a, registry.ForSession("session-a"))

	registry.Drop("session-a")
	assert.NotSame(t, a, registry.ForSession("session-a"), "dropped session gets a fresh view")
}
