package reporting

import (
	"context"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
)

// Reporter exposes the two sales access patterns the console supports:
// client-side aggregation over a fetched page (LoadSales) and the upstream
// pre-aggregated dashboard summary (Dashboard).
type Reporter interface {
	// LoadSales fetches one page of sales for the filter and derives
	// AggregateStats from that page alone.
	LoadSales(ctx context.Context, credential string, filter domain.SalesFilter) (*SalesReport, error)

	// Dashboard passes through the server-side aggregate endpoint. A nil
	// store selects all stores.
	Dashboard(ctx context.Context, credential string, dateRange domain.DateRange, store *int) (*posdomain.DashboardSummary, error)
}
