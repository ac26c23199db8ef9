package posclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
	"github.com/mgeorge47/canteen-console-api/pkg/utils"
)

// DashboardParams filters the pre-aggregated dashboard summary. Store nil
// means all stores; the parameter is omitted entirely in that case.
type DashboardParams struct {
	Range domain.DateRange
	Store *int
}

func (c *POSClient) GetDashboard(ctx context.Context, credential string, params DashboardParams) (*posdomain.DashboardSummary, error) {
	query := url.Values{}

	if !params.Range.Start.IsZero() {
		start, _ := utils.DayBounds(params.Range.Start)
		query.Set("startDate", start)
	}
	if !params.Range.End.IsZero() {
		_, end := utils.DayBounds(params.Range.End)
		query.Set("endDate", end)
	}
	if params.Store != nil {
		query.Set("storeId", strconv.Itoa(*params.Store))
	}

	var summary posdomain.DashboardSummary
	if err := c.do(ctx, credential, http.MethodGet, "/api/dashboard", query, nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
