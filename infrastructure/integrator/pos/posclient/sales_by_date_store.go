package posclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
)

// SalesParams selects one page of sales for a calendar date and store.
// Page is zero-based.
type SalesParams struct {
	Date  time.Time
	Store int
	Page  int
	Size  int
}

func (c *POSClient) GetSalesByDateStore(ctx context.Context, credential string, params SalesParams) (*posdomain.SalesPage, error) {
	query := url.Values{}
	query.Set("date", params.Date.Format(time.DateOnly))
	query.Set("store", strconv.Itoa(params.Store))
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))

	var page posdomain.SalesPage
	if err := c.do(ctx, credential, http.MethodGet, "/api/sales/by-date-store", query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}
