package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/posclient"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
	"github.com/mgeorge47/canteen-console-api/pkg/utils"
)

// SalesReport is one fetched sales page together with the metrics derived
// from it. Both are discarded and rebuilt on every filter change.
type SalesReport struct {
	Filter  domain.SalesFilter    `json:"filter"`
	Records []posdomain.Sale      `json:"records"`
	Stats   domain.AggregateStats `json:"stats"`
}

type Service struct {
	client posclient.Client
}

func NewService(client posclient.Client) Reporter {
	return &Service{client: client}
}

func (s *Service) LoadSales(ctx context.Context, credential string, filter domain.SalesFilter) (*SalesReport, error) {
	page, err := s.client.GetSalesByDateStore(ctx, credential, posclient.SalesParams{
		Date:  filter.Date,
		Store: filter.Store,
		Page:  filter.Page,
		Size:  domain.PageSize,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"date":    filter.Date.Format(time.DateOnly),
		"store":   filter.Store,
		"page":    filter.Page,
		"records": len(page.Content),
		"total":   page.TotalElements,
	}).Debug("reporting: sales page fetched")

	return &SalesReport{
		Filter:  filter,
		Records: page.Content,
		Stats:   Aggregate(page.Content, page.TotalElements),
	}, nil
}

func (s *Service) Dashboard(ctx context.Context, credential string, dateRange domain.DateRange, store *int) (*posdomain.DashboardSummary, error) {
	return s.client.GetDashboard(ctx, credential, posclient.DashboardParams{
		Range: dateRange,
		Store: store,
	})
}

// Aggregate derives the page metrics from the currently loaded records only,
// never from server-side pre-aggregation. An empty page yields all-zero
// metrics.
func Aggregate(records []posdomain.Sale, totalElements int64) domain.AggregateStats {
	stats := domain.AggregateStats{
		TotalCount:             totalElements,
		PaymentMethodBreakdown: make(map[string]int),
		StatusBreakdown:        make(map[string]int),
		HourlyRevenue:          []domain.HourlyRevenue{},
	}

	var completed, cancelled int
	hourly := make(map[string]float64)

	for _, sale := range records {
		if sale.Status == domain.StatusCancelled {
			cancelled++
		} else {
			completed++
			stats.TotalRevenue += sale.TotalAmount

			if hour, ok := saleHour(sale.DateTime); ok {
				hourly[hour] += sale.TotalAmount
			}
		}

		stats.PaymentMethodBreakdown[sale.PaymentMethod]++
		stats.StatusBreakdown[domain.StatusLabel(sale.Status)]++
	}

	if completed+cancelled > 0 {
		rate := 100 * float64(completed) / float64(completed+cancelled)
		stats.CompletionRate = utils.RoundWithOneDecimalPlace(rate)
	}

	// Zero-padded "HH:00" keys sort lexicographically with midnight first.
	hours := make([]string, 0, len(hourly))
	for hour := range hourly {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	for _, hour := range hours {
		stats.HourlyRevenue = append(stats.HourlyRevenue, domain.HourlyRevenue{
			Hour:    hour,
			Revenue: utils.RoundWithTwoDecimalPlace(hourly[hour]),
		})
	}

	return stats
}

var saleTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// saleHour extracts the hour-of-day bucket from a sale timestamp. Records
// with an unparseable timestamp still count toward revenue and breakdowns;
// they only drop out of the hourly series.
func saleHour(dateTime string) (string, bool) {
	for _, layout := range saleTimeLayouts {
		if t, err := time.Parse(layout, dateTime); err == nil {
			return fmt.Sprintf("%02d:00", t.Hour()), true
		}
	}
	return "", false
}
