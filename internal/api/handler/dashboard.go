package handler

import (
	"net/http"
	"strconv"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/reporting"
	"github.com/mgeorge47/canteen-console-api/pkg/apiErrors"
	"github.com/mgeorge47/canteen-console-api/pkg/log"
	"github.com/mgeorge47/canteen-console-api/pkg/middleware"
	"github.com/mgeorge47/canteen-console-api/pkg/utils"
)

// DashboardResponse is the pre-aggregated summary with status and store keys
// projected to display labels.
type DashboardResponse struct {
	TotalSalesCount      int64                    `json:"totalSalesCount"`
	TotalRevenue         float64                  `json:"totalRevenue"`
	SalesByPaymentMethod map[string]float64       `json:"salesByPaymentMethod"`
	SalesByStatus        map[string]int64         `json:"salesByStatus"`
	MonthlySales         []posdomain.MonthlySales `json:"monthlySales"`
	StoreSales           map[string]float64       `json:"storeSales"`
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithField("start_date", r.URL.Query().Get("start_date")).Warn("dashboard: invalid start_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid start_date", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithField("end_date", r.URL.Query().Get("end_date")).Warn("dashboard: invalid end_date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid end_date", nil)
			return
		}

		// Omitted store means all stores
		var store *int
		if storeStr := r.URL.Query().Get("store"); storeStr != "" {
			code, err := strconv.Atoi(storeStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid store", nil)
				return
			}
			store = &code
		}

		dateRange := domain.DateRange{Start: *startDate, End: *endDate}

		summary, err := service.Dashboard(r.Context(), sess.Credential, dateRange, store)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(projectDashboard(summary)); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func projectDashboard(summary *posdomain.DashboardSummary) DashboardResponse {
	resp := DashboardResponse{
		TotalSalesCount:      summary.TotalSalesCount,
		TotalRevenue:         summary.TotalRevenue,
		SalesByPaymentMethod: summary.SalesByPaymentMethod,
		SalesByStatus:        make(map[string]int64, len(summary.SalesByStatus)),
		MonthlySales:         summary.MonthlySales,
		StoreSales:           make(map[string]float64, len(summary.StoreSales)),
	}

	for key, count := range summary.SalesByStatus {
		resp.SalesByStatus[projectCode(key, domain.StatusLabel)] = count
	}
	for key, revenue := range summary.StoreSales {
		resp.StoreSales[projectCode(key, domain.StoreLabel)] = revenue
	}

	return resp
}

// projectCode maps a numeric map key to its label; non-numeric keys pass
// through unchanged.
func projectCode(key string, label func(int) string) string {
	code, err := strconv.Atoi(key)
	if err != nil {
		return key
	}
	return label(code)
}
