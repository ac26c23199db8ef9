package handler

import (
	"net/http"
	"strconv"
	"time"

	posdomain "github.com/mgeorge47/canteen-console-api/infrastructure/integrator/pos/domain"
	"github.com/mgeorge47/canteen-console-api/internal/domain"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/reporting"
	"github.com/mgeorge47/canteen-console-api/pkg/apiErrors"
	"github.com/mgeorge47/canteen-console-api/pkg/log"
	"github.com/mgeorge47/canteen-console-api/pkg/middleware"
	"github.com/mgeorge47/canteen-console-api/pkg/utils"
)

// SaleLineRow is one display-ready sale line with its derived total.
type SaleLineRow struct {
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	ItemPrice       float64 `json:"itemPrice"`
	Quantity        int     `json:"quantity"`
	LineTotal       float64 `json:"lineTotal"`
}

// SaleRow is one display-ready sale record.
type SaleRow struct {
	ID            int64         `json:"id"`
	BillNumber    int64         `json:"billNumber"`
	TokenNumber   int64         `json:"tokenNumber"`
	Status        int           `json:"status"`
	StatusLabel   string        `json:"statusLabel"`
	Store         int           `json:"store"`
	StoreLabel    string        `json:"storeLabel"`
	TotalAmount   float64       `json:"totalAmount"`
	DateTime      string        `json:"dateTime"`
	PaymentMethod string        `json:"paymentMethod"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []SaleLineRow `json:"items"`
}

// SalesResponse is one committed view snapshot: the page, its derived
// metrics, and the view state the snapshot belongs to.
type SalesResponse struct {
	State    reporting.ViewState    `json:"state"`
	Date     string                 `json:"date"`
	Store    int                    `json:"store"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
	Stats    *domain.AggregateStats `json:"stats,omitempty"`
	Records  []SaleRow              `json:"records,omitempty"`
}

func GetSales(views *reporting.ViewRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingSessionToken, "Not authenticated", nil)
			return
		}

		date := time.Now().Truncate(24 * time.Hour)
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				logger.WithField("date", dateStr).Warn("sales: invalid date parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date", nil)
				return
			}
			date = *parsed
		}

		store := domain.StoreErnakulam
		if storeStr := r.URL.Query().Get("store"); storeStr != "" {
			code, err := strconv.Atoi(storeStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid store", nil)
				return
			}
			store = code
		}

		page := 0
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			idx, err := strconv.Atoi(pageStr)
			if err != nil || idx < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid page", nil)
				return
			}
			page = idx
		}

		snap := views.ForSession(sess.ID).Apply(r.Context(), sess.Credential, date, store, page)

		if snap.State == reporting.StateFailed {
			writeServiceError(w, logger, snap.Err)
			return
		}

		resp := SalesResponse{
			State:    snap.State,
			Date:     snap.Filter.Date.Format(time.DateOnly),
			Store:    snap.Filter.Store,
			Page:     snap.Filter.Page,
			PageSize: domain.PageSize,
		}

		if snap.Report != nil {
			stats := snap.Report.Stats
			resp.Stats = &stats
			resp.Records = projectSales(snap.Report.Records)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("sales: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func projectSales(records []posdomain.Sale) []SaleRow {
	rows := make([]SaleRow, 0, len(records))

	for _, sale := range records {
		lines := make([]SaleLineRow, 0, len(sale.Items))
		for _, line := range sale.Items {
			lines = append(lines, SaleLineRow{
				ItemName:        line.Item.ItemName,
				ItemDescription: line.Item.ItemDescription,
				ItemPrice:       line.Item.ItemPrice,
				Quantity:        line.Quantity,
				LineTotal:       domain.LineTotal(line.Quantity, line.Item.ItemPrice),
			})
		}

		rows = append(rows, SaleRow{
			ID:            sale.ID,
			BillNumber:    sale.BillNumber,
			TokenNumber:   sale.TokenNumber,
			Status:        sale.Status,
			StatusLabel:   domain.StatusLabel(sale.Status),
			Store:         sale.Store,
			StoreLabel:    domain.StoreLabel(sale.Store),
			TotalAmount:   sale.TotalAmount,
			DateTime:      sale.DateTime,
			PaymentMethod: sale.PaymentMethod,
			CustomerName:  sale.CustomerName,
			CustomerPhone: sale.CustomerPhone,
			Items:         lines,
		})
	}

	return rows
}
