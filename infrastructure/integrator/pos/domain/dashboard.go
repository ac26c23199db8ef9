package domain

// MonthlySales is one month bucket of the pre-aggregated dashboard summary.
type MonthlySales struct {
	Month      string  `json:"month"`
	SalesCount int64   `json:"salesCount"`
	Revenue    float64 `json:"revenue"`
}

// DashboardSummary is the server-side pre-aggregated response of the
// dashboard endpoint. Status and store maps are keyed by the raw numeric
// codes as strings; the console projects them to display labels.
type DashboardSummary struct {
	TotalSalesCount      int64              `json:"totalSalesCount"`
	TotalRevenue         float64            `json:"totalRevenue"`
	SalesByPaymentMethod map[string]float64 `json:"salesByPaymentMethod"`
	SalesByStatus        map[string]int64   `json:"salesByStatus"`
	MonthlySales         []MonthlySales     `json:"monthlySales"`
	StoreSales           map[string]float64 `json:"storeSales"`
}
