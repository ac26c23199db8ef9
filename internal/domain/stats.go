package domain

// HourlyRevenue is the revenue summed over one hour-of-day bucket. Hour is a
// zero-padded "HH:00" string so buckets sort lexicographically with midnight
// before noon.
type HourlyRevenue struct {
	Hour    string  `json:"hour"`
	Revenue float64 `json:"revenue"`
}

// AggregateStats is the derived, non-persisted summary of one fetched sales
// page. It is recomputed from scratch on every fetch and never merged
// incrementally across pages.
type AggregateStats struct {
	TotalCount             int64           `json:"totalCount"`
	TotalRevenue           float64         `json:"totalRevenue"`
	CompletionRate         float64         `json:"completionRate"`
	PaymentMethodBreakdown map[string]int  `json:"paymentMethodBreakdown"`
	StatusBreakdown        map[string]int  `json:"statusBreakdown"`
	HourlyRevenue          []HourlyRevenue `json:"hourlyRevenue"`
}
