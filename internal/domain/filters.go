package domain

import "time"

// PageSize is the fixed page size for sales queries.
const PageSize = 20

// DateRange is an inclusive day window. Callers are responsible for keeping
// Start <= End; the range is expanded to start-of-day/end-of-day timestamps
// only when transmitted upstream.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// SalesFilter is the tuple of user-chosen parameters driving a sales fetch.
type SalesFilter struct {
	Date  time.Time
	Store int
	Page  int
}

// Equal reports whether two filters would issue the same upstream query.
func (f SalesFilter) Equal(other SalesFilter) bool {
	return f.Date.Equal(other.Date) && f.Store == other.Store && f.Page == other.Page
}
