package domain

import "strconv"

// Sale status codes as recorded by the POS ledger. The mapping is fixed and
// must not be inferred from data.
const (
	StatusCompleted = 0
	StatusCancelled = 1
)

// Store codes for the two locations.
const (
	StoreErnakulam = 0
	StoreAluva     = 1
)

var storeNames = map[int]string{
	StoreErnakulam: "Ernakulam",
	StoreAluva:     "Aluva",
}

var statusNames = map[int]string{
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

// StoreLabel maps a store code to its display name. Unknown codes render as
// the code itself so a new store never breaks the console.
func StoreLabel(code int) string {
	if name, ok := storeNames[code]; ok {
		return name
	}
	return strconv.Itoa(code)
}

// StatusLabel maps a sale status code to its display name. Unknown codes
// render as the code itself.
func StatusLabel(code int) string {
	if name, ok := statusNames[code]; ok {
		return name
	}
	return strconv.Itoa(code)
}

// LineTotal computes the total of one sale line. Line totals are always
// derived, never stored independently.
func LineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}
