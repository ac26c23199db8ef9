package domain

// Sale is one completed or cancelled transaction as recorded by the POS
// ledger. Records are immutable once fetched.
type Sale struct {
	ID            int64      `json:"id"`
	BillNumber    int64      `json:"billNumber"`
	TokenNumber   int64      `json:"tokenNumber"`
	Status        int        `json:"status"`
	Store         int        `json:"store"`
	TotalAmount   float64    `json:"totalAmount"`
	DateTime      string     `json:"dateTime"`
	PaymentMethod string     `json:"paymentMethod"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerPhone string     `json:"customerPhone"`
	Items         []SaleLine `json:"items"`
}

// SaleLine is one product line within a sale. The line total is always
// quantity x unit price, never stored independently.
type SaleLine struct {
	ID       int64    `json:"id"`
	Quantity int      `json:"quantity"`
	Item     MenuItem `json:"item"`
}

// SalesPage is one page of the paginated sales-by-date-store endpoint.
type SalesPage struct {
	Content       []Sale `json:"content"`
	TotalElements int64  `json:"totalElements"`
}
