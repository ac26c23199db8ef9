package domain

// MenuItem is a sellable product. An item belongs to exactly one group at a
// time; ownership moves only via an explicit create-in-group.
type MenuItem struct {
	ItemID          int64   `json:"itemId"`
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	ItemPrice       float64 `json:"itemPrice"`
}

// MenuGroup is a catalog category. The item list order reflects the server
// response and is never re-sorted.
type MenuGroup struct {
	GroupID   int64      `json:"groupId"`
	GroupName string     `json:"groupName"`
	Items     []MenuItem `json:"items"`
}

// ItemFields is the mutation payload for item create and update requests.
type ItemFields struct {
	ItemName        string  `json:"itemName"`
	ItemDescription string  `json:"itemDescription"`
	ItemPrice       float64 `json:"itemPrice"`
}
