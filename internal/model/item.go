package model

import "time"

// Item is a single inventory record. Optional columns are nil when unspecified;
// a nil Quantity is different from a zero Quantity.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  *string   `json:"category"`
	Quantity  *int64    `json:"quantity"`
	Price     *Price    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary holds the totals shown above the inventory table.
type Summary struct {
	TotalItems    int   `json:"total_items"`
	TotalQuantity int64 `json:"total_quantity"`
}

// Summarize counts items and sums their quantities. Items without a quantity
// contribute zero.
func Summarize(items []Item) Summary {
	s := Summary{TotalItems: len(items)}
	for _, it := range items {
		if it.Quantity != nil {
			s.TotalQuantity += *it.Quantity
		}
	}
	return s
}
