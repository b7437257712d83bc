package models

// Sale is a completed transaction record. Products is a human-readable
// description synthesized from the cart at finalization; it is write-once
// and never parsed back into structured data.
type Sale struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	Products     string  `json:"products"`
	TotalValue   float64 `json:"total_value"`
	CreatedAt    string  `json:"created_at,omitempty"`
}
