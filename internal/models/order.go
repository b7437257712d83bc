package models

// Order statuses follow the production workflow of the shop.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusDelivered  = "delivered"
)

// Order is a customer commission to be produced and delivered by a deadline.
type Order struct {
	ID             string  `json:"id"`
	CustomerName   string  `json:"customer_name"`
	Description    string  `json:"description"`
	Deadline       string  `json:"deadline"`
	Status         string  `json:"status"`
	EstimatedValue float64 `json:"estimated_value"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

// ValidOrderStatus reports whether s is one of the known workflow statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusDelivered:
		return true
	}
	return false
}
