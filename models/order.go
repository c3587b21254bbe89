package models

import "time"

// Order lifecycle statuses. Status only moves forward through this sequence;
// cancelled is reachable from placed.
const (
	StatusPlaced         = "placed"
	StatusAccepted       = "accepted"
	StatusOnsite         = "onsite"
	StatusWorkInProgress = "work-in-progress"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

// Payment statuses.
const (
	PaymentUnpaid   = "Unpaid"
	PaymentPaid     = "Paid"
	PaymentRefunded = "Refunded"
)

// ValidStatuses lists every accepted order status.
var ValidStatuses = []string{
	StatusPlaced,
	StatusAccepted,
	StatusOnsite,
	StatusWorkInProgress,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether an order unit in status s may no longer
// transition.
func IsTerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Review is a customer rating attached to an order unit.
type Review struct {
	UserID       string    `bson:"userId" json:"userId"`
	Star         int       `bson:"star" json:"star"`
	Comment      string    `bson:"comment" json:"comment"`
	ScheduleTime time.Time `bson:"scheduleTime" json:"scheduleTime"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProviderSummary is the provider snapshot embedded in user orders, cart
// items and top-level order line items.
type ProviderSummary struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Price       string `bson:"price" json:"price"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Address     string `bson:"address" json:"address"`
	Image       string `bson:"image" json:"image"`
}

// OrderLineItem is one provider selection inside a top-level checkout order.
type OrderLineItem struct {
	ID            string    `bson:"id" json:"id"`
	Provider      ProviderSummary `bson:"provider" json:"provider"`
	UserID        string    `bson:"userId" json:"userId"`
	ProviderEmail string    `bson:"providerEmail" json:"providerEmail"`
	CartID        string    `bson:"cartId" json:"cartId"`
	ScheduleTime  time.Time `bson:"scheduleTime" json:"scheduleTime"`
	OrderPlacedAt time.Time `bson:"orderPlacedAt" json:"orderPlacedAt"`
	Status        string    `bson:"status" json:"status"`
	Reviews       []Review  `bson:"reviews" json:"reviews"`
}

// Order is one document per checkout transaction. Payment state lives at the
// document level; line items carry per-provider status.
type Order struct {
	ID            string          `bson:"id" json:"id"`
	UserID        string          `bson:"userId" json:"userId"`
	Orders        []OrderLineItem `bson:"orders" json:"orders"`
	TotalPrice    float64         `bson:"totalPrice" json:"totalPrice"`
	PaymentStatus string          `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string          `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}
