package models

import "time"

// LineItemInput is one provider selection within a checkout request.
type LineItemInput struct {
	Provider         ProviderSummary `json:"provider"`
	ProviderLocation GeoLocation     `json:"providerLocation"`
	CartID           string          `json:"cartId"`
	ScheduleTime     time.Time       `json:"scheduleTime"`
}

// AddOrderRequest is the checkout payload.
type AddOrderRequest struct {
	UserID       string          `json:"userId"`
	Orders       []LineItemInput `json:"orders"`
	TotalPrice   float64         `json:"totalPrice"`
	UserLocation LatLng          `json:"userLocation"`
}

// UpdateStatusRequest carries the correlation key bundle for a status
// transition. The provider console sends cartId; the admin console sends
// scheduleTime plus providerEmail plus userId.
type UpdateStatusRequest struct {
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	ProviderEmail string    `json:"providerEmail"`
	CartID        string    `json:"cartId"`
	ScheduleTime  time.Time `json:"scheduleTime"`
	NewStatus     string    `json:"newStatus"`
}

// CancelOrderRequest identifies an order unit to cancel.
type CancelOrderRequest struct {
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	ProviderEmail string    `json:"providerEmail"`
	CartID        string    `json:"cartId"`
	ScheduleTime  time.Time `json:"scheduleTime"`
}

// FeedbackRequest is a review submission for a completed order unit.
type FeedbackRequest struct {
	UserID        string    `json:"userId"`
	OrderID       string    `json:"orderId"`
	ProviderEmail string    `json:"providerEmail"`
	ScheduleTime  time.Time `json:"scheduleTime"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
}

// ConfirmPaymentRequest creates a payment-intent record ahead of the external
// processor redirect.
type ConfirmPaymentRequest struct {
	ProviderName  string    `json:"providerName"`
	ProviderEmail string    `json:"providerEmail"`
	Status        string    `json:"status"`
	UserID        string    `json:"userId"`
	ScheduleTime  time.Time `json:"scheduleTime"`
	Price         float64   `json:"price"`
	OrderID       string    `json:"orderId"`
}

// AddToCartRequest adds a provider selection to a user's cart.
type AddToCartRequest struct {
	UserID       string       `json:"userId"`
	Provider     CartProvider `json:"provider"`
	ScheduleTime time.Time    `json:"scheduleTime"`
	FinalPrice   string       `json:"finalPrice"`
}

// ReminderPayload is the task payload for scheduled service reminders.
type ReminderPayload struct {
	CartID        string    `json:"cartId"`
	UserID        string    `json:"userId"`
	ProviderName  string    `json:"providerName"`
	ProviderEmail string    `json:"providerEmail"`
	ScheduleTime  time.Time `json:"scheduleTime"`
}
