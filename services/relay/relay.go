package relay

import "time"

// Event names broadcast to every connected client.
const (
	EventNewOrder           = "new-order"
	EventOrderStatusUpdated = "order-status-updated"
	EventPaymentDetails     = "payment-details"
	EventOrderReminder      = "order-reminder"
)

// Inbound event names clients may send; each is rebroadcast to all peers.
const (
	InboundNewOrder       = "new-order"
	InboundUpdateStatus   = "update-order-status"
	InboundPaymentDetails = "payment-details"
)

// Event is the wire frame exchanged on the relay channel.
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// OrderStatusPayload carries a status change, keyed by the correlation id.
type OrderStatusPayload struct {
	CartID        string    `json:"cartId"`
	ProviderEmail string    `json:"providerEmail,omitempty"`
	ScheduleTime  time.Time `json:"scheduleTime,omitempty"`
	Status        string    `json:"status"`
}

// PaymentDetailsPayload carries a completed payment.
type PaymentDetailsPayload struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// ReminderPayload announces an upcoming scheduled service.
type ReminderPayload struct {
	CartID       string    `json:"cartId"`
	ProviderName string    `json:"providerName"`
	ScheduleTime time.Time `json:"scheduleTime"`
}

// Publisher is the notification side of the relay, implemented by Hub.
// Delivery is fire-and-forget; the REST endpoints stay the source of truth.
type Publisher interface {
	Publish(event string, payload interface{})
}
