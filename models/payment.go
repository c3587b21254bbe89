package models

import "time"

// Payment is the bookkeeping record created before redirecting a user to the
// external payment processor. OrderID carries the correlation id (cartId)
// that ties the record to the four order stores.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	ProviderName  string    `bson:"providerName" json:"providerName"`
	ProviderEmail string    `bson:"providerEmail" json:"providerEmail"`
	Status        string    `bson:"status" json:"status"`
	UserID        string    `bson:"userId" json:"userId"`
	ScheduleTime  time.Time `bson:"scheduleTime" json:"scheduleTime"`
	Price         float64   `bson:"price" json:"price"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	OrderID       string    `bson:"orderId" json:"orderId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
