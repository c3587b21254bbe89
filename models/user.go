package models

import "time"

// UserLocation is a user's home location including the display address.
type UserLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address" json:"address"`
}

// UserOrder is the copy of an order unit embedded in the user document.
type UserOrder struct {
	ID               string          `bson:"id" json:"id"`
	Provider         ProviderSummary `bson:"provider" json:"provider"`
	UserID           string          `bson:"userId" json:"userId"`
	ProviderEmail    string          `bson:"providerEmail" json:"providerEmail"`
	ProviderLocation LatLng          `bson:"providerLocation" json:"providerLocation"`
	CartID           string          `bson:"cartId" json:"cartId"`
	ScheduleTime     time.Time       `bson:"scheduleTime" json:"scheduleTime"`
	OrderPlacedAt    time.Time       `bson:"orderPlacedAt" json:"orderPlacedAt"`
	Status           string          `bson:"status" json:"status"`
	PaymentStatus    string          `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID    string          `bson:"transactionId" json:"transactionId"`
	Reviews          []Review        `bson:"reviews" json:"reviews"`
}

// User represents a platform customer.
type User struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Email         string       `bson:"email" json:"email"`
	Password      string       `bson:"-" json:"password,omitempty"`
	PasswordHash  string       `bson:"passwordHash" json:"-"`
	Phone         string       `bson:"phone" json:"phone"`
	Location      UserLocation `bson:"location" json:"location"`
	Orders        []UserOrder  `bson:"orders" json:"orders"`
	AcceptedTerms bool         `bson:"tc" json:"tc"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt" json:"updatedAt"`
}
