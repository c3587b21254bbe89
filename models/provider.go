package models

import "time"

// ProviderOrder is the copy of an order unit embedded in the provider
// document, denormalizing the customer's contact details.
type ProviderOrder struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	UserName      string    `bson:"userName" json:"userName"`
	UserPhone     string    `bson:"userPhone" json:"userPhone"`
	UserEmail     string    `bson:"userEmail" json:"userEmail"`
	UserLocation  LatLon    `bson:"userLocation" json:"userLocation"`
	CartID        string    `bson:"cartId" json:"cartId"`
	ScheduleTime  time.Time `bson:"scheduleTime" json:"scheduleTime"`
	OrderPlacedAt time.Time `bson:"orderPlacedAt" json:"orderPlacedAt"`
	Status        string    `bson:"status" json:"status"`
	Price         float64   `bson:"price" json:"price"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Reviews       []Review  `bson:"reviews" json:"reviews"`
}

// Rating is a provider's aggregate review score.
type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Provider represents a service provider.
type Provider struct {
	ID            string          `bson:"id" json:"id"`
	Name          string          `bson:"name" json:"name"`
	Email         string          `bson:"email" json:"email"`
	Password      string          `bson:"-" json:"password,omitempty"`
	PasswordHash  string          `bson:"passwordHash" json:"-"`
	Phone         string          `bson:"phone" json:"phone"`
	Location      GeoLocation     `bson:"location" json:"location"`
	Address       string          `bson:"address" json:"address"`
	Price         string          `bson:"price" json:"price"`
	Image         string          `bson:"image" json:"image"`
	Description   string          `bson:"description" json:"description"`
	Orders        []ProviderOrder `bson:"orders" json:"orders"`
	TotalRating   Rating          `bson:"totalRating" json:"totalRating"`
	AcceptedTerms bool            `bson:"tc" json:"tc"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}
