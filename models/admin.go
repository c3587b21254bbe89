package models

import "time"

// AdminUserSummary denormalizes user fields for the admin dashboard.
type AdminUserSummary struct {
	UserID   string `bson:"userId" json:"userId"`
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Location LatLon `bson:"location" json:"location"`
}

// AdminProviderSummary denormalizes provider fields for the admin dashboard.
type AdminProviderSummary struct {
	ProviderID string `bson:"providerId" json:"providerId"`
	Name       string `bson:"name" json:"name"`
	Phone      string `bson:"phone" json:"phone"`
	Location   LatLon `bson:"location" json:"location"`
}

// AdminOrder is the copy of an order unit embedded in the admin document,
// denormalizing both user and provider summaries. It exists purely as a
// read-optimized projection for the dashboard.
type AdminOrder struct {
	OrderID         string               `bson:"orderId" json:"orderId"`
	User            AdminUserSummary     `bson:"user" json:"user"`
	Provider        AdminProviderSummary `bson:"provider" json:"provider"`
	UserID          string               `bson:"userId" json:"userId"`
	ProviderEmail   string               `bson:"providerEmail" json:"providerEmail"`
	CartID          string               `bson:"cartId" json:"cartId"`
	TimeOrderPlaced time.Time            `bson:"timeOrderPlaced" json:"timeOrderPlaced"`
	ScheduleTime    time.Time            `bson:"scheduleTime" json:"scheduleTime"`
	Status          string               `bson:"status" json:"status"`
	Price           float64              `bson:"price" json:"price"`
	PaymentStatus   string               `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID   string               `bson:"transactionId" json:"transactionId"`
	Reviews         []Review             `bson:"reviews" json:"reviews"`
}

// Admin is the (de-facto singleton) admin document.
type Admin struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Email         string       `bson:"email" json:"email"`
	Password      string       `bson:"-" json:"password,omitempty"`
	PasswordHash  string       `bson:"passwordHash" json:"-"`
	Phone         string       `bson:"phone" json:"phone"`
	Address       string       `bson:"address" json:"address"`
	Orders        []AdminOrder `bson:"orders" json:"orders"`
	AcceptedTerms bool         `bson:"tc" json:"tc"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt" json:"updatedAt"`
}
