package models

import "time"

// CartProvider is the full provider snapshot stored on a cart item.
type CartProvider struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Description string      `bson:"description" json:"description"`
	Price       string      `bson:"price" json:"price"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone" json:"phone"`
	Location    GeoLocation `bson:"location" json:"location"`
	Address     string      `bson:"address" json:"address"`
	Image       string      `bson:"image" json:"image"`
}

// CartItem is one provider selection held in a cart prior to checkout.
type CartItem struct {
	ID           string       `bson:"id" json:"id"`
	Provider     CartProvider `bson:"provider" json:"provider"`
	ScheduleTime time.Time    `bson:"scheduleTime" json:"scheduleTime"`
	AddedAt      time.Time    `bson:"addedAt" json:"addedAt"`
}

// Cart holds a user's provider selections. Clearing the cart is the only
// deletion path in the order lifecycle.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}
