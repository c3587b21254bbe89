package cartRepo

import "servicehub/models"

// CartRepository defines methods for pre-checkout carts.
type CartRepository interface {
	// GetByUserID retrieves a user's cart.
	GetByUserID(userID string) (*models.Cart, error)
	// AddItem appends an item to the user's cart, creating the cart if absent.
	AddItem(userID string, item models.CartItem) error
	// RemoveItem removes a single item from the user's cart.
	RemoveItem(userID, itemID string) error
	// Clear empties the user's cart.
	Clear(userID string) error
}
