package orderRepo

import (
	"time"

	"servicehub/models"
)

// OrderRepository defines methods for the top-level order collection, the
// third copy of every order unit.
type OrderRepository interface {
	// Create inserts a new top-level order document.
	Create(order *models.Order) error
	// GetByUserID returns all top-level orders placed by a user.
	GetByUserID(userID string) ([]models.Order, error)
	// SetLineStatusByCartID sets the status of the line item matching cartId.
	SetLineStatusByCartID(cartID, status string) error
	// SetLineStatusBySchedule sets the status of the line item matching
	// userId, providerEmail and scheduleTime.
	SetLineStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, status string) error
	// SetPaymentByCartID marks the whole order paid, matched by a line item's
	// cartId.
	SetPaymentByCartID(cartID, paymentStatus, transactionID string) error
	// UpsertLineReview inserts or replaces a review on the line item matching
	// userId, providerEmail and scheduleTime.
	UpsertLineReview(userID, providerEmail string, scheduleTime time.Time, review models.Review) error
}
