package userRepo

import (
	"time"

	"servicehub/models"
)

// UserRepository defines methods for user data access, including the user's
// embedded copy of every order unit.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error

	// GetOrders returns the user's embedded order units.
	GetOrders(userID string) ([]models.UserOrder, error)
	// GetOrderByUnitID returns a single embedded order unit by its id.
	GetOrderByUnitID(userID, unitID string) (*models.UserOrder, error)
	// AppendOrders pushes order units onto the user's orders array.
	AppendOrders(userID string, orders []models.UserOrder) error
	// SetOrderStatusByCartID sets the status of the unit matching cartId.
	SetOrderStatusByCartID(userID, cartID, status string) error
	// SetOrderStatusByUnitID sets the status of the unit matching its id.
	SetOrderStatusByUnitID(userID, unitID, status string) error
	// SetOrderStatusBySchedule sets the status of the unit matching
	// providerEmail and scheduleTime.
	SetOrderStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, status string) error
	// SetOrderPaymentByCartID marks the matching unit paid. The lookup spans
	// all users since the processor callback carries no user id filter.
	SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error
	// UpsertOrderReview inserts or replaces the review on the unit matching
	// unitID, keyed by the reviewer and schedule time.
	UpsertOrderReview(userID, unitID string, review models.Review) error
}
