package adminRepo

import (
	"time"

	"servicehub/models"
)

// AdminRepository defines methods for the admin document, the fourth copy of
// every order unit. The system expects exactly one admin.
type AdminRepository interface {
	// GetSingleton returns the one admin document.
	GetSingleton() (*models.Admin, error)
	// GetByID retrieves an admin by its unique ID.
	GetByID(id string) (*models.Admin, error)
	// GetByEmail retrieves an admin by its email address.
	GetByEmail(email string) (*models.Admin, error)
	// Create inserts a new admin record.
	Create(admin *models.Admin) error

	// GetOrders returns the admin's embedded order units.
	GetOrders(adminID string) ([]models.AdminOrder, error)
	// AppendOrders pushes order units onto the admin's orders array.
	AppendOrders(adminID string, orders []models.AdminOrder) error
	// SetOrderStatusByCartID sets the status of the unit matching cartId.
	SetOrderStatusByCartID(cartID, status string) error
	// SetOrderStatusBySchedule sets the status of the unit matching
	// providerEmail and scheduleTime.
	SetOrderStatusBySchedule(providerEmail string, scheduleTime time.Time, status string) error
	// SetOrderPaymentByCartID marks the matching unit paid.
	SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error
	// UpsertOrderReview inserts or replaces a review on the unit matching the
	// reviewer, providerEmail and scheduleTime.
	UpsertOrderReview(reviewerID, providerEmail string, scheduleTime time.Time, review models.Review) error
}
