package providerRepo

import (
	"time"

	"servicehub/models"
)

// ProviderRepository defines methods for provider data access, including the
// provider's embedded copy of every order unit and the aggregate rating.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by its email address.
	GetByEmail(email string) (*models.Provider, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error

	// GetOrders returns the provider's embedded order units.
	GetOrders(providerID string) ([]models.ProviderOrder, error)
	// GetOrderByCartID returns the order unit matching cartId, searching
	// across all providers, along with the owning provider's email.
	GetOrderByCartID(cartID string) (*models.ProviderOrder, string, error)
	// GetOrderBySchedule returns the order unit matching providerEmail and
	// scheduleTime.
	GetOrderBySchedule(providerEmail string, scheduleTime time.Time) (*models.ProviderOrder, error)
	// AppendOrder pushes an order unit onto the provider's orders array.
	AppendOrder(providerID string, order models.ProviderOrder) error
	// SetOrderStatusByCartID sets the status of the unit matching cartId.
	SetOrderStatusByCartID(cartID, status string) error
	// SetOrderStatusBySchedule sets the status of the unit matching
	// providerEmail and scheduleTime.
	SetOrderStatusBySchedule(providerEmail string, scheduleTime time.Time, status string) error
	// SetOrderPaymentByCartID marks the matching unit paid.
	SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error
	// UpsertOrderReview inserts or replaces a review on the unit matching
	// providerEmail, the reviewer and scheduleTime.
	UpsertOrderReview(providerEmail, reviewerID string, scheduleTime time.Time, review models.Review) error
	// UpdateRating replaces the provider's aggregate rating.
	UpdateRating(providerID string, average float64, count int) error
}
