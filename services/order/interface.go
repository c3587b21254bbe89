package order

import (
	"time"

	adminRepo "servicehub/database/repository/admin"
	orderRepo "servicehub/database/repository/order"
	providerRepo "servicehub/database/repository/provider"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"
	"servicehub/services/relay"
)

// OrderService owns the multi-store order lifecycle: checkout fan-out across
// the four order copies, status transitions, cancellation and feedback.
type OrderService interface {
	// CreateOrder fans a checkout out into the user, provider, order and
	// admin stores and returns the created top-level order.
	CreateOrder(req models.AddOrderRequest) (*models.Order, error)
	// GetUserOrders returns the user's embedded order units.
	GetUserOrders(userID string) ([]models.UserOrder, error)
	// GetProviderOrders returns the provider's embedded order units.
	GetProviderOrders(providerID string) ([]models.ProviderOrder, error)
	// GetAdminOrders returns the admin's embedded order units.
	GetAdminOrders(adminID string) ([]models.AdminOrder, error)
	// UpdateStatusByCartID applies a status transition correlated by cartId
	// (provider console variant).
	UpdateStatusByCartID(userID, cartID, newStatus string) error
	// UpdateStatusBySchedule applies a status transition correlated by
	// providerEmail plus scheduleTime plus userId (admin console variant).
	UpdateStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, newStatus string) error
	// CancelByUser cancels an order unit on behalf of the user who placed it.
	CancelByUser(req models.CancelOrderRequest) error
	// SubmitFeedback upserts a review into every store copy and recomputes
	// the provider's aggregate rating.
	SubmitFeedback(req models.FeedbackRequest) error
}

// ReminderScheduler queues a service reminder ahead of the scheduled time.
type ReminderScheduler interface {
	ScheduleReminder(payload models.ReminderPayload) error
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Orders    orderRepo.OrderRepository
	Admins    adminRepo.AdminRepository
	Relay     relay.Publisher
	// Reminders is optional; when nil no reminders are queued.
	Reminders ReminderScheduler
}

func (s *DefaultOrderService) GetUserOrders(userID string) ([]models.UserOrder, error) {
	orders, err := s.Users.GetOrders(userID)
	if err != nil {
		return nil, entityErr(err, "user", userID)
	}
	return orders, nil
}

func (s *DefaultOrderService) GetProviderOrders(providerID string) ([]models.ProviderOrder, error) {
	orders, err := s.Providers.GetOrders(providerID)
	if err != nil {
		return nil, entityErr(err, "provider", providerID)
	}
	return orders, nil
}

func (s *DefaultOrderService) GetAdminOrders(adminID string) ([]models.AdminOrder, error) {
	orders, err := s.Admins.GetOrders(adminID)
	if err != nil {
		return nil, entityErr(err, "admin", adminID)
	}
	return orders, nil
}
