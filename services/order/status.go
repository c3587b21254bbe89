package order

import (
	"fmt"
	"time"

	"servicehub/models"
	"servicehub/services/relay"
)

// guardTransition rejects unknown statuses and transitions out of a terminal
// state. Forward-only progression within the active statuses is a policy the
// consoles follow but the service does not enforce.
func guardTransition(current *models.ProviderOrder, newStatus string) error {
	if !models.IsValidStatus(newStatus) {
		return &ValidationError{Message: fmt.Sprintf("unknown status %q", newStatus)}
	}
	if models.IsTerminalStatus(current.Status) {
		return &ValidationError{
			Message: fmt.Sprintf("order is already %s and can no longer change status", current.Status),
		}
	}
	return nil
}

// UpdateStatusByCartID updates the matching order unit in all four stores,
// correlated by cartId. The writes run in the canonical sequence provider,
// user, order, admin; a store that fails to match aborts the sequence and is
// reported, but earlier updates stay applied.
func (s *DefaultOrderService) UpdateStatusByCartID(userID, cartID, newStatus string) error {
	current, providerEmail, err := s.Providers.GetOrderByCartID(cartID)
	if err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := guardTransition(current, newStatus); err != nil {
		return err
	}

	if err := s.Providers.SetOrderStatusByCartID(cartID, newStatus); err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := s.Users.SetOrderStatusByCartID(userID, cartID, newStatus); err != nil {
		return storeErr(err, StoreUser)
	}
	if err := s.Orders.SetLineStatusByCartID(cartID, newStatus); err != nil {
		return storeErr(err, StoreOrder)
	}
	if err := s.Admins.SetOrderStatusByCartID(cartID, newStatus); err != nil {
		return storeErr(err, StoreAdmin)
	}

	s.publishStatus(relay.OrderStatusPayload{
		CartID:        cartID,
		ProviderEmail: providerEmail,
		ScheduleTime:  current.ScheduleTime,
		Status:        newStatus,
	})
	return nil
}

// UpdateStatusBySchedule updates the matching order unit in all four stores,
// correlated by providerEmail, scheduleTime and userId. Two bookings with
// the same provider and coincidentally equal schedule times can cross-update
// here; the correlation keys are preserved as-is.
func (s *DefaultOrderService) UpdateStatusBySchedule(userID, providerEmail string, scheduleTime time.Time, newStatus string) error {
	current, err := s.Providers.GetOrderBySchedule(providerEmail, scheduleTime)
	if err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := guardTransition(current, newStatus); err != nil {
		return err
	}

	if err := s.Providers.SetOrderStatusBySchedule(providerEmail, scheduleTime, newStatus); err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := s.Users.SetOrderStatusBySchedule(userID, providerEmail, scheduleTime, newStatus); err != nil {
		return storeErr(err, StoreUser)
	}
	if err := s.Orders.SetLineStatusBySchedule(userID, providerEmail, scheduleTime, newStatus); err != nil {
		return storeErr(err, StoreOrder)
	}
	if err := s.Admins.SetOrderStatusBySchedule(providerEmail, scheduleTime, newStatus); err != nil {
		return storeErr(err, StoreAdmin)
	}

	s.publishStatus(relay.OrderStatusPayload{
		CartID:        current.CartID,
		ProviderEmail: providerEmail,
		ScheduleTime:  scheduleTime,
		Status:        newStatus,
	})
	return nil
}

// CancelByUser hard-sets the matching order unit to cancelled across the four
// stores, in the same canonical sequence as any other transition.
func (s *DefaultOrderService) CancelByUser(req models.CancelOrderRequest) error {
	current, err := s.Providers.GetOrderBySchedule(req.ProviderEmail, req.ScheduleTime)
	if err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := guardTransition(current, models.StatusCancelled); err != nil {
		return err
	}

	if err := s.Providers.SetOrderStatusBySchedule(req.ProviderEmail, req.ScheduleTime, models.StatusCancelled); err != nil {
		return storeErr(err, StoreProvider)
	}
	if err := s.Users.SetOrderStatusByUnitID(req.UserID, req.OrderID, models.StatusCancelled); err != nil {
		return storeErr(err, StoreUser)
	}
	if err := s.Orders.SetLineStatusBySchedule(req.UserID, req.ProviderEmail, req.ScheduleTime, models.StatusCancelled); err != nil {
		return storeErr(err, StoreOrder)
	}
	if err := s.Admins.SetOrderStatusBySchedule(req.ProviderEmail, req.ScheduleTime, models.StatusCancelled); err != nil {
		return storeErr(err, StoreAdmin)
	}

	s.publishStatus(relay.OrderStatusPayload{
		CartID:        current.CartID,
		ProviderEmail: req.ProviderEmail,
		ScheduleTime:  req.ScheduleTime,
		Status:        models.StatusCancelled,
	})
	return nil
}

func (s *DefaultOrderService) publishStatus(payload relay.OrderStatusPayload) {
	if s.Relay != nil {
		s.Relay.Publish(relay.EventOrderStatusUpdated, payload)
	}
}
