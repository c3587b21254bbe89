package payment

import (
	"errors"
	"time"

	"servicehub/database/repository"
	paymentRepo "servicehub/database/repository/payment"
	"servicehub/models"
	"servicehub/services/order"
	"servicehub/services/relay"

	"github.com/google/uuid"
)

// captureCompleted is the processor status required before any order store
// is marked paid.
const captureCompleted = "COMPLETED"

// PaymentService manages payment-intent records and applies a completed
// capture across the four order stores.
type PaymentService interface {
	// ConfirmPayment records a payment intent ahead of the processor
	// redirect. Confirming the same correlation id again returns the
	// existing record unchanged.
	ConfirmPayment(req models.ConfirmPaymentRequest) (*models.Payment, error)
	// FetchPaymentDetails looks up the payment record for a user's booking.
	FetchPaymentDetails(userID string, scheduleTime time.Time, price float64) (*models.Payment, error)
	// InitiatePayment creates a processor checkout order for an existing
	// payment record and returns the approval URL.
	InitiatePayment(orderID string, price float64) (string, error)
	// CompletePayment captures an approved processor order and, on success,
	// marks the payment record and every order store paid.
	CompletePayment(orderID, processorOrderID string) (*models.Payment, error)
}

// UnitPaymentStore marks one embedded order unit paid, correlated by cartId.
// The user, provider and admin repositories all satisfy it.
type UnitPaymentStore interface {
	SetOrderPaymentByCartID(cartID, paymentStatus, transactionID string) error
}

// OrderPaymentStore marks a top-level order document paid.
type OrderPaymentStore interface {
	SetPaymentByCartID(cartID, paymentStatus, transactionID string) error
}

// DefaultPaymentService is the production PaymentService.
type DefaultPaymentService struct {
	Payments  paymentRepo.PaymentRepository
	Users     UnitPaymentStore
	Providers UnitPaymentStore
	Orders    OrderPaymentStore
	Admins    UnitPaymentStore
	Processor Processor
	Relay     relay.Publisher
}

func (s *DefaultPaymentService) ConfirmPayment(req models.ConfirmPaymentRequest) (*models.Payment, error) {
	if req.OrderID == "" || req.UserID == "" {
		return nil, &order.ValidationError{Message: "orderId and userId are required"}
	}

	existing, err := s.Payments.GetByOrderID(req.OrderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	record := &models.Payment{
		ID:            uuid.New().String(),
		ProviderName:  req.ProviderName,
		ProviderEmail: req.ProviderEmail,
		Status:        req.Status,
		UserID:        req.UserID,
		ScheduleTime:  req.ScheduleTime,
		Price:         req.Price,
		PaymentStatus: models.PaymentUnpaid,
		OrderID:       req.OrderID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Payments.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *DefaultPaymentService) FetchPaymentDetails(userID string, scheduleTime time.Time, price float64) (*models.Payment, error) {
	record, err := s.Payments.GetByUserSchedulePrice(userID, scheduleTime, price)
	if err != nil {
		return nil, paymentErr(err, userID)
	}
	return record, nil
}

func (s *DefaultPaymentService) InitiatePayment(orderID string, price float64) (string, error) {
	record, err := s.Payments.GetByOrderID(orderID)
	if err != nil {
		return "", paymentErr(err, orderID)
	}
	if record.PaymentStatus == models.PaymentPaid {
		return "", &order.ValidationError{Message: "order is already paid"}
	}
	checkout := *record
	if price > 0 {
		checkout.Price = price
	}
	return s.Processor.CreateOrder(&checkout)
}

// CompletePayment captures the processor order and propagates the paid state
// in the sequence payment record, provider, admin, user, order. A capture
// that arrives for an already-paid record changes nothing and emits no event.
func (s *DefaultPaymentService) CompletePayment(orderID, processorOrderID string) (*models.Payment, error) {
	result, err := s.Processor.CaptureOrder(processorOrderID)
	if err != nil {
		return nil, err
	}
	if result.Status != captureCompleted {
		return nil, &ProcessorError{Status: result.Status}
	}

	previous, err := s.Payments.MarkPaid(orderID, result.ID)
	if err != nil {
		return nil, paymentErr(err, orderID)
	}
	paid := *previous
	paid.PaymentStatus = models.PaymentPaid
	paid.TransactionID = result.ID
	if previous.PaymentStatus == models.PaymentPaid {
		paid.TransactionID = previous.TransactionID
		return &paid, nil
	}

	if err := s.Providers.SetOrderPaymentByCartID(orderID, models.PaymentPaid, result.ID); err != nil {
		return nil, storeErr(err, order.StoreProvider)
	}
	if err := s.Admins.SetOrderPaymentByCartID(orderID, models.PaymentPaid, result.ID); err != nil {
		return nil, storeErr(err, order.StoreAdmin)
	}
	if err := s.Users.SetOrderPaymentByCartID(orderID, models.PaymentPaid, result.ID); err != nil {
		return nil, storeErr(err, order.StoreUser)
	}
	if err := s.Orders.SetPaymentByCartID(orderID, models.PaymentPaid, result.ID); err != nil {
		return nil, storeErr(err, order.StoreOrder)
	}

	if s.Relay != nil {
		s.Relay.Publish(relay.EventPaymentDetails, relay.PaymentDetailsPayload{
			OrderID:       orderID,
			TransactionID: result.ID,
		})
	}
	return &paid, nil
}
