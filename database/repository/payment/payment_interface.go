package paymentRepo

import (
	"time"

	"servicehub/models"
)

// PaymentRepository defines methods for payment-intent bookkeeping records.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// GetByOrderID retrieves the payment record for a correlation id.
	GetByOrderID(orderID string) (*models.Payment, error)
	// GetByUserSchedulePrice retrieves the payment record matching a user,
	// schedule time and price.
	GetByUserSchedulePrice(userID string, scheduleTime time.Time, price float64) (*models.Payment, error)
	// MarkPaid sets paymentStatus=Paid and the transaction id on the record
	// matching orderID, returning the record as it was before the update.
	MarkPaid(orderID, transactionID string) (*models.Payment, error)
}
