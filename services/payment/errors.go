package payment

import (
	"errors"
	"fmt"

	"servicehub/database/repository"
	"servicehub/services/order"
)

// ProcessorError reports that the external processor declined or did not
// complete a capture. No order store is mutated when this is returned.
type ProcessorError struct {
	Status string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment not completed by processor, capture status %q", e.Status)
}

// PaymentNotFoundError reports a missing payment record.
type PaymentNotFoundError struct {
	Key string
}

func (e *PaymentNotFoundError) Error() string {
	return fmt.Sprintf("payment record %s not found", e.Key)
}

func storeErr(err error, store string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &order.OrderNotFoundError{Store: store}
	}
	return err
}

func paymentErr(err error, key string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &PaymentNotFoundError{Key: key}
	}
	return err
}
