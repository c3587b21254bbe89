package handlers

import (
	"errors"
	"net/http"

	"servicehub/services/auth"
	"servicehub/services/order"
	"servicehub/services/payment"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates service-layer errors into HTTP responses.
// A store miss part way through a multi-store write names the failing store
// so callers can see which copies were updated before the failure.
func respondServiceError(c *gin.Context, err error) {
	var validation *order.ValidationError
	var notFound *order.NotFoundError
	var orderMiss *order.OrderNotFoundError
	var paymentMiss *payment.PaymentNotFoundError
	var processor *payment.ProcessorError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &orderMiss):
		c.JSON(http.StatusNotFound, gin.H{"error": orderMiss.Error(), "store": orderMiss.Store})
	case errors.As(err, &paymentMiss):
		c.JSON(http.StatusNotFound, gin.H{"error": paymentMiss.Error()})
	case errors.As(err, &processor):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": processor.Error(), "captureStatus": processor.Status})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, auth.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
