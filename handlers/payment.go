package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"servicehub/config"
	"servicehub/models"
	paymentSvc "servicehub/services/payment"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentService is assigned during startup wiring.
var PaymentService paymentSvc.PaymentService

// ConfirmPayment records a payment intent ahead of the processor redirect.
func ConfirmPayment(c *gin.Context) {
	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := PaymentService.ConfirmPayment(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed", "payment": record})
}

// FetchPaymentDetails looks up the payment record for a user's booking by
// schedule time and price.
func FetchPaymentDetails(c *gin.Context) {
	scheduleTime, err := time.Parse(time.RFC3339, c.Param("scheduleTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduleTime, want RFC3339"})
		return
	}
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	record, err := PaymentService.FetchPaymentDetails(c.Param("userId"), scheduleTime, price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": record})
}

// Pay creates a processor checkout order and redirects the customer to the
// approval page.
func Pay(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	approvalURL, err := PaymentService.InitiatePayment(c.Param("orderId"), price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, approvalURL)
}

// CompleteOrder is the processor return URL. It captures the approved
// checkout order, marks every store paid and sends the customer back to the
// frontend success page.
func CompleteOrder(c *gin.Context) {
	orderID := c.Query("orderId")
	processorOrderID := c.Query("token")
	if orderID == "" || processorOrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId and token are required"})
		return
	}

	record, err := PaymentService.CompletePayment(orderID, processorOrderID)
	if err != nil {
		utils.GetLogger().Error("payment capture failed",
			zap.String("orderId", orderID), zap.Error(err))
		respondServiceError(c, err)
		return
	}

	target := fmt.Sprintf("%s/order/paymentSuccess?transactionId=%s&orderId=%s",
		config.AppConfig.FrontendBaseURL,
		url.QueryEscape(record.TransactionID),
		url.QueryEscape(orderID),
	)
	c.Redirect(http.StatusFound, target)
}

// CancelPayment is the processor cancel URL; nothing is mutated, the
// customer is sent back to the frontend.
func CancelPayment(c *gin.Context) {
	target := fmt.Sprintf("%s/order/paymentCancelled?orderId=%s",
		config.AppConfig.FrontendBaseURL,
		url.QueryEscape(c.Query("orderId")),
	)
	c.Redirect(http.StatusFound, target)
}
