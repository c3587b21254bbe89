package handlers

import (
	"net/http"

	"servicehub/models"
	orderSvc "servicehub/services/order"

	"github.com/gin-gonic/gin"
)

// OrderService is assigned during startup wiring.
var OrderService orderSvc.OrderService

// AddOrder handles checkout: it fans the cart out across the four order
// stores and returns the created top-level order.
func AddOrder(c *gin.Context) {
	var req models.AddOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := OrderService.CreateOrder(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": created})
}

// GetUserOrders returns the order units embedded in the user document.
func GetUserOrders(c *gin.Context) {
	orders, err := OrderService.GetUserOrders(c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CancelOrder cancels one order unit on behalf of the user who placed it.
func CancelOrder(c *gin.Context) {
	var req models.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := OrderService.CancelByUser(req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}

// SubmitFeedback records a review for a completed order unit.
func SubmitFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := OrderService.SubmitFeedback(req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted successfully"})
}
