package handlers

import (
	"net/http"

	"servicehub/models"

	"github.com/gin-gonic/gin"
)

// GetProviderOrders returns the order units embedded in the provider document.
func GetProviderOrders(c *gin.Context) {
	orders, err := OrderService.GetProviderOrders(c.Param("providerId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatusByProvider applies a status transition from the provider
// console, correlated by cartId.
func UpdateOrderStatusByProvider(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.CartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cartId is required"})
		return
	}

	if err := OrderService.UpdateStatusByCartID(req.UserID, req.CartID, req.NewStatus); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "status": req.NewStatus})
}

// CancelOrderByProvider cancels an order unit from the provider console.
func CancelOrderByProvider(c *gin.Context) {
	var req models.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.CartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cartId is required"})
		return
	}

	if err := OrderService.UpdateStatusByCartID(req.UserID, req.CartID, models.StatusCancelled); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}
