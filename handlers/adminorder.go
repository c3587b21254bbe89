package handlers

import (
	"net/http"

	"servicehub/models"

	"github.com/gin-gonic/gin"
)

// GetAdminOrders returns the order units embedded in the admin document.
func GetAdminOrders(c *gin.Context) {
	orders, err := OrderService.GetAdminOrders(c.Param("adminId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatusByAdmin applies a status transition from the admin
// dashboard, correlated by providerEmail, scheduleTime and userId.
func UpdateOrderStatusByAdmin(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.ProviderEmail == "" || req.ScheduleTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerEmail and scheduleTime are required"})
		return
	}

	if err := OrderService.UpdateStatusBySchedule(req.UserID, req.ProviderEmail, req.ScheduleTime, req.NewStatus); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "status": req.NewStatus})
}

// CancelOrderByAdmin cancels an order unit from the admin dashboard.
func CancelOrderByAdmin(c *gin.Context) {
	var req models.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.ProviderEmail == "" || req.ScheduleTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerEmail and scheduleTime are required"})
		return
	}

	if err := OrderService.UpdateStatusBySchedule(req.UserID, req.ProviderEmail, req.ScheduleTime, models.StatusCancelled); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
}
