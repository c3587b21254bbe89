package handlers

import (
	"net/http"

	"servicehub/models"
	cartSvc "servicehub/services/cart"

	"github.com/gin-gonic/gin"
)

// CartService is assigned during startup wiring.
var CartService cartSvc.CartService

// AddToCart appends a provider selection to the user's cart.
func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cart, err := CartService.AddItem(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cart": cart})
}

// GetCart returns the user's cart.
func GetCart(c *gin.Context) {
	cart, err := CartService.GetCart(c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// RemoveCartItem removes one selection from the user's cart.
func RemoveCartItem(c *gin.Context) {
	if err := CartService.RemoveItem(c.Param("userId"), c.Param("itemId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// ClearCart empties the user's cart.
func ClearCart(c *gin.Context) {
	if err := CartService.Clear(c.Param("userId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
