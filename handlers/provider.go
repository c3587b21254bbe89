package handlers

import (
	"errors"
	"net/http"

	"servicehub/database/repository"
	providerRepo "servicehub/database/repository/provider"
	userRepo "servicehub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// Repositories assigned during startup wiring for the plain entity reads.
var (
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository
)

// GetProviders lists every provider for the browse page.
func GetProviders(c *gin.Context) {
	providers, err := ProviderRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": providers})
}

// GetProvider returns a single provider by id.
func GetProvider(c *gin.Context) {
	provider, err := ProviderRepo.GetByID(c.Param("providerId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": provider})
}

// GetUser returns a single user by id.
func GetUser(c *gin.Context) {
	user, err := UserRepo.GetByID(c.Param("userId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
