package handlers

import (
	"net/http"

	"servicehub/models"
	authSvc "servicehub/services/auth"

	"github.com/gin-gonic/gin"
)

// AuthService is assigned during startup wiring.
var AuthService *authSvc.DefaultAuthService

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupUser registers a customer account.
func SignupUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := AuthService.RegisterUser(&u)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": sess.Token})
}

// SigninUser authenticates a customer.
func SigninUser(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, sess, err := AuthService.LoginUser(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": sess.Token})
}

// SignupProvider registers a provider account.
func SignupProvider(c *gin.Context) {
	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := AuthService.RegisterProvider(&p)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": p, "token": sess.Token})
}

// SigninProvider authenticates a provider.
func SigninProvider(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, sess, err := AuthService.LoginProvider(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": p, "token": sess.Token})
}

// SignupAdmin registers an admin account.
func SignupAdmin(c *gin.Context) {
	var a models.Admin
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, err := AuthService.RegisterAdmin(&a)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"admin": a, "token": sess.Token})
}

// SigninAdmin authenticates an admin.
func SigninAdmin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	a, sess, err := AuthService.LoginAdmin(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": a, "token": sess.Token})
}

// Logout revokes the caller's cached session.
func Logout(c *gin.Context) {
	subject := c.GetString("subject")
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	if err := AuthService.Logout(subject); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
