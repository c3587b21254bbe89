package routes

import (
	"net/http"
	"time"

	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/services/auth"
	"servicehub/services/relay"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup and signin endpoints for the three
// account types.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/user/register", handlers.SignupUser)
	r.POST("/user/login", handlers.SigninUser)
	r.POST("/provider/register", handlers.SignupProvider)
	r.POST("/provider/login", handlers.SigninProvider)
	r.POST("/admin/register", handlers.SignupAdmin)
	r.POST("/admin/login", handlers.SigninAdmin)
	r.POST("/logout", middleware.RequireAuth(), handlers.Logout)
}

// RegisterUserOrderRoutes registers the customer-facing order endpoints.
func RegisterUserOrderRoutes(r *gin.Engine) {
	api := r.Group("/user/order")
	api.Use(middleware.RequireAuth(), middleware.RequireRole(auth.RoleUser, auth.RoleAdmin))
	{
		api.POST("/addOrder", handlers.AddOrder)
		api.GET("/getOrder/:userId", handlers.GetUserOrders)
		api.POST("/cancelOrder", handlers.CancelOrder)
		api.POST("/feedbackForm", handlers.SubmitFeedback)
	}
}

// RegisterProviderOrderRoutes registers the provider console endpoints.
func RegisterProviderOrderRoutes(r *gin.Engine) {
	api := r.Group("/provider/order")
	api.Use(middleware.RequireAuth(), middleware.RequireRole(auth.RoleProvider, auth.RoleAdmin))
	{
		api.GET("/getOrder/:providerId", handlers.GetProviderOrders)
		api.POST("/updateStatus", handlers.UpdateOrderStatusByProvider)
		api.POST("/cancelOrder", handlers.CancelOrderByProvider)
	}
}

// RegisterAdminOrderRoutes registers the admin dashboard endpoints.
func RegisterAdminOrderRoutes(r *gin.Engine) {
	api := r.Group("/admin/order")
	api.Use(middleware.RequireAuth(), middleware.RequireRole(auth.RoleAdmin))
	{
		api.GET("/getOrder/:adminId", handlers.GetAdminOrders)
		api.POST("/updateStatus", handlers.UpdateOrderStatusByAdmin)
		api.POST("/cancelOrder", handlers.CancelOrderByAdmin)
	}
}

// RegisterPaymentRoutes registers the payment flow. The completeOrder and
// cancelOrder endpoints are processor redirects, so they carry no auth.
func RegisterPaymentRoutes(r *gin.Engine) {
	api := r.Group("/order")
	{
		api.POST("/confirmPayment", middleware.RequireAuth(), handlers.ConfirmPayment)
		api.GET("/fetchPaymentDetails/:userId/:scheduleTime/:price", middleware.RequireAuth(), handlers.FetchPaymentDetails)
		api.GET("/pay/:orderId/:price", handlers.Pay)
		api.GET("/completeOrder", handlers.CompleteOrder)
		api.GET("/cancelOrder", handlers.CancelPayment)
	}
}

// RegisterCartRoutes registers the pre-checkout cart endpoints.
func RegisterCartRoutes(r *gin.Engine) {
	api := r.Group("/cart")
	api.Use(middleware.RequireAuth())
	{
		api.POST("/addToCart", handlers.AddToCart)
		api.GET("/getCart/:userId", handlers.GetCart)
		api.DELETE("/removeItem/:userId/:itemId", handlers.RemoveCartItem)
		api.DELETE("/clearCart/:userId", handlers.ClearCart)
	}
}

// RegisterBrowseRoutes registers the public provider directory reads.
func RegisterBrowseRoutes(r *gin.Engine) {
	r.GET("/providers", handlers.GetProviders)
	r.GET("/providers/:providerId", handlers.GetProvider)
	r.GET("/users/:userId", middleware.RequireAuth(), handlers.GetUser)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ServiceHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hub *relay.Hub) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterBrowseRoutes(r)
	RegisterUserOrderRoutes(r)
	RegisterProviderOrderRoutes(r)
	RegisterAdminOrderRoutes(r)
	RegisterPaymentRoutes(r)
	RegisterCartRoutes(r)

	// Broadcast relay channel; consoles subscribe for order events.
	r.GET("/ws", handlers.ServeWS(hub))
}
