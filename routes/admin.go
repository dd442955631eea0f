package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/torianyap/e-commerce-server-1/controllers/cart"
	"github.com/torianyap/e-commerce-server-1/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the "/admin/*" endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// Live feed of completed checkouts
		adminGroup.GET("/checkouts/ws", cartControllers.CheckoutFeedHandler)
	}
}
