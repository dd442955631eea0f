package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/torianyap/e-commerce-server-1/controllers/cart"
	"github.com/torianyap/e-commerce-server-1/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))           // GET /cart
		cartGroup.PUT("", cartControllers.UpdateCart(db))        // PUT /cart
		cartGroup.DELETE("/:id", cartControllers.RemoveCart(db)) // DELETE /cart/:id
		cartGroup.POST("/checkout", cartControllers.Checkout(db))
		cartGroup.GET("/history", cartControllers.GetHistory(db))
	}
}
