package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/torianyap/e-commerce-server-1/controllers/product"
	"github.com/torianyap/e-commerce-server-1/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints. Every route
// requires a valid token; everything beyond browsing requires the admin role.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	productGroup := r.Group("/products")
	productGroup.Use(middleware.ValidateToken)
	{
		productGroup.GET("", productcontroller.GetProducts(db)) // GET /products

		productGroup.POST("", middleware.RequireAdmin, productcontroller.CreateProduct(db))
		productGroup.GET("/:id", middleware.RequireAdmin, productcontroller.GetProductByID(db))
		productGroup.PUT("/:id", middleware.RequireAdmin, productcontroller.UpdateProduct(db))
		productGroup.DELETE("/:id", middleware.RequireAdmin, productcontroller.DeleteProduct(db))

		productGroup.GET("/export-excel", middleware.RequireAdmin, productcontroller.ExportProductsToExcel(db))
		productGroup.POST("/import-excel", middleware.RequireAdmin, productcontroller.ImportProductsFromExcel(db))
	}
}
