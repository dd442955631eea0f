package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog. Supports an optional "search" filter on
// the product name.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("created_at DESC")

		if search := c.Query("search"); search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
