package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

// ProductInput carries the declarative field validation for catalog writes:
// non-empty name, URL-shaped image, non-negative integer price and stock.
type ProductInput struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
	Price    *int   `json:"price" binding:"required,gte=0"`
	Stock    *int   `json:"stock" binding:"required,gte=0"`
}

// CreateProduct adds a new product to the catalog.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		product := models.Product{
			Name:     input.Name,
			ImageURL: input.ImageURL,
			Price:    *input.Price,
			Stock:    *input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to create product")
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
