package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
	Price    *int    `json:"price" binding:"omitempty,gte=0"`
	Stock    *int    `json:"stock" binding:"omitempty,gte=0"`
}

// UpdateProduct updates an existing product by ID. Absent fields keep their
// current value.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			helpers.JSONError(c, http.StatusNotFound, "Product not found")
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := db.Save(&product).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to update product")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
