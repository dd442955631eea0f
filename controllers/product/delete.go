package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		res := db.Delete(&models.Product{}, id)
		if res.Error != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		if res.RowsAffected != 1 {
			helpers.JSONError(c, http.StatusNotFound, "Product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "Product deleted successfully"})
	}
}
