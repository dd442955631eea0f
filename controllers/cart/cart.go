package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

type CartInput struct {
	ProductID uint `json:"ProductId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			helpers.JSONError(c, http.StatusUnauthorized, "Not Authorized")
			return
		}
		userID := userIDVal.(uint)

		var cart []models.Cart
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cart).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			helpers.JSONError(c, http.StatusUnauthorized, "Not Authorized")
			return
		}
		userID := userIDVal.(uint)

		var input CartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				helpers.JSONError(c, http.StatusNotFound, "Product not found")
			} else {
				helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch product")
			}
			return
		}

		var cart models.Cart
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&cart).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch cart")
				return
			}

			// First add of this product: the line always starts at quantity 1,
			// whatever quantity the client asked for.
			newCart := models.Cart{
				UserID:    userID,
				ProductID: input.ProductID,
				Quantity:  1,
			}
			if err := db.Create(&newCart).Error; err != nil {
				helpers.JSONError(c, http.StatusInternalServerError, "Failed to add item to cart")
				return
			}
			c.JSON(http.StatusCreated, newCart)
			return
		}

		if product.Stock < cart.Quantity+input.Quantity {
			helpers.JSONError(c, http.StatusBadRequest, "Limit Reached")
			return
		}
		// Defensive: the lookup above is already scoped to userID.
		if cart.UserID != userID {
			helpers.JSONError(c, http.StatusUnauthorized, "Not Authorized")
			return
		}

		res := db.Model(&models.Cart{}).
			Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", input.Quantity))
		if res.Error != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to update cart")
			return
		}
		if res.RowsAffected != 1 {
			helpers.JSONError(c, http.StatusNotFound, "Update Cart Failed")
			return
		}

		var updated models.Cart
		if err := db.Preload("Product").
			Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			First(&updated).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /cart/:id
//
// The delete is scoped to the authenticated user, so one user cannot remove
// another user's cart line by guessing an id.
func RemoveCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			helpers.JSONError(c, http.StatusUnauthorized, "Not Authorized")
			return
		}
		userID := userIDVal.(uint)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			helpers.JSONError(c, http.StatusNotFound, "Delete Cart Failed")
			return
		}

		res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Cart{})
		if res.Error != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to delete cart")
			return
		}
		if res.RowsAffected != 1 {
			helpers.JSONError(c, http.StatusNotFound, "Delete Cart Failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{"msg": "Remove cart success"})
	}
}

// GET /cart/history
func GetHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			helpers.JSONError(c, http.StatusUnauthorized, "Not Authorized")
			return
		}
		userID := userIDVal.(uint)

		var history []models.History
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&history).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch history")
			return
		}

		c.JSON(http.StatusOK, history)
	}
}
