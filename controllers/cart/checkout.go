package cartControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"gorm.io/gorm"
)

type CheckoutInput struct {
	// Kept for wire compatibility; the receipt total is computed from the
	// line items, never from this value.
	Total int `json:"total"`
}

// generateReceiptRef returns a unique reference for a checkout receipt.
func generateReceiptRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /cart/checkout
//
// Converts every cart line of the user into history, decrements product stock
// and clears the cart in a single transaction, then dispatches the receipt
// email without waiting for it.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			helpers.JSONError(c, http.StatusUnauthorized, "Not Authorized")
			return
		}
		userID := userIDVal.(uint)
		email, _ := c.Get("email")

		var input CheckoutInput
		_ = c.ShouldBindJSON(&input)

		var cart []models.Cart
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cart).Error; err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if len(cart) == 0 {
			helpers.JSONError(c, http.StatusBadRequest, "Checkout failed")
			return
		}

		var items []helpers.ReceiptItem
		total := 0

		err := db.Transaction(func(tx *gorm.DB) error {
			var history []models.History

			for _, line := range cart {
				// No stock-floor re-check here: the only stock validation
				// happens when the line is incremented.
				res := tx.Model(&models.Product{}).
					Where("id = ?", line.ProductID).
					UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
				if res.Error != nil {
					return res.Error
				}

				items = append(items, helpers.ReceiptItem{
					Name:     line.Product.Name,
					Quantity: line.Quantity,
				})
				total += line.Product.Price * line.Quantity

				history = append(history, models.History{
					UserID:    line.UserID,
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
				})
			}

			if err := tx.Create(&history).Error; err != nil {
				return err
			}

			res := tx.Where("user_id = ?", userID).Delete(&models.Cart{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected < 1 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Checkout failed")
			return
		}

		reference := generateReceiptRef()
		recipient, _ := email.(string)

		payload := helpers.BuildReceipt(recipient, reference, items, total)
		go func() {
			if err := helpers.SendMail(payload); err != nil {
				log.Printf("❌ Failed to send receipt %s to %s: %v", reference, recipient, err)
			}
		}()

		broadcastCheckout(CheckoutEvent{
			UserID:    userID,
			Reference: reference,
			Items:     items,
			Total:     total,
			At:        time.Now(),
		})

		c.JSON(http.StatusOK, gin.H{"msg": "Checked out successfullly"})
	}
}
