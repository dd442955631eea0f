package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/torianyap/e-commerce-server-1/helpers"
	"github.com/torianyap/e-commerce-server-1/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CredentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user := models.User{
			Email:    input.Email,
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Email already registered")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
	}
}

// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CredentialsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			helpers.JSONError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			helpers.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
			helpers.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token := IssueJWT(user.ID, user.Email, user.Role)
		if token == "" {
			helpers.JSONError(c, http.StatusInternalServerError, "Failed to issue token")
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}

// IssueJWT generates a signed 24h token for a user.
func IssueJWT(userID uint, email, role string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signedToken
}
