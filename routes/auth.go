package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/torianyap/e-commerce-server-1/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public register/login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", auth.Register(db))
	r.POST("/login", auth.Login(db))
}
