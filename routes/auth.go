package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, kv *storage.KV) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(kv))
		authGroup.POST("/login", auth.LoginHandler(kv))
		authGroup.POST("/logout", middleware.RequireAuth, auth.LogoutHandler(kv))

		// Anonymous shoppers get a guest token for the cart
		authGroup.POST("/guest", auth.CreateGuestHandler())
	}
}
