package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	userControllers "github.com/junaidrashid-git/storefront-api/controllers/user"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, kv *storage.KV, cat *catalog.Catalog) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── Profile & Preferences ────────────────
		userGroup.GET("/", userControllers.GetUser(kv))       // GET /user/
		userGroup.GET("/theme", userControllers.GetTheme(kv)) // GET /user/theme
		userGroup.PUT("/theme", userControllers.SetTheme(kv)) // PUT /user/theme

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(kv))                        // GET /user/cart
			cartGroup.POST("/", cartControllers.AddItemHandler(kv, cat))           // POST /user/cart
			cartGroup.PUT("/:line_key", cartControllers.UpdateQuantityHandler(kv)) // PUT /user/cart/:line_key
			cartGroup.DELETE("/:line_key", cartControllers.RemoveItemHandler(kv))  // DELETE /user/cart/:line_key
			cartGroup.DELETE("/", cartControllers.ClearCartHandler(kv))            // DELETE /user/cart
		}

		// ──────────────── Buy Now ────────────────
		userGroup.POST("/buy-now", cartControllers.SetBuyNowHandler(kv, cat)) // POST /user/buy-now
		userGroup.GET("/buy-now", cartControllers.GetBuyNowHandler(kv))       // GET /user/buy-now

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(kv))           // POST /user/checkout?mode=buy-now
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(kv))           // GET /user/orders
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(kv)) // GET /user/orders/:orderID
	}
}
