package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// SetupRoutes is the single entry-point that wires up Auth, Product, User,
// Order and Admin route groups.
func SetupRoutes(r *gin.Engine, kv *storage.KV, cat *catalog.Catalog) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, kv)

	// 2️⃣ Public product browsing
	SetupProductRoutes(r, cat)

	// 3️⃣ User routes (JWT-protected): profile, cart, buy-now, checkout, orders
	SetupUserRoutes(r, kv, cat)

	// 4️⃣ Order feed (websocket)
	SetupOrderRoutes(r)

	// 5️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, kv, cat)
}
