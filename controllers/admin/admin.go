package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/catalog"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// GET /admin/users
func GetAllUsers(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := auth.AllUsers(kv)

		public := make([]models.PublicUser, 0, len(users))
		for _, u := range users {
			public = append(public, u.Public())
		}
		c.JSON(http.StatusOK, public)
	}
}

// GET /admin/orders
func GetAllOrders(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		history := orderControllers.OrderLog(kv)

		// Newest first for display; the stored log stays oldest first.
		orders := make([]models.Order, 0, len(history))
		for i := len(history) - 1; i >= 0; i-- {
			orders = append(orders, history[i])
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /admin/catalog/reload
func ReloadCatalog(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := cat.Reload()
		c.JSON(http.StatusOK, gin.H{"message": "Catalog reloaded", "count": len(products)})
	}
}
