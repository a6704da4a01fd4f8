package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	adminController "github.com/junaidrashid-git/storefront-api/controllers/admin"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, kv *storage.KV, cat *catalog.Catalog) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminController.GetAllUsers(kv))

		// ─────────── Order Log ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetAllOrders(kv))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(kv))
		}

		// ─────────── Catalog ───────────
		adminGroup.POST("/catalog/reload", adminController.ReloadCatalog(cat))
	}
}
