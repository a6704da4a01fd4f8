package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
)

// SetupProductRoutes registers the read-only catalog endpoints.
func SetupProductRoutes(r *gin.Engine, cat *catalog.Catalog) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(cat))        // GET /products?category=sale&featured=true
		products.GET("/:id", productcontroller.GetProductByID(cat)) // GET /products/:id
	}
}
