package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// -------- Handlers --------

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateQuantityInput struct {
	// Pointer so that 0 survives binding: quantity 0 means "remove".
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /user/cart
func GetCart(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines := Load(kv, owner)
		c.JSON(http.StatusOK, gin.H{
			"items": lines,
			"count": ItemCount(lines),
			"total": Total(lines),
		})
	}
}

// POST /user/cart
func AddItemHandler(kv *storage.KV, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		lines, err := AddItem(kv, owner, &product, input.Quantity, input.Size, input.Color)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Added to cart",
			"items":   lines,
			"count":   ItemCount(lines),
		})
	}
}

// PUT /user/cart/:line_key
func UpdateQuantityHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lines, err := UpdateQuantity(kv, owner, c.Param("line_key"), *input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart updated",
			"items":   lines,
			"count":   ItemCount(lines),
		})
	}
}

// DELETE /user/cart/:line_key
func RemoveItemHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines, err := RemoveItem(kv, owner, c.Param("line_key"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart item removed",
			"items":   lines,
			"count":   ItemCount(lines),
		})
	}
}

// DELETE /user/cart
func ClearCartHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := Clear(kv, owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "count": 0})
	}
}

// POST /user/buy-now
func SetBuyNowHandler(kv *storage.KV, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := cat.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		item, err := SetBuyNow(kv, owner, &product, input.Quantity, input.Size, input.Color)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Ready to check out", "item": item})
	}
}

// GET /user/buy-now
func GetBuyNowHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		item, ok := GetBuyNow(kv, owner)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No buy-now item pending"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
