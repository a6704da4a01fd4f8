package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/storage"
)

const (
	ThemeDark    = "dark"
	ThemeLight   = "light"
	defaultTheme = ThemeLight
)

type ThemeInput struct {
	Theme string `json:"theme" binding:"required"`
}

// GET /user/theme
func GetTheme(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		theme := defaultTheme
		var stored string
		if ok, err := kv.Durable.Get(storage.ThemeKey(owner), &stored); ok && err == nil {
			theme = stored
		}
		c.JSON(http.StatusOK, gin.H{"theme": theme})
	}
}

// PUT /user/theme
func SetTheme(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ThemeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Theme != ThemeDark && input.Theme != ThemeLight {
			c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be \"dark\" or \"light\""})
			return
		}

		if err := kv.Durable.Set(storage.ThemeKey(owner), input.Theme); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"theme": input.Theme})
	}
}
