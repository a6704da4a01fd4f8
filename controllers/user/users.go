package userControllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// GET /user
// The current user is derived from the session record; a session whose user
// was deleted out-of-band reads as logged out.
func GetUser(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			// Guest tokens carry no email and have no profile.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		user, ok := auth.CurrentUser(kv, email)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Not logged in",
				"redirect": "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI()),
			})
			return
		}
		c.JSON(http.StatusOK, user.Public())
	}
}
