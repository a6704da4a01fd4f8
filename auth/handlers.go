package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/storage"
)

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// redirectTarget echoes the page the client wanted before being sent to
// login. Only same-site paths are honoured; everything else falls back to
// home.
func redirectTarget(c *gin.Context) string {
	r := c.Query("redirect")
	if strings.HasPrefix(r, "/") && !strings.HasPrefix(r, "//") {
		return r
	}
	return "/"
}

// POST /auth/register?redirect=/checkout
func RegisterHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := Register(kv, input.Name, input.Email, input.Password, input.ConfirmPassword)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := issueToken(*user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user":     user.Public(),
			"token":    token,
			"redirect": redirectTarget(c),
		})
	}
}

// POST /auth/login?redirect=/checkout
func LoginHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := Login(kv, input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		token, err := issueToken(*user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":     user.Public(),
			"token":    token,
			"redirect": redirectTarget(c),
		})
	}
}

// POST /auth/logout
func LogoutHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := c.GetString("email"); email != "" {
			Logout(kv, email)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/"})
	}
}
