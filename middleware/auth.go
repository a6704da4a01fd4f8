package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth validates the bearer token and records the caller's identity
// on the context. Requests without a valid token get a 401 carrying the
// login redirect for the page they were after.
func RequireAuth(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		unauthorized(c, "Authorization header is missing")
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		unauthorized(c, "Invalid or expired token")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		unauthorized(c, "Invalid token claims")
		return
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		unauthorized(c, "Invalid token claims")
		return
	}
	c.Set("user_id", userID)
	if email, _ := claims["email"].(string); email != "" {
		c.Set("email", email)
	}

	c.Next()
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":    msg,
		"redirect": "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI()),
	})
	c.Abort()
}
