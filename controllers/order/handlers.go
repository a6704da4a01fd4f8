package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/errs"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// -------- Handlers --------

type CheckoutInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

func (in CheckoutInput) customer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:          in.Name,
		Email:         in.Email,
		Address:       in.Address,
		City:          in.City,
		PostalCode:    in.PostalCode,
		Country:       in.Country,
		PaymentMethod: in.PaymentMethod,
	}
}

// POST /user/checkout
// Checkout mode is conveyed by query parameter: ?mode=buy-now, absent means
// cart mode.
func CheckoutHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		mode := models.OrderModeCart
		if c.Query("mode") == string(models.OrderModeBuyNow) {
			mode = models.OrderModeBuyNow
		}

		order, err := PlaceOrder(kv, owner, input.customer(), mode)
		if err != nil {
			status := http.StatusInternalServerError
			if errs.IsValidation(err) || errors.Is(err, errs.ErrCartEmpty) || errors.Is(err, errs.ErrNoBuyNowItem) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GET /user/orders
func GetMyOrdersHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders := OrdersForOwner(kv, owner)
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
func GetOrderByIDHandler(kv *storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetString("user_id")
		if owner == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, ok := OrderByID(kv, c.Param("orderID"))
		if !ok || order.UserID != owner {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
