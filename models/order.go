package models

import "time"

type OrderStatus string
type OrderMode string

const (
	OrderStatusPending OrderStatus = "pending"

	OrderModeCart   OrderMode = "cart"    // order assembled from the cart
	OrderModeBuyNow OrderMode = "buy-now" // single ad-hoc item, cart untouched
)

// CustomerInfo is the shipping and payment block captured at checkout.
type CustomerInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"` // e.g. "card", "cod"
}

// Order is an immutable snapshot appended to the order log. Totals are
// computed once at creation and never recomputed; Total is always
// Subtotal + Shipping + Tax.
type Order struct {
	ID       string       `json:"id"`
	UserID   string       `json:"user_id"`
	Date     time.Time    `json:"date"`
	Customer CustomerInfo `json:"customer"`
	Items    []CartLine   `json:"items"`
	Mode     OrderMode    `json:"mode"`
	Status   OrderStatus  `json:"status"`
	Subtotal float64      `json:"subtotal"`
	Shipping float64      `json:"shipping"`
	Tax      float64      `json:"tax"` // stored unrounded; rounded only for display
	Total    float64      `json:"total"`
}
