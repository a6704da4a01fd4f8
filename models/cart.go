package models

import (
	"fmt"
	"time"
)

// CartLine is one distinct product+size+color entry in a cart. Name, price
// and image are snapshotted from the product at add time.
type CartLine struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// LineKey identifies this line within its cart. A cart holds at most one
// line per key.
func (l CartLine) LineKey() string {
	return LineKey(l.ProductID, l.Size, l.Color)
}

// LineKey builds the identity key for a product variant. Missing size or
// color collapses to "default" so plain and variant products share one
// keyspace.
func LineKey(productID uint, size, color string) string {
	if size == "" {
		size = "default"
	}
	if color == "" {
		color = "default"
	}
	return fmt.Sprintf("%d|%s|%s", productID, size, color)
}

// BuyNowItem is a single ad-hoc line that bypasses the cart. It lives in
// session-scoped storage and is consumed once an order is placed.
type BuyNowItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	IsBuyNow  bool    `json:"is_buy_now"`
}
