package orderControllers

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	"github.com/junaidrashid-git/storefront-api/errs"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// Pricing policy: a flat shipping charge and a fixed tax rate on the
// subtotal. Tax is stored unrounded; rounding happens only at display time.
const (
	ShippingFlat = 9.99
	TaxRate      = 0.08
)

// Round2 rounds to two decimals for display. Stored totals stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// generateOrderID returns a sortable, collision-resistant id.
// Example: 20250908130500-<uuid4>
func generateOrderID() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// BuildFromCart assembles an order snapshot from the owner's cart. Shipping
// applies whenever the subtotal is above zero.
func BuildFromCart(kv *storage.KV, owner string, customer models.CustomerInfo) (*models.Order, error) {
	lines := cartControllers.Load(kv, owner)
	if len(lines) == 0 {
		return nil, errs.ErrCartEmpty
	}

	subtotal := cartControllers.Total(lines)
	shipping := 0.0
	if subtotal > 0 {
		shipping = ShippingFlat
	}
	return newOrder(owner, customer, lines, models.OrderModeCart, subtotal, shipping), nil
}

// BuildFromBuyNow assembles an order from the pending buy-now item. Shipping
// applies unconditionally: an item is guaranteed present in this mode.
func BuildFromBuyNow(kv *storage.KV, owner string, customer models.CustomerInfo) (*models.Order, error) {
	item, ok := cartControllers.GetBuyNow(kv, owner)
	if !ok {
		return nil, errs.ErrNoBuyNowItem
	}

	line := models.CartLine{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Image:     item.Image,
		Quantity:  item.Quantity,
		Size:      item.Size,
		Color:     item.Color,
		AddedAt:   time.Now(),
	}
	subtotal := item.Price * float64(item.Quantity)
	return newOrder(owner, customer, []models.CartLine{line}, models.OrderModeBuyNow, subtotal, ShippingFlat), nil
}

func newOrder(owner string, customer models.CustomerInfo, items []models.CartLine, mode models.OrderMode, subtotal, shipping float64) *models.Order {
	tax := subtotal * TaxRate
	return &models.Order{
		ID:       generateOrderID(),
		UserID:   owner,
		Date:     time.Now(),
		Customer: customer,
		Items:    items,
		Mode:     mode,
		Status:   models.OrderStatusPending,
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

func validateCustomer(customer models.CustomerInfo) error {
	if strings.TrimSpace(customer.Name) == "" {
		return errs.Validation("name", "name is required")
	}
	if strings.TrimSpace(customer.Email) == "" {
		return errs.Validation("email", "email is required")
	}
	if strings.TrimSpace(customer.Address) == "" {
		return errs.Validation("address", "shipping address is required")
	}
	if strings.TrimSpace(customer.PaymentMethod) == "" {
		return errs.Validation("payment_method", "payment method is required")
	}
	return nil
}

// PlaceOrder builds an order for the given mode, appends it to the order
// log, clears the consumed source (the cart in cart mode, the pending
// buy-now item always) and broadcasts it on the order feed. Resubmitting the
// same form data produces a second distinct order with a new id.
func PlaceOrder(kv *storage.KV, owner string, customer models.CustomerInfo, mode models.OrderMode) (*models.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	var (
		order *models.Order
		err   error
	)
	switch mode {
	case models.OrderModeBuyNow:
		order, err = BuildFromBuyNow(kv, owner, customer)
	default:
		order, err = BuildFromCart(kv, owner, customer)
	}
	if err != nil {
		return nil, err
	}

	if err := appendToLog(kv, *order); err != nil {
		return nil, err
	}

	if order.Mode == models.OrderModeCart {
		if err := cartControllers.Clear(kv, owner); err != nil {
			log.Printf("⚠️ Order %s placed but cart for %s not cleared: %v", order.ID, owner, err)
		}
	}
	cartControllers.ClearBuyNow(kv, owner)

	broadcastNewOrder(*order)
	log.Printf("✅ Order %s placed (%s, total %.2f)", order.ID, order.Mode, Round2(order.Total))
	return order, nil
}

// appendToLog read-append-writes the whole order log. A missing or corrupt
// log reads as empty.
func appendToLog(kv *storage.KV, order models.Order) error {
	var orders []models.Order
	if _, err := kv.Durable.Get(storage.KeyOrders, &orders); err != nil {
		return err
	}
	orders = append(orders, order)
	return kv.Durable.Set(storage.KeyOrders, orders)
}

// OrderLog returns the full append-only log, oldest first.
func OrderLog(kv *storage.KV) []models.Order {
	var orders []models.Order
	if ok, err := kv.Durable.Get(storage.KeyOrders, &orders); !ok || err != nil {
		return nil
	}
	return orders
}

// OrdersForOwner filters the log down to one shopper's history, newest
// first.
func OrdersForOwner(kv *storage.KV, owner string) []models.Order {
	all := OrderLog(kv)

	var out []models.Order
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == owner {
			out = append(out, all[i])
		}
	}
	return out
}

// OrderByID looks an order up in the log.
func OrderByID(kv *storage.KV, id string) (*models.Order, bool) {
	for _, o := range OrderLog(kv) {
		if o.ID == id {
			return &o, true
		}
	}
	return nil, false
}
