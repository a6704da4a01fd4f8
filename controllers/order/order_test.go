package orderControllers

import (
	"math/rand"
	"testing"

	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	"github.com/junaidrashid-git/storefront-api/errs"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKV() *storage.KV {
	return &storage.KV{
		Durable: storage.NewMemoryStore(),
		Session: storage.NewMemoryStore(),
	}
}

var customer = models.CustomerInfo{
	Name:          "Ada Lovelace",
	Email:         "ada@example.com",
	Address:       "1 Analytical Way",
	City:          "London",
	PostalCode:    "N1 7GU",
	Country:       "UK",
	PaymentMethod: "card",
}

func TestCartModeCheckoutScenario(t *testing.T) {
	kv := testKV()
	p := models.Product{ID: 1, Name: "Tee", Price: 20.00}
	_, err := cartControllers.AddItem(kv, "u1", &p, 2, "", "")
	require.NoError(t, err)

	order, err := PlaceOrder(kv, "u1", customer, models.OrderModeCart)
	require.NoError(t, err)

	assert.InDelta(t, 40.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 9.99, order.Shipping, 1e-9)
	assert.InDelta(t, 3.20, Round2(order.Tax), 1e-9)
	assert.InDelta(t, 53.19, Round2(order.Total), 1e-9)
	assert.Equal(t, models.OrderModeCart, order.Mode)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// The cart is cleared after order creation.
	assert.Empty(t, cartControllers.Load(kv, "u1"))

	// The order landed in the log.
	log := OrderLog(kv)
	require.Len(t, log, 1)
	assert.Equal(t, order.ID, log[0].ID)
}

func TestBuyNowCheckoutScenario(t *testing.T) {
	kv := testKV()

	// Cart activity that must be left untouched by a buy-now checkout.
	cartItem := models.Product{ID: 2, Name: "Jeans", Price: 49.99}
	_, err := cartControllers.AddItem(kv, "u1", &cartItem, 1, "", "")
	require.NoError(t, err)

	p := models.Product{ID: 8, Name: "High-Tops", Price: 50.00}
	_, err = cartControllers.SetBuyNow(kv, "u1", &p, 1, "9", "Black")
	require.NoError(t, err)

	order, err := PlaceOrder(kv, "u1", customer, models.OrderModeBuyNow)
	require.NoError(t, err)

	assert.InDelta(t, 50.00, order.Subtotal, 1e-9)
	assert.InDelta(t, 9.99, order.Shipping, 1e-9)
	assert.InDelta(t, 4.00, Round2(order.Tax), 1e-9)
	assert.InDelta(t, 63.99, Round2(order.Total), 1e-9)
	assert.Equal(t, models.OrderModeBuyNow, order.Mode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Black", order.Items[0].Color)

	// The buy-now item is consumed; the cart is untouched.
	_, pending := cartControllers.GetBuyNow(kv, "u1")
	assert.False(t, pending)
	assert.Len(t, cartControllers.Load(kv, "u1"), 1)
}

func TestEmptyCartCannotCheckOut(t *testing.T) {
	kv := testKV()

	_, err := PlaceOrder(kv, "u1", customer, models.OrderModeCart)
	require.ErrorIs(t, err, errs.ErrCartEmpty)
	assert.Empty(t, OrderLog(kv))
}

func TestBuyNowWithoutPendingItemFails(t *testing.T) {
	kv := testKV()

	_, err := PlaceOrder(kv, "u1", customer, models.OrderModeBuyNow)
	require.ErrorIs(t, err, errs.ErrNoBuyNowItem)
	assert.Empty(t, OrderLog(kv))
}

func TestCheckoutValidatesCustomerBeforeAnyMutation(t *testing.T) {
	kv := testKV()
	p := models.Product{ID: 1, Name: "Tee", Price: 20.00}
	_, err := cartControllers.AddItem(kv, "u1", &p, 1, "", "")
	require.NoError(t, err)

	bad := customer
	bad.Email = "  "
	_, err = PlaceOrder(kv, "u1", bad, models.OrderModeCart)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	// Cart untouched, no order appended.
	assert.Len(t, cartControllers.Load(kv, "u1"), 1)
	assert.Empty(t, OrderLog(kv))
}

// For every generated order: tax is exactly 8% of the subtotal and total is
// subtotal + shipping + tax.
func TestTotalsInvariantAcrossRandomOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		kv := testKV()
		items := 1 + rng.Intn(4)
		for j := 0; j < items; j++ {
			p := models.Product{
				ID:    uint(j + 1),
				Name:  "P",
				Price: float64(rng.Intn(20000)) / 100,
			}
			_, err := cartControllers.AddItem(kv, "u1", &p, 1+rng.Intn(5), "", "")
			require.NoError(t, err)
		}

		order, err := BuildFromCart(kv, "u1", customer)
		require.NoError(t, err)

		assert.InDelta(t, order.Subtotal*TaxRate, order.Tax, 1e-9)
		assert.InDelta(t, order.Subtotal+order.Shipping+order.Tax, order.Total, 1e-9)
		if order.Subtotal > 0 {
			assert.InDelta(t, ShippingFlat, order.Shipping, 1e-9)
		} else {
			assert.Zero(t, order.Shipping)
		}
	}
}

func TestFreeCartShipsFree(t *testing.T) {
	kv := testKV()
	p := models.Product{ID: 1, Name: "Freebie", Price: 0}
	_, err := cartControllers.AddItem(kv, "u1", &p, 3, "", "")
	require.NoError(t, err)

	order, err := BuildFromCart(kv, "u1", customer)
	require.NoError(t, err)
	assert.Zero(t, order.Subtotal)
	assert.Zero(t, order.Shipping)
	assert.Zero(t, order.Total)
}

func TestResubmissionProducesDistinctOrders(t *testing.T) {
	kv := testKV()
	p := models.Product{ID: 1, Name: "Tee", Price: 20.00}

	_, err := cartControllers.AddItem(kv, "u1", &p, 1, "", "")
	require.NoError(t, err)
	first, err := PlaceOrder(kv, "u1", customer, models.OrderModeCart)
	require.NoError(t, err)

	_, err = cartControllers.AddItem(kv, "u1", &p, 1, "", "")
	require.NoError(t, err)
	second, err := PlaceOrder(kv, "u1", customer, models.OrderModeCart)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, OrderLog(kv), 2)
}

func TestOrdersForOwnerFiltersAndOrdersNewestFirst(t *testing.T) {
	kv := testKV()
	p := models.Product{ID: 1, Name: "Tee", Price: 20.00}

	for _, owner := range []string{"u1", "u2", "u1"} {
		_, err := cartControllers.AddItem(kv, owner, &p, 1, "", "")
		require.NoError(t, err)
		_, err = PlaceOrder(kv, owner, customer, models.OrderModeCart)
		require.NoError(t, err)
	}

	mine := OrdersForOwner(kv, "u1")
	require.Len(t, mine, 2)
	full := OrderLog(kv)
	assert.Equal(t, full[2].ID, mine[0].ID, "newest first")
	assert.Empty(t, OrdersForOwner(kv, "nobody"))
}

func TestOrderByID(t *testing.T) {
	kv := testKV()
	p := models.Product{ID: 1, Name: "Tee", Price: 20.00}
	_, err := cartControllers.AddItem(kv, "u1", &p, 1, "", "")
	require.NoError(t, err)

	placed, err := PlaceOrder(kv, "u1", customer, models.OrderModeCart)
	require.NoError(t, err)

	got, ok := OrderByID(kv, placed.ID)
	require.True(t, ok)
	assert.Equal(t, placed.ID, got.ID)

	_, ok = OrderByID(kv, "missing")
	assert.False(t, ok)
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 3.20, Round2(3.2000000000000004), 1e-12)
	assert.InDelta(t, 53.19, Round2(53.190000000000005), 1e-12)
	assert.InDelta(t, 1.24, Round2(1.2351), 1e-12)
	assert.InDelta(t, 1.23, Round2(1.2349), 1e-12)
	assert.InDelta(t, 0.0, Round2(0.004), 1e-12)
}
