package cartControllers

import (
	"github.com/junaidrashid-git/storefront-api/errs"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// SetBuyNow stores the session-scoped ad-hoc item, replacing any pending
// one. The cart is not involved.
func SetBuyNow(kv *storage.KV, owner string, product *models.Product, quantity int, size, color string) (*models.BuyNowItem, error) {
	if product == nil || product.ID == 0 {
		return nil, errs.Validation("product", "product is missing or has no id")
	}
	if quantity < 1 {
		quantity = 1
	}

	item := models.BuyNowItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
		IsBuyNow:  true,
	}
	if err := kv.Session.Set(storage.BuyNowKey(owner), item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetBuyNow returns the pending item, if any.
func GetBuyNow(kv *storage.KV, owner string) (*models.BuyNowItem, bool) {
	var item models.BuyNowItem
	if ok, err := kv.Session.Get(storage.BuyNowKey(owner), &item); !ok || err != nil {
		return nil, false
	}
	return &item, true
}

// ClearBuyNow drops the pending item, whether an order consumed it or the
// flow was abandoned.
func ClearBuyNow(kv *storage.KV, owner string) {
	_ = kv.Session.Remove(storage.BuyNowKey(owner))
}
