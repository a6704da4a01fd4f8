package cartControllers

import (
	"time"

	"github.com/junaidrashid-git/storefront-api/errs"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// -------- Core Logic --------

// Load returns the owner's cart. A missing or corrupt record reads as an
// empty cart.
func Load(kv *storage.KV, owner string) []models.CartLine {
	var lines []models.CartLine
	if ok, err := kv.Durable.Get(storage.CartKey(owner), &lines); !ok || err != nil {
		return nil
	}
	return lines
}

func save(kv *storage.KV, owner string, lines []models.CartLine) error {
	return kv.Durable.Set(storage.CartKey(owner), lines)
}

// AddItem merges into an existing line with the same product+size+color or
// appends a fresh snapshot of the product. The whole cart is persisted after
// the mutation. A missing product or one without an id fails before anything
// is touched.
func AddItem(kv *storage.KV, owner string, product *models.Product, quantity int, size, color string) ([]models.CartLine, error) {
	if product == nil || product.ID == 0 {
		return nil, errs.Validation("product", "product is missing or has no id")
	}
	if quantity < 1 {
		quantity = 1
	}

	lines := Load(kv, owner)
	key := models.LineKey(product.ID, size, color)

	merged := false
	for i := range lines {
		if lines[i].LineKey() == key {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
			AddedAt:   time.Now(),
		})
	}

	if err := save(kv, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets a line's quantity in place. Anything below 1 behaves
// exactly like RemoveItem.
func UpdateQuantity(kv *storage.KV, owner, lineKey string, quantity int) ([]models.CartLine, error) {
	if quantity < 1 {
		return RemoveItem(kv, owner, lineKey)
	}

	lines := Load(kv, owner)
	for i := range lines {
		if lines[i].LineKey() == lineKey {
			lines[i].Quantity = quantity
			break
		}
	}
	if err := save(kv, owner, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveItem filters the line out by its identity key and persists what is
// left, even an empty cart.
func RemoveItem(kv *storage.KV, owner, lineKey string) ([]models.CartLine, error) {
	lines := Load(kv, owner)

	kept := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.LineKey() != lineKey {
			kept = append(kept, l)
		}
	}
	if err := save(kv, owner, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear deletes the cart record entirely.
func Clear(kv *storage.KV, owner string) error {
	return kv.Durable.Remove(storage.CartKey(owner))
}

// Total is the sum of price*quantity over all lines.
func Total(lines []models.CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is the badge number: the total quantity across lines, not the
// line count.
func ItemCount(lines []models.CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
