// Package storage is the persistence layer: scoped JSON key-value stores.
// Every persisted aggregate (a cart, the user list, the order log) is one
// value under one key, read-modify-written as a whole. There are no
// cross-key transactions; concurrent writers to the same key race and the
// last write wins.
package storage

// Store reads and writes whole JSON aggregates.
type Store interface {
	// Get unmarshals the value stored under key into out. A missing key and
	// a value that fails to parse both report ok=false; corrupt data is
	// treated as absent, never raised.
	Get(key string, out any) (ok bool, err error)
	Set(key string, value any) error
	Remove(key string) error
}

// Logical key layout. Durable keys survive restarts; session keys live in
// memory for the process lifetime.
const (
	KeyUsers  = "users"
	KeyOrders = "orders"
)

func CartKey(owner string) string    { return "cart:" + owner }
func ThemeKey(owner string) string   { return "theme:" + owner }
func BuyNowKey(owner string) string  { return "buynow:" + owner }
func SessionKey(email string) string { return "session:" + email }

// KV bundles the two scopes handlers operate against.
type KV struct {
	Durable Store
	Session Store
}
