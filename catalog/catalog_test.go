package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "products": [
    {"id": 1, "name": "Tee", "category": "men", "price": 20.0, "featured": true},
    {"id": 2, "name": "Jeans", "category": "men", "price": 49.99, "on_sale": true},
    {"id": 3, "name": "Dress", "category": "women", "price": 59.5, "on_sale": true, "featured": true}
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAllCaches(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	cat := New(path)

	first := cat.LoadAll()
	require.Len(t, first, 3)

	// Changing the file on disk must not affect the cached copy.
	require.NoError(t, os.WriteFile(path, []byte(`{"products": []}`), 0o644))
	assert.Len(t, cat.LoadAll(), 3)

	// Explicit reload picks the change up.
	assert.Len(t, cat.Reload(), 0)
}

func TestByID(t *testing.T) {
	cat := New(writeCatalog(t, sampleCatalog))

	p, ok := cat.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Jeans", p.Name)

	_, ok = cat.ByID(99)
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	cat := New(writeCatalog(t, sampleCatalog))

	assert.Len(t, cat.ByCategory("men"), 2)
	assert.Len(t, cat.ByCategory("WOMEN"), 1)
	assert.Empty(t, cat.ByCategory("shoes"))
}

func TestSaleIsAPseudoCategory(t *testing.T) {
	cat := New(writeCatalog(t, sampleCatalog))

	sale := cat.ByCategory("sale")
	require.Len(t, sale, 2)
	for _, p := range sale {
		assert.True(t, p.OnSale)
	}
}

func TestFeatured(t *testing.T) {
	cat := New(writeCatalog(t, sampleCatalog))

	featured := cat.Featured()
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestMissingFileDegradesToEmpty(t *testing.T) {
	cat := New(filepath.Join(t.TempDir(), "absent.json"))
	assert.Empty(t, cat.LoadAll())
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	cat := New(writeCatalog(t, "{not json"))
	assert.Empty(t, cat.LoadAll())
}
