// Package catalog serves the immutable product list. The list is read from
// a static JSON source and cached on the Catalog instance; a load failure
// degrades to an empty list rather than an error, so callers must treat
// "no products" as a valid outcome.
package catalog

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
)

type Catalog struct {
	path string

	mu       sync.RWMutex
	loaded   bool
	products []models.Product
	featured []models.Product
}

type productFile struct {
	Products []models.Product `json:"products"`
}

func New(path string) *Catalog {
	return &Catalog{path: path}
}

// LoadAll returns the cached product list, reading the source on first use.
func (c *Catalog) LoadAll() []models.Product {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return c.products
	}
	c.mu.RUnlock()
	return c.Reload()
}

// Reload rereads the source and replaces the cache.
func (c *Catalog) Reload() []models.Product {
	products := c.read()

	var featured []models.Product
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	c.mu.Lock()
	c.products = products
	c.featured = featured
	c.loaded = true
	c.mu.Unlock()
	return products
}

func (c *Catalog) read() []models.Product {
	data, err := os.ReadFile(c.path)
	if err != nil {
		log.Printf("❌ Failed to read catalog %s: %v", c.path, err)
		return nil
	}
	var file productFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("❌ Failed to parse catalog %s: %v", c.path, err)
		return nil
	}
	return file.Products
}

func (c *Catalog) ByID(id uint) (models.Product, bool) {
	for _, p := range c.LoadAll() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory filters by category name. The pseudo-category "sale" selects
// products currently on sale rather than matching a literal category.
func (c *Catalog) ByCategory(name string) []models.Product {
	sale := strings.EqualFold(name, "sale")

	var out []models.Product
	for _, p := range c.LoadAll() {
		if sale {
			if p.OnSale {
				out = append(out, p)
			}
			continue
		}
		if strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the cached featured subset.
func (c *Catalog) Featured() []models.Product {
	c.LoadAll()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.featured
}
