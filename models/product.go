package models

// Product is catalog data: loaded once from the static catalog source and
// never mutated afterwards.
type Product struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	OnSale        bool     `json:"on_sale"`
	Featured      bool     `json:"featured"`
	Image         string   `json:"image"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
}
