package entity

// Product is a catalog plan card shown on the storefront.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice"`
	Type          string   `json:"type"` // DTH | Broadband
	Features      []string `json:"features"`
	Image         string   `json:"image"`
	Color         string   `json:"color"`
	IsBestSeller  bool     `json:"isBestSeller,omitempty"`
}
