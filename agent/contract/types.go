package contract

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Product is a catalog record. Identity for matching purposes is Name,
// compared case-insensitively; Category and Description may be empty.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UnmarshalJSON coerces price from a JSON number or a numeric string.
// Catalog payloads produced by an LLM are not consistent about which one
// they emit; an absent or non-numeric price decodes as 0.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string          `json:"name"`
		Price       json.RawMessage `json:"price"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Name = raw.Name
	p.Category = raw.Category
	p.Description = raw.Description
	p.Price = coercePrice(raw.Price)
	return nil
}

func coercePrice(raw json.RawMessage) float64 {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return 0
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			return v
		}
	}
	return 0
}

// NameMatch reports whether a typed product-name fragment resolves against a
// stored name: case-insensitive bidirectional substring containment.
func NameMatch(stored, typed string) bool {
	s := strings.ToLower(strings.TrimSpace(stored))
	t := strings.ToLower(strings.TrimSpace(typed))
	if s == "" || t == "" {
		return false
	}
	return strings.Contains(s, t) || strings.Contains(t, s)
}

// CartLine is one product/quantity pairing in the cart. Quantity is mutated
// in place so insertion order survives updates.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// SearchPayload is the structured result decoded once at the catalog
// boundary. Downstream code never re-interprets raw catalog text.
type SearchPayload struct {
	Products    []Product `json:"products"`
	Recommended []Product `json:"recommended_products,omitempty"`
	Message     string    `json:"message,omitempty"`
}

type CheckoutStatus string

const (
	CheckoutNotStarted CheckoutStatus = ""
	CheckoutInitiated  CheckoutStatus = "initiated"
	CheckoutCompleted  CheckoutStatus = "completed"
)
