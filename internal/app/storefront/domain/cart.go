package domain

import "strings"

// KeySeparator joins the parts of a composite cart key.
const KeySeparator = "::"

// CartLine is one (product, size, color) combination in the cart.
type CartLine struct {
	Key       string `json:"key"`
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Qty       int    `json:"qty"`
}

// CartKey builds the composite key productId::size::color. Absent size or
// color are empty strings.
func CartKey(productID, size, color string) string {
	return strings.Join([]string{productID, size, color}, KeySeparator)
}

// ClampQty coerces a requested quantity to at least one.
func ClampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

// ResolvedLine pairs a cart line with its product, if it still exists.
type ResolvedLine struct {
	CartLine
	Product Product
	Found   bool
}

// LineTotal is price × qty, or zero for a dangling line.
func (l ResolvedLine) LineTotal() int64 {
	if !l.Found {
		return 0
	}
	return l.Product.Price * int64(l.Qty)
}

// ResolveLines looks up each line's product, keeping cart order.
func ResolveLines(lines []CartLine, products []Product) []ResolvedLine {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	out := make([]ResolvedLine, 0, len(lines))
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		out = append(out, ResolvedLine{CartLine: l, Product: p, Found: ok})
	}
	return out
}
