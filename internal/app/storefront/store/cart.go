package store

import (
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// CartItem is a request to add a product variant to the cart.
type CartItem struct {
	ProductID string
	Size      string
	Color     string
	Qty       int
}

// AddToCart merges the item into the line with the same composite key, or
// appends a new line. Qty is clamped to at least one. It returns the line key,
// or "" when ProductID is empty.
func (s *Store) AddToCart(item CartItem) string {
	if item.ProductID == "" {
		return ""
	}
	qty := domain.ClampQty(item.Qty)
	key := domain.CartKey(item.ProductID, item.Size, item.Color)

	if i := s.lineIndex(key); i >= 0 {
		s.state.Cart[i].Qty += qty
	} else {
		s.state.Cart = append(s.state.Cart, domain.CartLine{
			Key:       key,
			ProductID: item.ProductID,
			Size:      item.Size,
			Color:     item.Color,
			Qty:       qty,
		})
	}
	s.commit(domain.EventCartUpdated, touch(domain.SliceCart))
	return key
}

// SetCartItemQty sets a line's quantity (clamped to at least one). Unknown
// keys are ignored and reported as false.
func (s *Store) SetCartItemQty(key string, qty int) bool {
	i := s.lineIndex(key)
	if i < 0 {
		return false
	}
	s.state.Cart[i].Qty = domain.ClampQty(qty)
	s.commit(domain.EventCartUpdated, touch(domain.SliceCart))
	return true
}

// RemoveCartItem deletes a line. Unknown keys are ignored and reported as false.
func (s *Store) RemoveCartItem(key string) bool {
	i := s.lineIndex(key)
	if i < 0 {
		return false
	}
	s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
	s.commit(domain.EventCartUpdated, touch(domain.SliceCart))
	return true
}

func (s *Store) ClearCart() {
	s.state.Cart = []domain.CartLine{}
	s.commit(domain.EventCartCleared, touch(domain.SliceCart))
}

// CartCount is the total quantity in the cart.
func (s *Store) CartCount() int {
	return s.state.CartCount()
}

// CartLines resolves each line against the current catalog.
func (s *Store) CartLines() []domain.ResolvedLine {
	return s.state.Lines()
}

// CartTotal is Σ price × qty over lines whose product still exists.
func (s *Store) CartTotal() int64 {
	return s.pricing.Subtotal(domain.ResolveLines(s.state.Cart, s.state.Products))
}

// Totals is the full breakdown including coupon and shipping.
func (s *Store) Totals() domain.Totals {
	lines := domain.ResolveLines(s.state.Cart, s.state.Products)
	return s.pricing.Totals(lines, s.state.Coupon)
}

func (s *Store) lineIndex(key string) int {
	for i, l := range s.state.Cart {
		if l.Key == key {
			return i
		}
	}
	return -1
}

// normalizeCart rebuilds keys and merges duplicates in persisted data so the
// one-line-per-key rule holds even for hand-edited storage.
func normalizeCart(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.ProductID == "" {
			continue
		}
		l.Key = domain.CartKey(l.ProductID, l.Size, l.Color)
		l.Qty = domain.ClampQty(l.Qty)
		if i, ok := index[l.Key]; ok {
			out[i].Qty += l.Qty
			continue
		}
		index[l.Key] = len(out)
		out = append(out, l)
	}
	return out
}
