package store

import (
	"sort"
	"strings"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// State is the canonical snapshot. Values handed out by the store are always
// deep copies.
type State struct {
	Products   []domain.Product     `json:"products"`
	Cart       []domain.CartLine    `json:"cart"`
	Wishlist   []string             `json:"wishlist"`
	Coupon     *domain.Coupon       `json:"coupon"`
	Session    *domain.AdminSession `json:"adminSession"`
	Theme      domain.Theme         `json:"theme"`
	Search     string               `json:"search"`
	Views      map[string]int       `json:"views"`
	Newsletter *domain.Newsletter   `json:"newsletter"`
}

// IsAdmin reports whether an admin session is present.
func (s State) IsAdmin() bool {
	return s.Session != nil && s.Session.OK
}

// CartCount is the total quantity across cart lines.
func (s State) CartCount() int {
	n := 0
	for _, l := range s.Cart {
		n += l.Qty
	}
	return n
}

// InWishlist reports whether id is wishlisted.
func (s State) InWishlist(id string) bool {
	for _, w := range s.Wishlist {
		if w == id {
			return true
		}
	}
	return false
}

// Lines resolves the cart against the catalog. Lines whose product was
// deleted are kept with Found unset.
func (s State) Lines() []domain.ResolvedLine {
	lines := domain.ResolveLines(s.Cart, s.Products)
	for i := range lines {
		lines[i].Product = lines[i].Product.Clone()
	}
	return lines
}

// WishlistProducts resolves wishlisted ids, skipping deleted products.
func (s State) WishlistProducts() []domain.Product {
	out := make([]domain.Product, 0, len(s.Wishlist))
	for _, id := range s.Wishlist {
		if p, ok := domain.FindProduct(s.Products, id); ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

// MostViewed ranks existing products by view count, ties in catalog order.
// Views are a popularity proxy, not sales.
func (s State) MostViewed(n int) []domain.Product {
	type ranked struct {
		p     domain.Product
		views int
	}
	var rs []ranked
	for _, p := range s.Products {
		if v := s.Views[p.ID]; v > 0 {
			rs = append(rs, ranked{p: p, views: v})
		}
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].views > rs[j].views })

	n = max(0, min(n, len(rs)))
	out := make([]domain.Product, 0, n)
	for _, r := range rs[:n] {
		out = append(out, r.p.Clone())
	}
	return out
}

// SearchProducts is a case and accent insensitive substring match on name or
// type, in catalog order. Callers use the full list for a blank query.
func (s State) SearchProducts(query string) []domain.Product {
	q := domain.Fold(strings.TrimSpace(query))
	out := make([]domain.Product, 0)
	for _, p := range s.Products {
		if domain.MatchProduct(p, q) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Clone returns an independent deep copy.
func (s State) Clone() State {
	out := State{
		Theme:  s.Theme,
		Search: s.Search,
	}
	if s.Products != nil {
		out.Products = make([]domain.Product, len(s.Products))
		for i, p := range s.Products {
			out.Products[i] = p.Clone()
		}
	}
	if s.Cart != nil {
		out.Cart = make([]domain.CartLine, len(s.Cart))
		copy(out.Cart, s.Cart)
	}
	if s.Wishlist != nil {
		out.Wishlist = make([]string, len(s.Wishlist))
		copy(out.Wishlist, s.Wishlist)
	}
	if s.Coupon != nil {
		c := *s.Coupon
		out.Coupon = &c
	}
	if s.Session != nil {
		sess := *s.Session
		out.Session = &sess
	}
	if s.Views != nil {
		out.Views = make(map[string]int, len(s.Views))
		for k, v := range s.Views {
			out.Views[k] = v
		}
	}
	if s.Newsletter != nil {
		n := *s.Newsletter
		out.Newsletter = &n
	}
	return out
}
