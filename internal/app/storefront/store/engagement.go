package store

import (
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/pkg/clock"
)

// ToggleWishlist adds or removes id and reports whether it is now wishlisted.
func (s *Store) ToggleWishlist(id string) bool {
	if id == "" {
		return false
	}
	in := false
	for i, w := range s.state.Wishlist {
		if w == id {
			s.state.Wishlist = append(s.state.Wishlist[:i], s.state.Wishlist[i+1:]...)
			in = true
			break
		}
	}
	if !in {
		s.state.Wishlist = append(s.state.Wishlist, id)
	}
	s.commit(domain.EventWishlistToggled, touch(domain.SliceWishlist))
	return !in
}

// WishlistProducts resolves wishlisted ids, skipping deleted products.
func (s *Store) WishlistProducts() []domain.Product {
	return s.state.WishlistProducts()
}

// TrackProductView counts a view of an existing product.
func (s *Store) TrackProductView(id string) {
	if _, ok := domain.FindProduct(s.state.Products, id); !ok {
		return
	}
	s.state.Views[id]++
	s.commit(domain.EventProductViewed, touch(domain.SliceViews))
}

// MostViewed ranks existing products by view count, ties in catalog order.
func (s *Store) MostViewed(n int) []domain.Product {
	return s.state.MostViewed(n)
}

// SubscribeNewsletter records the address, replacing any earlier one.
func (s *Store) SubscribeNewsletter(email string) error {
	addr, err := domain.NormalizeEmail(email)
	if err != nil {
		return err
	}
	s.state.Newsletter = &domain.Newsletter{Email: addr, At: clock.Millis(s.clock)}
	s.commit(domain.EventNewsletterSubscribed, touch(domain.SliceNewsletter))
	return nil
}

// SetSearchQuery updates the transient search text. Nothing is persisted.
func (s *Store) SetSearchQuery(q string) {
	s.state.Search = q
	s.commit(domain.EventSearchChanged, touch(domain.SliceSearch))
}

// ToggleTheme flips light/dark. The theme is only persisted when the store
// was configured with PersistTheme.
func (s *Store) ToggleTheme() domain.Theme {
	s.state.Theme = s.state.Theme.Toggle()
	s.commit(domain.EventThemeToggled, touch(domain.SliceTheme))
	return s.state.Theme
}
