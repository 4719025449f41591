package domain

import "time"

// EventType names what a store operation changed.
type EventType string

const (
	EventProductsLoaded       EventType = "products.loaded"
	EventProductsSaved        EventType = "products.saved"
	EventCartUpdated          EventType = "cart.updated"
	EventCartCleared          EventType = "cart.cleared"
	EventAdminLoggedIn        EventType = "admin.logged_in"
	EventAdminLoggedOut       EventType = "admin.logged_out"
	EventCouponApplied        EventType = "coupon.applied"
	EventCouponRemoved        EventType = "coupon.removed"
	EventWishlistToggled      EventType = "wishlist.toggled"
	EventProductViewed        EventType = "product.viewed"
	EventNewsletterSubscribed EventType = "newsletter.subscribed"
	EventSearchChanged        EventType = "search.changed"
	EventThemeToggled         EventType = "theme.toggled"
)

// Change is delivered to subscribers after an operation has persisted.
type Change struct {
	Type   EventType
	Slices []Slice
	At     time.Time
}

// Touched reports whether the change covered slice s.
func (c Change) Touched(s Slice) bool {
	for _, t := range c.Slices {
		if t == s {
			return true
		}
	}
	return false
}
