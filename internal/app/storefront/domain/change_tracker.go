package domain

// Slice is a named part of the state persisted under its own storage key.
type Slice string

const (
	SliceProducts   Slice = "products"
	SliceCart       Slice = "cart"
	SliceWishlist   Slice = "wishlist"
	SliceSession    Slice = "admin_session"
	SliceCoupon     Slice = "coupon"
	SliceNewsletter Slice = "newsletter"
	SliceViews      Slice = "views"
	SliceTheme      Slice = "theme"

	// SliceSearch is transient and never written to storage.
	SliceSearch Slice = "search"
)

// Persistent reports whether the slice has a storage key.
func (s Slice) Persistent() bool {
	return s != SliceSearch
}

// ChangeTracker records which slices an operation touched so the store only
// writes those keys.
type ChangeTracker struct {
	order []Slice
	dirty map[Slice]bool
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{dirty: make(map[Slice]bool)}
}

func (ct *ChangeTracker) MarkDirty(s Slice) {
	if ct.dirty[s] {
		return
	}
	ct.dirty[s] = true
	ct.order = append(ct.order, s)
}

func (ct *ChangeTracker) Dirty(s Slice) bool {
	return ct.dirty[s]
}

func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.order) > 0
}

// DirtySlices returns touched slices in the order they were marked.
func (ct *ChangeTracker) DirtySlices() []Slice {
	out := make([]Slice, len(ct.order))
	copy(out, ct.order)
	return out
}

func (ct *ChangeTracker) Clear() {
	ct.order = nil
	ct.dirty = make(map[Slice]bool)
}
