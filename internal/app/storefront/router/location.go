package router

// Location is the addressable fragment the router reads and writes, the
// equivalent of a browser's location hash.
type Location interface {
	Fragment() string
	// SetFragment replaces the fragment. Implementations call the change
	// hook only when the value actually changed.
	SetFragment(fragment string)
	OnChange(fn func())
}

// MemoryLocation is a Location kept in memory. It is confined to the event
// loop like the rest of the storefront state.
type MemoryLocation struct {
	fragment string
	onChange func()
}

func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{fragment: fragment}
}

func (l *MemoryLocation) Fragment() string {
	return l.fragment
}

func (l *MemoryLocation) SetFragment(fragment string) {
	if fragment == l.fragment {
		return
	}
	l.fragment = fragment
	if l.onChange != nil {
		l.onChange()
	}
}

func (l *MemoryLocation) OnChange(fn func()) {
	l.onChange = fn
}
