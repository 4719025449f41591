// Package store holds the storefront's application state. A Store is built
// explicitly by the application root and passed to its consumers; every
// mutation persists the slices it touched and then notifies subscribers
// synchronously. A Store is not safe for concurrent use: it is driven from the
// single event-loop goroutine.
package store

import (
	"github.com/murkotick/menswear-storefront/internal/app/storefront/contracts"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain/services"
	"github.com/murkotick/menswear-storefront/internal/pkg/clock"
	commitplan "github.com/murkotick/menswear-storefront/internal/pkg/committer"
)

// Listener is called once per successful mutation, after persistence.
type Listener func(change domain.Change)

// Config carries the static inputs of a Store.
type Config struct {
	Credentials Credentials
	Shipping    services.ShippingPolicy

	// PersistTheme stores the theme under its key and restores it on load.
	// Off by default: a fresh load starts light.
	PersistTheme bool

	// Seed is the catalog used when no products are persisted. Nil means
	// domain.SeedProducts.
	Seed []domain.Product

	Clock clock.Clock
}

type Store struct {
	state        State
	kv           contracts.Persistence
	pricing      *services.PricingCalculator
	creds        Credentials
	clock        clock.Clock
	persistTheme bool
	seed         []domain.Product

	listeners map[int]Listener
	nextID    int
	order     []int
}

// New builds a store and loads every persisted slice, falling back to
// defaults for anything missing or unreadable.
func New(kv contracts.Persistence, cfg Config) *Store {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	seed := cfg.Seed
	if seed == nil {
		seed = domain.SeedProducts()
	}

	s := &Store{
		kv:           kv,
		pricing:      services.NewPricingCalculator(cfg.Shipping),
		creds:        cfg.Credentials,
		clock:        clk,
		persistTheme: cfg.PersistTheme,
		seed:         seed,
		listeners:    make(map[int]Listener),
	}
	s.load()
	return s
}

func (s *Store) load() {
	s.state = State{
		Products: s.readProducts(),
		Cart:     []domain.CartLine{},
		Wishlist: []string{},
		Views:    map[string]int{},
		Theme:    domain.ThemeLight,
	}

	var cart []domain.CartLine
	if s.kv.Read(string(domain.SliceCart), &cart) {
		s.state.Cart = normalizeCart(cart)
	}

	var wishlist []string
	if s.kv.Read(string(domain.SliceWishlist), &wishlist) {
		s.state.Wishlist = dedupe(wishlist)
	}

	var coupon *domain.Coupon
	if s.kv.Read(string(domain.SliceCoupon), &coupon) && coupon != nil {
		s.state.Coupon = coupon
	}

	var session *domain.AdminSession
	if s.kv.Read(string(domain.SliceSession), &session) && session != nil && session.OK {
		s.state.Session = session
	}

	var views map[string]int
	if s.kv.Read(string(domain.SliceViews), &views) && views != nil {
		s.state.Views = views
	}

	var newsletter *domain.Newsletter
	if s.kv.Read(string(domain.SliceNewsletter), &newsletter) && newsletter != nil {
		s.state.Newsletter = newsletter
	}

	if s.persistTheme {
		var theme domain.Theme
		if s.kv.Read(string(domain.SliceTheme), &theme) && theme == domain.ThemeDark {
			s.state.Theme = domain.ThemeDark
		}
	}
}

func (s *Store) readProducts() []domain.Product {
	var products []domain.Product
	if s.kv.Read(string(domain.SliceProducts), &products) && products != nil {
		return products
	}
	out := make([]domain.Product, len(s.seed))
	for i, p := range s.seed {
		out[i] = p.Clone()
	}
	return out
}

// GetState returns a deep copy of the whole snapshot.
func (s *Store) GetState() State {
	return s.state.Clone()
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return func() {
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// commit persists the dirty slices as one plan and then notifies listeners.
func (s *Store) commit(event domain.EventType, ct *domain.ChangeTracker) {
	plan := commitplan.NewPlan()
	for _, slice := range ct.DirtySlices() {
		if !slice.Persistent() {
			continue
		}
		if slice == domain.SliceTheme && !s.persistTheme {
			continue
		}
		s.kv.Stage(plan, string(slice), s.sliceValue(slice))
	}
	s.kv.Commit(plan)

	change := domain.Change{Type: event, Slices: ct.DirtySlices(), At: s.clock.Now()}
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn(change)
		}
	}
}

func (s *Store) sliceValue(slice domain.Slice) any {
	switch slice {
	case domain.SliceProducts:
		return s.state.Products
	case domain.SliceCart:
		return s.state.Cart
	case domain.SliceWishlist:
		return s.state.Wishlist
	case domain.SliceSession:
		return s.state.Session
	case domain.SliceCoupon:
		return s.state.Coupon
	case domain.SliceNewsletter:
		return s.state.Newsletter
	case domain.SliceViews:
		return s.state.Views
	case domain.SliceTheme:
		return s.state.Theme
	}
	return nil
}

// touch is a shorthand for a tracker with the given slices marked.
func touch(slices ...domain.Slice) *domain.ChangeTracker {
	ct := domain.NewChangeTracker()
	for _, sl := range slices {
		ct.MarkDirty(sl)
	}
	return ct
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
