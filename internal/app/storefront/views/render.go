// Package views maps a route and a state snapshot to a render descriptor. It
// owns the page modules and the public/admin layout shells.
package views

import (
	"html/template"
	"net/url"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
)

// Store is the slice of the state store the pages read and drive.
type Store interface {
	GetState() store.State
	FindProduct(id string) (domain.Product, bool)
	CartLines() []domain.ResolvedLine
	Totals() domain.Totals

	AddToCart(item store.CartItem) string
	SetCartItemQty(key string, qty int) bool
	RemoveCartItem(key string) bool
	ClearCart()
	ApplyCoupon(code string) store.CouponResult
	RemoveCoupon()
	ToggleWishlist(id string) bool
	TrackProductView(id string)
	SubscribeNewsletter(email string) error
	SetSearchQuery(query string)
	ToggleTheme() domain.Theme
	AdminLogin(user, password string) bool
	AdminLogout()
	UpsertProduct(p domain.Product) (domain.Product, error)
	DeleteProduct(id string) bool
}

// Request is everything a page may render from. Totals are derived from
// State by the store's pricing rules when the snapshot is taken.
type Request struct {
	Path   string
	Query  url.Values
	State  store.State
	Totals domain.Totals
	Flash  string
	Form   FormState
}

// FormState carries submitted values and field errors back into the next
// render of the same page.
type FormState struct {
	Values url.Values
	Errors map[string]string
}

func (f FormState) Value(name string) string {
	return f.Values.Get(name)
}

func (f FormState) Error(name string) string {
	return f.Errors[name]
}

// Render is the descriptor a page produces. OnMount is optional and registers
// the actions the mounted screen responds to.
type Render struct {
	Title   string
	HTML    template.HTML
	OnMount func(Actions)
}

// Page is one page module.
type Page interface {
	Render(req Request) (Render, error)
}

// Outcome tells the orchestrator what to do after an action ran.
type Outcome struct {
	// Navigate moves the router to another path.
	Navigate string
	// External is an outbound URL the client should be sent to.
	External string
	Flash    string
	// Form is shown by the next render of the current page.
	Form *FormState
}

// Action handles a submitted form.
type Action func(form url.Values) Outcome

// Actions is the set of named handlers of the mounted screen.
type Actions map[string]Action

func (a Actions) Handle(name string, fn Action) {
	a[name] = fn
}

// Lookup returns the handler registered under name.
func (a Actions) Lookup(name string) (Action, bool) {
	fn, ok := a[name]
	return fn, ok
}

// chain runs both mount callbacks; the page's handlers win on name clashes.
func chain(shell, page func(Actions)) func(Actions) {
	return func(a Actions) {
		if shell != nil {
			shell(a)
		}
		if page != nil {
			page(a)
		}
	}
}
