package app

import (
	"bytes"
	"errors"
	"log"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain/services"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/router"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/views"
	"github.com/murkotick/menswear-storefront/internal/pkg/kvstore"
)

// harness drives the app by hand: queued tasks stand in for the event loop
// and timers only fire when the test says so.
type harness struct {
	tasks  []func()
	timers []*fakeTimer

	app   *App
	store *store.Store
	loc   *router.MemoryLocation
}

type fakeTimer struct {
	fn       func()
	canceled bool
}

func (h *harness) Post(fn func()) { h.tasks = append(h.tasks, fn) }

func (h *harness) AfterFunc(_ time.Duration, fn func()) func() {
	t := &fakeTimer{fn: fn}
	h.timers = append(h.timers, t)
	return func() { t.canceled = true }
}

func (h *harness) settle() {
	for len(h.tasks) > 0 {
		fn := h.tasks[0]
		h.tasks = h.tasks[1:]
		fn()
	}
}

func (h *harness) fireTimers() {
	timers := h.timers
	h.timers = nil
	for _, t := range timers {
		if !t.canceled {
			t.fn()
		}
	}
	h.settle()
}

func (h *harness) visit(path string) Screen {
	h.app.Visit(path)
	h.settle()
	return h.app.Screen()
}

func (h *harness) invoke(t *testing.T, name string, form url.Values) views.Outcome {
	t.Helper()
	out, err := h.app.Invoke(name, form)
	require.NoError(t, err)
	h.settle()
	return out
}

func newHarness(t *testing.T, fragment string) *harness {
	t.Helper()
	creds, err := store.NewCredentialsCost("admin", "secreto", bcrypt.MinCost)
	require.NoError(t, err)

	h := &harness{}
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	h.store = store.New(kvstore.New(kvstore.NewMemoryBackend()), store.Config{
		Credentials: creds,
		Shipping:    services.ShippingPolicy{FreeShippingThreshold: 999, Fee: 149},
	})
	h.loc = router.NewMemoryLocation(fragment)
	r := router.New(h.loc, h)
	d := views.NewDispatcher(h.store, views.Config{Brand: "Sastrería Norte", SupportNumber: "5512345678", Logger: logger})
	h.app = New(h.store, r, d, h, Config{Logger: logger})
	h.app.Start()
	h.settle()
	return h
}

func TestGate(t *testing.T) {
	cases := []struct {
		path    string
		isAdmin bool
		want    string
	}{
		{"/cart", true, views.PathAdminProducts},
		{"/", true, views.PathAdminProducts},
		{"/admin/products", true, ""},
		{"/admin/login", true, ""},
		{"/admin/products", false, views.PathAdminLogin},
		{"/admin/otra", false, views.PathAdminLogin},
		{"/admin/login", false, ""},
		{"/cart", false, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Gate(c.path, c.isAdmin), "%s admin=%v", c.path, c.isAdmin)
	}
}

func TestStart_RendersCurrentRoute(t *testing.T) {
	h := newHarness(t, "#/wishlist")

	s := h.app.Screen()
	assert.Equal(t, "/wishlist", s.Route.Path)
	assert.Equal(t, "Favoritos", s.Title)
}

func TestAccessGate_AdminVisitingCartIsRedirected(t *testing.T) {
	h := newHarness(t, "")
	require.True(t, h.store.AdminLogin("admin", "secreto"))
	h.settle()

	s := h.visit("/cart")

	assert.Equal(t, views.PathAdminProducts, s.Route.Path)
	assert.Equal(t, "#/admin/products", h.loc.Fragment())
	assert.Equal(t, "Productos", s.Title)
}

func TestAccessGate_VisitorToAdminGoesToLogin(t *testing.T) {
	h := newHarness(t, "")

	s := h.visit("/admin/products")

	assert.Equal(t, views.PathAdminLogin, s.Route.Path)
	assert.Equal(t, "Acceso", s.Title)
}

func TestAccessGate_LoginPageNeverRedirects(t *testing.T) {
	h := newHarness(t, "")
	s := h.visit("/admin/login")
	assert.Equal(t, views.PathAdminLogin, s.Route.Path)

	require.True(t, h.store.AdminLogin("admin", "secreto"))
	h.settle()
	assert.Equal(t, views.PathAdminLogin, h.app.Screen().Route.Path)
}

func TestAccessGate_RunsOnStateChange(t *testing.T) {
	h := newHarness(t, "#/admin/login")

	h.invoke(t, "login", url.Values{"user": {"admin"}, "password": {"secreto"}})
	assert.Equal(t, views.PathAdminProducts, h.app.Screen().Route.Path)

	// Logging out while on an admin page sends the visitor back to login.
	h.store.AdminLogout()
	h.settle()
	assert.Equal(t, views.PathAdminLogin, h.app.Screen().Route.Path)
}

func TestInvoke_UnknownAction(t *testing.T) {
	h := newHarness(t, "#/cart")

	_, err := h.app.Invoke("delete-product", nil)

	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.False(t, h.app.HasAction("delete-product"))
	assert.True(t, h.app.HasAction("apply-coupon"))
}

func TestInvoke_RerendersWithNewState(t *testing.T) {
	h := newHarness(t, "#/catalog")
	before := h.app.Screen().Renders

	h.invoke(t, "add-to-cart", url.Values{"product": {"cam-oxford-azul"}, "qty": {"2"}})

	s := h.app.Screen()
	assert.Greater(t, s.Renders, before)
	assert.Contains(t, string(s.HTML), `data-cart-count>2</span>`)
	assert.Contains(t, string(s.HTML), "Agregado al carrito")
}

func TestToast_NewerToastCancelsPendingDismiss(t *testing.T) {
	h := newHarness(t, "#/catalog")

	h.invoke(t, "toggle-wishlist", url.Values{"product": {"cam-oxford-azul"}})
	first := h.timers[0]
	h.invoke(t, "toggle-wishlist", url.Values{"product": {"pan-chino-negro"}})

	assert.True(t, first.canceled)
	assert.Equal(t, "Agregado a favoritos", h.app.Flash())

	h.fireTimers()
	assert.Empty(t, h.app.Flash())
	assert.NotContains(t, string(h.app.Screen().HTML), `class="toast"`)
}

func TestSearch_NavigatesToCatalogAndClearsOnLeave(t *testing.T) {
	h := newHarness(t, "")

	out := h.invoke(t, "search", url.Values{"q": {"azul"}})
	assert.Equal(t, views.PathCatalog, out.Navigate)
	assert.Equal(t, views.PathCatalog, h.app.Screen().Route.Path)
	assert.Equal(t, "azul", h.store.GetState().Search)

	h.visit("/cart")
	assert.Empty(t, h.store.GetState().Search)
	assert.Equal(t, "/cart", h.app.Screen().Route.Path)
}

func TestCheckout_FormErrorsSurviveRerenderAndClearOnNavigate(t *testing.T) {
	h := newHarness(t, "")
	h.store.AddToCart(store.CartItem{ProductID: "cam-oxford-azul", Qty: 1})
	h.visit("/checkout")

	h.invoke(t, "checkout", url.Values{"name": {"Ana"}})
	assert.Contains(t, string(h.app.Screen().HTML), "Teléfono de 10 dígitos")

	h.visit("/cart")
	h.visit("/checkout")
	assert.NotContains(t, string(h.app.Screen().HTML), "Teléfono de 10 dígitos")
}

func TestCatalogGridAndSnapshot(t *testing.T) {
	h := newHarness(t, "#/catalog?type=Camisas")
	h.store.AddToCart(store.CartItem{ProductID: "cam-oxford-azul", Qty: 1})

	grid, err := h.app.CatalogGrid(url.Values{"type": {"Pantalones"}})
	require.NoError(t, err)
	assert.Contains(t, string(grid), "Pantalón Chino Negro")

	snap := h.app.Snapshot()
	assert.Equal(t, "/catalog?type=Camisas", snap.Route)
	assert.Equal(t, int64(699), snap.Totals.Subtotal)
	assert.Len(t, snap.State.Cart, 1)
}

func TestStop_DetachesFromStore(t *testing.T) {
	h := newHarness(t, "#/catalog")
	before := h.app.Screen().Renders

	h.app.Stop()
	h.store.ToggleTheme()

	assert.Equal(t, before, h.app.Screen().Renders)
}
