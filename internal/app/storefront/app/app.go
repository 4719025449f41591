// Package app is the storefront's orchestration layer. It connects the router,
// the state store and the view dispatcher, runs the access gate before every
// render and keeps the mounted screen with its actions. All methods must be
// called on the event loop.
package app

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"time"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/router"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/views"
)

// ErrUnknownAction is returned by Invoke when the mounted screen has no
// handler with that name.
var ErrUnknownAction = errors.New("unknown action")

const defaultToastTTL = 3 * time.Second

// Timers schedules UI timers such as toast auto-dismiss.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type Config struct {
	ToastTTL time.Duration
	Logger   *log.Logger
}

// Screen is the currently mounted render.
type Screen struct {
	Route   router.Route
	Title   string
	HTML    template.HTML
	Renders int
}

// Snapshot is the JSON view of the storefront exposed to clients.
type Snapshot struct {
	Route  string        `json:"route"`
	State  store.State   `json:"state"`
	Totals domain.Totals `json:"totals"`
}

type App struct {
	store  *store.Store
	router *router.Router
	views  *views.Dispatcher
	timers Timers
	ttl    time.Duration
	logger *log.Logger

	route   router.Route
	screen  Screen
	actions views.Actions
	flash   string
	form    views.FormState

	cancelToast func()
	unsubscribe func()
	started     bool
}

func New(s *store.Store, r *router.Router, d *views.Dispatcher, timers Timers, cfg Config) *App {
	ttl := cfg.ToastTTL
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		store:   s,
		router:  r,
		views:   d,
		timers:  timers,
		ttl:     ttl,
		logger:  logger,
		actions: views.Actions{},
	}
}

// Start subscribes to store changes and route changes and renders the
// current route.
func (a *App) Start() {
	if a.started {
		return
	}
	a.started = true
	a.unsubscribe = a.store.Subscribe(a.onChange)
	a.router.Listen(a.onRoute)
	a.router.Start()
}

// Stop detaches from the store and cancels a pending toast.
func (a *App) Stop() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.cancelToast != nil {
		a.cancelToast()
		a.cancelToast = nil
	}
}

// Visit navigates to path as if the user followed a link.
func (a *App) Visit(path string) {
	a.router.Navigate(path)
}

func (a *App) onRoute(r router.Route) {
	changedPath := r.Path != a.route.Path
	a.route = r
	a.form = views.FormState{}

	// The search text belongs to the catalog; leaving it clears it.
	if changedPath && r.Path != views.PathCatalog && a.store.GetState().Search != "" {
		a.store.SetSearchQuery("")
		return
	}
	a.render()
}

func (a *App) onChange(domain.Change) {
	if _, ok := a.router.Current(); !ok {
		return
	}
	a.render()
}

// render runs the access gate and either redirects or mounts the page.
func (a *App) render() {
	st := a.store.GetState()
	if target := Gate(a.route.Path, st.IsAdmin()); target != "" {
		a.logger.Printf("[app] redirect %s -> %s", a.route.Path, target)
		a.router.Navigate(target)
		return
	}

	r := a.views.Dispatch(views.Request{
		Path:   a.route.Path,
		Query:  a.route.Query,
		State:  st,
		Totals: a.store.Totals(),
		Flash:  a.flash,
		Form:   a.form,
	})

	actions := views.Actions{}
	if r.OnMount != nil {
		r.OnMount(actions)
	}
	a.actions = actions
	a.screen = Screen{
		Route:   a.route,
		Title:   r.Title,
		HTML:    r.HTML,
		Renders: a.screen.Renders + 1,
	}
}

// Invoke runs a named action of the mounted screen and applies its outcome.
func (a *App) Invoke(name string, form url.Values) (views.Outcome, error) {
	fn, ok := a.actions.Lookup(name)
	if !ok {
		return views.Outcome{}, fmt.Errorf("%w: %q on %s", ErrUnknownAction, name, a.route.Path)
	}
	if form == nil {
		form = url.Values{}
	}

	out := fn(form)
	if out.Flash != "" {
		a.toast(out.Flash)
	}
	if out.Form != nil {
		a.form = *out.Form
	}
	if out.Navigate != "" {
		a.router.Navigate(out.Navigate)
	}
	a.render()
	return out, nil
}

// toast shows msg until the dismiss timer fires. A newer toast cancels the
// pending dismiss of the previous one.
func (a *App) toast(msg string) {
	if a.cancelToast != nil {
		a.cancelToast()
	}
	a.flash = msg
	a.cancelToast = a.timers.AfterFunc(a.ttl, func() {
		a.cancelToast = nil
		a.flash = ""
		a.render()
	})
}

// Screen returns the mounted screen.
func (a *App) Screen() Screen {
	return a.screen
}

// Flash is the toast currently shown, if any.
func (a *App) Flash() string {
	return a.flash
}

// HasAction reports whether the mounted screen handles name.
func (a *App) HasAction(name string) bool {
	_, ok := a.actions.Lookup(name)
	return ok
}

// CatalogGrid renders the catalog grid for query, without the layout.
func (a *App) CatalogGrid(query url.Values) (template.HTML, error) {
	return a.views.CatalogGrid(views.Request{
		Path:  views.PathCatalog,
		Query: query,
		State: a.store.GetState(),
	})
}

func (a *App) Snapshot() Snapshot {
	return Snapshot{
		Route:  a.route.String(),
		State:  a.store.GetState(),
		Totals: a.store.Totals(),
	}
}
