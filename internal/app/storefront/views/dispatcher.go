package views

import (
	"html/template"
	"log"
	"strings"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// Logical paths.
const (
	PathHome          = "/"
	PathCatalog       = "/catalog"
	PathCart          = "/cart"
	PathCheckout      = "/checkout"
	PathWishlist      = "/wishlist"
	PathAdminLogin    = "/admin/login"
	PathAdminProducts = "/admin/products"
)

// IsAdminPath reports whether path belongs to the admin route table.
func IsAdminPath(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

type Config struct {
	Brand         string
	SupportNumber string
	Logger        *log.Logger
}

// env is what every page module shares.
type env struct {
	store   Store
	tpl     *template.Template
	brand   string
	support string
}

// Dispatcher picks the page for a path and wraps it in its layout shell.
// Unknown paths fall back to the home page (public) or the login page
// (admin); there is no not-found page.
type Dispatcher struct {
	env    *env
	public map[string]Page
	admin  map[string]Page
	logger *log.Logger
}

func NewDispatcher(s Store, cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	e := &env{
		store:   s,
		tpl:     parseTemplates(),
		brand:   cfg.Brand,
		support: cfg.SupportNumber,
	}
	return &Dispatcher{
		env: e,
		public: map[string]Page{
			PathHome:     homePage{e},
			PathCatalog:  catalogPage{e},
			PathCart:     cartPage{e},
			PathCheckout: checkoutPage{e},
			PathWishlist: wishlistPage{e},
		},
		admin: map[string]Page{
			PathAdminLogin:    adminLoginPage{e},
			PathAdminProducts: adminProductsPage{e},
		},
		logger: logger,
	}
}

// Resolve returns the page that serves path and the path it is registered
// under.
func (d *Dispatcher) Resolve(path string) (Page, string) {
	if IsAdminPath(path) {
		if p, ok := d.admin[path]; ok {
			return p, path
		}
		return d.admin[PathAdminLogin], PathAdminLogin
	}
	if p, ok := d.public[path]; ok {
		return p, path
	}
	return d.public[PathHome], PathHome
}

// Dispatch renders req.Path from req.State.
func (d *Dispatcher) Dispatch(req Request) Render {
	page, resolved := d.Resolve(req.Path)
	admin := IsAdminPath(resolved)

	r, err := page.Render(req)
	if err != nil {
		d.logger.Printf("[views] render %s: %v", resolved, err)
		r = Render{
			Title: "Error",
			HTML:  template.HTML(`<p class="error">No pudimos mostrar esta página.</p>`),
		}
	}

	data := shellData{
		Brand:      d.env.brand,
		Title:      r.Title,
		Path:       resolved,
		Theme:      req.State.Theme,
		CartCount:  req.State.CartCount(),
		Search:     req.State.Search,
		Flash:      req.Flash,
		SupportURL: domain.WhatsAppURL(d.env.support, "Hola "+d.env.brand),
		IsAdmin:    req.State.IsAdmin(),
		Body:       r.HTML,
	}

	layout, mount := "layout_public", publicShellActions(d.env)
	if admin {
		layout, mount = "layout_admin", adminShellActions(d.env)
	}
	html, err := execute(d.env.tpl, layout, data)
	if err != nil {
		d.logger.Printf("[views] layout %s: %v", layout, err)
		html = r.HTML
	}
	return Render{Title: r.Title, HTML: html, OnMount: chain(mount, r.OnMount)}
}

// CatalogGrid renders only the catalog grid for req, the targeted re-render
// used when filters or search change without a full page load.
func (d *Dispatcher) CatalogGrid(req Request) (template.HTML, error) {
	return catalogPage{d.env}.grid(req)
}

type shellData struct {
	Brand      string
	Title      string
	Path       string
	Theme      domain.Theme
	CartCount  int
	Search     string
	Flash      string
	SupportURL string
	IsAdmin    bool
	Body       template.HTML
}
