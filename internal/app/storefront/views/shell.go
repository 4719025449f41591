package views

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
)

// publicShellActions are available on every public page: the header search
// and theme toggle, the footer newsletter form and the product card buttons.
func publicShellActions(e *env) func(Actions) {
	return func(a Actions) {
		a.Handle("search", func(form url.Values) Outcome {
			e.store.SetSearchQuery(strings.TrimSpace(form.Get("q")))
			return Outcome{Navigate: PathCatalog}
		})
		a.Handle("toggle-theme", func(url.Values) Outcome {
			e.store.ToggleTheme()
			return Outcome{}
		})
		a.Handle("newsletter", func(form url.Values) Outcome {
			if err := e.store.SubscribeNewsletter(form.Get("email")); err != nil {
				return Outcome{Flash: "Escribe un correo válido"}
			}
			return Outcome{Flash: "¡Gracias por suscribirte!"}
		})
		a.Handle("add-to-cart", func(form url.Values) Outcome {
			return addToCart(e, form)
		})
		a.Handle("toggle-wishlist", func(form url.Values) Outcome {
			id := form.Get("product")
			if _, ok := e.store.FindProduct(id); !ok {
				return Outcome{Flash: "Producto no disponible"}
			}
			if e.store.ToggleWishlist(id) {
				return Outcome{Flash: "Agregado a favoritos"}
			}
			return Outcome{Flash: "Eliminado de favoritos"}
		})
		a.Handle("view-product", func(form url.Values) Outcome {
			id := form.Get("product")
			if _, ok := e.store.FindProduct(id); !ok {
				return Outcome{Flash: "Producto no disponible"}
			}
			e.store.TrackProductView(id)
			return Outcome{Navigate: PathCatalog + "?view=" + url.QueryEscape(id)}
		})
	}
}

func adminShellActions(e *env) func(Actions) {
	return func(a Actions) {
		a.Handle("logout", func(url.Values) Outcome {
			e.store.AdminLogout()
			return Outcome{Navigate: PathAdminLogin, Flash: "Sesión cerrada"}
		})
		a.Handle("toggle-theme", func(url.Values) Outcome {
			e.store.ToggleTheme()
			return Outcome{}
		})
	}
}

func addToCart(e *env, form url.Values) Outcome {
	p, ok := e.store.FindProduct(form.Get("product"))
	if !ok {
		return Outcome{Flash: "Producto no disponible"}
	}
	if !p.InStock() {
		return Outcome{Flash: p.Name + " está agotado"}
	}
	e.store.AddToCart(store.CartItem{
		ProductID: p.ID,
		Size:      pick(form.Get("size"), p.Sizes),
		Color:     pick(form.Get("color"), p.Colors),
		Qty:       parseQty(form.Get("qty")),
	})
	return Outcome{Flash: "Agregado al carrito: " + p.Name}
}

// pick keeps a submitted variant only when the product offers it, and falls
// back to the first option.
func pick(v string, options []string) string {
	v = strings.TrimSpace(v)
	for _, o := range options {
		if o == v {
			return v
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}

// parseQty coerces form input to a number; anything unparsable becomes 1.
func parseQty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return domain.ClampQty(n)
}
