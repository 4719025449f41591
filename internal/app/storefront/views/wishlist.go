package views

import (
	"net/url"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/store"
)

type wishlistPage struct{ *env }

func (p wishlistPage) Render(req Request) (Render, error) {
	html, err := execute(p.tpl, "wishlist", struct {
		Cards []card
	}{
		Cards: newCards(req.State.WishlistProducts(), req.State),
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Favoritos", HTML: html, OnMount: p.mount}, nil
}

func (p wishlistPage) mount(a Actions) {
	a.Handle("move-to-cart", func(form url.Values) Outcome {
		prod, ok := p.store.FindProduct(form.Get("product"))
		if !ok {
			return Outcome{Flash: "Producto no disponible"}
		}
		if !prod.InStock() {
			return Outcome{Flash: prod.Name + " está agotado"}
		}
		p.store.AddToCart(store.CartItem{
			ProductID: prod.ID,
			Size:      pick("", prod.Sizes),
			Color:     pick("", prod.Colors),
			Qty:       1,
		})
		if p.store.GetState().InWishlist(prod.ID) {
			p.store.ToggleWishlist(prod.ID)
		}
		return Outcome{Flash: "Movido al carrito: " + prod.Name}
	})
}
