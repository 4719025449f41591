package views

import (
	"net/url"
	"strings"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

type cartPage struct{ *env }

type cartRow struct {
	Key     string
	Found   bool
	Name    string
	Variant string
	Qty     int
	Total   string
}

func cartRows(lines []domain.ResolvedLine) []cartRow {
	rows := make([]cartRow, 0, len(lines))
	for _, l := range lines {
		var variant []string
		if l.Size != "" {
			variant = append(variant, "Talla "+l.Size)
		}
		if l.Color != "" {
			variant = append(variant, l.Color)
		}
		rows = append(rows, cartRow{
			Key:     l.Key,
			Found:   l.Found,
			Name:    l.Product.Name,
			Variant: strings.Join(variant, " · "),
			Qty:     l.Qty,
			Total:   domain.FormatMXN(l.LineTotal()),
		})
	}
	return rows
}

func (p cartPage) Render(req Request) (Render, error) {
	html, err := execute(p.tpl, "cart", struct {
		Lines  []cartRow
		Coupon *domain.Coupon
		Totals domain.Totals
		Form   FormState
	}{
		Lines:  cartRows(req.State.Lines()),
		Coupon: req.State.Coupon,
		Totals: req.Totals,
		Form:   req.Form,
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Carrito", HTML: html, OnMount: p.mount}, nil
}

func (p cartPage) mount(a Actions) {
	a.Handle("set-qty", func(form url.Values) Outcome {
		p.store.SetCartItemQty(form.Get("key"), parseQty(form.Get("qty")))
		return Outcome{}
	})
	a.Handle("remove", func(form url.Values) Outcome {
		if p.store.RemoveCartItem(form.Get("key")) {
			return Outcome{Flash: "Producto eliminado del carrito"}
		}
		return Outcome{}
	})
	a.Handle("clear", func(url.Values) Outcome {
		p.store.ClearCart()
		return Outcome{Flash: "Carrito vacío"}
	})
	a.Handle("apply-coupon", func(form url.Values) Outcome {
		res := p.store.ApplyCoupon(form.Get("code"))
		if !res.OK {
			return Outcome{Flash: res.Message, Form: &FormState{Values: form}}
		}
		return Outcome{Flash: res.Message}
	})
	a.Handle("remove-coupon", func(url.Values) Outcome {
		p.store.RemoveCoupon()
		return Outcome{Flash: "Cupón retirado"}
	})
}
