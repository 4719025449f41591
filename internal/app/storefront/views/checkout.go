package views

import (
	"net/url"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

type checkoutPage struct{ *env }

var checkoutFields = []field{
	{Name: "name", Label: "Nombre completo", Type: "text"},
	{Name: "phone", Label: "Teléfono", Type: "tel"},
	{Name: "address", Label: "Dirección", Type: "text"},
	{Name: "city", Label: "Ciudad", Type: "text"},
	{Name: "notes", Label: "Notas (opcional)", Type: "text"},
}

func checkoutForm(form url.Values) domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:    form.Get("name"),
		Phone:   form.Get("phone"),
		Address: form.Get("address"),
		City:    form.Get("city"),
		Notes:   form.Get("notes"),
	}
}

func (p checkoutPage) Render(req Request) (Render, error) {
	lines := req.State.Lines()

	fields := make([]field, len(checkoutFields))
	for i, f := range checkoutFields {
		f.Value = req.Form.Value(f.Name)
		f.Error = req.Form.Error(f.Name)
		fields[i] = f
	}

	html, err := execute(p.tpl, "checkout", struct {
		Empty  bool
		Fields []field
		Lines  []cartRow
		Coupon *domain.Coupon
		Totals domain.Totals
	}{
		Empty:  !hasResolvable(lines),
		Fields: fields,
		Lines:  cartRows(resolvable(lines)),
		Coupon: req.State.Coupon,
		Totals: req.Totals,
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Finalizar compra", HTML: html, OnMount: p.mount}, nil
}

func (p checkoutPage) mount(a Actions) {
	a.Handle("checkout", func(form url.Values) Outcome {
		lines := p.store.CartLines()
		if !hasResolvable(lines) {
			return Outcome{Navigate: PathCart, Flash: "Tu carrito está vacío"}
		}

		order := checkoutForm(form)
		if errs := order.Validate(); len(errs) > 0 {
			return Outcome{
				Flash: "Revisa los datos marcados",
				Form:  &FormState{Values: form, Errors: errs},
			}
		}

		st := p.store.GetState()
		msg := domain.OrderMessage(p.brand, order, lines, st.Coupon, p.store.Totals())
		link := domain.WhatsAppURL(p.support, msg)

		p.store.ClearCart()
		p.store.RemoveCoupon()
		return Outcome{
			Navigate: PathHome,
			External: link,
			Flash:    "Te llevamos a WhatsApp para confirmar tu pedido",
		}
	})
}

func hasResolvable(lines []domain.ResolvedLine) bool {
	for _, l := range lines {
		if l.Found {
			return true
		}
	}
	return false
}

func resolvable(lines []domain.ResolvedLine) []domain.ResolvedLine {
	out := make([]domain.ResolvedLine, 0, len(lines))
	for _, l := range lines {
		if l.Found {
			out = append(out, l)
		}
	}
	return out
}
