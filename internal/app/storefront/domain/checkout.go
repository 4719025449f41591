package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// CheckoutForm is the customer data collected before the WhatsApp handoff.
type CheckoutForm struct {
	Name    string
	Phone   string
	Address string
	City    string
	Notes   string
}

// Validate returns a message per invalid field; an empty map means valid.
func (f CheckoutForm) Validate() map[string]string {
	errs := make(map[string]string)
	if len(strings.TrimSpace(f.Name)) < 2 {
		errs["name"] = "Escribe tu nombre completo"
	}
	if n := len(onlyDigits(f.Phone)); n < 10 || n > 13 {
		errs["phone"] = "Teléfono de 10 dígitos"
	}
	if len(strings.TrimSpace(f.Address)) < 5 {
		errs["address"] = "Escribe tu dirección de entrega"
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "Escribe tu ciudad"
	}
	return errs
}

// Totals is the derived price breakdown of a cart.
type Totals struct {
	Count        int   `json:"count"`
	Subtotal     int64 `json:"subtotal"`
	Discount     int64 `json:"discount"`
	Shipping     int64 `json:"shipping"`
	FreeShipping bool  `json:"freeShipping"`
	Total        int64 `json:"total"`
}

// OrderMessage formats the order summary sent to the shop's WhatsApp.
// Dangling lines are left out.
func OrderMessage(brand string, form CheckoutForm, lines []ResolvedLine, coupon *Coupon, totals Totals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s, quiero hacer un pedido:\n\n", brand)
	for _, l := range lines {
		if !l.Found {
			continue
		}
		fmt.Fprintf(&b, "• %s x%d", l.Product.Name, l.Qty)
		var variant []string
		if l.Size != "" {
			variant = append(variant, "Talla "+l.Size)
		}
		if l.Color != "" {
			variant = append(variant, "Color "+l.Color)
		}
		if len(variant) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(variant, ", "))
		}
		fmt.Fprintf(&b, " - %s\n", FormatMXN(l.LineTotal()))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", FormatMXN(totals.Subtotal))
	if coupon != nil && totals.Discount > 0 {
		fmt.Fprintf(&b, "Cupón %s: -%s\n", coupon.Code, FormatMXN(totals.Discount))
	}
	if totals.FreeShipping {
		b.WriteString("Envío: Gratis\n")
	} else {
		fmt.Fprintf(&b, "Envío: %s\n", FormatMXN(totals.Shipping))
	}
	fmt.Fprintf(&b, "Total: %s\n\n", FormatMXN(totals.Total))

	fmt.Fprintf(&b, "Nombre: %s\n", strings.TrimSpace(form.Name))
	fmt.Fprintf(&b, "Teléfono: %s\n", strings.TrimSpace(form.Phone))
	fmt.Fprintf(&b, "Dirección: %s, %s\n", strings.TrimSpace(form.Address), strings.TrimSpace(form.City))
	if notes := strings.TrimSpace(form.Notes); notes != "" {
		fmt.Fprintf(&b, "Notas: %s\n", notes)
	}
	return b.String()
}

// WhatsAppURL builds the wa.me deep link carrying text.
func WhatsAppURL(number, text string) string {
	q := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + onlyDigits(number) + "?text=" + q
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
