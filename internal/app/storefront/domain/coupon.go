package domain

import "strings"

// Coupon is an applied discount code. Discount is a fraction in [0,1].
type Coupon struct {
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"`
	FreeShipping bool    `json:"freeShipping,omitempty"`
	Label        string  `json:"label"`
}

// couponRegistry holds the codes the shop accepts, keyed upper case.
var couponRegistry = map[string]Coupon{
	"WELCOME10":   {Code: "WELCOME10", Discount: 0.10, Label: "10% de bienvenida"},
	"VIP20":       {Code: "VIP20", Discount: 0.20, Label: "20% clientes VIP"},
	"ENVIOGRATIS": {Code: "ENVIOGRATIS", Discount: 0, FreeShipping: true, Label: "Envío gratis"},
}

// LookupCoupon matches code case-insensitively against the registry.
func LookupCoupon(code string) (Coupon, bool) {
	c, ok := couponRegistry[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}
