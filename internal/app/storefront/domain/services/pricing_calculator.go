package services

import (
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// ShippingPolicy configures delivery charges.
type ShippingPolicy struct {
	// FreeShippingThreshold is the subtotal at or above which shipping is free.
	FreeShippingThreshold int64
	// Fee is charged below the threshold.
	Fee int64
}

// PricingCalculator derives cart totals from lines, the catalog and the
// applied coupon.
type PricingCalculator struct {
	policy ShippingPolicy
}

func NewPricingCalculator(policy ShippingPolicy) *PricingCalculator {
	return &PricingCalculator{policy: policy}
}

// Subtotal sums price × qty over resolvable lines. Lines whose product was
// deleted contribute zero.
func (pc *PricingCalculator) Subtotal(lines []domain.ResolvedLine) int64 {
	sum := domain.Zero()
	for _, l := range lines {
		if !l.Found {
			continue
		}
		sum = sum.Add(domain.FromPesos(l.Product.Price).Times(int64(l.Qty)))
	}
	return sum.Round()
}

// CalculateDiscount is round(subtotal × coupon fraction).
func (pc *PricingCalculator) CalculateDiscount(subtotal int64, coupon *domain.Coupon) int64 {
	if coupon == nil || coupon.Discount <= 0 {
		return 0
	}
	frac := coupon.Discount
	if frac > 1 {
		frac = 1
	}
	return domain.FromPesos(subtotal).MultiplyByDecimal(frac).Round()
}

// QualifiesForFreeShipping is true when the coupon grants it or the subtotal
// reaches the threshold.
func (pc *PricingCalculator) QualifiesForFreeShipping(subtotal int64, coupon *domain.Coupon) bool {
	if coupon != nil && coupon.FreeShipping {
		return true
	}
	return subtotal >= pc.policy.FreeShippingThreshold
}

// Totals computes the full breakdown. A cart with no resolvable line, empty
// or holding only deleted products, has no shipping charge.
func (pc *PricingCalculator) Totals(lines []domain.ResolvedLine, coupon *domain.Coupon) domain.Totals {
	t := domain.Totals{}
	shippable := false
	for _, l := range lines {
		t.Count += l.Qty
		if l.Found {
			shippable = true
		}
	}
	t.Subtotal = pc.Subtotal(lines)
	t.Discount = pc.CalculateDiscount(t.Subtotal, coupon)
	t.FreeShipping = pc.QualifiesForFreeShipping(t.Subtotal, coupon)
	if !t.FreeShipping && shippable {
		t.Shipping = pc.policy.Fee
	}
	t.Total = t.Subtotal - t.Discount + t.Shipping
	return t
}
