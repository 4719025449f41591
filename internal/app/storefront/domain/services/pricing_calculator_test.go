package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

func resolved(price int64, qty int, found bool) domain.ResolvedLine {
	return domain.ResolvedLine{
		CartLine: domain.CartLine{ProductID: "p", Qty: qty},
		Product:  domain.Product{ID: "p", Price: price},
		Found:    found,
	}
}

func TestTotals_Welcome10On1000(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{FreeShippingThreshold: 999, Fee: 149})
	coupon, ok := domain.LookupCoupon("welcome10")
	assert.True(t, ok)

	got := pc.Totals([]domain.ResolvedLine{resolved(500, 2, true)}, &coupon)

	assert.Equal(t, int64(1000), got.Subtotal)
	assert.Equal(t, int64(100), got.Discount)
	assert.True(t, got.FreeShipping)
	assert.Equal(t, int64(0), got.Shipping)
	assert.Equal(t, int64(900), got.Total)
	assert.Equal(t, 2, got.Count)
}

func TestTotals_ShippingBelowThreshold(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{FreeShippingThreshold: 999, Fee: 149})

	got := pc.Totals([]domain.ResolvedLine{resolved(450, 1, true)}, nil)

	assert.False(t, got.FreeShipping)
	assert.Equal(t, int64(149), got.Shipping)
	assert.Equal(t, int64(599), got.Total)
}

func TestTotals_FreeShippingCoupon(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{FreeShippingThreshold: 999, Fee: 149})
	coupon, _ := domain.LookupCoupon("EnvioGratis")

	got := pc.Totals([]domain.ResolvedLine{resolved(300, 1, true)}, &coupon)

	assert.True(t, got.FreeShipping)
	assert.Equal(t, int64(0), got.Discount)
	assert.Equal(t, int64(300), got.Total)
}

func TestTotals_DanglingLinesCountZero(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{FreeShippingThreshold: 999, Fee: 149})

	lines := []domain.ResolvedLine{resolved(700, 1, true), resolved(900, 3, false)}
	assert.Equal(t, int64(700), pc.Subtotal(lines))
}

func TestTotals_DanglingOnlyCartHasNoShipping(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{FreeShippingThreshold: 999, Fee: 149})

	got := pc.Totals([]domain.ResolvedLine{resolved(900, 2, false)}, nil)
	assert.Equal(t, 2, got.Count)
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Shipping)
	assert.Zero(t, got.Total)
}

func TestTotals_EmptyCartHasNoShipping(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{FreeShippingThreshold: 999, Fee: 149})

	got := pc.Totals(nil, nil)
	assert.Equal(t, domain.Totals{}, got)
}

func TestCalculateDiscount_Rounds(t *testing.T) {
	pc := NewPricingCalculator(ShippingPolicy{})
	assert.Equal(t, int64(70), pc.CalculateDiscount(349, &domain.Coupon{Discount: 0.20}))
	assert.Equal(t, int64(35), pc.CalculateDiscount(349, &domain.Coupon{Discount: 0.10}))
}
