package store

import (
	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
	"github.com/murkotick/menswear-storefront/internal/pkg/clock"
)

// CouponResult reports the outcome of ApplyCoupon.
type CouponResult struct {
	OK      bool
	Message string
	Coupon  *domain.Coupon
	Err     error
}

// AdminLogin checks the configured credentials. Success starts and persists a
// session; failure clears any session.
func (s *Store) AdminLogin(user, password string) bool {
	if !s.creds.Check(user, password) {
		s.state.Session = nil
		s.commit(domain.EventAdminLoggedOut, touch(domain.SliceSession))
		return false
	}
	s.state.Session = &domain.AdminSession{OK: true, At: clock.Millis(s.clock)}
	s.commit(domain.EventAdminLoggedIn, touch(domain.SliceSession))
	return true
}

// AdminLogout clears the session. Without a session it does nothing.
func (s *Store) AdminLogout() {
	if s.state.Session == nil {
		return
	}
	s.state.Session = nil
	s.commit(domain.EventAdminLoggedOut, touch(domain.SliceSession))
}

func (s *Store) IsAdmin() bool {
	return s.state.IsAdmin()
}

// ApplyCoupon looks code up case-insensitively. A known code replaces the
// current coupon; an unknown one leaves it untouched.
func (s *Store) ApplyCoupon(code string) CouponResult {
	c, ok := domain.LookupCoupon(code)
	if !ok {
		return CouponResult{OK: false, Message: "Cupón inválido", Err: domain.ErrUnknownCoupon}
	}
	s.state.Coupon = &c
	s.commit(domain.EventCouponApplied, touch(domain.SliceCoupon))

	applied := c
	return CouponResult{OK: true, Message: "Cupón aplicado: " + c.Label, Coupon: &applied}
}

func (s *Store) RemoveCoupon() {
	if s.state.Coupon == nil {
		return
	}
	s.state.Coupon = nil
	s.commit(domain.EventCouponRemoved, touch(domain.SliceCoupon))
}
