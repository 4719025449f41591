package app

import (
	"github.com/murkotick/menswear-storefront/internal/app/storefront/views"
)

// Gate decides whether path may be rendered for the current session. It
// returns the path to redirect to, or "" when no redirect is needed. The
// admin login page itself never redirects.
func Gate(path string, isAdmin bool) string {
	if path == views.PathAdminLogin {
		return ""
	}
	admin := views.IsAdminPath(path)
	switch {
	case isAdmin && !admin:
		return views.PathAdminProducts
	case !isAdmin && admin:
		return views.PathAdminLogin
	}
	return ""
}
