package views

import (
	"net/url"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

const (
	featuredCount   = 4
	bestSellerCount = 4
)

type homePage struct{ *env }

type typeLink struct {
	Name string
	URL  string
}

func (p homePage) Render(req Request) (Render, error) {
	st := req.State

	var featured []domain.Product
	for _, prod := range st.Products {
		if prod.Badge != domain.BadgeNone && prod.InStock() {
			featured = append(featured, prod)
		}
		if len(featured) == featuredCount {
			break
		}
	}
	if len(featured) == 0 && len(st.Products) > 0 {
		featured = st.Products[:min(featuredCount, len(st.Products))]
	}

	var types []typeLink
	for _, t := range domain.ProductTypes(st.Products) {
		types = append(types, typeLink{Name: t, URL: PathCatalog + "?type=" + url.QueryEscape(t)})
	}

	html, err := execute(p.tpl, "home", struct {
		Brand       string
		Types       []typeLink
		Featured    []card
		BestSellers []card
	}{
		Brand:       p.brand,
		Types:       types,
		Featured:    newCards(featured, st),
		BestSellers: newCards(st.MostViewed(bestSellerCount), st),
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Inicio", HTML: html}, nil
}
