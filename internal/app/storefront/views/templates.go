package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"money": domain.FormatMXN,
}

func parseTemplates() *template.Template {
	return template.Must(template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func execute(t *template.Template, name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// card is the view model of a product card.
type card struct {
	ID          string
	Name        string
	Type        string
	Description string
	Image       string
	Badge       domain.Badge
	Price       string
	Original    string
	Off         int64
	Sizes       []string
	Colors      []string
	InStock     bool
	Wishlisted  bool
}

func newCard(p domain.Product, state interface{ InWishlist(string) bool }) card {
	c := card{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Badge:       p.Badge,
		Price:       domain.FormatMXN(p.Price),
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		InStock:     p.InStock(),
		Wishlisted:  state.InWishlist(p.ID),
	}
	if len(p.Images) > 0 {
		c.Image = p.Images[0]
	}
	if p.HasDiscount() {
		c.Original = domain.FormatMXN(*p.OriginalPrice)
		c.Off = p.DiscountPercent()
	}
	return c
}

func newCards(products []domain.Product, state interface{ InWishlist(string) bool }) []card {
	out := make([]card, 0, len(products))
	for _, p := range products {
		out = append(out, newCard(p, state))
	}
	return out
}

// field is one labelled form input.
type field struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}
