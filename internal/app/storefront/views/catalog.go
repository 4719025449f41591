package views

import (
	"html/template"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// PageSize is the number of products per catalog page.
const PageSize = 8

// Sort orders understood by the catalog.
const (
	SortRelevance = ""
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{SortRelevance, "Relevancia"},
	{SortPriceAsc, "Precio: menor a mayor"},
	{SortPriceDesc, "Precio: mayor a menor"},
	{SortName, "Nombre"},
}

// CatalogFilter is the catalog's filter/pagination state, carried in the
// route query.
type CatalogFilter struct {
	Query    string
	Type     string
	Size     string
	MaxPrice int64
	Sort     string
	Page     int
}

// ParseCatalogFilter reads the filter from a route query. The store's search
// text is used unless the query carries its own "q".
func ParseCatalogFilter(q url.Values, search string) CatalogFilter {
	f := CatalogFilter{
		Query: strings.TrimSpace(search),
		Type:  strings.TrimSpace(q.Get("type")),
		Size:  strings.TrimSpace(q.Get("size")),
		Sort:  q.Get("sort"),
	}
	if v := strings.TrimSpace(q.Get("q")); v != "" {
		f.Query = v
	}
	if n, err := strconv.ParseInt(q.Get("max"), 10, 64); err == nil && n > 0 {
		f.MaxPrice = n
	}
	switch f.Sort {
	case SortPriceAsc, SortPriceDesc, SortName:
	default:
		f.Sort = SortRelevance
	}
	f.Page, _ = strconv.Atoi(q.Get("page"))
	return f
}

// URL links to the catalog with this filter on the given page.
func (f CatalogFilter) URL(page int) string {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Type != "" {
		v.Set("type", f.Type)
	}
	if f.Size != "" {
		v.Set("size", f.Size)
	}
	if f.MaxPrice > 0 {
		v.Set("max", strconv.FormatInt(f.MaxPrice, 10))
	}
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return PathCatalog
	}
	return PathCatalog + "?" + v.Encode()
}

// CatalogResult is one page of filtered products.
type CatalogResult struct {
	Products []domain.Product
	Total    int
	Page     int
	Pages    int
}

// FilterCatalog applies type, size and price filters, sorts, and cuts the
// requested page. The page is clamped into [1, Pages]; an empty result still
// has one page.
func FilterCatalog(products []domain.Product, f CatalogFilter) CatalogResult {
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Size != "" && !contains(p.Sizes, f.Size) {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortName:
		sort.SliceStable(matched, func(i, j int) bool {
			return domain.Fold(matched[i].Name) < domain.Fold(matched[j].Name)
		})
	}

	pages := (len(matched) + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(matched))

	return CatalogResult{
		Products: matched[start:end],
		Total:    len(matched),
		Page:     page,
		Pages:    pages,
	}
}

type catalogPage struct{ *env }

type pageLink struct {
	N       int
	URL     string
	Current bool
}

func (p catalogPage) Render(req Request) (Render, error) {
	st := req.State
	f := ParseCatalogFilter(req.Query, st.Search)

	grid, err := p.grid(req)
	if err != nil {
		return Render{}, err
	}

	var quick *card
	if id := req.Query.Get("view"); id != "" {
		if prod, ok := domain.FindProduct(st.Products, id); ok {
			c := newCard(prod, st)
			quick = &c
		}
	}

	closeQuery := cloneValues(req.Query)
	closeQuery.Del("view")
	closeURL := PathCatalog
	if len(closeQuery) > 0 {
		closeURL += "?" + closeQuery.Encode()
	}

	html, err := execute(p.tpl, "catalog", struct {
		Filter    CatalogFilter
		Types     []string
		Sizes     []string
		Sorts     []sortOption
		QuickView *card
		CloseURL  string
		Grid      template.HTML
	}{
		Filter:    f,
		Types:     domain.ProductTypes(st.Products),
		Sizes:     allSizes(st.Products),
		Sorts:     sortOptions,
		QuickView: quick,
		CloseURL:  closeURL,
		Grid:      grid,
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Catálogo", HTML: html}, nil
}

func (p catalogPage) grid(req Request) (template.HTML, error) {
	st := req.State
	f := ParseCatalogFilter(req.Query, st.Search)

	base := st.Products
	if f.Query != "" {
		base = st.SearchProducts(f.Query)
	}
	res := FilterCatalog(base, f)

	links := make([]pageLink, 0, res.Pages)
	for n := 1; n <= res.Pages; n++ {
		links = append(links, pageLink{N: n, URL: f.URL(n), Current: n == res.Page})
	}
	var prev, next string
	if res.Page > 1 {
		prev = f.URL(res.Page - 1)
	}
	if res.Page < res.Pages {
		next = f.URL(res.Page + 1)
	}

	return execute(p.tpl, "catalog_grid", struct {
		Cards   []card
		Total   int
		Pages   int
		Links   []pageLink
		PrevURL string
		NextURL string
	}{
		Cards:   newCards(res.Products, st),
		Total:   res.Total,
		Pages:   res.Pages,
		Links:   links,
		PrevURL: prev,
		NextURL: next,
	})
}

func allSizes(products []domain.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		for _, s := range p.Sizes {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
