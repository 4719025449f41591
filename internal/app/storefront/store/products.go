package store

import (
	"github.com/google/uuid"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

// LoadProducts re-reads the catalog from storage, falling back to the seed
// catalog, and returns a copy of it.
func (s *Store) LoadProducts() []domain.Product {
	s.state.Products = s.readProducts()
	s.commit(domain.EventProductsLoaded, touch())
	return s.GetState().Products
}

// SaveProducts replaces the whole catalog.
func (s *Store) SaveProducts(products []domain.Product) {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Normalize())
	}
	s.state.Products = out
	s.commit(domain.EventProductsSaved, touch(domain.SliceProducts))
}

// UpsertProduct validates p and either replaces the product with the same id
// or appends it. A new id is generated when p has none.
func (s *Store) UpsertProduct(p domain.Product) (domain.Product, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.Product{}, err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	products := s.GetState().Products
	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, p)
	}
	s.SaveProducts(products)
	return p.Clone(), nil
}

// DeleteProduct removes a product. Cart lines, wishlist entries and view
// counts that reference it are left in place and resolve to nothing.
func (s *Store) DeleteProduct(id string) bool {
	products := s.GetState().Products
	for i := range products {
		if products[i].ID == id {
			s.SaveProducts(append(products[:i], products[i+1:]...))
			return true
		}
	}
	return false
}

// FindProduct returns a copy of the product with id.
func (s *Store) FindProduct(id string) (domain.Product, bool) {
	p, ok := domain.FindProduct(s.state.Products, id)
	if !ok {
		return domain.Product{}, false
	}
	return p.Clone(), true
}

// SearchProducts is a case and accent insensitive substring match on name or
// type, in catalog order. Callers use the full list for a blank query.
func (s *Store) SearchProducts(query string) []domain.Product {
	return s.state.SearchProducts(query)
}
