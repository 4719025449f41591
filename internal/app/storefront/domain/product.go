package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxProductNameLen = 120

// Badge is the optional marketing label shown on a product card.
type Badge string

const (
	BadgeNone    Badge = ""
	BadgeNew     Badge = "Nuevo"
	BadgeSale    Badge = "Oferta"
	BadgePopular Badge = "Popular"
	BadgePremium Badge = "Premium"
)

// Badges lists the selectable badges in form order.
var Badges = []Badge{BadgeNew, BadgeSale, BadgePopular, BadgePremium}

func (b Badge) Valid() bool {
	switch b {
	case BadgeNone, BadgeNew, BadgeSale, BadgePopular, BadgePremium:
		return true
	}
	return false
}

// Product is one catalog item. Prices are whole MXN.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description,omitempty"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
	Badge         Badge    `json:"badge,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
}

// Clone returns a deep copy.
func (p Product) Clone() Product {
	out := p
	out.Sizes = cloneStrings(p.Sizes)
	out.Colors = cloneStrings(p.Colors)
	out.Images = cloneStrings(p.Images)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	if p.Stock != nil {
		v := *p.Stock
		out.Stock = &v
	}
	return out
}

// HasDiscount reports whether an original price above the current one is set.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent is the whole-number markdown shown on sale cards.
func (p Product) DiscountPercent() int64 {
	if !p.HasDiscount() {
		return 0
	}
	off := FromPesos(*p.OriginalPrice - p.Price).MultiplyByFraction(100, *p.OriginalPrice)
	return off.Round()
}

func (p Product) InStock() bool {
	return p.Stock == nil || *p.Stock > 0
}

// Normalize trims text fields and drops blank or repeated sizes, colors and images.
func (p Product) Normalize() Product {
	out := p.Clone()
	out.ID = strings.TrimSpace(out.ID)
	out.Name = strings.TrimSpace(out.Name)
	out.Type = strings.TrimSpace(out.Type)
	out.Description = strings.TrimSpace(out.Description)
	out.Sizes = compactStrings(out.Sizes)
	out.Colors = compactStrings(out.Colors)
	out.Images = compactStrings(out.Images)
	return out
}

// Validate reports every rule the product breaks, joined.
func (p Product) Validate() error {
	var errs []error
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		errs = append(errs, ErrEmptyProductName)
	case utf8.RuneCountInString(name) > maxProductNameLen:
		errs = append(errs, ErrProductNameTooLong)
	}
	if strings.TrimSpace(p.Type) == "" {
		errs = append(errs, ErrEmptyProductType)
	}
	if p.Price <= 0 {
		errs = append(errs, ErrInvalidPrice)
	}
	if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
		errs = append(errs, ErrOriginalPriceTooLow)
	}
	if p.Stock != nil && *p.Stock < 0 {
		errs = append(errs, ErrNegativeStock)
	}
	if !p.Badge.Valid() {
		errs = append(errs, ErrUnknownBadge)
	}
	return errors.Join(errs...)
}

// FindProduct returns the product with id, or false.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ProductTypes lists distinct types in catalog order.
func ProductTypes(products []Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Type == "" || seen[p.Type] {
			continue
		}
		seen[p.Type] = true
		out = append(out, p.Type)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// SplitList turns a comma separated form value into a list.
func SplitList(s string) []string {
	return compactStrings(strings.Split(s, ","))
}
