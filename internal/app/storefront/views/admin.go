package views

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/murkotick/menswear-storefront/internal/app/storefront/domain"
)

type adminLoginPage struct{ *env }

func (p adminLoginPage) Render(req Request) (Render, error) {
	html, err := execute(p.tpl, "admin_login", struct {
		Form FormState
	}{
		Form: req.Form,
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Acceso", HTML: html, OnMount: p.mount}, nil
}

func (p adminLoginPage) mount(a Actions) {
	a.Handle("login", func(form url.Values) Outcome {
		if !p.store.AdminLogin(strings.TrimSpace(form.Get("user")), form.Get("password")) {
			kept := url.Values{"user": {form.Get("user")}}
			return Outcome{Flash: "Usuario o contraseña incorrectos", Form: &FormState{Values: kept}}
		}
		return Outcome{Navigate: PathAdminProducts, Flash: "Bienvenido"}
	})
}

type adminProductsPage struct{ *env }

var productFields = []field{
	{Name: "name", Label: "Nombre", Type: "text"},
	{Name: "type", Label: "Tipo", Type: "text"},
	{Name: "description", Label: "Descripción", Type: "text"},
	{Name: "price", Label: "Precio", Type: "number"},
	{Name: "originalPrice", Label: "Precio original", Type: "number"},
	{Name: "sizes", Label: "Tallas (separadas por coma)", Type: "text"},
	{Name: "colors", Label: "Colores (separados por coma)", Type: "text"},
	{Name: "images", Label: "Imágenes (URLs separadas por coma)", Type: "text"},
	{Name: "badge", Label: "Etiqueta", Type: "text"},
	{Name: "stock", Label: "Stock", Type: "number"},
}

func (p adminProductsPage) Render(req Request) (Render, error) {
	form := req.Form
	editing := false
	if id := req.Query.Get("edit"); id != "" && form.Values == nil {
		if prod, ok := domain.FindProduct(req.State.Products, id); ok {
			form = FormState{Values: productValues(prod)}
			editing = true
		}
	} else if form.Value("id") != "" {
		editing = true
	}

	fields := make([]field, len(productFields))
	for i, f := range productFields {
		f.Value = form.Value(f.Name)
		f.Error = form.Error(f.Name)
		fields[i] = f
	}

	html, err := execute(p.tpl, "admin_products", struct {
		Products      []domain.Product
		Editing       bool
		Form          FormState
		Fields        []field
		Badges        []domain.Badge
		SelectedBadge string
	}{
		Products:      req.State.Products,
		Editing:       editing,
		Form:          form,
		Fields:        fields,
		Badges:        domain.Badges,
		SelectedBadge: form.Value("badge"),
	})
	if err != nil {
		return Render{}, err
	}
	return Render{Title: "Productos", HTML: html, OnMount: p.mount}, nil
}

func (p adminProductsPage) mount(a Actions) {
	a.Handle("save-product", func(form url.Values) Outcome {
		prod, errs := ProductFromForm(form)
		if len(errs) == 0 {
			if _, err := p.store.UpsertProduct(prod); err != nil {
				errs = ProductErrors(err)
			}
		}
		if len(errs) > 0 {
			return Outcome{Flash: "Revisa los datos del producto", Form: &FormState{Values: form, Errors: errs}}
		}
		return Outcome{Navigate: PathAdminProducts, Flash: "Producto guardado"}
	})
	a.Handle("delete-product", func(form url.Values) Outcome {
		if !p.store.DeleteProduct(form.Get("id")) {
			return Outcome{Flash: "El producto ya no existe"}
		}
		return Outcome{Navigate: PathAdminProducts, Flash: "Producto eliminado"}
	})
}

// ProductFromForm parses the admin product form. Numeric fields that do not
// parse are reported per field; domain rules are checked by the store.
func ProductFromForm(form url.Values) (domain.Product, map[string]string) {
	errs := make(map[string]string)
	p := domain.Product{
		ID:          strings.TrimSpace(form.Get("id")),
		Name:        form.Get("name"),
		Type:        form.Get("type"),
		Description: form.Get("description"),
		Sizes:       domain.SplitList(form.Get("sizes")),
		Colors:      domain.SplitList(form.Get("colors")),
		Images:      domain.SplitList(form.Get("images")),
		Badge:       domain.Badge(strings.TrimSpace(form.Get("badge"))),
	}

	price, err := strconv.ParseInt(strings.TrimSpace(form.Get("price")), 10, 64)
	if err != nil {
		errs["price"] = "Precio inválido"
	}
	p.Price = price

	if v := strings.TrimSpace(form.Get("originalPrice")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs["originalPrice"] = "Precio original inválido"
		} else {
			p.OriginalPrice = &n
		}
	}
	if v := strings.TrimSpace(form.Get("stock")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs["stock"] = "Stock inválido"
		} else {
			p.Stock = &n
		}
	}
	return p, errs
}

// ProductErrors maps validation errors to form fields.
func ProductErrors(err error) map[string]string {
	errs := make(map[string]string)
	checks := []struct {
		target error
		field  string
		msg    string
	}{
		{domain.ErrEmptyProductName, "name", "El nombre es obligatorio"},
		{domain.ErrProductNameTooLong, "name", "El nombre es demasiado largo"},
		{domain.ErrEmptyProductType, "type", "El tipo es obligatorio"},
		{domain.ErrInvalidPrice, "price", "El precio debe ser mayor a cero"},
		{domain.ErrOriginalPriceTooLow, "originalPrice", "Debe ser mayor al precio"},
		{domain.ErrNegativeStock, "stock", "El stock no puede ser negativo"},
		{domain.ErrUnknownBadge, "badge", "Etiqueta desconocida"},
	}
	for _, c := range checks {
		if errors.Is(err, c.target) {
			errs[c.field] = c.msg
		}
	}
	if len(errs) == 0 {
		errs["name"] = err.Error()
	}
	return errs
}

func productValues(p domain.Product) url.Values {
	v := url.Values{}
	v.Set("id", p.ID)
	v.Set("name", p.Name)
	v.Set("type", p.Type)
	v.Set("description", p.Description)
	v.Set("price", strconv.FormatInt(p.Price, 10))
	if p.OriginalPrice != nil {
		v.Set("originalPrice", strconv.FormatInt(*p.OriginalPrice, 10))
	}
	v.Set("sizes", strings.Join(p.Sizes, ", "))
	v.Set("colors", strings.Join(p.Colors, ", "))
	v.Set("images", strings.Join(p.Images, ", "))
	v.Set("badge", string(p.Badge))
	if p.Stock != nil {
		v.Set("stock", strconv.Itoa(*p.Stock))
	}
	return v
}
