package domain

func price(v int64) *int64 { return &v }
func units(v int) *int     { return &v }

// SeedProducts is the catalog a fresh store starts with when nothing is
// persisted yet.
func SeedProducts() []Product {
	return []Product{
		{
			ID: "cam-oxford-azul", Name: "Camisa Oxford Azul", Type: "Camisas",
			Description: "Camisa de algodón oxford, corte slim.",
			Price:       699, OriginalPrice: price(899),
			Sizes: []string{"S", "M", "L", "XL"}, Colors: []string{"Azul", "Blanco"},
			Images: []string{"/assets/img/camisa-oxford-azul.jpg"},
			Badge:  BadgeSale, Stock: units(25),
		},
		{
			ID: "cam-lino-blanca", Name: "Camisa de Lino Blanca", Type: "Camisas",
			Description: "Lino ligero para clima cálido.",
			Price:       799,
			Sizes:       []string{"M", "L", "XL"}, Colors: []string{"Blanco", "Beige"},
			Images: []string{"/assets/img/camisa-lino-blanca.jpg"},
			Badge:  BadgeNew, Stock: units(12),
		},
		{
			ID: "pan-chino-negro", Name: "Pantalón Chino Negro", Type: "Pantalones",
			Description: "Gabardina con elastano, bolsillos sesgados.",
			Price:       849,
			Sizes:       []string{"30", "32", "34", "36"}, Colors: []string{"Negro", "Caqui"},
			Images: []string{"/assets/img/pantalon-chino-negro.jpg"},
			Badge:  BadgePopular, Stock: units(30),
		},
		{
			ID: "jean-slim-indigo", Name: "Jeans Slim Índigo", Type: "Pantalones",
			Price:  999,
			Sizes:  []string{"30", "32", "34"}, Colors: []string{"Índigo"},
			Images: []string{"/assets/img/jeans-slim-indigo.jpg"},
			Stock:  units(18),
		},
		{
			ID: "pol-pique-verde", Name: "Polo Piqué Verde", Type: "Polos",
			Price: 499, OriginalPrice: price(599),
			Sizes: []string{"S", "M", "L"}, Colors: []string{"Verde", "Marino"},
			Images: []string{"/assets/img/polo-pique-verde.jpg"},
			Badge:  BadgeSale, Stock: units(40),
		},
		{
			ID: "sac-lana-gris", Name: "Saco de Lana Gris", Type: "Sacos",
			Description: "Lana merino, forro completo.",
			Price:       2499,
			Sizes:       []string{"38", "40", "42", "44"}, Colors: []string{"Gris"},
			Images: []string{"/assets/img/saco-lana-gris.jpg"},
			Badge:  BadgePremium, Stock: units(6),
		},
		{
			ID: "cha-bomber-olivo", Name: "Chamarra Bomber Olivo", Type: "Chamarras",
			Price:  1299,
			Sizes:  []string{"M", "L", "XL"}, Colors: []string{"Olivo", "Negro"},
			Images: []string{"/assets/img/chamarra-bomber-olivo.jpg"},
			Badge:  BadgeNew, Stock: units(10),
		},
		{
			ID: "pla-basica-negra", Name: "Playera Básica Negra", Type: "Playeras",
			Price:  249,
			Sizes:  []string{"S", "M", "L", "XL"}, Colors: []string{"Negro", "Blanco", "Gris"},
			Images: []string{"/assets/img/playera-basica-negra.jpg"},
			Stock:  units(80),
		},
		{
			ID: "cin-piel-cafe", Name: "Cinturón de Piel Café", Type: "Accesorios",
			Price:  399,
			Sizes:  []string{"90", "95", "100"}, Colors: []string{"Café"},
			Images: []string{"/assets/img/cinturon-piel-cafe.jpg"},
			Stock:  units(0),
		},
	}
}
