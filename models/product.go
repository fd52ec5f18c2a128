package models

// Category tags. CategoryAll is a reserved sentinel meaning "no filter",
// it never appears on a product.
const (
	CategoryAll         = "todos"
	CategoryFootwear    = "calzado"
	CategoryAccessories = "accesorios"
	CategoryYouth       = "juvenil"
	CategoryKids        = "infantil"
)

// CategoryLabels maps category tags to their display labels.
var CategoryLabels = map[string]string{
	CategoryAll:         "Todos",
	CategoryFootwear:    "Calzado",
	CategoryAccessories: "Accesorios",
	CategoryYouth:       "Juvenil",
	CategoryKids:        "Infantil",
}

// Categories lists the selectable tags in display order.
var Categories = []string{
	CategoryAll,
	CategoryFootwear,
	CategoryAccessories,
	CategoryYouth,
	CategoryKids,
}

type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	ShortName    string   `json:"short_name"`
	Price        int      `json:"price"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Category     string   `json:"category"`
	IsNew        bool     `json:"is_new"`
	IsBestseller bool     `json:"is_bestseller"`
	Color        string   `json:"color"`
}

// Badge returns the display badge for a product card. A product can carry
// both flags, but only one badge is shown and "new" wins.
func (p Product) Badge() string {
	if p.IsNew {
		return "Nuevo"
	}
	if p.IsBestseller {
		return "Bestseller"
	}
	return ""
}
