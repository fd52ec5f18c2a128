package models

// CartLine is one cart entry, keyed by (productId, size). Name, ShortName,
// Price, Image and Color are snapshots taken when the line was added; they
// are not kept in sync with the catalog afterwards, so a stored cart stays
// renderable and priceable on its own.
//
// The JSON field names are the persisted wire format of the cart payload.
type CartLine struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
}

// Matches reports whether the line is the variant identified by
// (productID, size).
func (l CartLine) Matches(productID int, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// Subtotal is the line's snapshot price times its quantity.
func (l CartLine) Subtotal() int {
	return l.Price * l.Quantity
}
