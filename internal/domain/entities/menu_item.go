package entities

import "github.com/shopspring/decimal"

// ItemType classifies a menu entry. The set is closed.
type ItemType string

const (
	ItemTypeTradicional ItemType = "Tradicional"
	ItemTypeEspecial    ItemType = "Especial"
	ItemTypeDoce        ItemType = "Doce"
	ItemTypeBorda       ItemType = "Borda"
	ItemTypeBebida      ItemType = "Bebida"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeTradicional, ItemTypeEspecial, ItemTypeDoce, ItemTypeBorda, ItemTypeBebida:
		return true
	}
	return false
}

// MenuItem is an orderable catalog entry with two price points.
//
// TrioPrice is expected to be >= Price (burger + fries + drink bundle), the
// storefront does not enforce it.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TrioPrice   decimal.Decimal `json:"trioPrice"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable bool            `json:"isAvailable"`
	Category    string          `json:"category"`
	ItemType    ItemType        `json:"itemType"`
}

// IsCrust reports whether the item is a crust add-on (borda).
func (m MenuItem) IsCrust() bool {
	return m.ItemType == ItemTypeBorda
}

// TakesSauce reports whether the item is served with a sauce choice.
func (m MenuItem) TakesSauce() bool {
	switch m.ItemType {
	case ItemTypeBebida, ItemTypeDoce, ItemTypeBorda:
		return false
	}
	return true
}
