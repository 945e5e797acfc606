package pricing

import "cardapio_digital/internal/domain/entities"

const trioSuffix = " (Trio)"

// BuildLine resolves the variant chosen for a catalog item into a priced
// cart line. Crust add-ons carry no extra cost. Quantities below 1 become 1.
func BuildLine(item entities.MenuItem, isTrio bool, sauce entities.Sauce, crust *entities.MenuItem, quantity int) entities.CartLine {
	if quantity < 1 {
		quantity = 1
	}

	key := entities.LineKey{ItemID: item.ID, Variant: entities.VariantSingle, Sauce: sauce}
	price := item.Price
	name := item.Name
	if isTrio {
		key.Variant = entities.VariantTrio
		price = item.TrioPrice
		name += trioSuffix
	}

	l := entities.CartLine{
		ItemID:    item.ID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: price,
		IsTrio:    isTrio,
		Sauce:     sauce,
	}
	if crust != nil {
		key.CrustID = crust.ID
		l.CrustID = crust.ID
		l.CrustName = crust.Name
	}
	l.Key = key
	return l
}
