// Package defaults holds the built-in catalog served whenever the remote
// catalog document is missing or unreadable.
package defaults

import (
	"cardapio_digital/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	heroImageURL    = "https://i.imgur.com/UOtiGDX.png"
	burgersCategory = "Hambúrgueres"
)

func burger(id, name, description, price, trioPrice string, t entities.ItemType) entities.MenuItem {
	return entities.MenuItem{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		TrioPrice:   decimal.RequireFromString(trioPrice),
		ImageURL:    heroImageURL,
		IsAvailable: true,
		Category:    burgersCategory,
		ItemType:    t,
	}
}

func MenuItems() []entities.MenuItem {
	return []entities.MenuItem{
		burger("maestro", "MAESTRO", "Pão brioche, blend 120G, queijo prato e molho alho ou especial.", "14.90", "24.90", entities.ItemTypeTradicional),
		burger("vinski", "VINSKI", "Pão brioche, blend 120G, queijo cheddar, alface e tomate, molho alho ou especial.", "18.90", "28.90", entities.ItemTypeTradicional),
		burger("premium", "PREMIUM", "Pão australiano, blend 120G, fatias de queijo cheddar, cebola caramelizada, molho alho ou especial.", "19.90", "29.90", entities.ItemTypeEspecial),
		burger("prime", "PRIME", "Pão prime, filé de frango, queijo prato, alface e tomate, cebola roxa, molho alho ou especial.", "17.90", "27.90", entities.ItemTypeEspecial),
		burger("pink", "PINK", "Pão pink, dois blends de 120G, queijo cheddar, cebola caramelizada, picles, bacon, molho alho ou especial.", "21.90", "31.90", entities.ItemTypeEspecial),
		burger("choripan", "CHORIPAN", "Pão francês, linguiça de frango apimentada, queijo provolone, vinagrete, molho alho ou especial.", "23.90", "33.90", entities.ItemTypeEspecial),
	}
}

func Coupons() []entities.Coupon {
	min30 := decimal.NewFromInt(30)
	min25 := decimal.NewFromInt(25)
	return []entities.Coupon{
		{
			ID:            "cupom-inicial-123",
			Code:          "BEMVINDO10",
			Description:   "10% de desconto no seu primeiro pedido!",
			DiscountType:  entities.DiscountTypePercentage,
			Value:         decimal.NewFromInt(10),
			IsActive:      true,
			MinOrderValue: &min30,
		},
		{
			ID:            "cupom-fixo-456",
			Code:          "5OFF",
			Description:   "R$ 5,00 de desconto.",
			DiscountType:  entities.DiscountTypeFixed,
			Value:         decimal.NewFromInt(5),
			IsActive:      true,
			ExpiryDate:    "2029-12-31",
			MinOrderValue: &min25,
		},
	}
}

// AppData returns a fresh copy of the default catalog on every call.
func AppData() entities.AppData {
	return entities.AppData{MenuItems: MenuItems(), Coupons: Coupons()}
}

func PaymentMethods() []entities.PaymentMethod {
	return []entities.PaymentMethod{
		{ID: "credit_card", Name: "Cartão de Crédito"},
		{ID: "debit_card", Name: "Cartão de Débito"},
		{ID: "pix", Name: "PIX"},
		{ID: "cash", Name: "Dinheiro", Description: "Pagamento na entrega"},
	}
}

// FindPaymentMethod looks a method up by id; unknown ids count as not selected.
func FindPaymentMethod(id string) (entities.PaymentMethod, bool) {
	for _, m := range PaymentMethods() {
		if m.ID == id {
			return m, true
		}
	}
	return entities.PaymentMethod{}, false
}

func RestaurantInfo() entities.RestaurantInfo {
	return entities.RestaurantInfo{
		Name:      "PINK BURGUER",
		Tagline:   "Escolha seu burguer",
		LogoURL:   "https://i.imgur.com/yHJtRkq.png",
		Address:   "Quadra 21 Conjunto B, lote 44, Paranoá-DF",
		WhatsApp:  "5561985153017",
		IfoodLink: "https://www.ifood.com.br/",
		Instagram: "https://www.instagram.com/pinkburguer.kc",
	}
}
