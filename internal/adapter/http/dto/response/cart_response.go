package response

import (
	"time"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/domain/pricing"
	"cardapio_digital/internal/usecase"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	LineKey   string          `json:"line_key"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	IsTrio    bool            `json:"is_trio"`
	Sauce     string          `json:"sauce,omitempty"`
	CrustID   string          `json:"crust_id,omitempty"`
	CrustName string          `json:"crust_name,omitempty"`
}

type AppliedCouponResponse struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

type CartResponse struct {
	ID            string                 `json:"id"`
	Lines         []CartLineResponse     `json:"lines"`
	ItemCount     int                    `json:"item_count"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	AppliedCoupon *AppliedCouponResponse `json:"applied_coupon,omitempty"`
	Discount      decimal.Decimal        `json:"discount"`
	Total         decimal.Decimal        `json:"total"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromCart(c entities.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			LineKey:   l.Key.String(),
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Round(2),
			LineTotal: l.Total().Round(2),
			IsTrio:    l.IsTrio,
			Sauce:     string(l.Sauce),
			CrustID:   l.CrustID,
			CrustName: l.CrustName,
		})
	}

	res := CartResponse{
		ID:        c.ID,
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal().Round(2),
		Discount:  c.Discount().Round(2),
		Total:     c.Total().Round(2),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.AppliedCoupon != nil {
		res.AppliedCoupon = &AppliedCouponResponse{Code: c.AppliedCoupon.Code, Discount: c.AppliedCoupon.Discount.Round(2)}
	}
	return res
}

// CouponResponse reports a coupon evaluation together with the resulting
// cart. A rejection is still a 200: Applied is false and Message explains it.
type CouponResponse struct {
	Applied   bool            `json:"applied"`
	Rejection string          `json:"rejection,omitempty"`
	Message   string          `json:"message"`
	Discount  decimal.Decimal `json:"discount"`
	Cart      CartResponse    `json:"cart"`
}

func FromCouponResult(c entities.Cart, res pricing.CouponResult) CouponResponse {
	return CouponResponse{
		Applied:   res.Applied,
		Rejection: string(res.Rejection),
		Message:   res.Message,
		Discount:  res.Discount.Round(2),
		Cart:      FromCart(c),
	}
}

type CouponRemovedResponse struct {
	Message string       `json:"message"`
	Cart    CartResponse `json:"cart"`
}

type CheckoutResponse struct {
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsapp_url"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CouponCode  string          `json:"coupon_code,omitempty"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Message:     r.Message,
		WhatsAppURL: r.URL,
		Subtotal:    r.Subtotal.Round(2),
		CouponCode:  r.CouponCode,
		Discount:    r.Discount.Round(2),
		Total:       r.Total.Round(2),
	}
}
