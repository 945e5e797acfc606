package request

import (
	"strings"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase"
)

type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	IsTrio   bool   `json:"is_trio"`
	Sauce    string `json:"sauce"`
	CrustID  string `json:"crust_id"`
	Quantity int    `json:"quantity"`
}

func (r AddCartItemRequest) ToInput() usecase.AddItemInput {
	return usecase.AddItemInput{
		ItemID:   strings.TrimSpace(r.ItemID),
		IsTrio:   r.IsTrio,
		Sauce:    entities.Sauce(strings.TrimSpace(r.Sauce)),
		CrustID:  strings.TrimSpace(r.CrustID),
		Quantity: r.Quantity,
	}
}

// UpdateCartLineRequest sets the absolute quantity of a line; below 1 the
// line is removed.
type UpdateCartLineRequest struct {
	LineKey  string `json:"line_key" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethodID string `json:"payment_method_id"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		CustomerName:    r.CustomerName,
		DeliveryAddress: r.DeliveryAddress,
		PaymentMethodID: r.PaymentMethodID,
	}
}
