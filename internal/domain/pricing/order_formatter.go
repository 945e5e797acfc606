package pricing

import (
	"errors"
	"fmt"
	"strings"

	"cardapio_digital/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderEmptyCart          = errors.New("cart is empty")
	ErrOrderMissingName        = errors.New("customer name is required")
	ErrOrderMissingAddress     = errors.New("delivery address is required")
	ErrOrderMissingPaymentMeth = errors.New("payment method is required")
)

// DefaultHandoffBaseURL is the WhatsApp click-to-chat endpoint.
const DefaultHandoffBaseURL = "https://wa.me"

const orderDivider = "-----------------------------------"

// OrderRequest carries everything the order message is built from.
type OrderRequest struct {
	RestaurantName  string
	Lines           []entities.CartLine
	Subtotal        decimal.Decimal
	CouponCode      string
	Discount        decimal.Decimal
	CustomerName    string
	DeliveryAddress string
	PaymentMethod   *entities.PaymentMethod
}

// Total is subtotal minus discount, floored at zero.
func (r OrderRequest) Total() decimal.Decimal {
	total := r.Subtotal.Sub(r.Discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Validate checks the checkout preconditions in display order.
func (r OrderRequest) Validate() error {
	switch {
	case len(r.Lines) == 0:
		return ErrOrderEmptyCart
	case strings.TrimSpace(r.CustomerName) == "":
		return ErrOrderMissingName
	case strings.TrimSpace(r.DeliveryAddress) == "":
		return ErrOrderMissingAddress
	case r.PaymentMethod == nil:
		return ErrOrderMissingPaymentMeth
	}
	return nil
}

// UserMessage returns the storefront text for an order validation error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrOrderEmptyCart):
		return MsgOrderEmptyCart
	case errors.Is(err, ErrOrderMissingName):
		return MsgOrderMissingName
	case errors.Is(err, ErrOrderMissingAddress):
		return MsgOrderMissingAddr
	case errors.Is(err, ErrOrderMissingPaymentMeth):
		return MsgOrderMissingMethod
	}
	return ""
}

// FormatOrder renders the hand-off message. Field order and labels are part
// of the contract with the restaurant staff reading it.
func FormatOrder(r OrderRequest) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*NOVO PEDIDO - %s*\n\n", strings.ToUpper(strings.TrimSpace(r.RestaurantName)))
	fmt.Fprintf(&b, "*Cliente:*\n%s\n\n", strings.TrimSpace(r.CustomerName))
	fmt.Fprintf(&b, "*Endereço para Entrega:*\n%s\n\n", strings.TrimSpace(r.DeliveryAddress))
	b.WriteString(orderDivider + "\n\n")

	b.WriteString("*ITENS DO PEDIDO:*\n")
	for _, l := range r.Lines {
		fmt.Fprintf(&b, "- %dx %s - *%s*\n", l.Quantity, lineLabel(l), entities.FormatBRL(l.Total()))
	}
	b.WriteString("\n" + orderDivider + "\n\n")

	fmt.Fprintf(&b, "*Subtotal:* %s\n", entities.FormatBRL(r.Subtotal))
	if r.Discount.IsPositive() {
		fmt.Fprintf(&b, "*Cupom Aplicado:* %s (-%s)\n", r.CouponCode, entities.FormatBRL(r.Discount))
	}
	fmt.Fprintf(&b, "\n*VALOR TOTAL:*\n*%s*\n\n", entities.FormatBRL(r.Total()))
	fmt.Fprintf(&b, "*Forma de Pagamento:*\n%s\n\n", r.PaymentMethod.Name)
	b.WriteString(orderDivider + "\n\n")
	b.WriteString("_Pedido feito pelo cardápio digital. Aguardando confirmação!_")

	return b.String(), nil
}

func lineLabel(l entities.CartLine) string {
	label := l.Name
	if l.Sauce != entities.SauceNone {
		label += fmt.Sprintf(" (Molho: %s)", l.Sauce)
	}
	if l.CrustName != "" {
		label += fmt.Sprintf(" (Borda: %s)", l.CrustName)
	}
	return label
}

// HandoffURL builds the click-to-chat link carrying the encoded message.
func HandoffURL(baseURL, contact, message string) string {
	if baseURL == "" {
		baseURL = DefaultHandoffBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + contact + "?text=" + EncodeURIComponent(message)
}

// EncodeURIComponent percent-encodes s the way browsers' encodeURIComponent
// does, which is what WhatsApp expects in the text parameter.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
