package entities

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidLineKey = errors.New("invalid line key")

type Variant string

const (
	VariantSingle Variant = "single"
	VariantTrio   Variant = "trio"
)

// Sauce is the sauce chosen for a line. Empty means the item takes no sauce.
type Sauce string

const (
	SauceNone     Sauce = ""
	SauceEspecial Sauce = "Especial"
	SauceAlho     Sauce = "Alho"
)

func (s Sauce) Valid() bool {
	switch s {
	case SauceNone, SauceEspecial, SauceAlho:
		return true
	}
	return false
}

// LineKey identifies a cart line: the same item with a different variant,
// sauce or crust is a different line.
type LineKey struct {
	ItemID  string
	Variant Variant
	Sauce   Sauce
	CrustID string
}

const lineKeySeparator = ":"

// String encodes the key as a token. Every field is query-escaped, so the
// separator can never appear inside a field.
func (k LineKey) String() string {
	return strings.Join([]string{
		url.QueryEscape(k.ItemID),
		url.QueryEscape(string(k.Variant)),
		url.QueryEscape(string(k.Sauce)),
		url.QueryEscape(k.CrustID),
	}, lineKeySeparator)
}

func ParseLineKey(token string) (LineKey, error) {
	parts := strings.Split(token, lineKeySeparator)
	if len(parts) != 4 {
		return LineKey{}, ErrInvalidLineKey
	}
	fields := make([]string, len(parts))
	for i, p := range parts {
		v, err := url.QueryUnescape(p)
		if err != nil {
			return LineKey{}, ErrInvalidLineKey
		}
		fields[i] = v
	}
	k := LineKey{ItemID: fields[0], Variant: Variant(fields[1]), Sauce: Sauce(fields[2]), CrustID: fields[3]}
	if k.ItemID == "" || (k.Variant != VariantSingle && k.Variant != VariantTrio) || !k.Sauce.Valid() {
		return LineKey{}, ErrInvalidLineKey
	}
	return k, nil
}

func (k LineKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *LineKey) UnmarshalText(b []byte) error {
	parsed, err := ParseLineKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// CartLine is a priced, quantity-bearing entry of a cart. Quantity >= 1.
type CartLine struct {
	Key       LineKey         `json:"key"`
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	IsTrio    bool            `json:"is_trio"`
	Sauce     Sauce           `json:"sauce,omitempty"`
	CrustID   string          `json:"crust_id,omitempty"`
	CrustName string          `json:"crust_name,omitempty"`
}

func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// AppliedCoupon is the single coupon currently applied to a cart.
type AppliedCoupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

// Cart is the working order of one shopper.
//
// Storage model (Redis or memory):
//   - key: cart:<id>, JSON encoded, expires after CART_TTL
//
// Lines keep insertion order; there is at most one line per LineKey. Any
// change of the subtotal drops the applied coupon, forcing re-validation.
type Cart struct {
	ID            string         `json:"id"`
	Lines         []CartLine     `json:"lines"`
	AppliedCoupon *AppliedCoupon `json:"applied_coupon,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Add merges line into the cart: an existing line with the same key has its
// quantity increased, otherwise the line is appended.
func (c *Cart) Add(line CartLine) {
	if line.Quantity < 1 {
		return
	}
	before := c.Subtotal()
	if i := c.indexOf(line.Key); i >= 0 {
		c.Lines[i].Quantity += line.Quantity
	} else {
		c.Lines = append(c.Lines, line)
	}
	c.dropCouponIfChanged(before)
}

// UpdateQuantity sets the absolute quantity of a line. Below 1 the line is
// removed.
func (c *Cart) UpdateQuantity(key LineKey, quantity int) {
	if quantity < 1 {
		c.Remove(key)
		return
	}
	i := c.indexOf(key)
	if i < 0 {
		return
	}
	before := c.Subtotal()
	c.Lines[i].Quantity = quantity
	c.dropCouponIfChanged(before)
}

// Remove deletes a line; absent keys are ignored.
func (c *Cart) Remove(key LineKey) {
	i := c.indexOf(key)
	if i < 0 {
		return
	}
	before := c.Subtotal()
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	c.dropCouponIfChanged(before)
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.AppliedCoupon = nil
}

// ItemCount is the sum of quantities, shown on the floating cart button.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Discount is the applied coupon discount, zero when none is applied.
func (c *Cart) Discount() decimal.Decimal {
	if c.AppliedCoupon == nil {
		return decimal.Zero
	}
	return c.AppliedCoupon.Discount
}

// Total is subtotal minus discount, floored at zero.
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.Discount())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

func (c *Cart) indexOf(key LineKey) int {
	for i, l := range c.Lines {
		if l.Key == key {
			return i
		}
	}
	return -1
}

func (c *Cart) dropCouponIfChanged(before decimal.Decimal) {
	if !c.Subtotal().Equal(before) {
		c.AppliedCoupon = nil
	}
}
