package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrAppDataNotArrays = errors.New("menuItems and coupons must be arrays")

// CouponRequest is the admin coupon form. IsActive defaults to true.
type CouponRequest struct {
	Code          string           `json:"code"`
	Description   string           `json:"description"`
	DiscountType  string           `json:"discount_type"`
	Value         decimal.Decimal  `json:"value"`
	IsActive      *bool            `json:"is_active"`
	ExpiryDate    string           `json:"expiry_date"`
	MinOrderValue *decimal.Decimal `json:"min_order_value"`
}

func (r CouponRequest) ToInput() usecase.CouponInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return usecase.CouponInput{
		Code:          r.Code,
		Description:   r.Description,
		DiscountType:  entities.DiscountType(strings.TrimSpace(r.DiscountType)),
		Value:         r.Value,
		IsActive:      active,
		ExpiryDate:    r.ExpiryDate,
		MinOrderValue: r.MinOrderValue,
	}
}

type appDataEnvelope struct {
	MenuItems json.RawMessage `json:"menuItems"`
	Coupons   json.RawMessage `json:"coupons"`
}

// ParseAppData decodes the catalog upload body. Both collections must be
// JSON arrays, possibly empty.
func ParseAppData(raw []byte) (entities.AppData, error) {
	var env appDataEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return entities.AppData{}, ErrAppDataNotArrays
	}
	if !isJSONArray(env.MenuItems) || !isJSONArray(env.Coupons) {
		return entities.AppData{}, ErrAppDataNotArrays
	}

	data := entities.AppData{MenuItems: []entities.MenuItem{}, Coupons: []entities.Coupon{}}
	if err := json.Unmarshal(env.MenuItems, &data.MenuItems); err != nil {
		return entities.AppData{}, err
	}
	if err := json.Unmarshal(env.Coupons, &data.Coupons); err != nil {
		return entities.AppData{}, err
	}
	return data, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
