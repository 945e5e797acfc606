package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// ExpiryDateLayout is the calendar-date layout of Coupon.ExpiryDate.
const ExpiryDateLayout = "2006-01-02"

// Coupon is a named discount rule.
//
// Domain notes:
//   - Code is unique ignoring case and is stored uppercase.
//   - ExpiryDate is inclusive: the coupon is valid through the end of that day.
//   - A nil or zero MinOrderValue means no minimum.
type Coupon struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"`
	Description   string           `json:"description,omitempty"`
	DiscountType  DiscountType     `json:"discountType"`
	Value         decimal.Decimal  `json:"value"`
	IsActive      bool             `json:"isActive"`
	ExpiryDate    string           `json:"expiryDate,omitempty"`
	MinOrderValue *decimal.Decimal `json:"minOrderValue,omitempty"`
}

// NormalizeCouponCode trims and uppercases a user-entered code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Coupon) MatchesCode(code string) bool {
	return NormalizeCouponCode(c.Code) == NormalizeCouponCode(code)
}

// FindCoupon returns the first coupon whose code matches, ignoring case and
// surrounding spaces.
func FindCoupon(coupons []Coupon, code string) (Coupon, bool) {
	for _, c := range coupons {
		if c.MatchesCode(code) {
			return c, true
		}
	}
	return Coupon{}, false
}

// Expiry parses ExpiryDate in loc. ok is false when the coupon never expires.
func (c Coupon) Expiry(loc *time.Location) (day time.Time, ok bool, err error) {
	if strings.TrimSpace(c.ExpiryDate) == "" {
		return time.Time{}, false, nil
	}
	day, err = time.ParseInLocation(ExpiryDateLayout, strings.TrimSpace(c.ExpiryDate), loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return day, true, nil
}

// MinimumOrder returns the minimum subtotal, if one is set.
func (c Coupon) MinimumOrder() (decimal.Decimal, bool) {
	if c.MinOrderValue == nil || !c.MinOrderValue.IsPositive() {
		return decimal.Zero, false
	}
	return *c.MinOrderValue, true
}
