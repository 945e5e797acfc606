package pricing

import (
	"fmt"
	"strings"
	"time"

	"cardapio_digital/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CouponRejection names the first failed eligibility check.
type CouponRejection string

const (
	CouponAccepted          CouponRejection = ""
	CouponRejectedEmptyCode CouponRejection = "empty_code"
	CouponRejectedNotFound  CouponRejection = "not_found"
	CouponRejectedInactive  CouponRejection = "inactive"
	CouponRejectedExpired   CouponRejection = "expired"
	CouponRejectedMinOrder  CouponRejection = "min_order_not_met"
)

// CouponResult is the outcome of a coupon evaluation. Rejections are
// outcomes, not errors.
type CouponResult struct {
	Applied   bool
	Coupon    entities.Coupon
	Discount  decimal.Decimal
	Rejection CouponRejection
	Message   string
}

var hundred = decimal.NewFromInt(100)

// EvaluateCoupon checks code against coupons for the given subtotal. The
// checks run in a fixed order and the first failure wins. today is compared
// by calendar date in its own location; the expiry day itself is still valid.
func EvaluateCoupon(code string, coupons []entities.Coupon, subtotal decimal.Decimal, today time.Time) CouponResult {
	code = entities.NormalizeCouponCode(code)
	if code == "" {
		return reject(CouponRejectedEmptyCode, MsgCouponEmptyCode)
	}

	coupon, found := entities.FindCoupon(coupons, code)
	if !found {
		return reject(CouponRejectedNotFound, MsgCouponNotFound)
	}
	if !coupon.IsActive {
		return reject(CouponRejectedInactive, MsgCouponInactive)
	}
	if expired(coupon, today) {
		return reject(CouponRejectedExpired, MsgCouponExpired)
	}
	if minimum, ok := coupon.MinimumOrder(); ok && subtotal.LessThan(minimum) {
		return reject(CouponRejectedMinOrder, fmt.Sprintf(MsgCouponMinOrder, entities.FormatBRL(minimum)))
	}

	discount := coupon.Value
	if coupon.DiscountType == entities.DiscountTypePercentage {
		discount = subtotal.Mul(coupon.Value).Div(hundred).Round(2)
	}
	discount = decimal.Min(discount, subtotal)
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return CouponResult{
		Applied:  true,
		Coupon:   coupon,
		Discount: discount,
		Message:  fmt.Sprintf(MsgCouponApplied, strings.ToUpper(coupon.Code)),
	}
}

// expired reports whether the expiry date lies strictly before today's date.
// An unreadable expiry date counts as expired.
func expired(c entities.Coupon, today time.Time) bool {
	day, ok, err := c.Expiry(today.Location())
	if err != nil {
		return true
	}
	if !ok {
		return false
	}
	y, m, d := today.Date()
	return day.Before(time.Date(y, m, d, 0, 0, 0, 0, today.Location()))
}

func reject(reason CouponRejection, msg string) CouponResult {
	return CouponResult{Discount: decimal.Zero, Rejection: reason, Message: msg}
}
