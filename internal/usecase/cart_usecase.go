package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cardapio_digital/internal/domain/defaults"
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/domain/pricing"
	"cardapio_digital/internal/infrastructure/metrics"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCartNotFound             = errors.New("cart not found")
	ErrMenuItemUnavailable      = errors.New("menu item is unavailable")
	ErrMenuItemNotOrderable     = errors.New("menu item can only be ordered as an add-on")
	ErrInvalidSauce             = errors.New("invalid sauce")
	ErrInvalidCrust             = errors.New("invalid crust")
	ErrTrioNotOffered           = errors.New("trio is not offered for this item")
	ErrCouponRevalidationFailed = errors.New("applied coupon is no longer valid")
)

// CouponRejectedError carries the evaluation that invalidated the applied
// coupon at checkout.
type CouponRejectedError struct {
	Result pricing.CouponResult
}

func (e *CouponRejectedError) Error() string {
	return ErrCouponRevalidationFailed.Error() + ": " + string(e.Result.Rejection)
}

func (e *CouponRejectedError) Unwrap() error {
	return ErrCouponRevalidationFailed
}

// AddItemInput is the item configuration chosen by the shopper.
type AddItemInput struct {
	ItemID   string
	IsTrio   bool
	Sauce    entities.Sauce
	CrustID  string
	Quantity int
}

type CheckoutInput struct {
	CustomerName    string
	DeliveryAddress string
	PaymentMethodID string
}

// CheckoutResult is the formatted order and its hand-off link.
type CheckoutResult struct {
	Message    string
	URL        string
	Subtotal   decimal.Decimal
	CouponCode string
	Discount   decimal.Decimal
	Total      decimal.Decimal
}

// ICartUseCase drives a shopper's cart from first item to hand-off.
//
// Every operation loads the cart, applies one change and saves it. Coupon
// rejections are outcomes (CouponResult), not errors.
type ICartUseCase interface {
	Create(ctx context.Context) (entities.Cart, error)
	Get(ctx context.Context, cartID string) (entities.Cart, error)
	AddItem(ctx context.Context, cartID string, in AddItemInput) (entities.Cart, error)
	UpdateLineQuantity(ctx context.Context, cartID string, key entities.LineKey, quantity int) (entities.Cart, error)
	RemoveLine(ctx context.Context, cartID string, key entities.LineKey) (entities.Cart, error)
	OpenCheckout(ctx context.Context, cartID string) (entities.Cart, error)
	ApplyCoupon(ctx context.Context, cartID, code string) (entities.Cart, pricing.CouponResult, error)
	RemoveCoupon(ctx context.Context, cartID string) (entities.Cart, string, error)
	Checkout(ctx context.Context, cartID string, in CheckoutInput) (CheckoutResult, error)
}

type CartUseCase struct {
	repo           interfaces.ICartRepository
	catalog        ICatalogUseCase
	loc            *time.Location
	handoffBaseURL string
	now            func() time.Time
}

var _ ICartUseCase = (*CartUseCase)(nil)

// NewCartUseCase builds the cart use case. loc is the store's time zone,
// used to decide coupon expiry.
func NewCartUseCase(repo interfaces.ICartRepository, catalog ICatalogUseCase, loc *time.Location, handoffBaseURL string) *CartUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CartUseCase{repo: repo, catalog: catalog, loc: loc, handoffBaseURL: handoffBaseURL, now: time.Now}
}

func (u *CartUseCase) Create(ctx context.Context) (entities.Cart, error) {
	now := u.now().UTC()
	cart := entities.Cart{
		ID:        uuid.NewString(),
		Lines:     []entities.CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) Get(ctx context.Context, cartID string) (entities.Cart, error) {
	return u.load(ctx, cartID)
}

func (u *CartUseCase) AddItem(ctx context.Context, cartID string, in AddItemInput) (entities.Cart, error) {
	cart, err := u.load(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	data := u.catalog.GetAppData(ctx)
	line, err := resolveLine(data, in)
	if err != nil {
		return entities.Cart{}, err
	}

	cart.Add(line)
	if err := u.save(ctx, &cart); err != nil {
		return entities.Cart{}, err
	}
	log.Printf("[cart][usecase] item added cart_id=%s line=%s qty=%d", cart.ID, line.Key, line.Quantity)
	return cart, nil
}

func resolveLine(data entities.AppData, in AddItemInput) (entities.CartLine, error) {
	item, ok := data.FindItem(strings.TrimSpace(in.ItemID))
	if !ok {
		return entities.CartLine{}, ErrMenuItemNotFound
	}
	if item.IsCrust() {
		return entities.CartLine{}, ErrMenuItemNotOrderable
	}
	if !item.IsAvailable {
		return entities.CartLine{}, ErrMenuItemUnavailable
	}
	if in.IsTrio && !item.TrioPrice.IsPositive() {
		return entities.CartLine{}, ErrTrioNotOffered
	}

	sauce := entities.SauceNone
	if item.TakesSauce() {
		sauce = in.Sauce
		if sauce == entities.SauceNone {
			sauce = entities.SauceEspecial
		}
		if !sauce.Valid() {
			return entities.CartLine{}, ErrInvalidSauce
		}
	}

	var crust *entities.MenuItem
	if id := strings.TrimSpace(in.CrustID); id != "" {
		c, ok := data.FindItem(id)
		if !ok || !c.IsCrust() || !c.IsAvailable {
			return entities.CartLine{}, ErrInvalidCrust
		}
		crust = &c
	}

	return pricing.BuildLine(item, in.IsTrio, sauce, crust, in.Quantity), nil
}

func (u *CartUseCase) UpdateLineQuantity(ctx context.Context, cartID string, key entities.LineKey, quantity int) (entities.Cart, error) {
	return u.mutate(ctx, cartID, func(c *entities.Cart) { c.UpdateQuantity(key, quantity) })
}

func (u *CartUseCase) RemoveLine(ctx context.Context, cartID string, key entities.LineKey) (entities.Cart, error) {
	return u.mutate(ctx, cartID, func(c *entities.Cart) { c.Remove(key) })
}

// OpenCheckout resets the applied coupon, so it is validated again against
// the cart as it is now.
func (u *CartUseCase) OpenCheckout(ctx context.Context, cartID string) (entities.Cart, error) {
	return u.mutate(ctx, cartID, func(c *entities.Cart) { c.AppliedCoupon = nil })
}

func (u *CartUseCase) ApplyCoupon(ctx context.Context, cartID, code string) (entities.Cart, pricing.CouponResult, error) {
	cart, err := u.load(ctx, cartID)
	if err != nil {
		return entities.Cart{}, pricing.CouponResult{}, err
	}

	res := u.evaluate(ctx, code, cart.Subtotal())
	if res.Applied {
		cart.AppliedCoupon = &entities.AppliedCoupon{Code: entities.NormalizeCouponCode(res.Coupon.Code), Discount: res.Discount}
	} else {
		cart.AppliedCoupon = nil
	}

	if err := u.save(ctx, &cart); err != nil {
		return entities.Cart{}, pricing.CouponResult{}, err
	}
	return cart, res, nil
}

func (u *CartUseCase) RemoveCoupon(ctx context.Context, cartID string) (entities.Cart, string, error) {
	cart, err := u.mutate(ctx, cartID, func(c *entities.Cart) { c.AppliedCoupon = nil })
	if err != nil {
		return entities.Cart{}, "", err
	}
	return cart, pricing.MsgCouponRemoved, nil
}

// Checkout validates the order, re-validates the applied coupon, formats the
// hand-off message and clears the cart. A coupon that no longer applies is
// removed from the cart and reported as *CouponRejectedError.
func (u *CartUseCase) Checkout(ctx context.Context, cartID string, in CheckoutInput) (CheckoutResult, error) {
	cart, err := u.load(ctx, cartID)
	if err != nil {
		return CheckoutResult{}, err
	}

	info := u.catalog.RestaurantInfo()
	req := pricing.OrderRequest{
		RestaurantName:  info.Name,
		Lines:           cart.Lines,
		Subtotal:        cart.Subtotal(),
		CustomerName:    in.CustomerName,
		DeliveryAddress: in.DeliveryAddress,
	}
	if m, ok := defaults.FindPaymentMethod(strings.TrimSpace(in.PaymentMethodID)); ok {
		req.PaymentMethod = &m
	}
	if err := req.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	if cart.AppliedCoupon != nil {
		res := u.evaluate(ctx, cart.AppliedCoupon.Code, req.Subtotal)
		if !res.Applied {
			cart.AppliedCoupon = nil
			if err := u.save(ctx, &cart); err != nil {
				return CheckoutResult{}, err
			}
			return CheckoutResult{}, &CouponRejectedError{Result: res}
		}
		req.CouponCode = entities.NormalizeCouponCode(res.Coupon.Code)
		req.Discount = res.Discount
	}

	msg, err := pricing.FormatOrder(req)
	if err != nil {
		return CheckoutResult{}, err
	}
	result := CheckoutResult{
		Message:    msg,
		URL:        pricing.HandoffURL(u.handoffBaseURL, info.WhatsApp, msg),
		Subtotal:   req.Subtotal,
		CouponCode: req.CouponCode,
		Discount:   req.Discount,
		Total:      req.Total(),
	}

	cart.Clear()
	if err := u.save(ctx, &cart); err != nil {
		return CheckoutResult{}, err
	}
	metrics.CheckoutsTotal.Inc()
	log.Printf("[cart][usecase] checkout cart_id=%s total=%s coupon=%q", cart.ID, result.Total.StringFixed(2), result.CouponCode)
	return result, nil
}

func (u *CartUseCase) evaluate(ctx context.Context, code string, subtotal decimal.Decimal) pricing.CouponResult {
	data := u.catalog.GetAppData(ctx)
	res := pricing.EvaluateCoupon(code, data.Coupons, subtotal, u.now().In(u.loc))
	outcome := "applied"
	if !res.Applied {
		outcome = string(res.Rejection)
	}
	metrics.CouponEvaluationsTotal.WithLabelValues(outcome).Inc()
	return res
}

func (u *CartUseCase) mutate(ctx context.Context, cartID string, fn func(c *entities.Cart)) (entities.Cart, error) {
	cart, err := u.load(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	fn(&cart)
	if err := u.save(ctx, &cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) load(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrCartNotFound
	}
	cart, err := u.repo.Get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		return entities.Cart{}, ErrCartNotFound
	}
	return cart, nil
}

func (u *CartUseCase) save(ctx context.Context, cart *entities.Cart) error {
	cart.UpdatedAt = u.now().UTC()
	return u.repo.Save(ctx, *cart)
}
