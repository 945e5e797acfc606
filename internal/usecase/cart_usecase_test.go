package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cardapio_digital/internal/domain/defaults"
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/domain/pricing"
	mock_interfaces "cardapio_digital/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var saoPaulo = time.FixedZone("BRT", -3*3600)

func catalogWith(t *testing.T, ctrl *gomock.Controller, data entities.AppData) *CatalogUseCase {
	t.Helper()
	store := mock_interfaces.NewMockICatalogStore(ctrl)
	store.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (entities.AppData, error) {
		return data.Clone(), nil
	}).AnyTimes()
	return NewCatalogUseCase(store, nil, defaults.RestaurantInfo())
}

func newCartUseCase(t *testing.T, data entities.AppData) (*CartUseCase, *mock_interfaces.MockICartRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICartRepository(ctrl)
	uc := NewCartUseCase(repo, catalogWith(t, ctrl, data), saoPaulo, "")
	uc.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return uc, repo
}

func catalogWithExtras() entities.AppData {
	data := defaults.AppData()
	data.MenuItems = append(data.MenuItems,
		entities.MenuItem{ID: "borda-cheddar", Name: "Cheddar", IsAvailable: true, ItemType: entities.ItemTypeBorda},
		entities.MenuItem{ID: "coca", Name: "COCA-COLA", Price: decimal.RequireFromString("6.00"), IsAvailable: true, ItemType: entities.ItemTypeBebida},
		entities.MenuItem{ID: "sumido", Name: "SUMIDO", Price: decimal.RequireFromString("9.00"), IsAvailable: false, ItemType: entities.ItemTypeTradicional},
	)
	return data
}

func line(itemID, name, price string, qty int, sauce entities.Sauce) entities.CartLine {
	return entities.CartLine{
		Key:       entities.LineKey{ItemID: itemID, Variant: entities.VariantSingle, Sauce: sauce},
		ItemID:    itemID,
		Name:      name,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
		Sauce:     sauce,
	}
}

// sampleCart is 2x MAESTRO + 1x VINSKI = 48.70.
func sampleCart() entities.Cart {
	return entities.Cart{
		ID: "cart-1",
		Lines: []entities.CartLine{
			line("maestro", "MAESTRO", "14.90", 2, entities.SauceEspecial),
			line("vinski", "VINSKI", "18.90", 1, entities.SauceEspecial),
		},
	}
}

func TestCartUseCase_CreateAndGet(t *testing.T) {
	uc, repo := newCartUseCase(t, defaults.AppData())
	ctx := context.Background()

	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Cart{})).DoAndReturn(func(_ context.Context, c entities.Cart) error {
		if c.ID == "" || c.CreatedAt.IsZero() || len(c.Lines) != 0 {
			t.Fatalf("unexpected cart: %+v", c)
		}
		return nil
	})
	cart, err := uc.Create(ctx)
	if err != nil || cart.ID == "" {
		t.Fatalf("unexpected result: %+v, %v", cart, err)
	}

	repo.EXPECT().Get(gomock.Any(), "missing").Return(entities.Cart{}, nil)
	if _, err := uc.Get(ctx, "missing"); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
	if _, err := uc.Get(ctx, "  "); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound for blank id, got %v", err)
	}

	repo.EXPECT().Get(gomock.Any(), "cart-1").Return(entities.Cart{}, errors.New("redis down"))
	if _, err := uc.Get(ctx, "cart-1"); err == nil || err.Error() != "redis down" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestCartUseCase_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name string
			in   AddItemInput
			want error
		}{
			{"unknown item", AddItemInput{ItemID: "ghost"}, ErrMenuItemNotFound},
			{"unavailable item", AddItemInput{ItemID: "sumido"}, ErrMenuItemUnavailable},
			{"crust alone", AddItemInput{ItemID: "borda-cheddar"}, ErrMenuItemNotOrderable},
			{"trio not offered", AddItemInput{ItemID: "coca", IsTrio: true}, ErrTrioNotOffered},
			{"bad sauce", AddItemInput{ItemID: "maestro", Sauce: "Barbecue"}, ErrInvalidSauce},
			{"bad crust", AddItemInput{ItemID: "maestro", CrustID: "vinski"}, ErrInvalidCrust},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, repo := newCartUseCase(t, catalogWithExtras())
				repo.EXPECT().Get(gomock.Any(), "cart-1").Return(entities.Cart{ID: "cart-1"}, nil)
				if _, err := uc.AddItem(ctx, "cart-1", tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("default sauce and merge", func(t *testing.T) {
		uc, repo := newCartUseCase(t, catalogWithExtras())
		start := entities.Cart{ID: "cart-1", Lines: []entities.CartLine{line("maestro", "MAESTRO", "14.90", 1, entities.SauceEspecial)}}
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(start, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.AddItem(ctx, "cart-1", AddItemInput{ItemID: "maestro", Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 3 {
			t.Fatalf("expected merged line with quantity 3, got %+v", cart.Lines)
		}
	})

	t.Run("trio with crust", func(t *testing.T) {
		uc, repo := newCartUseCase(t, catalogWithExtras())
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(entities.Cart{ID: "cart-1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.AddItem(ctx, "cart-1", AddItemInput{ItemID: "vinski", IsTrio: true, Sauce: entities.SauceAlho, CrustID: "borda-cheddar"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l := cart.Lines[0]
		if l.Name != "VINSKI (Trio)" || !l.UnitPrice.Equal(decimal.RequireFromString("28.90")) || l.CrustName != "Cheddar" || l.Sauce != entities.SauceAlho {
			t.Fatalf("unexpected line: %+v", l)
		}
	})

	t.Run("beverage carries no sauce", func(t *testing.T) {
		uc, repo := newCartUseCase(t, catalogWithExtras())
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(entities.Cart{ID: "cart-1"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.AddItem(ctx, "cart-1", AddItemInput{ItemID: "coca", Sauce: entities.SauceAlho})
		if err != nil || cart.Lines[0].Sauce != entities.SauceNone {
			t.Fatalf("expected sauce-less line, got %+v, %v", cart.Lines, err)
		}
	})
}

func TestCartUseCase_LineMutations(t *testing.T) {
	ctx := context.Background()
	maestroKey := entities.LineKey{ItemID: "maestro", Variant: entities.VariantSingle, Sauce: entities.SauceEspecial}

	t.Run("quantity zero removes", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(sampleCart(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.UpdateLineQuantity(ctx, "cart-1", maestroKey, 0)
		if err != nil || len(cart.Lines) != 1 || cart.Lines[0].ItemID != "vinski" {
			t.Fatalf("unexpected cart: %+v, %v", cart, err)
		}
	})

	t.Run("remove drops applied coupon", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		start := sampleCart()
		start.AppliedCoupon = &entities.AppliedCoupon{Code: "BEMVINDO10", Discount: decimal.RequireFromString("4.87")}
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(start, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.RemoveLine(ctx, "cart-1", maestroKey)
		if err != nil || cart.AppliedCoupon != nil {
			t.Fatalf("expected coupon dropped, got %+v, %v", cart, err)
		}
	})

	t.Run("open checkout resets coupon", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		start := sampleCart()
		start.AppliedCoupon = &entities.AppliedCoupon{Code: "BEMVINDO10", Discount: decimal.RequireFromString("4.87")}
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(start, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.OpenCheckout(ctx, "cart-1")
		if err != nil || cart.AppliedCoupon != nil || len(cart.Lines) != 2 {
			t.Fatalf("unexpected cart: %+v, %v", cart, err)
		}
	})
}

func TestCartUseCase_Coupons(t *testing.T) {
	ctx := context.Background()

	t.Run("apply", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(sampleCart(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, res, err := uc.ApplyCoupon(ctx, "cart-1", "bemvindo10")
		if err != nil || !res.Applied {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
		if cart.AppliedCoupon == nil || cart.AppliedCoupon.Code != "BEMVINDO10" || !cart.Discount().Equal(decimal.RequireFromString("4.87")) {
			t.Fatalf("unexpected applied coupon: %+v", cart.AppliedCoupon)
		}
		if !cart.Total().Equal(decimal.RequireFromString("43.83")) {
			t.Fatalf("expected total 43.83, got %s", cart.Total())
		}
	})

	t.Run("failed apply clears previous coupon", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		start := sampleCart()
		start.AppliedCoupon = &entities.AppliedCoupon{Code: "BEMVINDO10", Discount: decimal.RequireFromString("4.87")}
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(start, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cart) error {
			if c.AppliedCoupon != nil {
				t.Fatalf("expected coupon cleared before save")
			}
			return nil
		})

		_, res, err := uc.ApplyCoupon(ctx, "cart-1", "NOPE")
		if err != nil || res.Applied || res.Message != pricing.MsgCouponNotFound {
			t.Fatalf("unexpected result: %+v, %v", res, err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(sampleCart(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, msg, err := uc.RemoveCoupon(ctx, "cart-1")
		if err != nil || msg != "Cupom removido." || !cart.Discount().IsZero() {
			t.Fatalf("unexpected result: %s, %v", msg, err)
		}
	})
}

func TestCartUseCase_Checkout(t *testing.T) {
	ctx := context.Background()
	valid := CheckoutInput{CustomerName: "Maria", DeliveryAddress: "Rua A, 1", PaymentMethodID: "pix"}

	t.Run("preconditions", func(t *testing.T) {
		cases := []struct {
			name string
			cart entities.Cart
			in   CheckoutInput
			want error
		}{
			{"empty cart", entities.Cart{ID: "cart-1"}, valid, pricing.ErrOrderEmptyCart},
			{"missing name", sampleCart(), CheckoutInput{DeliveryAddress: "Rua A", PaymentMethodID: "pix"}, pricing.ErrOrderMissingName},
			{"missing address", sampleCart(), CheckoutInput{CustomerName: "Maria", PaymentMethodID: "pix"}, pricing.ErrOrderMissingAddress},
			{"unknown payment method", sampleCart(), CheckoutInput{CustomerName: "Maria", DeliveryAddress: "Rua A", PaymentMethodID: "bitcoin"}, pricing.ErrOrderMissingPaymentMeth},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, repo := newCartUseCase(t, defaults.AppData())
				repo.EXPECT().Get(gomock.Any(), "cart-1").Return(tc.cart, nil)
				if _, err := uc.Checkout(ctx, "cart-1", tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("success with coupon clears cart", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		start := sampleCart()
		start.AppliedCoupon = &entities.AppliedCoupon{Code: "BEMVINDO10", Discount: decimal.RequireFromString("4.87")}
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(start, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cart) error {
			if len(c.Lines) != 0 || c.AppliedCoupon != nil {
				t.Fatalf("expected cleared cart, got %+v", c)
			}
			return nil
		})

		res, err := uc.Checkout(ctx, "cart-1", valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Total.Equal(decimal.RequireFromString("43.83")) || res.CouponCode != "BEMVINDO10" {
			t.Fatalf("unexpected totals: %+v", res)
		}
		if !strings.HasPrefix(res.URL, "https://wa.me/5561985153017?text=") {
			t.Fatalf("unexpected url: %s", res.URL)
		}
		if !strings.Contains(res.Message, "*Cupom Aplicado:* BEMVINDO10 (-R$ 4,87)") || !strings.Contains(res.Message, "*R$ 43,83*") {
			t.Fatalf("unexpected message:\n%s", res.Message)
		}
	})

	t.Run("coupon no longer valid", func(t *testing.T) {
		uc, repo := newCartUseCase(t, defaults.AppData())
		start := entities.Cart{
			ID:            "cart-1",
			Lines:         []entities.CartLine{line("maestro", "MAESTRO", "14.90", 2, entities.SauceEspecial)},
			AppliedCoupon: &entities.AppliedCoupon{Code: "BEMVINDO10", Discount: decimal.RequireFromString("2.98")},
		}
		repo.EXPECT().Get(gomock.Any(), "cart-1").Return(start, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Cart) error {
			if c.AppliedCoupon != nil || len(c.Lines) == 0 {
				t.Fatalf("expected coupon removed and lines kept, got %+v", c)
			}
			return nil
		})

		_, err := uc.Checkout(ctx, "cart-1", valid)
		var rejected *CouponRejectedError
		if !errors.As(err, &rejected) || !errors.Is(err, ErrCouponRevalidationFailed) {
			t.Fatalf("expected CouponRejectedError, got %v", err)
		}
		if rejected.Result.Message != "Este cupom requer um pedido mínimo de R$ 30,00." {
			t.Fatalf("unexpected message: %s", rejected.Result.Message)
		}
	})
}
