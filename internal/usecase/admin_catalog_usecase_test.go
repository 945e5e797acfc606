package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio_digital/internal/domain/defaults"
	"cardapio_digital/internal/domain/entities"
	mock_interfaces "cardapio_digital/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newAdminUseCase(t *testing.T) (*AdminCatalogUseCase, *mock_interfaces.MockICatalogStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockICatalogStore(ctrl)
	return NewAdminCatalogUseCase(NewCatalogUseCase(store, nil, defaults.RestaurantInfo())), store
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAdminCatalogUseCase_ToggleItemAvailability(t *testing.T) {
	uc, store := newAdminUseCase(t)
	store.EXPECT().Load(gomock.Any()).Return(defaults.AppData(), nil).Times(1)

	item, err := uc.ToggleItemAvailability(context.Background(), "maestro")
	if err != nil || item.IsAvailable {
		t.Fatalf("expected maestro unavailable, got %+v, %v", item, err)
	}
	item, err = uc.ToggleItemAvailability(context.Background(), "maestro")
	if err != nil || !item.IsAvailable {
		t.Fatalf("expected maestro available again, got %+v, %v", item, err)
	}

	if _, err := uc.ToggleItemAvailability(context.Background(), "ghost"); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestAdminCatalogUseCase_AddCouponValidation(t *testing.T) {
	cases := []struct {
		name string
		in   CouponInput
		want error
	}{
		{"missing code", CouponInput{DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(5)}, ErrCouponInvalidInput},
		{"zero value", CouponInput{Code: "X", DiscountType: entities.DiscountTypeFixed}, ErrCouponInvalidInput},
		{"bad type", CouponInput{Code: "X", DiscountType: "bogo", Value: decimal.NewFromInt(5)}, ErrCouponInvalidType},
		{"percentage above 100", CouponInput{Code: "X", DiscountType: entities.DiscountTypePercentage, Value: decimal.NewFromInt(101)}, ErrCouponInvalidPercentage},
		{"percentage below 1", CouponInput{Code: "X", DiscountType: entities.DiscountTypePercentage, Value: decimal.RequireFromString("0.5")}, ErrCouponInvalidPercentage},
		{"bad expiry", CouponInput{Code: "X", DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(5), ExpiryDate: "31/12/2030"}, ErrCouponInvalidExpiry},
		{"negative minimum", CouponInput{Code: "X", DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(5), MinOrderValue: decimalPtr("-1")}, ErrCouponInvalidMinOrder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newAdminUseCase(t)
			if _, err := uc.AddCoupon(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAdminCatalogUseCase_AddAndUpdateCoupon(t *testing.T) {
	uc, store := newAdminUseCase(t)
	store.EXPECT().Load(gomock.Any()).Return(defaults.AppData(), nil).Times(1)
	ctx := context.Background()

	t.Run("duplicate code ignoring case", func(t *testing.T) {
		_, err := uc.AddCoupon(ctx, CouponInput{Code: "bemvindo10", DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(3)})
		if !errors.Is(err, ErrCouponDuplicateCode) {
			t.Fatalf("expected ErrCouponDuplicateCode, got %v", err)
		}
	})

	var added entities.Coupon
	t.Run("add", func(t *testing.T) {
		var err error
		added, err = uc.AddCoupon(ctx, CouponInput{Code: " frete ", DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(7), IsActive: true, MinOrderValue: decimalPtr("0")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if added.ID == "" || added.Code != "FRETE" || added.MinOrderValue != nil {
			t.Fatalf("unexpected coupon: %+v", added)
		}
		view := uc.Catalog(ctx, false)
		if len(view.Data.Coupons) != 3 || view.Status.Message != MsgCouponAddedLocally {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("update keeping own code", func(t *testing.T) {
		c, err := uc.UpdateCoupon(ctx, added.ID, CouponInput{Code: "FRETE", DiscountType: entities.DiscountTypePercentage, Value: decimal.NewFromInt(15), ExpiryDate: "2030-01-31"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != added.ID || c.DiscountType != entities.DiscountTypePercentage || c.IsActive {
			t.Fatalf("unexpected coupon: %+v", c)
		}
	})

	t.Run("update to another coupon's code", func(t *testing.T) {
		_, err := uc.UpdateCoupon(ctx, added.ID, CouponInput{Code: "5off", DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(5)})
		if !errors.Is(err, ErrCouponDuplicateCode) {
			t.Fatalf("expected ErrCouponDuplicateCode, got %v", err)
		}
	})

	t.Run("update unknown", func(t *testing.T) {
		_, err := uc.UpdateCoupon(ctx, "ghost", CouponInput{Code: "NEW", DiscountType: entities.DiscountTypeFixed, Value: decimal.NewFromInt(5)})
		if !errors.Is(err, ErrCouponNotFound) {
			t.Fatalf("expected ErrCouponNotFound, got %v", err)
		}
	})

	t.Run("toggle activity", func(t *testing.T) {
		c, err := uc.ToggleCouponActivity(ctx, "cupom-fixo-456")
		if err != nil || c.IsActive {
			t.Fatalf("expected 5OFF inactive, got %+v, %v", c, err)
		}
		if _, err := uc.ToggleCouponActivity(ctx, "ghost"); !errors.Is(err, ErrCouponNotFound) {
			t.Fatalf("expected ErrCouponNotFound, got %v", err)
		}
	})
}

func TestAdminCatalogUseCase_Commit(t *testing.T) {
	t.Run("success then edit returns to idle", func(t *testing.T) {
		uc, store := newAdminUseCase(t)
		store.EXPECT().Load(gomock.Any()).Return(defaults.AppData(), nil)
		ctx := context.Background()

		if _, err := uc.ToggleItemAvailability(ctx, "pink"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, data entities.AppData) (string, error) {
			pink, _ := data.FindItem("pink")
			if pink.IsAvailable {
				t.Fatalf("expected staged change in committed data")
			}
			return "https://cdn/app_data.json", nil
		})

		status, err := uc.Commit(ctx)
		if err != nil || status.State != entities.SaveStateSuccess || status.Message != MsgCommitSucceeded {
			t.Fatalf("unexpected status: %+v, %v", status, err)
		}

		if _, err := uc.ToggleItemAvailability(ctx, "pink"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := uc.Catalog(ctx, false).Status.State; got != entities.SaveStateIdle {
			t.Fatalf("expected idle after edit, got %s", got)
		}
	})

	t.Run("failure then reopen returns to idle", func(t *testing.T) {
		uc, store := newAdminUseCase(t)
		store.EXPECT().Load(gomock.Any()).Return(defaults.AppData(), nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("denied"))

		status, err := uc.Commit(context.Background())
		if !errors.Is(err, ErrCatalogSaveFailed) || status.State != entities.SaveStateError || status.Message != MsgCommitFailed {
			t.Fatalf("unexpected status: %+v, %v", status, err)
		}
		if got := uc.Catalog(context.Background(), true).Status.State; got != entities.SaveStateIdle {
			t.Fatalf("expected idle after reopen, got %s", got)
		}
	})

	t.Run("overlapping commit is rejected", func(t *testing.T) {
		uc, store := newAdminUseCase(t)
		store.EXPECT().Load(gomock.Any()).Return(defaults.AppData(), nil)

		started := make(chan struct{})
		release := make(chan struct{})
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, entities.AppData) (string, error) {
			close(started)
			<-release
			return "https://cdn/app_data.json", nil
		}).Times(1)

		done := make(chan error, 1)
		go func() {
			_, err := uc.Commit(context.Background())
			done <- err
		}()
		<-started

		status, err := uc.Commit(context.Background())
		if !errors.Is(err, ErrCommitInProgress) || status.State != entities.SaveStateSaving {
			t.Fatalf("expected ErrCommitInProgress while saving, got %+v, %v", status, err)
		}
		if _, err := uc.Reload(context.Background()); !errors.Is(err, ErrCommitInProgress) {
			t.Fatalf("expected reload to be rejected while saving, got %v", err)
		}

		close(release)
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("commit did not finish")
		}
	})
}

func TestAdminCatalogUseCase_Reload(t *testing.T) {
	uc, store := newAdminUseCase(t)
	ctx := context.Background()
	gomock.InOrder(
		store.EXPECT().Load(gomock.Any()).Return(defaults.AppData(), nil),
		store.EXPECT().Load(gomock.Any()).Return(remoteAppData(), nil),
	)

	if _, err := uc.ToggleItemAvailability(ctx, "maestro"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, err := uc.Reload(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Data.MenuItems) != 1 || view.Data.MenuItems[0].ID != "x-burger" {
		t.Fatalf("expected staging replaced by remote data, got %+v", view.Data)
	}
	if view.Status.State != entities.SaveStateIdle {
		t.Fatalf("expected idle status, got %s", view.Status.State)
	}
}
