package usecase

import (
	"context"
	"errors"
	"testing"

	"cardapio_digital/internal/domain/defaults"
	"cardapio_digital/internal/domain/entities"
	mock_interfaces "cardapio_digital/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func remoteAppData() entities.AppData {
	return entities.AppData{
		MenuItems: []entities.MenuItem{
			{ID: "x-burger", Name: "X-BURGER", Price: decimal.RequireFromString("10.00"), TrioPrice: decimal.RequireFromString("20.00"), IsAvailable: true, ItemType: entities.ItemTypeTradicional},
		},
		Coupons: []entities.Coupon{},
	}
}

func TestCatalogUseCase_GetAppData(t *testing.T) {
	t.Run("no store serves defaults", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, defaults.RestaurantInfo())
		data := uc.GetAppData(context.Background())
		if len(data.MenuItems) != len(defaults.MenuItems()) {
			t.Fatalf("expected defaults, got %d items", len(data.MenuItems))
		}
	})

	t.Run("remote data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		uc := NewCatalogUseCase(store, nil, defaults.RestaurantInfo())

		store.EXPECT().Load(gomock.Any()).Return(remoteAppData(), nil)

		data := uc.GetAppData(context.Background())
		if len(data.MenuItems) != 1 || data.MenuItems[0].ID != "x-burger" {
			t.Fatalf("expected remote data, got %+v", data)
		}
	})

	t.Run("remote failure falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		uc := NewCatalogUseCase(store, nil, defaults.RestaurantInfo())

		store.EXPECT().Load(gomock.Any()).Return(entities.AppData{}, errors.New("no such key"))

		data := uc.GetAppData(context.Background())
		if _, ok := data.FindItem("maestro"); !ok {
			t.Fatalf("expected default catalog, got %+v", data)
		}
	})

	t.Run("load runs through the breaker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		breaker := mock_interfaces.NewMockICircuitBreaker(ctrl)
		uc := NewCatalogUseCase(store, breaker, defaults.RestaurantInfo())

		breaker.EXPECT().Execute(gomock.Any()).DoAndReturn(func(fn func() (interface{}, error)) (interface{}, error) {
			return fn()
		})
		store.EXPECT().Load(gomock.Any()).Return(remoteAppData(), nil)

		data := uc.GetAppData(context.Background())
		if data.MenuItems[0].ID != "x-burger" {
			t.Fatalf("expected remote data, got %+v", data)
		}
	})

	t.Run("open breaker falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		breaker := mock_interfaces.NewMockICircuitBreaker(ctrl)
		uc := NewCatalogUseCase(mock_interfaces.NewMockICatalogStore(ctrl), breaker, defaults.RestaurantInfo())

		breaker.EXPECT().Execute(gomock.Any()).Return(nil, errors.New("circuit breaker is open"))

		data := uc.GetAppData(context.Background())
		if _, ok := data.FindItem("maestro"); !ok {
			t.Fatalf("expected default catalog")
		}
	})
}

func TestCatalogUseCase_SaveAppData(t *testing.T) {
	t.Run("missing arrays", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, defaults.RestaurantInfo())
		_, err := uc.SaveAppData(context.Background(), entities.AppData{MenuItems: []entities.MenuItem{}})
		if !errors.Is(err, ErrInvalidAppData) {
			t.Fatalf("expected ErrInvalidAppData, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		uc := NewCatalogUseCase(store, nil, defaults.RestaurantInfo())

		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		_, err := uc.SaveAppData(context.Background(), remoteAppData())
		if !errors.Is(err, ErrCatalogSaveFailed) {
			t.Fatalf("expected ErrCatalogSaveFailed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICatalogStore(ctrl)
		uc := NewCatalogUseCase(store, nil, defaults.RestaurantInfo())

		store.EXPECT().Save(gomock.Any(), remoteAppData()).Return("https://cdn/app_data.json", nil)

		url, err := uc.SaveAppData(context.Background(), remoteAppData())
		if err != nil || url != "https://cdn/app_data.json" {
			t.Fatalf("unexpected result: %s, %v", url, err)
		}
	})
}

func TestCatalogUseCase_StorefrontInfo(t *testing.T) {
	uc := NewCatalogUseCase(nil, nil, entities.RestaurantInfo{Name: "Casa", WhatsApp: "55"})
	if uc.RestaurantInfo().Name != "Casa" {
		t.Fatalf("unexpected restaurant info")
	}
	if len(uc.PaymentMethods()) != 4 {
		t.Fatalf("expected 4 payment methods")
	}
}
