package usecase

import (
	"context"
	"errors"
	"fmt"

	"cardapio_digital/internal/domain/defaults"
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/infrastructure/metrics"
	"cardapio_digital/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var (
	ErrCatalogSaveFailed = errors.New("failed to save app data")
	ErrInvalidAppData    = errors.New("invalid app data")
)

// ICatalogUseCase serves the storefront catalog.
//
//   - GetAppData never fails: any remote read or parse problem degrades to the
//     built-in defaults.
//   - SaveAppData overwrites the remote document (last write wins).
type ICatalogUseCase interface {
	GetAppData(ctx context.Context) entities.AppData
	SaveAppData(ctx context.Context, data entities.AppData) (string, error)
	RestaurantInfo() entities.RestaurantInfo
	PaymentMethods() []entities.PaymentMethod
}

type CatalogUseCase struct {
	store      interfaces.ICatalogStore
	breaker    interfaces.ICircuitBreaker
	restaurant entities.RestaurantInfo
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase builds the catalog use case. breaker may be nil.
func NewCatalogUseCase(store interfaces.ICatalogStore, breaker interfaces.ICircuitBreaker, restaurant entities.RestaurantInfo) *CatalogUseCase {
	return &CatalogUseCase{store: store, breaker: breaker, restaurant: restaurant}
}

func (u *CatalogUseCase) GetAppData(ctx context.Context) entities.AppData {
	if u.store == nil {
		metrics.CatalogLoadsTotal.WithLabelValues(metrics.CatalogSourceDefault).Inc()
		return defaults.AppData()
	}

	data, err := u.load(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] remote load failed, serving defaults err=%v", err)
		metrics.CatalogLoadsTotal.WithLabelValues(metrics.CatalogSourceDefault).Inc()
		return defaults.AppData()
	}
	metrics.CatalogLoadsTotal.WithLabelValues(metrics.CatalogSourceRemote).Inc()
	return data
}

func (u *CatalogUseCase) load(ctx context.Context) (entities.AppData, error) {
	if u.breaker == nil {
		return u.store.Load(ctx)
	}
	res, err := u.breaker.Execute(func() (interface{}, error) {
		return u.store.Load(ctx)
	})
	if err != nil {
		return entities.AppData{}, err
	}
	data, ok := res.(entities.AppData)
	if !ok {
		return entities.AppData{}, fmt.Errorf("unexpected catalog result %T", res)
	}
	return data, nil
}

func (u *CatalogUseCase) SaveAppData(ctx context.Context, data entities.AppData) (string, error) {
	if data.MenuItems == nil || data.Coupons == nil {
		return "", ErrInvalidAppData
	}
	if u.store == nil {
		metrics.CatalogCommitsTotal.WithLabelValues("error").Inc()
		return "", ErrCatalogSaveFailed
	}

	url, err := u.store.Save(ctx, data)
	if err != nil {
		log.Printf("[catalog][usecase] save failed err=%v", err)
		metrics.CatalogCommitsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %v", ErrCatalogSaveFailed, err)
	}
	metrics.CatalogCommitsTotal.WithLabelValues("success").Inc()
	log.Printf("[catalog][usecase] saved items=%d coupons=%d url=%s", len(data.MenuItems), len(data.Coupons), url)
	return url, nil
}

func (u *CatalogUseCase) RestaurantInfo() entities.RestaurantInfo {
	return u.restaurant
}

func (u *CatalogUseCase) PaymentMethods() []entities.PaymentMethod {
	return defaults.PaymentMethods()
}
