package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

func cartKey(id string) string {
	return cartKeyPrefix + id
}

// CartRedisRepository stores each cart as a JSON string that expires after
// ttl of inactivity.
type CartRedisRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ interfaces.ICartRepository = (*CartRedisRepository)(nil)

func NewCartRedisRepository(rdb redis.Cmdable, ttl time.Duration) *CartRedisRepository {
	return &CartRedisRepository{rdb: rdb, ttl: ttl}
}

func (r *CartRedisRepository) Get(ctx context.Context, id string) (entities.Cart, error) {
	raw, err := r.rdb.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Cart{}, nil
	}
	if err != nil {
		return entities.Cart{}, err
	}

	var cart entities.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (r *CartRedisRepository) Save(ctx context.Context, cart entities.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKey(cart.ID), raw, r.ttl).Err()
}
