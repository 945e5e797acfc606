package interfaces

import (
	"context"

	"cardapio_digital/internal/domain/entities"
)

// ICartRepository persists carts by id. Get returns a zero Cart (empty ID)
// for unknown or expired carts.
type ICartRepository interface {
	Get(ctx context.Context, id string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
}
