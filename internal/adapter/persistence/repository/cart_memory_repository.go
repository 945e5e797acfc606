package repository

import (
	"context"
	"sync"
	"time"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase/interfaces"
)

type memoryCart struct {
	cart      entities.Cart
	expiresAt time.Time
}

// CartMemoryRepository is the process-local cart store used when no Redis
// address is configured. Expired carts are dropped lazily on access.
type CartMemoryRepository struct {
	mu    sync.Mutex
	carts map[string]memoryCart
	ttl   time.Duration
	now   func() time.Time
}

var _ interfaces.ICartRepository = (*CartMemoryRepository)(nil)

func NewCartMemoryRepository(ttl time.Duration) *CartMemoryRepository {
	return &CartMemoryRepository{
		carts: make(map[string]memoryCart),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (r *CartMemoryRepository) Get(_ context.Context, id string) (entities.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mc, ok := r.carts[id]
	if !ok {
		return entities.Cart{}, nil
	}
	if r.ttl > 0 && !r.now().Before(mc.expiresAt) {
		delete(r.carts, id)
		return entities.Cart{}, nil
	}
	return cloneCart(mc.cart), nil
}

func (r *CartMemoryRepository) Save(_ context.Context, cart entities.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = memoryCart{cart: cloneCart(cart), expiresAt: r.now().Add(r.ttl)}
	return nil
}

func cloneCart(c entities.Cart) entities.Cart {
	if c.Lines != nil {
		lines := make([]entities.CartLine, len(c.Lines))
		copy(lines, c.Lines)
		c.Lines = lines
	}
	if c.AppliedCoupon != nil {
		applied := *c.AppliedCoupon
		c.AppliedCoupon = &applied
	}
	return c
}
