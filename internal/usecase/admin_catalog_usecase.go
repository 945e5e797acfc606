package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"cardapio_digital/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrCouponInvalidInput      = errors.New("coupon code and positive value are required")
	ErrCouponInvalidType       = errors.New("invalid discount type")
	ErrCouponInvalidPercentage = errors.New("percentage discount must be between 1 and 100")
	ErrCouponInvalidExpiry     = errors.New("invalid expiry date")
	ErrCouponInvalidMinOrder   = errors.New("minimum order value cannot be negative")
	ErrCouponDuplicateCode     = errors.New("coupon code already exists")
	ErrCommitInProgress        = errors.New("a commit is already in progress")
)

const (
	MsgCommitSucceeded      = "Alterações salvas no servidor com sucesso!"
	MsgCommitFailed         = "Falha ao salvar as alterações no servidor."
	MsgCouponAddedLocally   = "Cupom adicionado localmente. Salve todas as alterações no servidor."
	MsgCouponUpdatedLocally = "Cupom atualizado localmente. Salve todas as alterações no servidor."
)

var (
	percentMin = decimal.NewFromInt(1)
	percentMax = decimal.NewFromInt(100)
)

// CouponInput is the admin coupon form.
type CouponInput struct {
	Code          string
	Description   string
	DiscountType  entities.DiscountType
	Value         decimal.Decimal
	IsActive      bool
	ExpiryDate    string
	MinOrderValue *decimal.Decimal
}

// AdminCatalog is the staging catalog together with the commit status.
type AdminCatalog struct {
	Data   entities.AppData
	Status entities.SaveStatus
}

// IAdminCatalogUseCase edits a process-wide staging copy of the catalog and
// commits it to the remote store as a whole.
//
// Save status: idle -> saving -> success|error -> idle on the next edit,
// on reopen or on Reload. Only one commit may be in flight.
type IAdminCatalogUseCase interface {
	Catalog(ctx context.Context, reopen bool) AdminCatalog
	Reload(ctx context.Context) (AdminCatalog, error)
	ToggleItemAvailability(ctx context.Context, itemID string) (entities.MenuItem, error)
	AddCoupon(ctx context.Context, in CouponInput) (entities.Coupon, error)
	UpdateCoupon(ctx context.Context, couponID string, in CouponInput) (entities.Coupon, error)
	ToggleCouponActivity(ctx context.Context, couponID string) (entities.Coupon, error)
	Commit(ctx context.Context) (entities.SaveStatus, error)
}

type AdminCatalogUseCase struct {
	catalog ICatalogUseCase
	now     func() time.Time

	mu         sync.Mutex
	staging    *entities.AppData
	status     entities.SaveStatus
	committing bool
}

var _ IAdminCatalogUseCase = (*AdminCatalogUseCase)(nil)

func NewAdminCatalogUseCase(catalog ICatalogUseCase) *AdminCatalogUseCase {
	return &AdminCatalogUseCase{
		catalog: catalog,
		now:     time.Now,
		status:  entities.SaveStatus{State: entities.SaveStateIdle},
	}
}

func (u *AdminCatalogUseCase) Catalog(ctx context.Context, reopen bool) AdminCatalog {
	u.ensureStaging(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if reopen && !u.committing {
		u.setStatusLocked(entities.SaveStateIdle, "")
	}
	return u.viewLocked()
}

func (u *AdminCatalogUseCase) Reload(ctx context.Context) (AdminCatalog, error) {
	u.mu.Lock()
	busy := u.committing
	u.mu.Unlock()
	if busy {
		return AdminCatalog{}, ErrCommitInProgress
	}

	fresh := u.catalog.GetAppData(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.committing {
		return AdminCatalog{}, ErrCommitInProgress
	}
	u.staging = &fresh
	u.setStatusLocked(entities.SaveStateIdle, "")
	log.Printf("[admin][usecase] staging reloaded items=%d coupons=%d", len(fresh.MenuItems), len(fresh.Coupons))
	return u.viewLocked(), nil
}

func (u *AdminCatalogUseCase) ToggleItemAvailability(ctx context.Context, itemID string) (entities.MenuItem, error) {
	u.ensureStaging(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.staging.MenuItems {
		it := &u.staging.MenuItems[i]
		if it.ID == itemID {
			it.IsAvailable = !it.IsAvailable
			u.markEditedLocked("")
			return *it, nil
		}
	}
	return entities.MenuItem{}, ErrMenuItemNotFound
}

func (u *AdminCatalogUseCase) AddCoupon(ctx context.Context, in CouponInput) (entities.Coupon, error) {
	c, err := buildCoupon(in)
	if err != nil {
		return entities.Coupon{}, err
	}
	u.ensureStaging(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.codeTakenLocked(c.Code, "") {
		return entities.Coupon{}, ErrCouponDuplicateCode
	}
	c.ID = uuid.NewString()
	u.staging.Coupons = append(u.staging.Coupons, c)
	u.markEditedLocked(MsgCouponAddedLocally)
	return c, nil
}

func (u *AdminCatalogUseCase) UpdateCoupon(ctx context.Context, couponID string, in CouponInput) (entities.Coupon, error) {
	c, err := buildCoupon(in)
	if err != nil {
		return entities.Coupon{}, err
	}
	u.ensureStaging(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	i := u.couponIndexLocked(couponID)
	if i < 0 {
		return entities.Coupon{}, ErrCouponNotFound
	}
	if u.codeTakenLocked(c.Code, couponID) {
		return entities.Coupon{}, ErrCouponDuplicateCode
	}
	c.ID = couponID
	u.staging.Coupons[i] = c
	u.markEditedLocked(MsgCouponUpdatedLocally)
	return c, nil
}

func (u *AdminCatalogUseCase) ToggleCouponActivity(ctx context.Context, couponID string) (entities.Coupon, error) {
	u.ensureStaging(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	i := u.couponIndexLocked(couponID)
	if i < 0 {
		return entities.Coupon{}, ErrCouponNotFound
	}
	u.staging.Coupons[i].IsActive = !u.staging.Coupons[i].IsActive
	u.markEditedLocked("")
	return u.staging.Coupons[i], nil
}

// Commit writes the staging catalog to the remote store. Edits made while
// the write is in flight stay staged for the next commit.
func (u *AdminCatalogUseCase) Commit(ctx context.Context) (entities.SaveStatus, error) {
	u.ensureStaging(ctx)

	u.mu.Lock()
	if u.committing {
		status := u.status
		u.mu.Unlock()
		return status, ErrCommitInProgress
	}
	u.committing = true
	u.setStatusLocked(entities.SaveStateSaving, "")
	snapshot := u.staging.Clone()
	u.mu.Unlock()

	_, err := u.catalog.SaveAppData(ctx, snapshot)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.committing = false
	if err != nil {
		log.Printf("[admin][usecase] commit failed err=%v", err)
		u.setStatusLocked(entities.SaveStateError, MsgCommitFailed)
		return u.status, err
	}
	u.setStatusLocked(entities.SaveStateSuccess, MsgCommitSucceeded)
	return u.status, nil
}

// ensureStaging loads the staging copy on first use. The remote read runs
// without holding the lock.
func (u *AdminCatalogUseCase) ensureStaging(ctx context.Context) {
	u.mu.Lock()
	loaded := u.staging != nil
	u.mu.Unlock()
	if loaded {
		return
	}

	data := u.catalog.GetAppData(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.staging == nil {
		u.staging = &data
	}
}

func (u *AdminCatalogUseCase) viewLocked() AdminCatalog {
	return AdminCatalog{Data: u.staging.Clone(), Status: u.status}
}

func (u *AdminCatalogUseCase) setStatusLocked(state entities.SaveState, msg string) {
	u.status = entities.SaveStatus{State: state, Message: msg, UpdatedAt: u.now().UTC()}
}

// markEditedLocked returns a settled status to idle. A status of saving is
// left alone; the in-flight commit owns it.
func (u *AdminCatalogUseCase) markEditedLocked(msg string) {
	if u.status.State == entities.SaveStateSaving {
		return
	}
	u.setStatusLocked(entities.SaveStateIdle, msg)
}

func (u *AdminCatalogUseCase) couponIndexLocked(id string) int {
	for i, c := range u.staging.Coupons {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (u *AdminCatalogUseCase) codeTakenLocked(code, exceptID string) bool {
	for _, c := range u.staging.Coupons {
		if c.ID != exceptID && c.MatchesCode(code) {
			return true
		}
	}
	return false
}

func buildCoupon(in CouponInput) (entities.Coupon, error) {
	code := entities.NormalizeCouponCode(in.Code)
	if code == "" || !in.Value.IsPositive() {
		return entities.Coupon{}, ErrCouponInvalidInput
	}
	switch in.DiscountType {
	case entities.DiscountTypePercentage:
		if in.Value.LessThan(percentMin) || in.Value.GreaterThan(percentMax) {
			return entities.Coupon{}, ErrCouponInvalidPercentage
		}
	case entities.DiscountTypeFixed:
	default:
		return entities.Coupon{}, ErrCouponInvalidType
	}

	expiry := strings.TrimSpace(in.ExpiryDate)
	if expiry != "" {
		if _, err := time.Parse(entities.ExpiryDateLayout, expiry); err != nil {
			return entities.Coupon{}, ErrCouponInvalidExpiry
		}
	}

	var minOrder *decimal.Decimal
	if in.MinOrderValue != nil {
		if in.MinOrderValue.IsNegative() {
			return entities.Coupon{}, ErrCouponInvalidMinOrder
		}
		if in.MinOrderValue.IsPositive() {
			v := *in.MinOrderValue
			minOrder = &v
		}
	}

	return entities.Coupon{
		Code:          code,
		Description:   strings.TrimSpace(in.Description),
		DiscountType:  in.DiscountType,
		Value:         in.Value,
		IsActive:      in.IsActive,
		ExpiryDate:    expiry,
		MinOrderValue: minOrder,
	}, nil
}
