package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "cardapio_digital/internal/adapter/http/dto/request"
	response "cardapio_digital/internal/adapter/http/dto/response"
	"cardapio_digital/internal/adapter/http/middlewares"
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase"
	"cardapio_digital/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida.", http.StatusBadRequest)
)

// AdminHandler manages the staging catalog used by the admin panel. Every
// route is behind an admin session.
type AdminHandler struct {
	usecase usecase.IAdminCatalogUseCase
}

func NewAdminHandler(uc usecase.IAdminCatalogUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

type saveStatusResponse struct {
	SaveStatus entities.SaveStatus `json:"save_status"`
}

// GetCatalog godoc
// @Summary      Staging catalog and save status
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        reopen  query  bool  false  "Reset a finished save status"
// @Success      200  {object}  response.AdminCatalogResponse
// @Router       /admin/catalog [get]
func (h *AdminHandler) GetCatalog(c *gin.Context) {
	reopen, _ := strconv.ParseBool(c.DefaultQuery("reopen", "false"))
	catalog := h.usecase.Catalog(c.Request.Context(), reopen)
	c.JSON(http.StatusOK, response.FromAdminCatalog(catalog))
}

// ReloadCatalog godoc
// @Summary      Discard staged edits and reload from the remote store
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.AdminCatalogResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(c *gin.Context) {
	catalog, err := h.usecase.Reload(c.Request.Context())
	if err != nil {
		h.fail(c, "reload", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAdminCatalog(catalog))
}

// ToggleItemAvailability godoc
// @Summary      Flip the availability of a menu item
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Menu item ID"
// @Success      200  {object}  entities.MenuItem
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/items/{id}/availability [patch]
func (h *AdminHandler) ToggleItemAvailability(c *gin.Context) {
	item, err := h.usecase.ToggleItemAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle-item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// AddCoupon godoc
// @Summary      Add a coupon to the staging catalog
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.CouponRequest  true  "Coupon"
// @Success      201  {object}  response.CouponMutationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /admin/coupons [post]
func (h *AdminHandler) AddCoupon(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	coupon, err := h.usecase.AddCoupon(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, "add-coupon", err)
		return
	}
	c.JSON(http.StatusCreated, response.CouponMutationResponse{Message: usecase.MsgCouponAddedLocally, Coupon: coupon})
}

// UpdateCoupon godoc
// @Summary      Update a staged coupon
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                 true  "Coupon ID"
// @Param        body  body  request.CouponRequest  true  "Coupon"
// @Success      200  {object}  response.CouponMutationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /admin/coupons/{id} [put]
func (h *AdminHandler) UpdateCoupon(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	coupon, err := h.usecase.UpdateCoupon(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.fail(c, "update-coupon", err)
		return
	}
	c.JSON(http.StatusOK, response.CouponMutationResponse{Message: usecase.MsgCouponUpdatedLocally, Coupon: coupon})
}

// ToggleCouponActivity godoc
// @Summary      Flip whether a coupon is active
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Coupon ID"
// @Success      200  {object}  response.CouponMutationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/coupons/{id}/activity [patch]
func (h *AdminHandler) ToggleCouponActivity(c *gin.Context) {
	coupon, err := h.usecase.ToggleCouponActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle-coupon", err)
		return
	}
	c.JSON(http.StatusOK, response.CouponMutationResponse{Coupon: coupon})
}

// CommitCatalog godoc
// @Summary      Save the staging catalog to the remote store
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  handlers.saveStatusResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/catalog/commit [post]
func (h *AdminHandler) CommitCatalog(c *gin.Context) {
	actor := ""
	if s, ok := middlewares.SessionFrom(c); ok {
		actor = s.Email
	}
	log.Printf("[admin][handler] commit start by=%s", actor)

	status, err := h.usecase.Commit(c.Request.Context())
	if err != nil {
		h.fail(c, "commit", err)
		return
	}
	log.Printf("[admin][handler] commit success by=%s", actor)
	c.JSON(http.StatusOK, saveStatusResponse{SaveStatus: status})
}

func (h *AdminHandler) fail(c *gin.Context, action string, err error) {
	appErr := mapAdminError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[admin][handler] %s failed err=%v", action, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Item não encontrado no cardápio.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Cupom não encontrado.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCouponInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_COUPON", "Código do cupom e valor do desconto (maior que zero) são obrigatórios.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponInvalidType):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_TYPE", "Tipo de desconto inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_PERCENTAGE", "Desconto percentual deve ser entre 1 e 100.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponInvalidExpiry):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_EXPIRY", "Data de validade inválida. Use o formato AAAA-MM-DD.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponInvalidMinOrder):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_MIN_ORDER", "O pedido mínimo não pode ser negativo.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponDuplicateCode):
		return pkg.NewDomainErrorSimple("COUPON_CODE_EXISTS", "Já existe um cupom com este código.", http.StatusConflict)
	case errors.Is(err, usecase.ErrCommitInProgress):
		return pkg.NewDomainErrorSimple("COMMIT_IN_PROGRESS", "Um salvamento já está em andamento.", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogSaveFailed), errors.Is(err, usecase.ErrInvalidAppData):
		return pkg.NewDomainError("CATALOG_SAVE_FAILED", usecase.MsgCommitFailed, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
