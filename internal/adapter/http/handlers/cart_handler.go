package handlers

import (
	"errors"
	"net/http"

	request "cardapio_digital/internal/adapter/http/dto/request"
	response "cardapio_digital/internal/adapter/http/dto/response"
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/domain/pricing"
	"cardapio_digital/internal/usecase"
	"cardapio_digital/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida.", http.StatusBadRequest)
	errInvalidLineKey     = pkg.NewDomainErrorSimple("INVALID_LINE_KEY", "Item do carrinho inválido.", http.StatusBadRequest)
)

// CartHandler exposes the shopper cart: line items, coupon and checkout.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// CreateCart godoc
// @Summary      Create an empty cart
// @Tags         cart
// @Produce      json
// @Success      201  {object}  response.CartResponse
// @Router       /carts [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	cart, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCart(cart))
}

// GetCart godoc
// @Summary      Get a cart
// @Tags         cart
// @Produce      json
// @Param        cart_id  path  string  true  "Cart ID"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /carts/{cart_id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.Get(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// AddItem godoc
// @Summary      Add a configured item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                      true  "Cart ID"
// @Param        body     body  request.AddCartItemRequest  true  "Item"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), c.Param("cart_id"), payload.ToInput())
	if err != nil {
		h.fail(c, "add-item", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// UpdateLine godoc
// @Summary      Set the quantity of a cart line
// @Description  A quantity below 1 removes the line.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                         true  "Cart ID"
// @Param        body     body  request.UpdateCartLineRequest  true  "Line"
// @Success      200  {object}  response.CartResponse
// @Router       /carts/{cart_id}/lines [patch]
func (h *CartHandler) UpdateLine(c *gin.Context) {
	var payload request.UpdateCartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	key, err := entities.ParseLineKey(payload.LineKey)
	if err != nil {
		c.JSON(errInvalidLineKey.HTTPStatus, errInvalidLineKey.ToHTTPError())
		return
	}

	cart, err := h.usecase.UpdateLineQuantity(c.Request.Context(), c.Param("cart_id"), key, *payload.Quantity)
	if err != nil {
		h.fail(c, "update-line", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// RemoveLine godoc
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        cart_id   path   string  true  "Cart ID"
// @Param        line_key  query  string  true  "Line key"
// @Success      200  {object}  response.CartResponse
// @Router       /carts/{cart_id}/lines [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	key, err := entities.ParseLineKey(c.Query("line_key"))
	if err != nil {
		c.JSON(errInvalidLineKey.HTTPStatus, errInvalidLineKey.ToHTTPError())
		return
	}

	cart, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("cart_id"), key)
	if err != nil {
		h.fail(c, "remove-line", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// OpenCheckout godoc
// @Summary      Open the checkout surface
// @Description  Clears the applied coupon so it is validated again.
// @Tags         cart
// @Produce      json
// @Param        cart_id  path  string  true  "Cart ID"
// @Success      200  {object}  response.CartResponse
// @Router       /carts/{cart_id}/checkout/open [post]
func (h *CartHandler) OpenCheckout(c *gin.Context) {
	cart, err := h.usecase.OpenCheckout(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		h.fail(c, "open-checkout", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// ApplyCoupon godoc
// @Summary      Apply a coupon
// @Description  A rejected coupon is still a 200 with applied=false and the reason in message.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                      true  "Cart ID"
// @Param        body     body  request.ApplyCouponRequest  true  "Coupon"
// @Success      200  {object}  response.CouponResponse
// @Router       /carts/{cart_id}/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var payload request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, res, err := h.usecase.ApplyCoupon(c.Request.Context(), c.Param("cart_id"), payload.Code)
	if err != nil {
		h.fail(c, "apply-coupon", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCouponResult(cart, res))
}

// RemoveCoupon godoc
// @Summary      Remove the applied coupon
// @Tags         cart
// @Produce      json
// @Param        cart_id  path  string  true  "Cart ID"
// @Success      200  {object}  response.CouponRemovedResponse
// @Router       /carts/{cart_id}/coupon [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	cart, msg, err := h.usecase.RemoveCoupon(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		h.fail(c, "remove-coupon", err)
		return
	}
	c.JSON(http.StatusOK, response.CouponRemovedResponse{Message: msg, Cart: response.FromCart(cart)})
}

// Checkout godoc
// @Summary      Finish the order
// @Description  Formats the order message and returns the WhatsApp hand-off link. The cart is emptied.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        cart_id  path  string                   true  "Cart ID"
// @Param        body     body  request.CheckoutRequest  true  "Customer details"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /carts/{cart_id}/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Checkout(c.Request.Context(), c.Param("cart_id"), payload.ToInput())
	if err != nil {
		h.fail(c, "checkout", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckout(res))
}

func (h *CartHandler) fail(c *gin.Context, action string, err error) {
	appErr := mapCartError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[cart][handler] %s failed cart_id=%s err=%v", action, c.Param("cart_id"), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCartError(err error) *pkg.AppError {
	var rejected *usecase.CouponRejectedError
	switch {
	case errors.As(err, &rejected):
		return pkg.NewDomainError("COUPON_NO_LONGER_VALID", rejected.Result.Message, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Carrinho não encontrado.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Item não encontrado no cardápio.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMenuItemUnavailable):
		return pkg.NewDomainErrorSimple("MENU_ITEM_UNAVAILABLE", "Este item está indisponível no momento.", http.StatusConflict)
	case errors.Is(err, usecase.ErrMenuItemNotOrderable):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_ORDERABLE", "Bordas só podem ser escolhidas junto de um lanche.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSauce):
		return pkg.NewDomainErrorSimple("INVALID_SAUCE", "Molho inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCrust):
		return pkg.NewDomainErrorSimple("INVALID_CRUST", "Borda inválida.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTrioNotOffered):
		return pkg.NewDomainErrorSimple("TRIO_NOT_OFFERED", "Este item não está disponível como trio.", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidLineKey):
		return errInvalidLineKey
	case errors.Is(err, pricing.ErrOrderEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", pricing.UserMessage(err), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrOrderMissingName):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER_NAME", pricing.UserMessage(err), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrOrderMissingAddress):
		return pkg.NewDomainErrorSimple("MISSING_DELIVERY_ADDRESS", pricing.UserMessage(err), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrOrderMissingPaymentMeth):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_METHOD", pricing.UserMessage(err), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
