package handlers

import (
	"errors"
	"net/http"

	request "cardapio_digital/internal/adapter/http/dto/request"
	response "cardapio_digital/internal/adapter/http/dto/response"
	"cardapio_digital/internal/usecase"
	"cardapio_digital/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidAppDataPayload = pkg.NewDomainErrorSimple("INVALID_APP_DATA", "Invalid payload: menuItems and coupons must be arrays.", http.StatusBadRequest)
)

// CatalogHandler serves the public storefront catalog and the
// secret-protected catalog upload.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetAppData godoc
// @Summary      Storefront catalog
// @Description  Menu items and coupons. Falls back to the built-in catalog when the remote document is unavailable.
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  entities.AppData
// @Router       /app-data [get]
func (h *CatalogHandler) GetAppData(c *gin.Context) {
	data := h.usecase.GetAppData(c.Request.Context())
	c.JSON(http.StatusOK, data)
}

// GetRestaurant godoc
// @Summary      Restaurant information
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  entities.RestaurantInfo
// @Router       /restaurant [get]
func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.RestaurantInfo())
}

// ListPaymentMethods godoc
// @Summary      Payment methods accepted on delivery
// @Tags         storefront
// @Produce      json
// @Success      200  {array}  entities.PaymentMethod
// @Router       /payment-methods [get]
func (h *CatalogHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.PaymentMethods())
}

// SaveAppData godoc
// @Summary      Overwrite the remote catalog document
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-API-Secret  header  string  true  "Admin API secret"
// @Success      200  {object}  response.SaveAppDataResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/app-data [post]
func (h *CatalogHandler) SaveAppData(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidAppDataPayload.HTTPStatus, errInvalidAppDataPayload.ToHTTPError())
		return
	}
	data, err := request.ParseAppData(raw)
	if err != nil {
		log.Printf("[catalog][handler] invalid payload err=%v", err)
		c.JSON(errInvalidAppDataPayload.HTTPStatus, errInvalidAppDataPayload.ToHTTPError())
		return
	}

	url, err := h.usecase.SaveAppData(c.Request.Context(), data)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] app data saved url=%s", url)

	c.JSON(http.StatusOK, response.SaveAppDataResponse{Message: "App data updated successfully.", URL: url})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppData):
		return errInvalidAppDataPayload
	case errors.Is(err, usecase.ErrCatalogSaveFailed):
		return pkg.NewDomainError("CATALOG_SAVE_FAILED", "Failed to save app data.", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
