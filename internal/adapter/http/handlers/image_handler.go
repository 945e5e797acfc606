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
	errInvalidImagePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body.", http.StatusBadRequest)
)

// ImageHandler uploads and deletes menu item images.
type ImageHandler struct {
	usecase usecase.IImageUseCase
}

func NewImageHandler(uc usecase.IImageUseCase) *ImageHandler {
	return &ImageHandler{usecase: uc}
}

// UploadImage godoc
// @Summary      Upload a menu image
// @Description  body is base64, optionally a data URI. Large JPEG/PNG images are scaled down.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-API-Secret  header  string                      true  "Admin API secret"
// @Param        body                body    request.ImageUploadRequest  true  "Image"
// @Success      200  {object}  response.ImageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/images [post]
func (h *ImageHandler) UploadImage(c *gin.Context) {
	var payload request.ImageUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImagePayload.HTTPStatus, errInvalidImagePayload.ToHTTPError())
		return
	}

	img, err := h.usecase.Upload(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapImageError(err, "Failed to upload image.")
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[image][handler] upload failed filename=%s err=%v", payload.Filename, err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[image][handler] uploaded pathname=%s", img.Pathname)
	c.JSON(http.StatusOK, response.FromUploadedImage(img))
}

// DeleteImage godoc
// @Summary      Delete a menu image by its public URL
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-API-Secret  header  string                      true  "Admin API secret"
// @Param        body                body    request.ImageDeleteRequest  true  "Image URL"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /admin/images [delete]
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	var payload request.ImageDeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImagePayload.HTTPStatus, errInvalidImagePayload.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), payload.URL); err != nil {
		appErr := mapImageError(err, "Failed to delete image.")
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[image][handler] delete failed url=%s err=%v", payload.URL, err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Blob deleted successfully."})
}

func mapImageError(err error, storeFailure string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrImageFilenameRequired):
		return pkg.NewDomainErrorSimple("FILENAME_REQUIRED", "Filename (string) is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageContentTypeRequired):
		return pkg.NewDomainErrorSimple("CONTENT_TYPE_REQUIRED", "ContentType (string) is required.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageDataRequired):
		return pkg.NewDomainErrorSimple("IMAGE_DATA_REQUIRED", "Image data (base64 string) is required in body.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageInvalidData):
		return pkg.NewDomainErrorSimple("IMAGE_DATA_INVALID", "Image data is not valid base64.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageURLRequired):
		return pkg.NewDomainErrorSimple("IMAGE_URL_REQUIRED", "Blob URL (string) is required for deletion.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageStoreFailed):
		return pkg.NewDomainError("IMAGE_STORE_FAILED", storeFailure, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
