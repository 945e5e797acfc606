package handlers

import (
	"errors"
	"net/http"
	"testing"

	"cardapio_digital/internal/adapter/http/handlers/mocks"
	"cardapio_digital/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newImageRouter(h *ImageHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/admin/images", h.UploadImage)
	r.DELETE("/v1/admin/images", h.DeleteImage)
	return r
}

func TestImageHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			err  error
			code string
		}{
			{usecase.ErrImageFilenameRequired, "FILENAME_REQUIRED"},
			{usecase.ErrImageContentTypeRequired, "CONTENT_TYPE_REQUIRED"},
			{usecase.ErrImageDataRequired, "IMAGE_DATA_REQUIRED"},
			{usecase.ErrImageInvalidData, "IMAGE_DATA_INVALID"},
		}
		for _, tt := range tests {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIImageUseCase(ctrl)
			r := newImageRouter(NewImageHandler(uc))

			uc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(usecase.UploadedImage{}, tt.err)

			w := performRequest(r, http.MethodPost, "/v1/admin/images", `{}`)
			if w.Code != http.StatusBadRequest || decodeBody(t, w)["code"] != tt.code {
				t.Fatalf("err=%v: unexpected response %d %s", tt.err, w.Code, w.Body.String())
			}
			ctrl.Finish()
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newImageRouter(NewImageHandler(uc))

		uc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(usecase.UploadedImage{}, errors.Join(usecase.ErrImageStoreFailed, errors.New("s3")))

		w := performRequest(r, http.MethodPost, "/v1/admin/images", `{"filename":"a.png","contentType":"image/png","body":"AAAA"}`)
		if w.Code != http.StatusInternalServerError || decodeBody(t, w)["message"] != "Failed to upload image." {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newImageRouter(NewImageHandler(uc))

		in := usecase.ImageUploadInput{Filename: "my burger.png", ContentType: "image/png", Data: "data:image/png;base64,AAAA"}
		uc.EXPECT().Upload(gomock.Any(), in).Return(usecase.UploadedImage{
			URL:      "https://cdn.example.com/menu-items/1-abcd1234-my-burger.png",
			Pathname: "menu-items/1-abcd1234-my-burger.png",
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/admin/images", `{"filename":"my burger.png","contentType":"image/png","body":"data:image/png;base64,AAAA"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["pathname"] != "menu-items/1-abcd1234-my-burger.png" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestImageHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newImageRouter(NewImageHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "").Return(usecase.ErrImageURLRequired)

		w := performRequest(r, http.MethodDelete, "/v1/admin/images", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUseCase(ctrl)
		r := newImageRouter(NewImageHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "https://cdn.example.com/a.png").Return(nil)

		w := performRequest(r, http.MethodDelete, "/v1/admin/images", `{"url":"https://cdn.example.com/a.png"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["message"] != "Blob deleted successfully." {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
