package response

import (
	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type SaveAppDataResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type AdminCatalogResponse struct {
	MenuItems  []entities.MenuItem `json:"menu_items"`
	Coupons    []entities.Coupon   `json:"coupons"`
	SaveStatus entities.SaveStatus `json:"save_status"`
}

func FromAdminCatalog(c usecase.AdminCatalog) AdminCatalogResponse {
	res := AdminCatalogResponse{
		MenuItems:  c.Data.MenuItems,
		Coupons:    c.Data.Coupons,
		SaveStatus: c.Status,
	}
	if res.MenuItems == nil {
		res.MenuItems = []entities.MenuItem{}
	}
	if res.Coupons == nil {
		res.Coupons = []entities.Coupon{}
	}
	return res
}

type CouponMutationResponse struct {
	Message string          `json:"message,omitempty"`
	Coupon  entities.Coupon `json:"coupon"`
}

type ImageResponse struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

func FromUploadedImage(img usecase.UploadedImage) ImageResponse {
	return ImageResponse{URL: img.URL, Pathname: img.Pathname}
}
