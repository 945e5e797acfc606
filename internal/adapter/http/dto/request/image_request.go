package request

import "cardapio_digital/internal/usecase"

// ImageUploadRequest carries the image as base64 in Body, optionally as a
// data URI.
type ImageUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

func (r ImageUploadRequest) ToInput() usecase.ImageUploadInput {
	return usecase.ImageUploadInput{
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Data:        r.Body,
	}
}

type ImageDeleteRequest struct {
	URL string `json:"url"`
}
