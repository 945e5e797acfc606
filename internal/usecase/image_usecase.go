package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cardapio_digital/internal/infrastructure/imageopt"
	"cardapio_digital/internal/infrastructure/metrics"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrImageFilenameRequired    = errors.New("filename is required")
	ErrImageContentTypeRequired = errors.New("content type is required")
	ErrImageDataRequired        = errors.New("image data is required")
	ErrImageInvalidData         = errors.New("image data is not valid base64")
	ErrImageURLRequired         = errors.New("image url is required")
	ErrImageStoreFailed         = errors.New("image storage failed")
)

// ImageKeyPrefix is the folder holding menu images in the bucket.
const ImageKeyPrefix = "menu-items/"

var whitespaceRun = regexp.MustCompile(`\s+`)

type ImageUploadInput struct {
	Filename    string
	ContentType string
	// Data is base64, optionally with a "data:<type>;base64," prefix.
	Data string
}

type UploadedImage struct {
	URL      string
	Pathname string
}

// IImageUseCase stores and removes menu images.
type IImageUseCase interface {
	Upload(ctx context.Context, in ImageUploadInput) (UploadedImage, error)
	Delete(ctx context.Context, url string) error
}

type ImageUseCase struct {
	store interfaces.IImageStore
	now   func() time.Time
}

var _ IImageUseCase = (*ImageUseCase)(nil)

func NewImageUseCase(store interfaces.IImageStore) *ImageUseCase {
	return &ImageUseCase{store: store, now: time.Now}
}

func (u *ImageUseCase) Upload(ctx context.Context, in ImageUploadInput) (UploadedImage, error) {
	switch {
	case strings.TrimSpace(in.Filename) == "":
		return UploadedImage{}, ErrImageFilenameRequired
	case strings.TrimSpace(in.ContentType) == "":
		return UploadedImage{}, ErrImageContentTypeRequired
	case strings.TrimSpace(in.Data) == "":
		return UploadedImage{}, ErrImageDataRequired
	}

	data, err := decodeImageData(in.Data)
	if err != nil {
		return UploadedImage{}, err
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	optimized, resized, err := imageopt.Optimize(data, contentType)
	if err != nil {
		// Undecodable images are stored as sent.
		log.Printf("[image][usecase] optimize skipped filename=%s err=%v", in.Filename, err)
		optimized, resized = data, false
	}

	key := ImageKey(u.now(), uuid.NewString(), in.Filename)
	url, err := u.store.Upload(ctx, key, contentType, optimized)
	if err != nil {
		return UploadedImage{}, fmt.Errorf("%w: %v", ErrImageStoreFailed, err)
	}
	metrics.ImagesUploadedTotal.WithLabelValues(strconv.FormatBool(resized)).Inc()
	log.Printf("[image][usecase] uploaded key=%s bytes=%d resized=%t", key, len(optimized), resized)
	return UploadedImage{URL: url, Pathname: key}, nil
}

func (u *ImageUseCase) Delete(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrImageURLRequired
	}
	if err := u.store.Delete(ctx, url); err != nil {
		return fmt.Errorf("%w: %v", ErrImageStoreFailed, err)
	}
	log.Printf("[image][usecase] deleted url=%s", url)
	return nil
}

// ImageKey builds menu-items/<unix-millis>-<8 hex>-<filename>, with runs of
// whitespace in the filename replaced by '-'.
func ImageKey(now time.Time, id, filename string) string {
	suffix := strings.ReplaceAll(id, "-", "")
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(filename), "-")
	return fmt.Sprintf("%s%d-%s-%s", ImageKeyPrefix, now.UnixMilli(), suffix, name)
}

func decodeImageData(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(s); err != nil {
			return nil, ErrImageInvalidData
		}
	}
	if len(data) == 0 {
		return nil, ErrImageDataRequired
	}
	return data, nil
}
