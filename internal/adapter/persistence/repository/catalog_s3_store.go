package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cardapio_digital/internal/domain/entities"
	"cardapio_digital/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const CatalogObjectKey = "app_data.json"

var ErrMalformedCatalog = errors.New("malformed catalog document")

// CatalogS3Store keeps the catalog document as a single public JSON object.
type CatalogS3Store struct {
	s3      s3API
	bucket  string
	baseURL string
}

var _ interfaces.ICatalogStore = (*CatalogS3Store)(nil)

func NewCatalogS3Store(client *s3.Client, bucket, baseURL string) *CatalogS3Store {
	return &CatalogS3Store{s3: client, bucket: bucket, baseURL: baseURL}
}

func (s *CatalogS3Store) Load(ctx context.Context) (entities.AppData, error) {
	out, err := s.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(CatalogObjectKey),
	})
	if err != nil {
		return entities.AppData{}, err
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return entities.AppData{}, err
	}
	return decodeAppData(raw)
}

func (s *CatalogS3Store) Save(ctx context.Context, data entities.AppData) (string, error) {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	_, err = s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(CatalogObjectKey),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return "", err
	}
	return objectURL(s.baseURL, CatalogObjectKey), nil
}

// decodeAppData requires both collections to be present as arrays.
func decodeAppData(raw []byte) (entities.AppData, error) {
	var data entities.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return entities.AppData{}, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if data.MenuItems == nil || data.Coupons == nil {
		return entities.AppData{}, ErrMalformedCatalog
	}
	return data, nil
}
