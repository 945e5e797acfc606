package repository

import (
	"bytes"
	"context"
	"errors"

	"cardapio_digital/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrForeignImageURL = errors.New("image url does not belong to this store")

// ImageS3Store keeps menu images as public objects in the blob bucket.
type ImageS3Store struct {
	s3      s3API
	bucket  string
	baseURL string
}

var _ interfaces.IImageStore = (*ImageS3Store)(nil)

func NewImageS3Store(client *s3.Client, bucket, baseURL string) *ImageS3Store {
	return &ImageS3Store{s3: client, bucket: bucket, baseURL: baseURL}
}

func (s *ImageS3Store) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", err
	}
	return objectURL(s.baseURL, key), nil
}

func (s *ImageS3Store) Delete(ctx context.Context, url string) error {
	key, ok := objectKey(s.baseURL, url)
	if !ok {
		return ErrForeignImageURL
	}
	_, err := s.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
