// services/upload_service.go
package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB

// UploadService pushes shop images to S3.
type UploadService struct {
	Bucket   string
	uploader *manager.Uploader
}

func NewUploadService(ctx context.Context, region, bucket string) (*UploadService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &UploadService{Bucket: bucket, uploader: manager.NewUploader(client)}, nil
}

// UploadImage validates size and content type, then uploads under a
// unique key so names never collide. Returns the public URL.
func (u *UploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxImageSize {
		return "", ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer f.Close()

	key := fmt.Sprintf("shops/%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	result, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return result.Location, nil
}
