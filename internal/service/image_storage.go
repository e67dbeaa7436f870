// Package services holds infrastructure services that live outside the
// domain core, currently the S3-backed image storage used for person
// photos.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/IkkkaM/PersonManagement/internal/apperrors"
)

// ImageStorage stores person images in an S3 bucket. The person core only
// ever sees the returned object path; bytes never pass through it.
type ImageStorage struct {
	bucketName        string
	baseURL           string
	allowedExtensions []string
	client            *s3.Client
}

// NewImageStorage initializes the storage against the configured bucket.
func NewImageStorage(ctx context.Context, region, bucketName, baseURL string, allowedExtensions []string) (*ImageStorage, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("image bucket name is not configured")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &ImageStorage{
		bucketName:        bucketName,
		baseURL:           strings.TrimRight(baseURL, "/"),
		allowedExtensions: allowedExtensions,
		client:            s3.NewFromConfig(cfg),
	}, nil
}

// SaveImage uploads the image under a fresh unique key and returns the
// stored path.
func (s *ImageStorage) SaveImage(ctx context.Context, file io.Reader, fileName string) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	if !s.extensionAllowed(ext) {
		return "", apperrors.Validation(apperrors.InvalidFileFormat)
	}

	key := fmt.Sprintf("images/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return key, nil
}

// DeleteImage removes a stored image. Deleting a missing image is not an
// error.
func (s *ImageStorage) DeleteImage(ctx context.Context, imagePath string) error {
	if imagePath == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(imagePath),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// ImageExists reports whether the stored image is present in the bucket.
func (s *ImageStorage) ImageExists(ctx context.Context, imagePath string) (bool, error) {
	if imagePath == "" {
		return false, nil
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(imagePath),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check image existence: %w", err)
	}
	return true, nil
}

// GetImageUrl returns the public URL serving the stored image.
func (s *ImageStorage) GetImageUrl(imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if s.baseURL != "" {
		return s.baseURL + "/" + imagePath
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucketName, imagePath)
}

func (s *ImageStorage) extensionAllowed(ext string) bool {
	for _, allowed := range s.allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
