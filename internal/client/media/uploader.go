// Package media uploads gemstone photos and videos to S3-compatible object
// storage (MinIO in development) and returns their public URLs.
package media

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/msurana/gemvault/internal/logging"
)

// seams for tests
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	timeNow = time.Now
)

// s3API is the slice of the S3 client the uploader needs.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config carries the object storage settings.
type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
	KeyPrefix string
}

// Uploader stores media objects and derives their public URLs.
type Uploader struct {
	api       s3API
	bucket    string
	publicURL string
	prefix    string
	log       logging.Logger
}

// New builds an Uploader against the configured S3 endpoint using static
// credentials. Path-style addressing keeps MinIO happy.
func New(ctx context.Context, cfg Config, log logging.Logger) (*Uploader, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return NewWithAPI(client, cfg.Bucket, cfg.PublicURL, cfg.KeyPrefix, log), nil
}

// NewWithAPI wires an Uploader over an existing S3 API implementation.
func NewWithAPI(api s3API, bucket, publicURL, prefix string, log logging.Logger) *Uploader {
	return &Uploader{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		prefix:    strings.Trim(prefix, "/"),
		log:       log,
	}
}

// UploadFile uploads the file at path and returns its public URL. The content
// type is derived from the file extension.
func (u *Uploader) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := u.objectKey(filepath.Base(path))
	_, err = u.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	u.log.Info(ctx, "uploaded media", "key", key, "contentType", contentType)
	return u.publicURL + "/" + key, nil
}

// UploadAll uploads each file in order and returns their public URLs. It stops
// at the first failure; already uploaded objects are not rolled back.
func (u *Uploader) UploadAll(ctx context.Context, paths []string) ([]string, error) {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		url, err := u.UploadFile(ctx, p)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// objectKey builds a collision-resistant storage key: an upload timestamp
// joined with the sanitized original file name, under the configured prefix.
func (u *Uploader) objectKey(name string) string {
	key := fmt.Sprintf("%d-%s", timeNow().UnixMilli(), sanitizeName(name))
	if u.prefix != "" {
		return u.prefix + "/" + key
	}
	return key
}

func sanitizeName(name string) string {
	name = strings.ToLower(filepath.Base(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
