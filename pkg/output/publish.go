package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/disintegration/imaging"
)

// UploadTimeout bounds how long a single S3 upload may take
const UploadTimeout = 10 * time.Second

// PublishConfig holds S3 upload settings, typically loaded from the
// environment. Publishing is enabled only when a bucket is configured.
type PublishConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	KeyPrefix string
}

// LoadPublishConfigFromEnv reads the publish configuration from S3_*
// environment variables
func LoadPublishConfigFromEnv() PublishConfig {
	return PublishConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
		KeyPrefix: os.Getenv("S3_KEY_PREFIX"),
	}
}

// Enabled reports whether publishing is configured
func (c PublishConfig) Enabled() bool {
	return c.Bucket != ""
}

// Publish encodes the render as PNG and uploads it to the configured
// bucket under key
func Publish(ctx context.Context, cfg PublishConfig, img image.Image, key string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("encoding render for upload: %w", err)
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("creating s3 session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	data := buf.Bytes()
	_, err = s3.New(sess).PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(cfg.Bucket),
		Key:           aws.String(cfg.KeyPrefix + key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("uploading render to s3: %w", err)
	}

	return nil
}
