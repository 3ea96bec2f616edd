package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hairlogy/barber-booking/internal/models"
)

// Archiver stores a batch of bookings before the retention sweep deletes
// them.
type Archiver interface {
	Archive(ctx context.Context, threshold string, batch int, bookings []models.Booking) error
}

type S3Config struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archiver struct {
	client putter
	bucket string
	now    func() time.Time
}

func NewS3Archiver(cfg S3Config) *S3Archiver {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Archiver{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		now:    time.Now,
	}
}

// Key layout: bookings/<threshold>/<unix>-<batch>.json
func (a *S3Archiver) objectKey(threshold string, batch int) string {
	return fmt.Sprintf("bookings/%s/%d-%03d.json", threshold, a.now().Unix(), batch)
}

func (a *S3Archiver) Archive(ctx context.Context, threshold string, batch int, bookings []models.Booking) error {
	body, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("archive marshal: %w", err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(a.objectKey(threshold, batch)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("archive put: %w", err)
	}

	return nil
}
