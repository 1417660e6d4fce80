package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/careslot/clinic-scheduler/internal/config"
)

const presignTTL = 15 * time.Minute

// Presigner hands out short-lived PUT URLs so profile photos go straight
// from the browser to the bucket; image bytes never transit this server.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
	region  string
}

func NewPresigner(cfg *config.Config) *Presigner {
	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKey,
				cfg.AWSSecretKey,
				"",
			),
		),
	})

	return &Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		region:  cfg.AWSRegion,
	}
}

type UploadTarget struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

func (p *Presigner) PresignUpload(
	ctx context.Context,
	folder string,
	contentType string,
) (UploadTarget, error) {

	key := fmt.Sprintf("%s/%s", folder, uuid.NewString())

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return UploadTarget{}, err
	}

	return UploadTarget{
		URL: req.URL,
		Key: key,
		PublicURL: fmt.Sprintf(
			"https://%s.s3.%s.amazonaws.com/%s",
			p.bucket, p.region, key,
		),
	}, nil
}
