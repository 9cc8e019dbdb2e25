package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fieldserve/config"
	"fieldserve/infras/otel"
	"fieldserve/shared/constant"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

const (
	putTimeout    = 10 * time.Second
	putMaxElapsed = 30 * time.Second
	regionAuto    = "auto"
)

// Object is a single write into the configured bucket.
type Object struct {
	Key         string
	ContentType string
	Body        []byte
	Metadata    map[string]string
}

type Storage interface {
	// Put writes the object and returns its public location.
	Put(ctx context.Context, object Object) (location string, err error)
}

type storageImpl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	otel         otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Storage {
	s3Cfg := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3Cfg.AccessKeyID, s3Cfg.SecretAccessKey, constant.Empty),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = regionAuto
	})

	return &storageImpl{
		client:       client,
		bucket:       s3Cfg.BucketName,
		publicDomain: strings.TrimSuffix(s3Cfg.PublicDomain, "/"),
		otel:         otl,
	}
}

func (s *storageImpl) Put(ctx context.Context, object Object) (location string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"s3.bucket": s.bucket,
		"s3.key":    object.Key,
		"s3.size":   len(object.Body),
	})

	attempts := 0

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		attempts++

		c, cancel := context.WithTimeout(ctx, putTimeout)
		defer cancel()

		_, putErr := s.client.PutObject(c, &s3.PutObjectInput{
			Bucket:        aws.String(s.bucket),
			Key:           aws.String(object.Key),
			Body:          bytes.NewReader(object.Body),
			ContentType:   aws.String(object.ContentType),
			ContentLength: aws.Int64(int64(len(object.Body))),
			Metadata:      object.Metadata,
		})

		return struct{}{}, putErr
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(putMaxElapsed),
	)
	if err != nil {
		log.Error().Err(err).Str("key", object.Key).Int("attempts", attempts).Msg("failed to put object")

		return constant.Empty, fmt.Errorf("failed to put object %s: %w", object.Key, err)
	}

	return Location(s.publicDomain, object.Key), nil
}

// Location joins the public domain and key, or returns the bare key when no domain is set.
func Location(publicDomain, key string) string {
	if publicDomain == constant.Empty {
		return key
	}

	return publicDomain + "/" + strings.TrimPrefix(key, "/")
}
