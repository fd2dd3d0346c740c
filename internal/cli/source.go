package cli

import (
	"context"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/maskscore"
	miniostore "github.com/hupe1980/maskscore/blobstore/minio"
	s3store "github.com/hupe1980/maskscore/blobstore/s3"
	"github.com/hupe1980/maskscore/internal/config"
)

var errNoObjectName = errors.New("an object name (--source) is required for remote stores")

// resolveSource maps the configuration to a centroid source. Precedence:
// MinIO, S3, local path, bundled table.
func resolveSource(ctx context.Context, cfg *config.Config, logger *maskscore.Logger) (maskscore.Source, error) {
	switch {
	case cfg.MinIO.Endpoint != "":
		if cfg.Source == "" {
			return maskscore.Source{}, errNoObjectName
		}
		client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.Secure,
		})
		if err != nil {
			return maskscore.Source{}, fmt.Errorf("creating minio client: %w", err)
		}
		store := miniostore.NewStore(client, cfg.MinIO.Bucket, cfg.MinIO.Prefix)
		return maskscore.StoreSource(store, cfg.Source), nil

	case cfg.S3.Bucket != "":
		var optFns []func(*awsconfig.LoadOptions) error
		if cfg.S3.Region != "" {
			optFns = append(optFns, awsconfig.WithRegion(cfg.S3.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return maskscore.Source{}, fmt.Errorf("loading aws config: %w", err)
		}
		store := s3store.NewStore(s3.NewFromConfig(awsCfg), cfg.S3.Bucket, cfg.S3.Prefix)

		name := cfg.Source
		if cfg.S3.Table != "" {
			resolver := s3store.NewDDBResolver(dynamodb.NewFromConfig(awsCfg), cfg.S3.Table)
			key, version, err := resolver.Resolve(ctx, cfg.S3.Dataset)
			if err != nil {
				return maskscore.Source{}, fmt.Errorf("%w: %w", maskscore.ErrSourceUnavailable, err)
			}
			logger.InfoContext(ctx, "resolved centroid table",
				"dataset", cfg.S3.Dataset,
				"key", key,
				"version", version,
			)
			name = key
		}
		if name == "" {
			return maskscore.Source{}, errNoObjectName
		}
		return maskscore.StoreSource(store, name), nil

	case cfg.Source != "":
		return maskscore.FileSource(cfg.Source), nil

	default:
		return maskscore.BundledSource(), nil
	}
}
