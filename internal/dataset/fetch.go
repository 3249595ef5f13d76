// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	"github.com/tomtom215/territorio/internal/config"
	"github.com/tomtom215/territorio/internal/logging"
	"github.com/tomtom215/territorio/internal/metrics"
)

// ErrNotConfigured is returned by Fetch when no S3 bucket is configured.
var ErrNotConfigured = errors.New("dataset source not configured")

// ObjectGetter is the subset of *s3.Client used to download the dataset.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Result describes what Fetch did.
type Result struct {
	Path       string
	Bytes      int64
	Downloaded bool
}

// NewClient builds an S3 client for the configured region and, for
// S3-compatible services such as MinIO, a custom endpoint.
// Credentials come from the default AWS chain.
func NewClient(ctx context.Context, cfg config.DatasetConfig) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	}), nil
}

// Fetch downloads the dataset object to dest unless dest already exists and
// cfg.Overwrite is false. The object is streamed into a temporary file in the
// destination directory and renamed into place, so a failed download never
// leaves a truncated dataset behind.
func Fetch(ctx context.Context, client ObjectGetter, cfg config.DatasetConfig, dest string) (Result, error) {
	if !cfg.Enabled() {
		return Result{Path: dest}, ErrNotConfigured
	}

	if !cfg.Overwrite {
		if info, err := os.Stat(dest); err == nil {
			logging.Debug().Str("path", dest).Msg("Dataset already present, skipping download")
			return Result{Path: dest, Bytes: info.Size()}, nil
		}
	}

	start := time.Now()
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(cfg.S3Bucket),
		Key:    aws.String(cfg.S3Key),
	})
	if err != nil {
		return Result{Path: dest}, fmt.Errorf("failed to get s3://%s/%s: %w", cfg.S3Bucket, cfg.S3Key, err)
	}
	defer closeBody(out.Body)

	n, err := writeAtomically(dest, out.Body)
	if err != nil {
		return Result{Path: dest}, err
	}

	elapsed := time.Since(start)
	metrics.RecordDatasetDownload(elapsed, n)
	logging.Info().
		Str("bucket", cfg.S3Bucket).
		Str("key", cfg.S3Key).
		Str("path", dest).
		Str("size", humanize.Bytes(uint64(n))).
		Dur("duration", elapsed).
		Msg("Dataset downloaded")

	return Result{Path: dest, Bytes: n, Downloaded: true}, nil
}

func writeAtomically(dest string, r io.Reader) (int64, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("failed to create dataset directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary dataset file: %w", err)
	}
	tmpName := tmp.Name()

	n, err := io.Copy(tmp, r)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removeTemp(tmpName)
		return 0, fmt.Errorf("failed to write dataset: %w", err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		removeTemp(tmpName)
		return 0, fmt.Errorf("failed to move dataset into place: %w", err)
	}
	return n, nil
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Str("path", name).Msg("Failed to remove partial dataset file")
	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close dataset download stream")
	}
}
