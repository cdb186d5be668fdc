// Package minio stores uploads through the MinIO client, which speaks to any
// S3-compatible provider.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"cidgate/internal/config"
	"cidgate/internal/port"
)

// Storage implements port.ObjectStorage with minio-go.
type Storage struct {
	client *minio.Client
	bucket string
	cidKey string
}

// NewStorage creates a MinIO client for cfg. The endpoint may carry a scheme,
// which then overrides UseSSL.
func NewStorage(cfg *config.StorageConfig) (*Storage, error) {
	host, secure, err := splitEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Storage{
		client: client,
		bucket: cfg.Bucket,
		cidKey: cfg.CIDMetadataKey,
	}, nil
}

func splitEndpoint(endpoint string, useSSL bool) (string, bool, error) {
	if !strings.Contains(endpoint, "://") {
		return endpoint, useSSL, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("parse storage endpoint %q: %w", endpoint, err)
	}
	return u.Host, u.Scheme == "https", nil
}

func (s *Storage) Put(ctx context.Context, input port.PutInput) (*port.PutOutput, error) {
	info, err := s.client.PutObject(ctx, s.bucket, input.Name,
		bytes.NewReader(input.Body), int64(len(input.Body)),
		minio.PutObjectOptions{ContentType: input.ContentType})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", input.Name, err)
	}

	stat, err := s.client.StatObject(ctx, s.bucket, input.Name, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("stat object %q: %w", input.Name, err)
	}

	cid := ""
	for k, v := range stat.UserMetadata {
		if strings.EqualFold(k, s.cidKey) {
			cid = v
			break
		}
	}
	if cid == "" {
		cid = stat.Metadata.Get("X-Amz-Meta-" + s.cidKey)
	}

	return &port.PutOutput{CID: cid, ETag: info.ETag}, nil
}

// Compile-time check.
var _ port.ObjectStorage = (*Storage)(nil)
