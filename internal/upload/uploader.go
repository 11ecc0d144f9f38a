// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package upload is the boundary for media uploads: validation happens
// here, before any bytes leave the process, then the object is stored in
// S3-compatible storage and only its public URL flows back into content.
package upload

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/config"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/util"
)

// S3API is the subset of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader validates and stores uploaded files.
type Uploader struct {
	Client        S3API
	Bucket        string
	Accept        []string // allowed MIME types; empty accepts nothing
	MaxSize       int64    // bytes
	PublicBaseURL string
}

// Input describes one upload.
type Input struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// NewS3Client builds an S3 client from app config. A custom endpoint
// switches to path-style addressing for MinIO-compatible stores.
func NewS3Client(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.S3AccessKey,
				SecretAccessKey: cfg.S3SecretKey,
			}, nil
		}),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

// New creates an uploader from app config and an S3 client.
func New(cfg *config.Config, client S3API) *Uploader {
	return &Uploader{
		Client:        client,
		Bucket:        cfg.S3Bucket,
		Accept:        []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/svg+xml"},
		MaxSize:       int64(cfg.MaxUploadMB) * 1024 * 1024,
		PublicBaseURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
	}
}

// Validate checks size and MIME type. It must run before any network I/O;
// Upload calls it first and callers may also call it from form handlers to
// fail fast.
func (u *Uploader) Validate(in Input) error {
	if in.Size > u.MaxSize {
		return fmt.Errorf("file is too large: the upload limit is %d MB", u.MaxSize/(1024*1024))
	}
	for _, mt := range u.Accept {
		if in.ContentType == mt {
			return nil
		}
	}
	return fmt.Errorf("file type %q is not allowed", in.ContentType)
}

// Upload validates the file and stores it under a unique key. It returns
// the public URL of the stored object.
func (u *Uploader) Upload(ctx context.Context, in Input) (string, error) {
	if err := u.Validate(in); err != nil {
		return "", err
	}

	key := objectKey(in.Filename)
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.Bucket),
		Key:           aws.String(key),
		Body:          in.Body,
		ContentType:   aws.String(in.ContentType),
		ContentLength: aws.Int64(in.Size),
	})
	if err != nil {
		return "", fmt.Errorf("storing %q: %w", in.Filename, err)
	}

	return u.PublicBaseURL + "/" + key, nil
}

// objectKey builds a collision-free key preserving a readable slug of the
// original name and its extension.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := util.Slugify(strings.TrimSuffix(path.Base(filename), ext))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("uploads/%s-%s%s", base, uuid.NewString(), ext)
}
