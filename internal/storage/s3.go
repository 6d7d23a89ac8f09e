// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object store for archiving
// exported brand artifacts. It wraps the AWS SDK v2 and is configured
// for path-style access (required by CEPH/Hetzner).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/export"
)

// Archive stores exported artifacts in a single S3 bucket, keyed by
// brand ID and filename.
type Archive struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	bucket    string
	endpoint  string
	publicURL string // optional CDN/direct URL for archived files
}

// New creates an archive client with path-style addressing. Returns
// (nil, nil) if endpoint or credentials are empty, allowing the app to
// start without an archive.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Archive, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Archive{
		s3:        s3Client,
		presigner: s3.NewPresignClient(s3Client),
		bucket:    bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Put archives an exported artifact under the brand's prefix and
// returns the object key.
func (a *Archive) Put(ctx context.Context, brandID uuid.UUID, art *export.Artifact) (string, error) {
	key := fmt.Sprintf("brands/%s/exports/%s", brandID, art.Filename)
	_, err := a.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(art.Data),
		ContentLength: aws.Int64(int64(len(art.Data))),
		ContentType:   aws.String(art.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s/%s: %w", a.bucket, key, err)
	}
	return key, nil
}

// Delete removes an archived object.
func (a *Archive) Delete(ctx context.Context, key string) error {
	_, err := a.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", a.bucket, key, err)
	}
	return nil
}

// DeleteBrand removes every archived artifact for a brand. Called when
// the brand itself is deleted.
func (a *Archive) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	prefix := fmt.Sprintf("brands/%s/exports/", brandID)
	paginator := s3.NewListObjectsV2Paginator(a.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("s3 list %s/%s: %w", a.bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			if err := a.Delete(ctx, aws.ToString(obj.Key)); err != nil {
				return err
			}
		}
	}
	return nil
}

// URL returns a direct URL for an archived object. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (a *Archive) URL(key string) string {
	if a.publicURL != "" {
		return a.publicURL + "/" + key
	}
	return a.endpoint + "/" + a.bucket + "/" + key
}

// PresignedURL generates a pre-signed GET URL for an archived object.
// The URL is valid for the given duration (max 7 days per S3 spec).
func (a *Archive) PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", a.bucket, key, err)
	}
	return req.URL, nil
}
