package oss

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"VidTube.com/config"
	"VidTube.com/pkg/utils"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const (
	videoBucket = "videos"
	imageBucket = "images"
	region      = "us-east-1"
)

// MediaRef is what the store keeps about an uploaded asset: the public
// reference plus the probed duration for videos.
type MediaRef struct {
	Url      string
	Duration int64
}

// Client is the media collaborator. The engine stores only the returned
// reference strings; bytes never touch the database.
type Client struct{}

func NewClient() *Client { return &Client{} }

func ensureBucket(ctx context.Context, bucket string) error {
	exists, err := minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return errors.WithMessage(err, "check bucket error")
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return errors.WithMessage(err, "create bucket error")
		}
	}
	return nil
}

func publicUrl(bucket, object string) string {
	return fmt.Sprintf("http://%s/%s/%s", config.ConfigInfo.Minio.Endpoint, bucket, object)
}

// UploadVideo stores a local media file and probes its duration.
func (c *Client) UploadVideo(ctx context.Context, localPath string, objectName string) (*MediaRef, error) {
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return nil, err
	}
	duration, err := utils.ProbeDuration(localPath)
	if err != nil {
		return nil, err
	}
	if _, err := minioClient.FPutObject(ctx, videoBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "video/mp4"}); err != nil {
		return nil, errors.WithMessage(err, "failed to upload video")
	}
	return &MediaRef{Url: publicUrl(videoBucket, objectName), Duration: duration}, nil
}

// UploadImage stores a thumbnail, avatar or cover image.
func (c *Client) UploadImage(ctx context.Context, localPath string, objectName string) (string, error) {
	if err := ensureBucket(ctx, imageBucket); err != nil {
		return "", err
	}
	contentType := "image/jpeg"
	if strings.EqualFold(filepath.Ext(localPath), ".png") {
		contentType = "image/png"
	}
	if _, err := minioClient.FPutObject(ctx, imageBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", errors.WithMessage(err, "failed to upload image")
	}
	return publicUrl(imageBucket, objectName), nil
}

// Delete removes a previously issued reference. Unparseable refs are ignored
// so that records pointing at already-gone assets can still be deleted.
func (c *Client) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 {
		return nil
	}
	bucket, object := parts[0], parts[1]
	if err := minioClient.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return errors.WithMessage(err, "failed to remove object")
	}
	return nil
}
