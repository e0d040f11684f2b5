package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Host stores video bytes in an S3-compatible bucket fronted by a public
// delivery URL. publicURL is a fmt pattern with a single %s for the key.
type S3Host struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Host(client *s3.Client, bucket, publicURL string) *S3Host {
	return &S3Host{client: client, bucket: bucket, publicURL: publicURL}
}

func (h *S3Host) Store(ctx context.Context, body io.Reader, filename, contentType string) (*Asset, error) {
	// Key the object by a fresh UUID so two uploads of the same filename
	// never collide. The key doubles as the asset handle.
	key := fmt.Sprintf("videos/originals/%s_%s", uuid.New().String(), filename)

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, &StorageError{Op: "store", Err: err}
	}

	return &Asset{
		PublicID: key,
		URL:      CleanURL(fmt.Sprintf(h.publicURL, key)),
	}, nil
}

// ThumbnailURL builds a still-frame URL against the delivery layer, which
// renders video thumbnails on demand from the transformation parameters.
// No bytes are fetched here.
func (h *S3Host) ThumbnailURL(publicID string, offsetSeconds, width, height int, crop string) (string, error) {
	if publicID == "" {
		return "", fmt.Errorf("empty public id")
	}

	key := strings.TrimSuffix(publicID, path.Ext(publicID)) + ".jpg"
	u, err := url.Parse(CleanURL(fmt.Sprintf(h.publicURL, key)))
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("so", strconv.Itoa(offsetSeconds))
	q.Set("w", strconv.Itoa(width))
	q.Set("h", strconv.Itoa(height))
	q.Set("c", crop)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (h *S3Host) Delete(ctx context.Context, publicID string) error {
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

func CleanURL(urlStr string) string {
	urlStr = strings.ReplaceAll(urlStr, " ", "%20")
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}

	return parsedURL.String()
}
