package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
)

const publicBaseURL = "https://storage.googleapis.com"

// Object describes a published artefact.
type Object struct {
	ContentType  string
	CacheControl string
	Data         []byte
}

type openFunc func(ctx context.Context, bucket, name string, obj Object) io.WriteCloser

// Publisher uploads generated artefacts to a Cloud Storage bucket.
type Publisher struct {
	bucket string
	open   openFunc
}

// NewPublisher constructs a Publisher writing into bucket.
func NewPublisher(client *gcs.Client, bucket string) (*Publisher, error) {
	if client == nil {
		return nil, errors.New("storage publisher: client is required")
	}
	return newPublisher(bucket, func(ctx context.Context, bucket, name string, obj Object) io.WriteCloser {
		w := client.Bucket(bucket).Object(name).NewWriter(ctx)
		w.ContentType = obj.ContentType
		w.CacheControl = obj.CacheControl
		return w
	})
}

func newPublisher(bucket string, open openFunc) (*Publisher, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("storage publisher: bucket is required")
	}
	return &Publisher{bucket: bucket, open: open}, nil
}

// Publish writes obj under name and returns its public URL.
func (p *Publisher) Publish(ctx context.Context, name string, obj Object) (string, error) {
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	if name == "" {
		return "", errors.New("storage publisher: object name is required")
	}

	w := p.open(ctx, p.bucket, name, obj)
	if _, err := w.Write(obj.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage publisher: write %s: %w", name, err)
	}
	// Cloud Storage commits the object on Close; its error is the upload result.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage publisher: commit %s: %w", name, err)
	}
	return publicURL(p.bucket, name), nil
}

func publicURL(bucket, name string) string {
	return publicBaseURL + "/" + url.PathEscape(bucket) + "/" + (&url.URL{Path: name}).EscapedPath()
}
