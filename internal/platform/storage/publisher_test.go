package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryWriter struct {
	buf      bytes.Buffer
	closed   bool
	closeErr error
}

func (w *memoryWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memoryWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestPublisherPublish(t *testing.T) {
	t.Parallel()

	writer := &memoryWriter{}
	var gotBucket, gotName string
	var gotObj Object
	p, err := newPublisher(" timber-public ", func(_ context.Context, bucket, name string, obj Object) io.WriteCloser {
		gotBucket, gotName, gotObj = bucket, name, obj
		return writer
	})
	require.NoError(t, err)

	url, err := p.Publish(context.Background(), "/sitemap.xml", Object{
		ContentType:  "application/xml",
		CacheControl: "public, max-age=3600",
		Data:         []byte("<urlset/>"),
	})

	require.NoError(t, err)
	require.Equal(t, "https://storage.googleapis.com/timber-public/sitemap.xml", url)
	require.Equal(t, "timber-public", gotBucket)
	require.Equal(t, "sitemap.xml", gotName)
	require.Equal(t, "application/xml", gotObj.ContentType)
	require.Equal(t, "<urlset/>", writer.buf.String())
	require.True(t, writer.closed)
}

func TestPublisherCommitFailure(t *testing.T) {
	t.Parallel()

	writer := &memoryWriter{closeErr: errors.New("quota exceeded")}
	p, err := newPublisher("bucket", func(context.Context, string, string, Object) io.WriteCloser { return writer })
	require.NoError(t, err)

	_, err = p.Publish(context.Background(), "sitemap.xml", Object{Data: []byte("x")})
	require.ErrorContains(t, err, "quota exceeded")
}

func TestNewPublisherValidation(t *testing.T) {
	t.Parallel()

	_, err := NewPublisher(nil, "bucket")
	require.Error(t, err)

	_, err = newPublisher("  ", nil)
	require.Error(t, err)
}
