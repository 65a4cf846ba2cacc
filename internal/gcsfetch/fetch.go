// Package gcsfetch retrieves SMS backup dumps stored in Google Cloud
// Storage, addressed as gs://bucket/object.
package gcsfetch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// IsURI reports whether source names a GCS object rather than a local
// file.
func IsURI(source string) bool {
	return strings.HasPrefix(source, "gs://")
}

// ParseURI splits gs://bucket/object into its parts.
func ParseURI(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("ParseURI: %q is not a gs:// URI", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("ParseURI: %q has no bucket/object split", uri)
	}
	return bucket, object, nil
}

// Open returns a reader over the dump at the given gs:// URI. The
// caller must close it; closing also releases the storage client.
func Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	bucket, object, err := ParseURI(uri)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Open: create storage client: %w", err)
	}

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("Open: open object reader: %w", err)
	}

	return &clientReader{ReadCloser: r, client: client}, nil
}

type clientReader struct {
	io.ReadCloser
	client *storage.Client
}

func (c *clientReader) Close() error {
	err := c.ReadCloser.Close()
	if cerr := c.client.Close(); err == nil {
		err = cerr
	}
	return err
}
