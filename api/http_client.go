// api/http_client.go
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
)

// HTTPClient downloads remote documents to local paths.
type HTTPClient struct {
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with the given
// per-request timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Download fetches url and writes the bytes to localPath, retrying
// transient failures. A non-2xx status is an error and no partial file is
// left behind: the write goes through a temp file renamed on success.
func (c *HTTPClient) Download(ctx context.Context, url, localPath string) error {
	return retry.Do(
		func() error {
			return c.download(ctx, url, localPath)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(2*time.Second),
		retry.LastErrorOnly(true),
	)
}

func (c *HTTPClient) download(ctx context.Context, url, localPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code downloading %s: %s", url, res.Status)
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}

	tmpPath := localPath + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, res.Body); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, localPath)
}
