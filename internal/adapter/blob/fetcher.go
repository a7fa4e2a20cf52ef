// Package blob downloads document page files from external storage.
package blob

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/config"
	"mangopay-sync/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

const defaultMaxPageBytes = 10 << 20

// Fetcher implements ports.PageFetcher over plain HTTP(S) GETs.
type Fetcher struct {
	http     *resty.Client
	maxBytes int64
}

// NewFetcher creates a page fetcher. Files larger than MaxPageBytes are
// rejected.
func NewFetcher(cfg config.BlobConfig) *Fetcher {
	http := resty.New()
	if cfg.FetchTimeout > 0 {
		http.SetTimeout(cfg.FetchTimeout)
	}
	maxBytes := cfg.MaxPageBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxPageBytes
	}
	// The limit applies while reading, so an oversized file is never
	// buffered in full.
	http.SetResponseBodyLimit(int(maxBytes))
	return &Fetcher{http: http, maxBytes: maxBytes}
}

var _ ports.PageFetcher = (*Fetcher)(nil)

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.http.R().
		SetContext(ctx).
		Get(url)
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return nil, fmt.Errorf("fetch page %s: file exceeds limit of %d bytes: %w", url, f.maxBytes, err)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch page %s: status %d", url, resp.StatusCode())
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("fetch page %s: empty file", url)
	}
	return body, nil
}
