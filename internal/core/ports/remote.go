package ports

import (
	"context"
	"time"

	"mangopay-sync/internal/core/resource"
)

// RemoteClient is the payment processor API. Implementations do not retry;
// failures are returned unchanged to the caller.
type RemoteClient interface {
	// Create submits a new resource and returns the processor's view of it.
	Create(ctx context.Context, res resource.Resource) (*resource.Response, error)
	// Update re-submits a resource that already carries its remote ID.
	Update(ctx context.Context, res resource.Resource) (*resource.Response, error)
	// Fetch reads a resource by kind and remote ID.
	Fetch(ctx context.Context, kind resource.Kind, id string) (*resource.Response, error)
}

// PageFetcher retrieves the raw bytes of an externally stored page file.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// RecordLocker serializes lifecycle operations per local record.
type RecordLocker interface {
	// Lock returns ok=false when another holder owns the key.
	Lock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Unlock releases the key only if token still owns it.
	Unlock(ctx context.Context, key string, token string) error
}

// TokenCache stores the processor OAuth access token between requests.
type TokenCache interface {
	Get(ctx context.Context, key string) (string, error) // "" when missing
	Set(ctx context.Context, key string, token string, ttl time.Duration) error
}
