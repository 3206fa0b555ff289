package ports

import (
	"context"
	"time"
)

// Fetcher abstracts retrieving raw bytes from a URL.
// Implementations must honor both the timeout and context cancellation.
type Fetcher interface {
	// Fetch retrieves the body at url. A non-2xx response is an error.
	Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}
