package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/user/thumbforge/pkg/ports"
)

// Fetcher is a mock implementation of ports.Fetcher backed by a URL map.
type Fetcher struct {
	mu        sync.Mutex
	responses map[string][]byte

	// Requested records every fetched URL in call order.
	Requested []string

	FetchFunc func(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

// NewFetcher creates a mock Fetcher that serves the given URL map.
// URLs absent from the map return an error, like a 404 would.
func NewFetcher(responses map[string][]byte) *Fetcher {
	if responses == nil {
		responses = make(map[string][]byte)
	}
	return &Fetcher{responses: responses}
}

func (m *Fetcher) Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	m.mu.Lock()
	m.Requested = append(m.Requested, url)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url, timeout)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data, ok := m.responses[url]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("fetch %s: status 404", url)
}

var _ ports.Fetcher = (*Fetcher)(nil)
