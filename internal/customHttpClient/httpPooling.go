package customHttpClient

import (
	"net/http"
	"time"

	"github.com/akolanti/CatalystAPI/internal/config"
)

// shared transport so feed fetches and document downloads reuse connections
var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// New returns a client on the shared pooled transport with the given
// overall request timeout.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: customTransport,
		Timeout:   timeout,
	}
}
