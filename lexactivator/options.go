package lexactivator

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/abi"
)

// Option configures a Client.
type Option func(*Client)

// WithLibrary binds the Client to an already loaded library instead of
// loading one. Tests pass the fake from lexactivatortest here.
func WithLibrary(lib *abi.Library) Option {
	return func(c *Client) {
		c.lib = lib
	}
}

// WithLibraryPath sets the file the engine library is loaded from.
func WithLibraryPath(path string) Option {
	return func(c *Client) {
		c.libraryPath = path
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegisterer registers the Client's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}

// WithMinBufferCapacity raises the capacity of every output buffer to at
// least n code units. Use it to retry a call that failed with ErrBufferSize.
func WithMinBufferCapacity(n uint32) Option {
	return func(c *Client) {
		c.minCapacity = n
	}
}
