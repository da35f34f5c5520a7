package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Option configures a Server.
type Option func(*config)

// WithAddr sets the listen address. Empty values are ignored.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithListener serves on an already bound listener instead of Addr.
func WithListener(l net.Listener) Option {
	return func(c *config) { c.listener = l }
}

// WithTimeouts sets read, read-header, write and idle timeouts.
// Non-positive values leave the corresponding default.
func WithTimeouts(read, readHeader, write, idle time.Duration) Option {
	return func(c *config) {
		if read > 0 {
			c.readTimeout = read
		}
		if readHeader > 0 {
			c.readHeaderTimeout = readHeader
		}
		if write > 0 {
			c.writeTimeout = write
		}
		if idle > 0 {
			c.idleTimeout = idle
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
