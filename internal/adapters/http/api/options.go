package api

import (
	"github.com/okian/matchtag/pkg/logger"
)

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithDefaultSession sets the session used when X-Session-ID is absent.
func WithDefaultSession(id string) Option {
	return func(s *Server) {
		if id != "" {
			s.defaultSession = id
		}
	}
}

// WithMaxBodyBytes caps request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithCORSOrigins sets the allowed origins. "*" allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = append([]string(nil), origins...)
		}
	}
}

// WithExportFileName sets the ZIP base name used without a filename query.
func WithExportFileName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.exportFileName = name
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}
