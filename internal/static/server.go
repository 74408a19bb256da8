// Package static implements the child-side static file server spawned by
// the lifecycle manager via `servr serve`.
package static

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Server serves a single directory over HTTP on localhost.
type Server struct {
	dir    string
	port   int
	logger *logrus.Entry

	httpServer *http.Server
}

// New creates a Server for the given directory and port.
func New(dir string, port int, logger *logrus.Entry) *Server {
	return &Server{
		dir:    dir,
		port:   port,
		logger: logger,
	}
}

// Run binds localhost:<port> and serves until the context is canceled, then
// shuts down gracefully so in-flight responses finish.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/", s.logRequests(http.FileServer(http.Dir(s.dir))))

	s.httpServer = &http.Server{
		Addr:    net.JoinHostPort("localhost", strconv.Itoa(s.port)),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithFields(logrus.Fields{
			"dir":  s.dir,
			"port": s.port,
		}).Info("Serving directory")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info("Server stopped")
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests wraps a handler with per-request structured logging.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).Round(time.Microsecond).String(),
		}).Debug("Request served")
	})
}
