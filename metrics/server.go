package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Server exposes a collector on /metrics.
type Server struct {
	// Addr is the address actually bound, useful with ":0".
	Addr   string
	server *http.Server
	done   chan error
}

// Serve starts serving the collector on addr in the background.
func (c *Collector) Serve(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	ret := &Server{
		Addr:   listener.Addr().String(),
		server: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		done:   make(chan error, 1),
	}
	go func() {
		err := ret.server.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		ret.done <- err
	}()
	return ret, nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	return <-s.done
}
