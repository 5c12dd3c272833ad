// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/config-hub/internal/config"
	"github.com/MKhiriev/config-hub/internal/handler"
	"github.com/MKhiriev/config-hub/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string

	// closers are released after the transport has stopped.
	closers []io.Closer

	logger *logger.Logger
}

// NewServer builds the HTTP server. closers (typically the storage) are
// closed once the server has shut down.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		address:    cfg.HTTPAddress,
		closers:    closers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Err(err).Msg("error releasing resources")
		}
	}
}

// run listens on the configured address and serves until ctx is cancelled.
func (s *server) run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	return s.serve(ctx, listener)
}

// serve runs the HTTP server on listener. Cancelling ctx shuts it down
// gracefully; a serve failure stops it early and is returned. Closers are
// released in both cases.
func (s *server) serve(ctx context.Context, listener net.Listener) error {
	served := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-served:
		s.Shutdown()
		return fmt.Errorf("http server stopped: %w", err)
	}
}
