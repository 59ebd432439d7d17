package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
)

// Run maps handlers, serves HTTP and blocks until SIGINT or SIGTERM. On
// shutdown it stops accepting requests, lets in-flight ones finish and then
// drains pending audit writes.
func (srv *HTTPServer) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.Run.mapHandlers: %v", err)
		return err
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	var serveErr error
	select {
	case <-ctx.Done():
		srv.l.Info(context.Background(), "Shutting down gracefully...")
	case serveErr = <-errCh:
		srv.l.Errorf(context.Background(), "internal.httpserver.Run.ListenAndServe: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(shutdownCtx, "internal.httpserver.Run.Shutdown: %v", err)
	}
	if srv.audit != nil {
		if err := srv.audit.Close(shutdownCtx); err != nil {
			srv.l.Errorf(shutdownCtx, "internal.httpserver.Run.audit.Close: %v", err)
		}
	}

	srv.l.Info(shutdownCtx, "Cleanup completed")
	return serveErr
}
