package site

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/vcrobe/ecomarket/console"
)

// NewHandler serves page at "/" and, when assetsDir is set, the files in
// it under "/assets/". page is shared by all requests and must not be modified.
func NewHandler(page []byte, assetsDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			console.Warn("write page:", err.Error())
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if assetsDir != "" {
		fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir)))
		r.Get("/assets/*", func(w http.ResponseWriter, r *http.Request) {
			// WebAssembly.instantiateStreaming rejects any other type.
			if strings.HasSuffix(r.URL.Path, ".wasm") {
				w.Header().Set("Content-Type", "application/wasm")
			}
			fs.ServeHTTP(w, r)
		})
	}

	return r
}

// Serve runs handler on ln until ctx is cancelled, then shuts down,
// giving outstanding requests up to shutdownTimeout to complete.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "serve")

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			console.Warn("graceful shutdown did not complete:", err.Error())
			if err := srv.Close(); err != nil {
				return errors.Wrap(err, "close server")
			}
		}
		return nil
	}
}
