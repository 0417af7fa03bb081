// Package web hosts the browser-facing marketing site service.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/prestonhollow/detailing/internal/platform/timeouts"
	webapp "github.com/prestonhollow/detailing/internal/services/web/app"
	"github.com/prestonhollow/detailing/internal/services/web/content"
	"github.com/prestonhollow/detailing/internal/services/web/modules"
	"github.com/prestonhollow/detailing/internal/services/web/platform/httpx"
	"github.com/prestonhollow/detailing/internal/services/web/platform/observability"
	"github.com/prestonhollow/detailing/internal/services/web/routepath"
	webstatic "github.com/prestonhollow/detailing/internal/services/web/static"
	"github.com/prestonhollow/detailing/internal/services/web/storage"
	"github.com/prestonhollow/detailing/internal/services/web/storage/sqlite"
	"github.com/prestonhollow/detailing/internal/services/web/widget"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// ContentPath is a YAML, TOML, or JSON content file. Empty serves the
	// built-in catalog.
	ContentPath string
	// WatchContent reloads ContentPath when it changes.
	WatchContent bool
	// ReportDBPath persists widget failure reports. Empty keeps them in logs
	// and traces only.
	ReportDBPath string
	ReportRate   float64
	ReportBurst  int
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	source     *content.Source
	watch      bool
	closers    []io.Closer
	closeOnce  sync.Once
}

// NewHandler builds the root handler for deps.
func NewHandler(deps modules.Dependencies) (http.Handler, error) {
	h, err := webapp.Compose(webapp.ComposeInput{Modules: modules.Default(deps)})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.TraceRequests(nil),
		observability.RequestLogger(log.Default()),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// NewServer validates config, loads content, opens report storage, and
// constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.WatchContent && strings.TrimSpace(cfg.ContentPath) == "" {
		return nil, errors.New("content watching requires a content path")
	}
	source, err := content.Open(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	var (
		store   storage.WidgetFailureStore
		closers []io.Closer
	)
	if path := strings.TrimSpace(cfg.ReportDBPath); path != "" {
		sqliteStore, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open report store: %w", err)
		}
		store = sqliteStore
		closers = append(closers, sqliteStore)
	}

	handler, err := NewHandler(modules.Dependencies{
		Source:      source,
		Reporter:    widget.NewReporter(store),
		ReportRate:  cfg.ReportRate,
		ReportBurst: cfg.ReportBurst,
	})
	if err != nil {
		closeAll(closers)
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		source:  source,
		watch:   cfg.WatchContent,
		closers: closers,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	if s.watch {
		watcher, err := content.NewWatcher(s.source, timeouts.ContentReloadDebounce)
		if err != nil {
			return fmt.Errorf("watch content: %w", err)
		}
		watchCtx, stopWatch := context.WithCancel(ctx)
		defer stopWatch()
		go func() {
			if err := watcher.Run(watchCtx); err != nil {
				log.Printf("content watcher stopped err=%v", err)
			}
		}()
	}

	log.Printf("web listening addr=%s", s.httpAddr)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		if s.httpServer != nil {
			_ = s.httpServer.Close()
		}
		closeAll(s.closers)
	})
}

func closeAll(closers []io.Closer) {
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			log.Printf("close web resource err=%v", err)
		}
	}
}
