// Package web parses web command flags and runs the site server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/prestonhollow/detailing/internal/platform/cmd"
	"github.com/prestonhollow/detailing/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string  `env:"DETAILING_WEB_HTTP_ADDR"      envDefault:"localhost:8080"`
	ContentPath  string  `env:"DETAILING_WEB_CONTENT_PATH"`
	WatchContent bool    `env:"DETAILING_WEB_WATCH_CONTENT"  envDefault:"false"`
	ReportDBPath string  `env:"DETAILING_WEB_REPORT_DB_PATH"`
	ReportRate   float64 `env:"DETAILING_WEB_REPORT_RATE"    envDefault:"1"`
	ReportBurst  int     `env:"DETAILING_WEB_REPORT_BURST"   envDefault:"10"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "content file (.yaml, .yml, .toml, .json); empty serves built-in content")
	fs.BoolVar(&cfg.WatchContent, "watch-content", cfg.WatchContent, "reload the content file when it changes")
	fs.StringVar(&cfg.ReportDBPath, "report-db", cfg.ReportDBPath, "SQLite path for widget failure reports; empty disables persistence")
	fs.Float64Var(&cfg.ReportRate, "report-rate", cfg.ReportRate, "widget failure reports accepted per second")
	fs.IntVar(&cfg.ReportBurst, "report-burst", cfg.ReportBurst, "widget failure report burst size")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			ContentPath:  cfg.ContentPath,
			WatchContent: cfg.WatchContent,
			ReportDBPath: cfg.ReportDBPath,
			ReportRate:   cfg.ReportRate,
			ReportBurst:  cfg.ReportBurst,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
