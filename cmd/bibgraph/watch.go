package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/bibgraph/config"
	"github.com/c360studio/bibgraph/metric"
	"github.com/c360studio/bibgraph/source"
	"github.com/c360studio/bibgraph/watch"
)

func watchCmd(configPath *string) *cobra.Command {
	var (
		output     string
		formatName string
		debounce   time.Duration
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch <input.csv> [input2.csv ...]",
		Short: "Convert continuously whenever inputs or config change",
		Long: `Watch runs an initial conversion, then re-runs it whenever an input
CSV or the configuration file changes on disk. Prometheus metrics for the
conversion runs are served on the listen address.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(*configPath, args, output, formatName, debounce, listenAddr)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default derived from format)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: ttl, xml, n3, nt (default from config)")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Delay before reacting to a burst of file changes")
	cmd.Flags().StringVar(&listenAddr, "listen", ":9090", "Address for the /metrics endpoint")

	return cmd
}

func runWatch(configPath string, patterns []string, output, formatName string, debounce time.Duration, listenAddr string) error {
	metrics := metric.New()

	// Initial conversion; config errors are fatal, everything else retries
	// on the next change.
	model, err := loadModel(configPath)
	if err != nil {
		return err
	}
	if err := runConvert(model, patterns, output, formatName, false, metrics); err != nil {
		slog.Error("Initial conversion failed", "error", err)
	}

	paths, err := source.ExpandPatterns(patterns)
	if err != nil {
		return err
	}
	// Watch the config that conversions actually read, including a
	// discovered project file when --config is omitted.
	watchPaths := paths
	if resolved := config.NewLoader(slog.Default()).ConfigPath(configPath); resolved != "" {
		watchPaths = append(watchPaths, resolved)
	}

	watcher, err := watch.New(watchPaths, debounce, slog.Default())
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	watcher.Start(ctx)

	server := startMetricsServer(listenAddr, metrics)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("Watching for changes", "files", len(watchPaths), "metrics", listenAddr)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Received shutdown signal")
			return nil

		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if event.Operation == watch.OpDelete {
				slog.Warn("Watched file removed, waiting for it to return", "path", event.Path)
				continue
			}
			slog.Info("Change detected, reconverting", "path", event.Path)

			// Reload config so mapping edits take effect on the next run.
			model, err := loadModel(configPath)
			if err != nil {
				slog.Error("Config reload failed, keeping previous output", "error", err)
				continue
			}
			if err := runConvert(model, patterns, output, formatName, false, metrics); err != nil {
				slog.Error("Conversion failed", "error", err)
			}
		}
	}
}

func startMetricsServer(addr string, metrics *metric.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
	return server
}
