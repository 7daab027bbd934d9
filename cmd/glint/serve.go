package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/glint-dev/glint/internal/demo"
	"github.com/glint-dev/glint/pkg/metrics"
	"github.com/glint-dev/glint/pkg/server"
	"github.com/glint-dev/glint/pkg/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		Long: `Compile the demo router definition and serve it: pages over HTTP,
live views over the websocket endpoint, Prometheus metrics on a separate
listener.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := demo.BuildTable()
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			recorder := metrics.New()

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				go func() {
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						logger.Error("metrics listener failed", "error", err)
					}
				}()
			}

			srv := server.New(table,
				server.WithAddr(addr),
				server.WithLogger(logger),
				server.WithMetrics(recorder),
				server.WithTracing(tracing.NewDispatcher()),
			)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9091", "Prometheus listen address (empty to disable)")

	return cmd
}
