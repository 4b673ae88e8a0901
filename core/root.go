package core

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// RootCommand is the parent of every benchmark command. It owns the log
// and metrics flags shared by the subcommands.
func RootCommand() *cobra.Command {
	var (
		logLevel    string
		logFormat   string
		metricsAddr string
		server      *http.Server
	)
	cmd := &cobra.Command{
		Use:           "avl-bench",
		Short:         "benchmark and inspect AVL ordered maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ConfigureLogger(cmd.ErrOrStderr(), logFormat, logLevel); err != nil {
				return err
			}
			if metricsAddr != "" {
				server = serveMetrics(metricsAddr)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if server == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log output format (console|json)")
	cmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :2112")

	return cmd
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log := Logger.With().Str("module", "metrics").Logger()
	go func() {
		log.Info().Str("addr", addr).Msg("serving prometheus metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return server
}
