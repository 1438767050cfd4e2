package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/study-planner/internal/api"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, "")
			if err != nil {
				return err
			}
			defer a.Close()

			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}

			srv := api.NewServer(a.orch, a.log, api.Options{
				AllowOrigin:    a.cfg.CORSAllowOrigin,
				RateLimitRPS:   a.cfg.RateLimitRPS,
				RateLimitBurst: a.cfg.RateLimitBurst,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("starting server", "provider", a.cfg.Provider, "port", a.cfg.Port)
			if err := api.ListenAndServe(ctx, fmt.Sprintf(":%d", a.cfg.Port), srv.Handler(), a.log, shutdownTimeout); err != nil {
				a.log.Error("server stopped", "error", err.Error())
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	return cmd
}
