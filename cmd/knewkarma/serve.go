package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"knewkarma/internal/app"
	_ "knewkarma/docs"
)

// @title Knew Karma API
// @version 2.0
// @description Read-only Reddit data API: user activity, subreddit posts, post details and search over Reddit's public JSON endpoints.
// @BasePath /

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server exposing the fetch core as JSON endpoints:
/user, /subreddit, /post, /posts and /search. Swagger documentation is
served under /swagger/index.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.Initialize()
		if err != nil {
			return err
		}

		go func() {
			if err := application.Start(); err != nil {
				slog.Error("server error", "err", err)
			}
		}()

		slog.Info("server started", "port", application.Config.ServerPort)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := application.Echo.Shutdown(ctx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
