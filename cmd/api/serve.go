package main

import (
	"context"
	"errors"
	"net/http"

	"animals-safety/internal/adapters/notify"
	"animals-safety/internal/adapters/storage"
	"animals-safety/internal/platform/httpclient"
	"animals-safety/internal/router"

	"github.com/spf13/cobra"
)

func newServeCmd(load loadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load(cmd)
			if err != nil {
				return err
			}

			st, err := storage.Open(cmd.Context(), cfg.Storage, log)
			if err != nil {
				return err
			}
			defer st.Close()

			rec := notify.NewRecorder(cfg.Notify.History)
			sinks := []notify.Sink{notify.LogSink(log), rec}
			if cfg.Notify.WebhookURL != "" {
				client := httpclient.New(cfg.Notify.WebhookTimeout)
				sinks = append(sinks, notify.WebhookSink(client, cfg.Notify.WebhookURL, log))
			}
			queue := notify.NewQueue(cfg.Notify.Buffer, log, sinks...)

			srv := &http.Server{
				Addr: cfg.HTTP.Addr,
				Handler: router.NewRouter(router.Options{
					Logger:   log,
					Animals:  st.Animals,
					Notifier: queue,
					Recorder: rec,
				}),
				ReadTimeout:  cfg.HTTP.ReadTimeout,
				WriteTimeout: cfg.HTTP.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "storage": cfg.Storage.Driver})
				errCh <- srv.ListenAndServe()
			}()

			var serveErr error
			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr = err
				}
			case <-cmd.Context().Done():
				log.Info("shutting down", nil)
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("server shutdown", map[string]any{"error": err.Error()})
			}
			if err := queue.Close(ctx); err != nil {
				log.Warn("notification queue not drained", map[string]any{"error": err.Error()})
			}
			return serveErr
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().Bool("migrate", true, "apply SQL migrations on startup")
	return cmd
}
