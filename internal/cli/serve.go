package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/schnapsen-go/internal/api"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the arena HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			app, err := newApp(logger)
			if err != nil {
				return err
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:       logger,
				ArenaService: app.ArenaService,
				Storage:      app.Storage,
			})

			serverCfg := api.DefaultServerConfig()
			serverCfg.Host = host
			serverCfg.Port = port
			server := api.NewServer(router, serverCfg, logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return server.Shutdown(context.Background())
			}
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host")
	cmd.Flags().IntVar(&port, "port", 8080, "Listen port")

	return cmd
}
