package commands

import (
	"github.com/spf13/cobra"

	"github.com/myurl/console/internal/config"
	"github.com/myurl/console/internal/stubserver"
	"github.com/myurl/console/pkg/logger"
)

func newMockAPICommand() *cobra.Command {
	var addr, secret, publicBase string

	cmd := &cobra.Command{
		Use:   "mock-api",
		Short: "Run a local in-memory double of the myURL backend",
		Long: "Serves the backend REST contract from process memory, for " +
			"developing and demoing the console without the real platform. " +
			"Registering admin@example.com grants the ADMIN role.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
			return stubserver.New(secret, publicBase, log).Start(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&secret, "secret", "dev-secret", "HS256 signing secret")
	cmd.Flags().StringVar(&publicBase, "public-base", "http://localhost:8080", "origin embedded in short URLs")

	return cmd
}
