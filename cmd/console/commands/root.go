// Package commands wires the console's command tree. Each data command maps
// to one view of the original console; the session controller resolves the
// view before the command runs, so a command whose requirements are unmet is
// refused instead of reaching the backend.
package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/myurl/console/internal/api"
	"github.com/myurl/console/internal/config"
	"github.com/myurl/console/internal/core/domain"
	"github.com/myurl/console/internal/core/ports"
	"github.com/myurl/console/internal/core/service"
	"github.com/myurl/console/internal/infrastructure/store"
	"github.com/myurl/console/pkg/logger"
)

// app bundles the wired client core shared by every command.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *store.FileStore
	client ports.Backend
	ctrl   *service.SessionController
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	st, err := store.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    log,
		store:  st,
		client: api.New(cfg.APIBaseURL, cfg.RequestTimeout, st, log),
		ctrl:   service.NewSessionController(st, log),
	}, nil
}

// requireView navigates to the command's view and refuses the command when
// the controller resolves it away (fail closed, always to sign-in).
func (a *app) requireView(v domain.View) error {
	if a.ctrl.Navigate(v) == v {
		return nil
	}
	if a.ctrl.Authenticated() {
		return fmt.Errorf("the %s view requires the %s role", v, v.Spec().RequiredRole)
	}
	return fmt.Errorf("sign in first: console login --email you@example.com")
}

// header prints the view's topbar metadata, as the original console does.
func (a *app) header(v domain.View) {
	spec := v.Spec()
	fmt.Printf("%s — %s\n\n", spec.Title, spec.Subtitle)
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "console",
		Short:         "myURL Shortener Console",
		Long:          "Client console for the myURL URL-shortening platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRegisterCommand(),
		newLoginCommand(),
		newLogoutCommand(),
		newShortenCommand(),
		newLinksCommand(),
		newDashboardCommand(),
		newAccountCommand(),
		newAdminCommand(),
		newNavCommand(),
		newThemeCommand(),
		newMockAPICommand(),
	)

	return rootCmd
}
