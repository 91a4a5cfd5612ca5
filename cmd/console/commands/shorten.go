package commands

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/myurl/console/internal/core/domain"
)

func newShortenCommand() *cobra.Command {
	var ttl int64

	cmd := &cobra.Command{
		Use:   "shorten <url>",
		Short: "Convert a long URL into a branded redirect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireView(domain.ViewShorten); err != nil {
				return err
			}

			if err := validator.New().Var(args[0], "required,url"); err != nil {
				return fmt.Errorf("%q is not a valid URL", args[0])
			}

			code, short, err := a.client.Shorten(cmd.Context(), args[0], ttl)
			if err != nil {
				return err
			}
			a.header(domain.ViewShorten)
			fmt.Printf("Short link created: %s (code %s)\n", short, code)
			return nil
		},
	}

	cmd.Flags().Int64Var(&ttl, "ttl", 0, "expiry in seconds (0 = never)")

	return cmd
}
