package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Theme is a cosmetic preference stored independently of the session; it
// survives logout.
func newThemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the UI theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(a.store.Theme())
				return nil
			}
			if err := a.store.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s.\n", args[0])
			return nil
		},
	}
}
