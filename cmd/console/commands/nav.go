package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNavCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nav",
		Short: "Show which views the current session can reach",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if s := a.ctrl.Session(); s != nil {
				fmt.Printf("Signed in as %s\n\n", s.Profile.Name)
			} else {
				fmt.Println("Guest mode — authenticate to unlock tools.")
				fmt.Println()
			}

			for _, entry := range a.ctrl.VisibleEntries() {
				marker := " "
				if entry.View == a.ctrl.ActiveView() {
					marker = "*"
				}
				state := ""
				if !entry.Enabled {
					state = " (sign in required)"
				}
				fmt.Printf("%s %-16s%s\n", marker, entry.Label, state)
			}
			return nil
		},
	}
}
