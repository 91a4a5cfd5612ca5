package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myurl/console/internal/core/domain"
)

func newAccountCommand() *cobra.Command {
	var showToken bool

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show profile and access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireView(domain.ViewAccount); err != nil {
				return err
			}

			s := a.ctrl.Session()
			a.header(domain.ViewAccount)
			fmt.Printf("Name:    %s\n", s.Profile.Name)
			fmt.Printf("Email:   %s\n", s.Profile.Email)
			fmt.Printf("User ID: %s\n", s.Profile.ID)
			fmt.Printf("Role:    %s\n", s.Profile.Role)
			if showToken {
				fmt.Printf("Token:   %s\n", s.Token)
			} else {
				fmt.Println("Token:   (hidden, pass --show-token to print)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showToken, "show-token", false, "print the raw bearer token")

	return cmd
}
