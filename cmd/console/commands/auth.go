package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRegisterCommand() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = promptSecret("Password (min 8 characters): "); err != nil {
					return err
				}
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			token, profile, err := a.client.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if err := a.ctrl.Login(token, profile); err != nil {
				return err
			}
			fmt.Printf("Account created. Signed in as %s (%s).\n", profile.Name, profile.Role)
			a.header(a.ctrl.ActiveView())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = promptSecret("Password: "); err != nil {
					return err
				}
			}

			token, profile, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.ctrl.Login(token, profile); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%s).\n", profile.Name, profile.Role)
			a.header(a.ctrl.ActiveView())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if !a.ctrl.Authenticated() {
				fmt.Println("Not signed in.")
				return nil
			}
			if err := a.ctrl.Logout(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
