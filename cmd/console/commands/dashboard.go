package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/myurl/console/internal/core/domain"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Platform analytics and user overview (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireView(domain.ViewDashboard); err != nil {
				return err
			}

			// Both fetches run concurrently; the dashboard renders only
			// once both have landed, whatever their arrival order.
			type summaryResult struct {
				summary domain.AnalyticsSummary
				err     error
			}
			type usersResult struct {
				users []domain.AdminUser
				err   error
			}

			summaryCh := make(chan summaryResult, 1)
			usersCh := make(chan usersResult, 1)

			go func(ctx context.Context) {
				s, err := a.client.AnalyticsSummary(ctx)
				summaryCh <- summaryResult{summary: s, err: err}
			}(cmd.Context())
			go func(ctx context.Context) {
				u, err := a.client.AdminUsers(ctx)
				usersCh <- usersResult{users: u, err: err}
			}(cmd.Context())

			sr := <-summaryCh
			ur := <-usersCh
			if sr.err != nil {
				return sr.err
			}
			if ur.err != nil {
				return ur.err
			}

			a.header(domain.ViewDashboard)
			fmt.Printf("Total clicks: %d\n\n", sr.summary.TotalClicks)

			if len(sr.summary.TopURLs) > 0 {
				fmt.Println("Top performing links:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CODE\tCLICKS")
				for _, u := range sr.summary.TopURLs {
					fmt.Fprintf(w, "%s\t%d\n", u.Code, u.Clicks)
				}
				w.Flush()
				fmt.Println()
			}

			fmt.Printf("Registered users (%d):\n", len(ur.users))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tCREATED")
			for _, u := range ur.users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.Email, u.Role, localTime(u.CreatedAt))
			}
			return w.Flush()
		},
	}
}
