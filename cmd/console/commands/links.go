package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/myurl/console/internal/core/domain"
)

func newLinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "List your short links",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireView(domain.ViewLinks); err != nil {
				return err
			}

			links, err := a.client.Links(cmd.Context())
			if err != nil {
				return err
			}

			a.header(domain.ViewLinks)
			if len(links) == 0 {
				fmt.Println("No links yet. Create one with: console shorten <url>")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tDESTINATION\tCLICKS\tCREATED\tEXPIRES")
			for _, l := range links {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					l.Code, l.URL, l.Clicks,
					localTime(l.CreatedAt), expiry(l))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(newLinksRemoveCommand())

	return cmd
}

func newLinksRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <code>",
		Short: "Delete a short link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireView(domain.ViewLinks); err != nil {
				return err
			}
			if err := a.client.DeleteLink(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s.\n", args[0])
			return nil
		},
	}
}

// localTime renders a backend Unix-seconds timestamp as local date/time.
func localTime(unix int64) string {
	if unix == 0 {
		return "—"
	}
	return time.Unix(unix, 0).Local().Format("2006-01-02 15:04")
}

func expiry(l domain.Link) string {
	if l.ExpiresAt == 0 {
		return "never"
	}
	return localTime(l.ExpiresAt)
}
