package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

func newListCmd(s *session) *cobra.Command {
	var statusFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status project.Status
			if statusFlag != "" {
				parsed, err := project.ParseStatus(statusFlag)
				if err != nil {
					return err
				}
				status = parsed
			}

			projects, err := s.app.Board.ListProjects(cmd.Context(), status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPEOPLE\tSTATUS")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Title, p.People, p.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Only list projects with this status (active, finished)")

	return cmd
}
