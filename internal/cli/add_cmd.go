package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

func newAddCmd(s *session) *cobra.Command {
	var in project.Input

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an active project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Same rules as the board form, checked before any request.
			if err := in.Validate(); err != nil {
				return err
			}

			p, err := s.app.Board.CreateProject(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Title, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Project title")
	cmd.Flags().StringVar(&in.Description, "description", "", "Project description")
	cmd.Flags().IntVar(&in.People, "people", 0, "Number of people assigned")

	return cmd
}
