package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-board/internal/app/fanout"
	"github.com/jsamuelsen11/project-board/internal/domain/dragdrop"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

func newMoveCmd(s *session) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move --to STATUS ID...",
		Short: "Drag projects onto a list",
		Long: "Move drags each project onto the target list the way the board page does:\n" +
			"the id is put in a text/plain payload and dropped on the list.\n" +
			"Drops run concurrently, bounded by board.move_workers.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, ids []string) error {
			target, err := project.ParseStatus(to)
			if err != nil {
				return err
			}

			results := fanout.Run(cmd.Context(), s.app.MoveWorkers, ids, func(ctx context.Context, id string) (*project.Project, error) {
				return dragTo(ctx, s.app.Board, id, target)
			})

			out := cmd.OutOrStdout()
			for i, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "%s: %v\n", ids[i], r.Err)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", ids[i], r.Value.Status)
			}
			return fanout.Errors(results)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target list (active, finished)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// dragTo runs one drag gesture for id and reads the project back. The board
// accepts drops of unknown ids as no-ops, so the read is what reports them.
func dragTo(ctx context.Context, board ports.BoardClient, id string, target project.Status) (*project.Project, error) {
	item := dragdrop.Item(id)
	dt := dragdrop.NewDataTransfer()
	item.DragStart(dt)
	defer item.DragEnd(dt)

	if err := board.Drop(ctx, target, dt); err != nil {
		return nil, err
	}

	return board.GetProject(ctx, id)
}
