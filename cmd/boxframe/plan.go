package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/boxframe/screen"
)

type planParams struct {
	cols, rows int
}

func newPlanCommand() *cobra.Command {
	var params planParams

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the border as text without touching the terminal",
		Long:  "Render the configured border into an in-memory grid of the given size and print it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.plan(cmd.OutOrStdout(), params)
		},
	}

	cmd.Flags().IntVar(&params.cols, "cols", 40, "grid width in cells")
	cmd.Flags().IntVar(&params.rows, "rows", 10, "grid height in cells")
	addBorderFlags(cmd.Flags())
	return cmd
}

func (s *session) plan(out io.Writer, params planParams) error {
	if params.cols < 0 || params.rows < 0 {
		return fmt.Errorf("grid size must not be negative, got %dx%d", params.cols, params.rows)
	}
	l, err := s.file.BaseLayer(params.cols, params.rows)
	if err != nil {
		return err
	}
	l.Log = s.log

	g := screen.NewGrid(params.cols, params.rows)
	if err := l.Draw(g); err != nil {
		return err
	}
	s.log.WithField("cells", g.Writes()).Debug("Plan rendered.")

	_, err = fmt.Fprintln(out, g.String())
	return err
}
