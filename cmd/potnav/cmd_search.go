package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/potfield/service"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		ff            fieldFlags
		start         string
		mode          string
		maxIterations int
		stallPolicy   string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Synthesize a field and walk it from --start to its global minimum",
		Example: `  potnav search --seed 7 --start 0,299
  potnav search -n 128 --start 10,10 --mode astar`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := parseCell(start)
			if err != nil {
				return err
			}
			svc, err := a.fieldService(cmd, &ff)
			if err != nil {
				return err
			}
			sess, err := svc.Regenerate(cmd.Context(), service.RegenerateRequest{})
			if err != nil {
				return err
			}

			req := service.SearchRequest{Start: &cell, Mode: mode, StallPolicy: stallPolicy}
			if cmd.Flags().Changed("max-iterations") {
				req.MaxIterations = &maxIterations
			}
			res, err := svc.Search(cmd.Context(), sess.ID, req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&start, "start", "0,0", "start cell as row,col")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "search mode: greedy or astar (default from config)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "greedy step budget (default from config)")
	cmd.Flags().StringVar(&stallPolicy, "stall-policy", "", "greedy stall policy: continue or stop")

	return cmd
}

// parseCell parses "row,col".
func parseCell(s string) (service.Cell, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return service.Cell{}, fmt.Errorf("start %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return service.Cell{}, fmt.Errorf("start %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return service.Cell{}, fmt.Errorf("start %q: %w", s, err)
	}
	return service.Cell{Row: row, Col: col}, nil
}
