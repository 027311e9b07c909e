package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/potfield/service"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		ff         fieldFlags
		withValues bool
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize one field and print its summary as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.fieldService(cmd, &ff)
			if err != nil {
				return err
			}
			sess, err := svc.Regenerate(cmd.Context(), service.RegenerateRequest{})
			if err != nil {
				return err
			}

			resp := service.NewFieldResponse(sess, withValues)
			if outPath == "" {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeJSONFile(outPath, resp)
		},
	}
	ff.register(cmd)
	cmd.Flags().BoolVar(&withValues, "values", false, "include the full value matrix")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write JSON to this file instead of stdout")

	return cmd
}

// fieldService builds a one-shot Service whose field config carries the flag overrides.
func (a *app) fieldService(cmd *cobra.Command, ff *fieldFlags) (*service.Service, error) {
	cfg := a.cfg
	ff.apply(cmd, &cfg.Field)
	if cfg.Server.MaxSize < cfg.Field.Size {
		cfg.Server.MaxSize = cfg.Field.Size
	}
	return service.New(cfg, a.log)
}

// writeJSONFile writes v to path and reports a failed close as well as a failed write.
func writeJSONFile(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return writeJSON(f, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
