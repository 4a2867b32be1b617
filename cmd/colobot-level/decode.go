package main

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"colobot.info/gold/internal/level"
	persistlog "colobot.info/gold/internal/persistence/log"
)

func newDecodeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a level file and print the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, diags, err := level.LoadFile(args[0], a.dec)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err := enc.Encode(struct {
					Scene       *level.Scene       `json:"scene"`
					Diagnostics []level.Diagnostic `json:"diagnostics,omitempty"`
				}{scene, diags})
				if err != nil {
					return errors.WithHint(errors.Wrap(err, "encode scene"),
						"a number is out of range for JSON; run check with --policy strict to find it")
				}
				return nil
			case "level":
				return level.Encode(out, scene)
			default:
				return errors.Newf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or level")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report diagnostics for level files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dw *persistlog.DiagnosticsWriter
			if dir := a.cfg.Diagnostics.Dir; dir != "" {
				dw = persistlog.NewDiagnosticsWriter(dir)
				defer dw.Close()
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				_, diags, err := level.LoadFile(path, a.dec)
				if err != nil {
					return err
				}
				for _, d := range diags {
					op := ""
					if d.Op != "" {
						op = " " + d.Op
					}
					fmt.Fprintf(out, "%s:%d: %s: %s%s: %s\n", path, d.Line, d.Severity, d.Cmd, op, d.Message)
				}
				if dw != nil {
					if err := dw.WriteDiagnostics(path, diags); err != nil {
						return err
					}
				}
				if level.Counts(diags)[level.SeverityError] > 0 {
					failed++
				}
			}
			if failed > 0 {
				return errors.Newf("%d of %d file(s) have errors", failed, len(args))
			}
			return nil
		},
	}
}
