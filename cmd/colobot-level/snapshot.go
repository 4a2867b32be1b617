package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"colobot.info/gold/internal/level"
	"colobot.info/gold/internal/persistence/snapshot"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot <file> <out>",
		Short: "Decode a level and store it as a compressed snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, _, err := level.LoadFile(args[0], a.dec)
			if err != nil {
				return err
			}
			snap := snapshot.FromScene(args[0], scene, a.cats)
			if err := snapshot.WriteSnapshot(args[1], snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d objects)\n", args[1], snap.Header.Objects)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <snapshot>",
		Short: "Print the level stored in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := snapshot.ReadSnapshot(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Header snapshot.Header `json:"header"`
				Scene  *level.Scene    `json:"scene"`
			}{snap.Header, snap.Scene()})
		},
	})
	return cmd
}
