package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"colobot.info/gold/internal/config"
	"colobot.info/gold/internal/logging"
	"colobot.info/gold/internal/script/cmdtoken"
	"colobot.info/gold/internal/sim/catalogs"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath string
	policy     string

	cfg  config.Config
	cats *catalogs.Set
	dec  cmdtoken.Decoder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "colobot-level",
		Short: "Decode, check and index colobot level files",
		Long: `colobot-level reads the directive lines of colobot scene files.

Examples:
  colobot-level decode scene01.txt          # Print the decoded scene as JSON
  colobot-level check --policy strict *.txt # Report defaulted values
  colobot-level index levels/               # Fill the SQLite level index
  colobot-level serve                       # Start the websocket decode service`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "config file")
	root.PersistentFlags().StringVar(&a.policy, "policy", "", "decode policy: lenient or strict (overrides config)")

	root.AddCommand(
		newDecodeCmd(a),
		newCheckCmd(a),
		newIndexCmd(a),
		newSnapshotCmd(a),
		newServeCmd(a),
		newProfileCmd(a),
		newCatalogsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = a.policy
	}
	policy, err := cmdtoken.ParsePolicy(cfg.Policy)
	if err != nil {
		return errors.WithHint(err, "use --policy lenient or --policy strict")
	}
	if err := logging.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return err
	}

	cats := catalogs.Default()
	if cfg.AliasFile != "" {
		cats, err = catalogs.LoadAliases(cfg.AliasFile, cats)
		if err != nil {
			return err
		}
		logging.Component("cli").Debugw("aliases loaded", "path", cfg.AliasFile)
	}

	a.cfg = cfg
	a.cats = cats
	a.dec = cmdtoken.Decoder{Policy: policy, Catalogs: cats}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(1)
	}
}
