package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"colobot.info/gold/internal/profile"
)

func newProfileCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Read and write the player profile (colobot.ini)",
	}
	cmd.PersistentFlags().StringVar(&path, "profile", "", "profile file (default from config)")

	// open loads the profile. With allowMissing an absent file yields an
	// empty store that Save will create.
	open := func(cmd *cobra.Command, allowMissing bool) (*profile.Store, error) {
		opts := profile.Options{
			Path:                a.cfg.Profile.Path,
			UseCurrentDirectory: a.cfg.Profile.UseCurrentDirectory,
		}
		if cmd.Flags().Changed("profile") {
			opts = profile.Options{Path: path}
		}
		s := profile.New(opts)
		if err := s.Load(); err != nil {
			if !allowMissing || !os.IsNotExist(errors.UnwrapAll(err)) {
				return nil, err
			}
		}
		if a.cfg.Profile.UserDir != "" {
			s.SetUserDir(a.cfg.Profile.UserDir)
		}
		return s, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <section> <key>",
		Short: "Print one value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, false)
			if err != nil {
				return err
			}
			v, ok := s.GetString(args[0], args[1])
			if !ok {
				return errors.Newf("profile: no key %s.%s in %s", args[0], args[1], s.Location())
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <section> <key> <value>",
		Short: "Store one value and save the profile",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, true)
			if err != nil {
				return err
			}
			s.SetString(args[0], args[1], args[2])
			return s.Save()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "section <section> <prefix>",
		Short: "List the values of every key named prefix followed by digits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, false)
			if err != nil {
				return err
			}
			for _, v := range s.Section(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Reload the profile whenever it changes on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, false)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "watching %s\n", s.Location())
			return profile.Watch(ctx, s, a.cfg.Profile.WatchDebounce(), func() {
				fmt.Fprintf(out, "reloaded %s\n", s.Location())
			})
		},
	})
	return cmd
}
