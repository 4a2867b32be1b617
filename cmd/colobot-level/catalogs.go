package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"colobot.info/gold/internal/sim/catalogs"
)

func newCatalogsCmd(a *app) *cobra.Command {
	var domain string
	cmd := &cobra.Command{
		Use:   "catalogs",
		Short: "List catalog domains, or the names of one domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if domain != "" {
				names, ok := a.cats.Names(domain)
				if !ok {
					return errors.WithHintf(errors.Newf("unknown domain %q", domain),
						"known domains: %v", catalogs.Domains())
				}
				for _, n := range names {
					fmt.Fprintln(out, n)
				}
				return nil
			}
			digests := a.cats.Digests()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOMAIN\tNAMES\tDIGEST")
			for _, d := range catalogs.Domains() {
				names, _ := a.cats.Names(d)
				fmt.Fprintf(tw, "%s\t%d\t%s\n", d, len(names), digests[d][:12])
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "print the names of this domain")
	return cmd
}
