package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func newDistancesCmd(a *app) *cobra.Command {
	q := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the least cost from one airport to every other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			metrics, err := q.metrics()
			if err != nil {
				return err
			}
			d, err := a.load()
			if err != nil {
				return err
			}
			p, err := a.planner(d)
			if err != nil {
				return err
			}

			from := q.from
			if from == "" {
				from = d.Defaults.Source
			}

			out := cmd.OutOrStdout()
			for _, m := range metrics {
				dist, err := p.Distances(from, m)
				if err != nil {
					return err
				}
				codes := maps.Keys(dist)
				slices.Sort(codes)

				fmt.Fprintf(out, "From %s (by %s):\n", from, m)
				for _, code := range codes {
					if dist[code] == math.MaxInt64 {
						fmt.Fprintf(out, "  %s\tunreachable\n", code)
						continue
					}
					fmt.Fprintf(out, "  %s\t%d %s\n", code, dist[code], m.Unit())
				}
			}

			return nil
		},
	}
	q.bind(cmd.Flags(), false)

	return cmd
}
