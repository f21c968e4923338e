package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReachCmd(a *app) *cobra.Command {
	var (
		from       string
		maxFlights int
	)
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List airports reachable within a number of flights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.load()
			if err != nil {
				return err
			}
			p, err := a.planner(d)
			if err != nil {
				return err
			}
			if from == "" {
				from = d.Defaults.Source
			}

			res, err := p.Reach(commandContext(cmd), from, maxFlights)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, code := range res.Order[1:] {
				path, err := res.PathTo(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\t%v\n", code, res.Flights[code], path)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "source airport code")
	cmd.Flags().IntVarP(&maxFlights, "max-flights", "n", 0, "maximum number of flights (0 for no limit)")

	return cmd
}
