package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/cost"
	"github.com/katalvlaran/skyroute/render"
)

// routeColors maps each metric to its highlight colour.
var routeColors = map[cost.Metric]string{
	cost.Time:  "red",
	cost.Price: "blue",
}

func newDotCmd(a *app) *cobra.Command {
	q := &queryFlags{}
	var output string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the network as Graphviz DOT",
		Long: "Export the network as Graphviz DOT. With --from and --to the best route\n" +
			"per metric is highlighted (time in red, price in blue).",
		Args: cobra.NoArgs,
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

			opts := []render.Option{render.WithLabel(d.Name)}
			if len(metrics) == 1 {
				opts = append(opts, render.WithMetric(metrics[0]))
			}
			if q.from != "" && q.to != "" {
				for _, m := range metrics {
					ans, err := p.Query(commandContext(cmd), q.from, q.to, m)
					if err != nil {
						return err
					}
					opts = append(opts, render.WithRoute(ans.Path, routeColors[m]))
				}
			}

			doc, err := render.DOT(p.Graph(), opts...)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}
			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.log.Debug("dot written", "path", output, "bytes", len(doc))

			return nil
		},
	}
	q.bind(cmd.Flags(), true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
