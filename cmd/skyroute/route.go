package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skyroute/dataset"
	"github.com/katalvlaran/skyroute/route"
)

func newRouteCmd(a *app) *cobra.Command {
	q := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the best route between two airports",
		Long: "Print the best route between two airports under each metric.\n" +
			"Missing endpoints are selected interactively from the airport menu.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoute(cmd, q)
		},
	}
	q.bind(cmd.Flags(), true)

	return cmd
}

func (a *app) runRoute(cmd *cobra.Command, q *queryFlags) error {
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

	out := cmd.OutOrStdout()
	from, to := q.from, q.to
	if from == "" || to == "" {
		from, to = prompt(cmd.InOrStdin(), out, d, from, to)
	}

	for _, m := range metrics {
		ans, err := p.Query(commandContext(cmd), from, to, m)
		if err != nil {
			return err
		}
		printAnswer(out, ans)
	}

	return nil
}

// prompt asks for each missing endpoint by menu number. Unreadable or out-of-range
// selections fall back to the dataset defaults.
func prompt(in io.Reader, out io.Writer, d *dataset.Dataset, from, to string) (string, string) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	read := func(fallback string) string {
		n := 0
		if sc.Scan() {
			n, _ = strconv.Atoi(sc.Text())
		}
		return d.Choice(n, fallback)
	}

	shown := false
	if from == "" {
		fmt.Fprintln(out, "Select a source airport:")
		printMenu(out, d)
		shown = true
		from = read(d.Defaults.Source)
	}
	if to == "" {
		fmt.Fprintln(out, "Select a destination airport:")
		if !shown {
			printMenu(out, d)
		}
		to = read(d.Defaults.Destination)
	}

	return from, to
}

func printMenu(out io.Writer, d *dataset.Dataset) {
	for i, code := range d.Choices() {
		if name := d.Name(code); name != code {
			fmt.Fprintf(out, "%d. %s (%s)\n", i+1, code, name)
			continue
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, code)
	}
}

func printAnswer(out io.Writer, a route.Answer) {
	metric := a.Metric.String()
	fmt.Fprintf(out, "Best path from %s to %s (by %s): [%s]\n", a.From, a.To, metric, strings.Join(a.Path, ", "))
	fmt.Fprintf(out, "Total %s (by %s): %d %s\n", strings.ToUpper(metric[:1])+metric[1:], metric, a.Total, a.Metric.Unit())
}
