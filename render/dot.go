// Package render exports flight networks as Graphviz DOT documents.
//
// Every airport becomes a node and every flight a directed edge labelled with its
// cost. Routes passed with WithRoute are highlighted: their airports are filled and
// the edge used for each hop (the first matching flight, as route.TotalCost counts
// it) is drawn in the route colour.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/cost"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to DOT.
var ErrNilGraph = errors.New("render: graph is nil")

// DefaultRouteColor is used by WithRoute when no colour is given.
const DefaultRouteColor = "red"

// Options configures DOT output.
type Options struct {
	Name   string              // graph name
	Label  func(string) string // node label; nil uses the airport code
	Metric *cost.Metric        // edge label metric; nil shows price and time
	Routes []Highlight         // routes to emphasize, later ones drawn over earlier ones
}

// Highlight is a route drawn in a colour.
type Highlight struct {
	Path  []string
	Color string
}

// Option is a functional option for DOT.
type Option func(*Options)

// WithName sets the DOT graph name.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithLabel sets the node label function, e.g. (*dataset.Dataset).Name.
func WithLabel(fn func(code string) string) Option {
	return func(o *Options) {
		o.Label = fn
	}
}

// WithMetric restricts edge labels to a single metric.
func WithMetric(m cost.Metric) Option {
	return func(o *Options) {
		o.Metric = &m
	}
}

// WithRoute highlights path in color (DefaultRouteColor if empty).
func WithRoute(path []string, color string) Option {
	return func(o *Options) {
		if color == "" {
			color = DefaultRouteColor
		}
		o.Routes = append(o.Routes, Highlight{Path: path, Color: color})
	}
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Name: "skyroute"}
}

// DOT renders g as a directed DOT document.
func DOT(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Metric != nil && !cfg.Metric.Valid() {
		return "", fmt.Errorf("%w: %d", cost.ErrUnknownMetric, uint8(*cfg.Metric))
	}

	// 1) Resolve highlighted nodes and edges.
	nodeColor := make(map[string]string)
	edgeColor := make(map[string]string)
	for _, h := range cfg.Routes {
		for i, id := range h.Path {
			nodeColor[id] = h.Color
			if i == 0 {
				continue
			}
			for _, e := range g.Neighbors(h.Path[i-1]) {
				if e.To == id {
					edgeColor[e.ID] = h.Color
					break
				}
			}
		}
	}

	// 2) Build the graph.
	out := gographviz.NewGraph()
	if err := out.SetName(strconv.Quote(cfg.Name)); err != nil {
		return "", fmt.Errorf("render: name: %w", err)
	}
	if err := out.SetDir(true); err != nil {
		return "", fmt.Errorf("render: direction: %w", err)
	}
	if err := out.AddAttr(out.Name, "rankdir", "LR"); err != nil {
		return "", fmt.Errorf("render: graph attr: %w", err)
	}

	for _, id := range g.Vertices() {
		label := id
		if cfg.Label != nil {
			label = cfg.Label(id)
		}
		attrs := map[string]string{
			"label": strconv.Quote(label),
			"shape": "circle",
		}
		if c, ok := nodeColor[id]; ok {
			attrs["style"] = "filled"
			attrs["fillcolor"] = c
		}
		if err := out.AddNode(out.Name, strconv.Quote(id), attrs); err != nil {
			return "", fmt.Errorf("render: node %q: %w", id, err)
		}
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{
			"label": strconv.Quote(edgeLabel(e, cfg.Metric)),
		}
		if c, ok := edgeColor[e.ID]; ok {
			attrs["color"] = c
			attrs["penwidth"] = "2"
		}
		if err := out.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), true, attrs); err != nil {
			return "", fmt.Errorf("render: edge %s: %w", e.ID, err)
		}
	}

	return out.String(), nil
}

func edgeLabel(e *core.Edge, m *cost.Metric) string {
	if m == nil {
		return fmt.Sprintf("%d %s / %d %s",
			e.Price, cost.Price.Unit(), e.Time, cost.Time.Unit())
	}

	return fmt.Sprintf("%d %s", cost.EdgeCost(e, *m), m.Unit())
}
