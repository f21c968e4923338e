// Package dataset loads flight networks from YAML and turns them into the graph and
// coordinate table consumed by the search.
//
// A dataset lists airports (code, name, optional coordinates), one-way flights with
// price and time, an ordered menu of airports for interactive selection, and default
// source/destination codes used when a selection is invalid. Without a menu every airport
// is selectable in file order. A flight may return to its own airport.
//
// The reference network is embedded and available through Reference.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/geo"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for dataset validation.
var (
	// ErrEmptyDataset indicates a dataset without airports.
	ErrEmptyDataset = errors.New("dataset: no airports")

	// ErrDuplicateAirport indicates two airports share a code.
	ErrDuplicateAirport = errors.New("dataset: duplicate airport code")

	// ErrUnknownAirport indicates a flight, menu entry or default refers to an undeclared code.
	ErrUnknownAirport = errors.New("dataset: unknown airport code")

	// ErrBadFlight indicates a flight with negative price or time.
	ErrBadFlight = errors.New("dataset: invalid flight")
)

//go:embed reference.yaml
var referenceYAML []byte

// Airport is a node of the network. Lat/Lon are optional; an airport without them
// has no heuristic estimate.
type Airport struct {
	Code string   `yaml:"code"`
	Name string   `yaml:"name"`
	Lat  *float64 `yaml:"lat,omitempty"`
	Lon  *float64 `yaml:"lon,omitempty"`
}

// Flight is a one-way edge between two airports.
type Flight struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Price int64  `yaml:"price"`
	Time  int64  `yaml:"time"`
}

// Defaults names the airports used when an interactive selection is invalid.
type Defaults struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// Dataset is the decoded form of a network file.
type Dataset struct {
	Airports []Airport `yaml:"airports"`
	Flights  []Flight  `yaml:"flights"`
	Menu     []string  `yaml:"menu,omitempty"`
	Defaults Defaults  `yaml:"defaults,omitempty"`
}

// Parse decodes and validates a dataset. Unknown YAML fields are rejected.
func Parse(data []byte) (*Dataset, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads, decodes and validates a dataset from r.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Dataset
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads and parses the dataset file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return Parse(data)
}

// Reference returns a fresh copy of the embedded reference network.
func Reference() *Dataset {
	d, err := Parse(referenceYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded reference network is invalid: %v", err))
	}

	return d
}

// Validate checks codes, flights, menu and defaults for consistency.
func (d *Dataset) Validate() error {
	if len(d.Airports) == 0 {
		return ErrEmptyDataset
	}

	known := make(map[string]struct{}, len(d.Airports))
	for _, a := range d.Airports {
		if a.Code == "" {
			return fmt.Errorf("%w: empty code for %q", ErrUnknownAirport, a.Name)
		}
		if _, dup := known[a.Code]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateAirport, a.Code)
		}
		known[a.Code] = struct{}{}
	}

	check := func(where, code string) error {
		if _, ok := known[code]; !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownAirport, where, code)
		}
		return nil
	}
	for i, f := range d.Flights {
		if err := check(fmt.Sprintf("flights[%d].from", i), f.From); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("flights[%d].to", i), f.To); err != nil {
			return err
		}
		if f.Price < 0 || f.Time < 0 {
			return fmt.Errorf("%w: flights[%d] %s→%s price=%d time=%d", ErrBadFlight, i, f.From, f.To, f.Price, f.Time)
		}
	}
	for i, code := range d.Menu {
		if err := check(fmt.Sprintf("menu[%d]", i), code); err != nil {
			return err
		}
	}
	if d.Defaults.Source != "" {
		if err := check("defaults.source", d.Defaults.Source); err != nil {
			return err
		}
	}
	if d.Defaults.Destination != "" {
		if err := check("defaults.destination", d.Defaults.Destination); err != nil {
			return err
		}
	}

	return nil
}

// Graph builds a core.Graph holding every airport as a vertex and every flight as an
// edge, in file order. Flights that return to their origin are kept.
func (d *Dataset) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops(), core.WithCapacity(len(d.Airports), len(d.Flights)))
	for _, a := range d.Airports {
		if err := g.AddVertex(a.Code); err != nil {
			return nil, fmt.Errorf("dataset: airport %q: %w", a.Code, err)
		}
	}
	for i, f := range d.Flights {
		if _, err := g.AddEdge(f.From, f.To, f.Price, f.Time); err != nil {
			return nil, fmt.Errorf("dataset: flights[%d]: %w", i, err)
		}
	}

	return g, nil
}

// Coordinates returns the positions of airports that declare both lat and lon.
func (d *Dataset) Coordinates() geo.Coordinates {
	coords := make(geo.Coordinates, len(d.Airports))
	for _, a := range d.Airports {
		if a.Lat == nil || a.Lon == nil {
			continue
		}
		coords[a.Code] = geo.Point{Lat: *a.Lat, Lon: *a.Lon}
	}

	return coords
}

// Name returns the display name of code, or code itself if it has none.
func (d *Dataset) Name(code string) string {
	for _, a := range d.Airports {
		if a.Code == code && a.Name != "" {
			return a.Name
		}
	}

	return code
}

// Choices returns the selectable airports: the menu, or every airport in file order
// if the dataset has none.
func (d *Dataset) Choices() []string {
	if len(d.Menu) > 0 {
		return d.Menu
	}
	codes := make([]string, 0, len(d.Airports))
	for _, a := range d.Airports {
		codes = append(codes, a.Code)
	}

	return codes
}

// Choice maps a 1-based selection from Choices to an airport code. Any selection
// outside the list returns fallback.
func (d *Dataset) Choice(n int, fallback string) string {
	choices := d.Choices()
	if n < 1 || n > len(choices) {
		return fallback
	}

	return choices[n-1]
}
