// Package cost selects the dimension in which an edge is weighed during a search.
//
// Two metrics are supported: Time (elapsed minutes) and Price (monetary units).
// EdgeCost is a pure selector over core.Edge; it keeps no state.
package cost

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/skyroute/core"
	"gopkg.in/yaml.v3"
)

// ErrUnknownMetric indicates a metric value or name outside {Time, Price}.
var ErrUnknownMetric = errors.New("cost: unknown metric")

// Metric is the cost dimension used to weigh edges for a query.
type Metric uint8

const (
	// Time weighs edges by Edge.Time.
	Time Metric = iota

	// Price weighs edges by Edge.Price.
	Price
)

// Metrics returns every supported metric in a fixed order (Time, Price).
func Metrics() []Metric { return []Metric{Time, Price} }

// Valid reports whether m is a supported metric.
func (m Metric) Valid() bool { return m == Time || m == Price }

// String returns "time" or "price".
func (m Metric) String() string {
	switch m {
	case Time:
		return "time"
	case Price:
		return "price"
	default:
		return fmt.Sprintf("metric(%d)", uint8(m))
	}
}

// Unit returns the human-readable unit of the metric as printed by the CLI.
func (m Metric) Unit() string {
	switch m {
	case Time:
		return "minutes"
	case Price:
		return "rupees"
	default:
		return ""
	}
}

// ParseMetric converts a case-insensitive name ("time", "price") into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time":
		return Time, nil
	case "price":
		return Price, nil
	default:
		return Time, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// UnmarshalYAML decodes a metric from its YAML scalar name.
func (m *Metric) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	return m.UnmarshalText([]byte(name))
}

// EdgeCost returns e.Time or e.Price depending on m.
// An unsupported metric yields 0; callers validate the metric up front.
func EdgeCost(e *core.Edge, m Metric) int64 {
	switch m {
	case Time:
		return e.Time
	case Price:
		return e.Price
	default:
		return 0
	}
}
