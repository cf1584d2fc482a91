// Package report turns search outcomes into run summaries and writes them
// as YAML, JSON, msgpack or a terminal table. Summaries can also be
// filtered with a jq expression.
package report

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/blindsearch/internal/problemfile"
)

// Cost statuses of a Summary.
const (
	CostFinite      = "finite"
	CostUnreachable = "unreachable"
	CostUnknown     = "unknown"
)

// Summary is the serialisable record of one search run. Cost is nil
// unless CostStatus is CostFinite, since JSON has no NaN or Inf.
type Summary struct {
	RunID       string   `yaml:"run_id" json:"run_id" msgpack:"run_id"`
	Problem     string   `yaml:"problem" json:"problem" msgpack:"problem"`
	Kind        string   `yaml:"kind" json:"kind" msgpack:"kind"`
	Algorithm   string   `yaml:"algorithm" json:"algorithm" msgpack:"algorithm"`
	Found       bool     `yaml:"found" json:"found" msgpack:"found"`
	State       string   `yaml:"state,omitempty" json:"state,omitempty" msgpack:"state,omitempty"`
	Actions     []string `yaml:"actions" json:"actions" msgpack:"actions"`
	Depth       int      `yaml:"depth" json:"depth" msgpack:"depth"`
	Cost        *float64 `yaml:"cost,omitempty" json:"cost,omitempty" msgpack:"cost,omitempty"`
	CostStatus  string   `yaml:"cost_status" json:"cost_status" msgpack:"cost_status"`
	Expanded    int      `yaml:"expanded" json:"expanded" msgpack:"expanded"`
	Generated   int      `yaml:"generated" json:"generated" msgpack:"generated"`
	MaxFrontier int      `yaml:"max_frontier" json:"max_frontier" msgpack:"max_frontier"`
	Elapsed     string   `yaml:"elapsed" json:"elapsed" msgpack:"elapsed"`
	Error       string   `yaml:"error,omitempty" json:"error,omitempty" msgpack:"error,omitempty"`
	Picture     string   `yaml:"picture,omitempty" json:"picture,omitempty" msgpack:"picture,omitempty"`
}

// New summarises one run of in. A non-nil err is recorded alongside the
// partial counters.
func New(in *problemfile.Instance, out problemfile.Outcome, err error) Summary {
	s := Summary{
		RunID:       uuid.New().String(),
		Problem:     in.Name,
		Kind:        string(in.Kind),
		Algorithm:   string(out.Algorithm),
		Found:       out.Found,
		State:       out.State,
		Actions:     out.Actions,
		Depth:       len(out.Actions),
		Expanded:    out.Expanded,
		Generated:   out.Generated,
		MaxFrontier: out.MaxFrontier,
		Elapsed:     out.Elapsed.Round(time.Microsecond).String(),
		Picture:     out.Picture,
	}
	if s.Actions == nil {
		s.Actions = []string{}
	}
	switch c := out.PathCost; {
	case math.IsNaN(c):
		s.CostStatus = CostUnknown
	case math.IsInf(c, 0):
		s.CostStatus = CostUnreachable
	default:
		s.CostStatus = CostFinite
		s.Cost = &c
	}
	if err != nil {
		s.Error = err.Error()
	}

	return s
}

// CostString renders the cost for humans: a number, "∞" or "?".
func (s Summary) CostString() string {
	switch s.CostStatus {
	case CostFinite:
		if s.Cost != nil {
			return fmt.Sprintf("%g", *s.Cost)
		}
	case CostUnreachable:
		return "∞"
	}

	return "?"
}

// Path joins the actions with spaces, or "-" when there are none.
func (s Summary) Path() string {
	if len(s.Actions) == 0 {
		return "-"
	}

	return strings.Join(s.Actions, " ")
}

// Format is an output format.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatTable   Format = "table"
)

// ErrUnknownFormat is returned by ParseFormat and Write.
var ErrUnknownFormat = errors.New("report: unsupported output format")

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatMsgpack, FormatTable}
}

// ParseFormat accepts a format name; the empty string means YAML.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatYAML, nil
	}
	for _, f := range Formats() {
		if Format(strings.ToLower(name)) == f {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}
