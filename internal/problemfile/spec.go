// Package problemfile decodes YAML problem descriptions and turns them into
// runnable search problems.
//
// A document names its kind and carries one matching section:
//
//	kind: route
//	name: line
//	route:
//	  edges:
//	    - {from: A, to: B}
//	    - {from: B, to: C}
//	  start: A
//	  goals: [C]
//
// Kinds are route, coloring, grid and puzzle. Build validates the section
// through the constructor of the matching problems package and returns an
// Instance that runs any algorithm by name.
package problemfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for problem files.
var (
	// ErrUnknownKind is returned for a kind other than route, coloring, grid or puzzle.
	ErrUnknownKind = errors.New("problemfile: unknown kind")
	// ErrMissingSection is returned when the section named by kind is absent.
	ErrMissingSection = errors.New("problemfile: missing section for kind")
	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("problemfile: unknown algorithm")
	// ErrNoGoalState is returned when bidirectional search needs a goal state
	// the file does not provide.
	ErrNoGoalState = errors.New("problemfile: bidirectional search needs a goal state")
)

// Kind names a problem family.
type Kind string

const (
	KindRoute    Kind = "route"
	KindColoring Kind = "coloring"
	KindGrid     Kind = "grid"
	KindPuzzle   Kind = "puzzle"
)

// DefaultMaxDepth bounds iterative deepening when neither the file nor the
// caller sets a depth.
const DefaultMaxDepth = 32

// Spec is one decoded problem document.
type Spec struct {
	Kind     Kind          `yaml:"kind" json:"kind" jsonschema:"route, coloring, grid or puzzle"`
	Name     string        `yaml:"name,omitempty" json:"name,omitempty"`
	MaxDepth int           `yaml:"max_depth,omitempty" json:"max_depth,omitempty" jsonschema:"iterative deepening bound, default 32"`
	Route    *RouteSpec    `yaml:"route,omitempty" json:"route,omitempty"`
	Coloring *ColoringSpec `yaml:"coloring,omitempty" json:"coloring,omitempty"`
	Grid     *GridSpec     `yaml:"grid,omitempty" json:"grid,omitempty"`
	Puzzle   *PuzzleSpec   `yaml:"puzzle,omitempty" json:"puzzle,omitempty"`
}

// EdgeSpec is one graph edge; Weight is only allowed on weighted graphs.
type EdgeSpec struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// RouteSpec describes a route problem on a graph.
type RouteSpec struct {
	Directed bool       `yaml:"directed,omitempty" json:"directed,omitempty"`
	Weighted bool       `yaml:"weighted,omitempty" json:"weighted,omitempty"`
	Vertices []string   `yaml:"vertices,omitempty" json:"vertices,omitempty" jsonschema:"extra isolated vertices"`
	Edges    []EdgeSpec `yaml:"edges" json:"edges"`
	Start    string     `yaml:"start" json:"start"`
	Goals    []string   `yaml:"goals" json:"goals"`
}

// ColoringSpec describes a map-colouring problem.
type ColoringSpec struct {
	Regions []string       `yaml:"regions,omitempty" json:"regions,omitempty" jsonschema:"regions without borders"`
	Borders [][]string     `yaml:"borders" json:"borders" jsonschema:"pairs of adjacent regions"`
	Colors  []int          `yaml:"colors" json:"colors"`
	Order   []string       `yaml:"order" json:"order"`
	Goal    map[string]int `yaml:"goal,omitempty" json:"goal,omitempty" jsonschema:"complete colouring used as the bidirectional goal"`
}

// CellSpec is a grid coordinate; y grows downwards.
type CellSpec struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// GridSpec describes a grid maze, one row of cell values per line.
type GridSpec struct {
	Cells     [][]int  `yaml:"cells" json:"cells"`
	Start     CellSpec `yaml:"start" json:"start"`
	Goal      CellSpec `yaml:"goal" json:"goal"`
	Diagonal  bool     `yaml:"diagonal,omitempty" json:"diagonal,omitempty"`
	Threshold *int     `yaml:"threshold,omitempty" json:"threshold,omitempty" jsonschema:"minimum passable value, default 1"`
}

// PuzzleSpec describes a sliding-tile puzzle; boards use puzzle.Parse syntax.
type PuzzleSpec struct {
	Start string `yaml:"start" json:"start"`
	Goal  string `yaml:"goal,omitempty" json:"goal,omitempty" jsonschema:"defaults to 1,2,3|4,5,6|7,8,_"`
}

// Decode parses one YAML document. Unknown fields are rejected.
func Decode(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.UnmarshalWithOptions(data, &spec, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("problemfile: failed to parse YAML: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problemfile: %w", err)
	}

	return Decode(data)
}

// Validate checks that the section named by Kind is present.
func (s *Spec) Validate() error {
	var present bool
	switch s.Kind {
	case KindRoute:
		present = s.Route != nil
	case KindColoring:
		present = s.Coloring != nil
	case KindGrid:
		present = s.Grid != nil
	case KindPuzzle:
		present = s.Puzzle != nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	if !present {
		return fmt.Errorf("%w: %s", ErrMissingSection, s.Kind)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("problemfile: max_depth cannot be negative (%d)", s.MaxDepth)
	}

	return nil
}

// Marshal renders the spec back to YAML.
func (s *Spec) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
