package problemfile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blindsearch/core"
	"github.com/katalvlaran/blindsearch/problems/grid"
	"github.com/katalvlaran/blindsearch/problems/mapcoloring"
	"github.com/katalvlaran/blindsearch/problems/puzzle"
	"github.com/katalvlaran/blindsearch/problems/route"
)

// ErrBadBorder is returned for a coloring border that is not a pair.
var ErrBadBorder = errors.New("problemfile: a border must name exactly two regions")

// Instance is a built problem ready to be searched.
type Instance struct {
	Kind     Kind
	Name     string
	MaxDepth int
	// Describe is a one-line size summary, e.g. "4 vertices, 3 edges".
	Describe string
	run      runFunc
}

// Run searches the instance with algo.
//
// For DFS, params.Depth is the limit (DepthUnset for none). For IDDFS it is
// the maximum depth, falling back to the file's max_depth and then to
// DefaultMaxDepth. Other algorithms ignore it.
func (in *Instance) Run(algo Algorithm, params Params) (Outcome, error) {
	depth := params.Depth
	if algo == IDDFS && depth < 0 {
		depth = in.MaxDepth
	}

	return in.run(algo, depth, params.Options)
}

// Build turns a validated spec into an Instance.
func Build(spec *Spec) (*Instance, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	in := &Instance{Kind: spec.Kind, Name: spec.Name, MaxDepth: spec.MaxDepth}
	if in.MaxDepth == 0 {
		in.MaxDepth = DefaultMaxDepth
	}
	if in.Name == "" {
		in.Name = string(spec.Kind)
	}

	var err error
	switch spec.Kind {
	case KindRoute:
		err = in.buildRoute(spec.Route)
	case KindColoring:
		err = in.buildColoring(spec.Coloring)
	case KindGrid:
		err = in.buildGrid(spec.Grid)
	case KindPuzzle:
		err = in.buildPuzzle(spec.Puzzle)
	}
	if err != nil {
		return nil, fmt.Errorf("problemfile: %s %q: %w", spec.Kind, in.Name, err)
	}

	return in, nil
}

func (in *Instance) buildRoute(rs *RouteSpec) error {
	opts := []core.GraphOption{core.WithDirected(rs.Directed)}
	if rs.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, v := range rs.Vertices {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range rs.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	p, err := route.New(g, rs.Start, rs.Goals...)
	if err != nil {
		return err
	}

	// bidirectional search aims at the first goal
	in.Describe = fmt.Sprintf("%d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	in.run = runner[string, route.Move](p, rs.Goals[0], true, nil)

	return nil
}

func (in *Instance) buildColoring(cs *ColoringSpec) error {
	g := core.NewGraph()
	for _, r := range cs.Regions {
		if err := g.AddVertex(r); err != nil {
			return err
		}
	}
	for _, b := range cs.Borders {
		if len(b) != 2 {
			return fmt.Errorf("%w: %v", ErrBadBorder, b)
		}
		if _, err := g.AddEdge(b[0], b[1], 0); err != nil {
			return err
		}
	}
	p, err := mapcoloring.New(g, cs.Colors, cs.Order)
	if err != nil {
		return err
	}

	var goal mapcoloring.State
	hasGoal := cs.Goal != nil
	if hasGoal {
		if goal, err = p.StateOf(cs.Goal); err != nil {
			return err
		}
	}
	in.Describe = fmt.Sprintf("%d regions, %d borders, %d colours", len(cs.Order), g.EdgeCount(), len(cs.Colors))
	in.run = runner[mapcoloring.State, mapcoloring.Action](p, goal, hasGoal, nil)

	return nil
}

func (in *Instance) buildGrid(gs *GridSpec) error {
	opts := grid.DefaultOptions()
	if gs.Threshold != nil {
		opts.LandThreshold = *gs.Threshold
	}
	if gs.Diagonal {
		opts.Conn = grid.Conn8
	}
	start := grid.Cell{X: gs.Start.X, Y: gs.Start.Y}
	goal := grid.Cell{X: gs.Goal.X, Y: gs.Goal.Y}
	p, err := grid.New(gs.Cells, start, goal, opts)
	if err != nil {
		return err
	}

	in.Describe = fmt.Sprintf("%dx%d grid", p.Width, p.Height)
	in.run = runner[grid.Cell, grid.Direction](p, goal, true, p.Render)

	return nil
}

func (in *Instance) buildPuzzle(ps *PuzzleSpec) error {
	start, err := puzzle.Parse(ps.Start)
	if err != nil {
		return err
	}
	goal := puzzle.Goal()
	if ps.Goal != "" {
		if goal, err = puzzle.Parse(ps.Goal); err != nil {
			return err
		}
	}
	p, err := puzzle.New(start, goal)
	if err != nil {
		return err
	}

	in.Describe = fmt.Sprintf("%d-tile puzzle", puzzle.Cells-1)
	in.run = runner[puzzle.Board, puzzle.Move](p, goal, true, nil)

	return nil
}
