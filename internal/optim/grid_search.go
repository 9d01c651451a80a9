// Package optim searches the hull design space for the best design
// under a caller-chosen objective.
package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
)

// Objective scores a computed design. Search maximizes it; minimize by
// negating inside the function.
type Objective func(hydro.Results) float64

// GridSearch walks the Cartesian product of evenly spaced values over
// the declared domains of the chosen parameters.
type GridSearch struct {
	params []string
	values [][]float64
}

// NewGridSearch prepares a search over the named design parameters,
// each sampled at steps points across its domain.
func NewGridSearch(params []string, steps int) (*GridSearch, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("optim: no parameters to vary")
	}
	if steps < 2 {
		return nil, fmt.Errorf("optim: steps must be >= 2, got %d", steps)
	}

	g := &GridSearch{params: params}
	for _, name := range params {
		d, ok := hull.Domains[name]
		if !ok {
			return nil, fmt.Errorf("optim: unknown parameter %q", name)
		}
		vals := make([]float64, steps)
		span := (d.Max - d.Min) / float64(steps-1)
		for i := range vals {
			vals[i] = d.Min + span*float64(i)
		}
		g.values = append(g.values, vals)
	}
	return g, nil
}

// Search evaluates every grid point starting from base and returns the
// design with the highest objective score.
func (g *GridSearch) Search(ctx context.Context, base hull.Params, objective Objective) (hull.Params, float64, error) {
	best := math.Inf(-1)
	bestParams := base

	if err := g.searchRecursive(ctx, 0, base, objective, &best, &bestParams); err != nil {
		return base, 0, err
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current hull.Params,
	objective Objective,
	best *float64,
	bestParams *hull.Params,
) error {
	if depth == len(g.params) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("optim: search interrupted: %w", err)
		}
		if val := objective(hydro.Compute(current)); val > *best {
			*best = val
			*bestParams = current
		}
		return nil
	}

	name := g.params[depth]
	for _, val := range g.values[depth] {
		next := current
		hull.Set(&next, name, val)
		if err := g.searchRecursive(ctx, depth+1, next, objective, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}
