package app

import (
	"context"
	"io"

	"github.com/go-logr/logr"

	"cratemover/internal/domain"
	"cratemover/internal/input"
)

// App runs the load, simulate and read-out pipeline over one input.
type App struct {
	Loader       domain.PlanLoader
	Simulator    domain.Simulator
	Fingerprints domain.Fingerprinter
	Log          logr.Logger
}

// New returns an App over the components in w.
func New(w *Wire) *App {
	return &App{
		Loader:       w.Loader,
		Simulator:    w.Simulator,
		Fingerprints: w.Fingerprints,
		Log:          w.Log,
	}
}

// Load reads r fully and parses it into a plan.
func (a *App) Load(r io.Reader) (domain.Plan, error) {
	lines, err := input.ReadLines(r)
	if err != nil {
		return domain.Plan{}, err
	}
	a.Log.V(1).Info("read input", "lines", len(lines))
	return a.Loader.Load(lines)
}

// Simulate applies every move of plan to plan.Stacks in place.
func (a *App) Simulate(ctx context.Context, plan domain.Plan) error {
	return a.Simulator.Run(ctx, plan.Stacks, plan.Moves)
}

// Tops loads r, runs all moves and returns the top crate of each lane.
func (a *App) Tops(ctx context.Context, r io.Reader) ([]domain.Crate, error) {
	plan, err := a.Load(r)
	if err != nil {
		return nil, err
	}
	if err := a.Simulate(ctx, plan); err != nil {
		return nil, err
	}
	return a.Simulator.Tops(plan.Stacks)
}
