// Package filtering prunes the candidate catalog before scoring.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
	"github.com/Nour-Al-Hazzouri/majorly/internal/logger"
)

// Filter is one pruning step over the candidates of a tier.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, c *catalog.Candidates) (*catalog.Candidates, Step, error)
}

// Deps are shared by every step.
type Deps struct {
	Logger *zap.Logger
}

// Step counts what a filter did. Removed lists the dropped candidate ids.
type Step struct {
	Initial int
	Dropped int
	Left    int
	Removed []string
}

func newStep(initial int, removed []string, c *catalog.Candidates) Step {
	return Step{Initial: initial, Dropped: len(removed), Left: c.Len(), Removed: removed}
}

// Config is the user input the filters read in Validate.
type Config struct {
	// Excluded are candidate ids removed unconditionally.
	Excluded []string
	// DismissFile lists candidates dismissed in earlier runs.
	DismissFile string
	// Tier selects which dismiss file entries apply.
	Tier string
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// Outcome is the record of one step within a Run.
type Outcome struct {
	Name    string
	Skipped bool
	Step    Step
}

// Report lists the outcomes of a Run in step order.
type Report []Outcome

// Dropped returns how many candidates the run removed in total.
func (r Report) Dropped() int {
	total := 0
	for _, o := range r {
		total += o.Step.Dropped
	}
	return total
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled step against cfg, then applies them in order.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, c *catalog.Candidates) (*catalog.Candidates, Report, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("validating %s: %w", step.Name(), err)
		}
	}

	log := logger.WithFields(deps.Logger)
	report := make(Report, 0, len(steps))

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}

		if !step.IsEnabled() {
			log.Info("filter disabled", zap.String("name", step.Name()))
			report = append(report, Outcome{Name: step.Name(), Skipped: true})
			continue
		}

		next, info, err := step.Apply(ctx, deps, c)
		if err != nil {
			return nil, report, fmt.Errorf("%s: %w", step.Name(), err)
		}

		log.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		report = append(report, Outcome{Name: step.Name(), Step: info})
		c = next
	}

	return c, report, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{Name: step.Name(), Enabled: step.IsEnabled()})
	}
	return statuses
}
