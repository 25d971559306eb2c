package filtering

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

type emptyProfileFilter struct {
	disabled bool
	reason   string
}

// NewEmptyProfile creates a filter that removes candidates with no required
// skills and no ideal ratings. Such candidates always score 0.
func NewEmptyProfile() Filter {
	return &emptyProfileFilter{}
}

func (f *emptyProfileFilter) Name() string { return "empty_profile" }

func (f *emptyProfileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *emptyProfileFilter) IsEnabled() bool { return !f.disabled }

func (f *emptyProfileFilter) Validate(*Config) error { return nil }

func (f *emptyProfileFilter) Apply(_ context.Context, deps Deps, c *catalog.Candidates) (*catalog.Candidates, Step, error) {
	initial := c.Len()
	excluded := c.ExcludeFunc(func(candidate engine.Candidate) bool {
		return len(candidate.RequiredSkills) == 0 &&
			len(candidate.IdealInterests) == 0 &&
			len(candidate.IdealStrengths) == 0
	})

	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding candidates without a profile. They can never match",
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, newStep(initial, excluded, c), nil
}

func (f *emptyProfileFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
