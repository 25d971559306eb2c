package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
)

type excludedFilter struct {
	ids []string
}

// NewExcluded creates a filter that removes candidates listed in the config.
func NewExcluded() Filter {
	return &excludedFilter{}
}

func (f *excludedFilter) Name() string { return "excluded" }

func (f *excludedFilter) Disable(string) {}

func (f *excludedFilter) IsEnabled() bool { return true }

func (f *excludedFilter) Validate(cfg *Config) error {
	f.ids = nil
	if cfg != nil {
		for _, id := range cfg.Excluded {
			if id = strings.TrimSpace(id); id != "" {
				f.ids = append(f.ids, id)
			}
		}
	}
	return nil
}

func (f *excludedFilter) Apply(_ context.Context, deps Deps, c *catalog.Candidates) (*catalog.Candidates, Step, error) {
	initial := c.Len()
	if len(f.ids) == 0 {
		return c, newStep(initial, nil, c), nil
	}

	excluded := c.Exclude(f.ids)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding candidates by config",
			zap.Strings("excluded_candidates", excluded),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, newStep(initial, excluded, c), nil
}

func (f *excludedFilter) Status() Status {
	details := map[string]string{}
	if len(f.ids) > 0 {
		details["ids"] = strings.Join(f.ids, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
