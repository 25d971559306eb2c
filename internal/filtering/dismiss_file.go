package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
)

const showDismissedMsg = "show-dismissed flag is set"

type dismissFileFilter struct {
	path   string
	tier   string
	ignore bool
}

// NewDismissFile creates a filter that removes candidates the user dismissed
// in earlier runs. When ignore is set the step keeps everything.
func NewDismissFile(ignore bool) Filter {
	return &dismissFileFilter{ignore: ignore}
}

func (f *dismissFileFilter) Name() string { return "dismiss_file" }

func (f *dismissFileFilter) Disable(string) {}

func (f *dismissFileFilter) IsEnabled() bool { return true }

func (f *dismissFileFilter) Validate(cfg *Config) error {
	f.path = ""
	f.tier = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.DismissFile)
		f.tier = cfg.Tier
	}
	return nil
}

func (f *dismissFileFilter) Apply(_ context.Context, deps Deps, c *catalog.Candidates) (*catalog.Candidates, Step, error) {
	initial := c.Len()
	if f.path == "" {
		return c, newStep(initial, nil, c), nil
	}

	if f.ignore {
		if deps.Logger != nil {
			deps.Logger.Info("keeping dismissed candidates", zap.String("reason", showDismissedMsg))
		}
		return c, newStep(initial, nil, c), nil
	}

	dismissed, err := catalog.GetDismissedFromFile(f.path)
	if err != nil {
		return c, Step{}, fmt.Errorf("getting dismissed candidates from file: %w", err)
	}

	removed := c.Exclude(dismissed.IDsForTier(f.tier))
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates based on dismiss file",
			zap.String("path", f.path),
			zap.Strings("excluded_candidates", removed),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, newStep(initial, removed, c), nil
}

func (f *dismissFileFilter) Status() Status {
	details := map[string]string{
		"exclude_dismissed": strconv.FormatBool(!f.ignore),
	}
	if f.path != "" {
		details["path"] = f.path
	}
	if f.tier != "" {
		details["tier"] = f.tier
	}
	reason := ""
	if f.ignore {
		reason = "skip requested via flag"
	}
	return Status{Name: f.Name(), Enabled: true, Reason: reason, Details: details}
}
