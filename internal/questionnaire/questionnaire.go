// Package questionnaire collects assessment answers interactively.
package questionnaire

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/Nour-Al-Hazzouri/majorly/internal/catalog"
	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
	"github.com/Nour-Al-Hazzouri/majorly/internal/questions"
	"github.com/Nour-Al-Hazzouri/majorly/internal/utils"
)

const (
	PromptDone = "done"
	PromptSkip = "skip"

	maxLogLength = 60
	selectSize   = 10
)

// SelectFunc shows items under label and returns the chosen index and item.
type SelectFunc func(label string, items []string) (int, string, error)

// PromptSelect is the terminal SelectFunc.
func PromptSelect(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  selectSize,
	}
	return prompt.Run()
}

// Collector asks the questions of both tiers.
type Collector struct {
	selectFn SelectFunc
	scale    engine.Scale
	logger   *zap.Logger
}

// New creates a Collector. A nil selectFn falls back to PromptSelect.
func New(selectFn SelectFunc, scale engine.Scale, logger *zap.Logger) *Collector {
	if selectFn == nil {
		selectFn = PromptSelect
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Collector{selectFn: selectFn, scale: scale, logger: logger}
}

// CollectTier1 asks for current skills, aspiration skills and a rating for
// every interest and strength statement of the catalog.
func (c *Collector) CollectTier1(cat *catalog.Catalog) (*catalog.Responses, error) {
	if cat == nil {
		return nil, errors.New("catalog is required")
	}

	current, err := c.pickSkills("Which skills do you have now?", cat.Skills, nil)
	if err != nil {
		return nil, fmt.Errorf("current skills: %w", err)
	}

	aspiration, err := c.pickSkills("Which skills would you like to build?", cat.Skills, current)
	if err != nil {
		return nil, fmt.Errorf("aspiration skills: %w", err)
	}

	interests, err := c.rateTraits(cat.Interests)
	if err != nil {
		return nil, fmt.Errorf("interests: %w", err)
	}

	strengths, err := c.rateTraits(cat.Strengths)
	if err != nil {
		return nil, fmt.Errorf("strengths: %w", err)
	}

	return &catalog.Responses{
		SkillsCurrent:    current,
		SkillsAspiration: aspiration,
		Interests:        interests,
		Strengths:        strengths,
	}, nil
}

// CollectDeepDive asks every question and returns the answers keyed by
// question id. Skipped questions are left unrated.
func (c *Collector) CollectDeepDive(qs []questions.Question) (engine.RatingMap, error) {
	ratings := make(engine.RatingMap, len(qs))
	for _, q := range qs {
		v, ok, err := c.rate(q.Text)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		if ok {
			ratings[q.ID] = v
		}
	}

	return ratings, nil
}

func (c *Collector) pickSkills(label string, skills []*catalog.Skill, taken []engine.SkillRef) ([]engine.SkillRef, error) {
	remaining := make([]*catalog.Skill, 0, len(skills))
	seen := engine.NewSkillSet(taken)
	for _, s := range skills {
		if !seen.Has(engine.SkillRef(s.ID)) {
			remaining = append(remaining, s)
		}
	}

	var picked []engine.SkillRef
	for len(remaining) > 0 {
		items := make([]string, 0, len(remaining)+1)
		for _, s := range remaining {
			items = append(items, skillLabel(s))
		}
		items = append(items, PromptDone)

		idx, _, err := c.selectFn(label, items)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(remaining) {
			break
		}

		chosen := remaining[idx]
		picked = append(picked, engine.NormalizeSkillRef(engine.SkillRef(chosen.ID)))
		remaining = slices.Delete(remaining, idx, idx+1)

		c.logger.Debug("skill picked", zap.String("skill", chosen.ID), zap.Int("left", len(remaining)))
	}

	return picked, nil
}

func (c *Collector) rateTraits(traits []*catalog.Trait) (engine.RatingMap, error) {
	ratings := make(engine.RatingMap, len(traits))
	for _, t := range traits {
		v, ok, err := c.rate(t.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.ID, err)
		}
		if ok {
			ratings[t.ID] = v
		}
	}

	return ratings, nil
}

// rate asks for one rating on the scale. ok is false when skipped.
func (c *Collector) rate(text string) (int, bool, error) {
	items := make([]string, 0, c.scale.Span()+2)
	for v := c.scale.Min; v <= c.scale.Max; v++ {
		items = append(items, strconv.Itoa(v))
	}
	items = append(items, PromptSkip)

	idx, _, err := c.selectFn(text, items)
	if err != nil {
		return 0, false, err
	}

	if idx < 0 || idx > c.scale.Span() {
		c.logger.Debug("question skipped", zap.String("question", utils.TruncateForLog(text, maxLogLength)))
		return 0, false, nil
	}

	v := c.scale.Min + idx
	c.logger.Debug("question rated",
		zap.String("question", utils.TruncateForLog(text, maxLogLength)),
		zap.Int("rating", v),
	)

	return v, true, nil
}

func skillLabel(s *catalog.Skill) string {
	if s.Name == "" {
		return s.ID
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.ID)
}
