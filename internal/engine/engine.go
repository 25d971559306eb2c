package engine

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Engine scores and ranks candidates. It holds only immutable configuration
// and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an Engine after validating cfg.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}

	return &Engine{cfg: cfg}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Score computes an unranked result for a single Tier-1 candidate.
func (e *Engine) Score(c Candidate, r UserResponses) MatchResult {
	return e.score(c, r.Skills(), r)
}

func (e *Engine) score(c Candidate, userSkills SkillSet, r UserResponses) MatchResult {
	b := ScoreBreakdown{
		Skill:    SkillOverlapScore(NewSkillSet(c.RequiredSkills), userSkills),
		Interest: RatingScore(c.IdealInterests, r.Interests, e.cfg.Scale),
		Strength: RatingScore(c.IdealStrengths, r.Strengths, e.cfg.Scale),
	}

	return MatchResult{
		CandidateID:     c.ID,
		CandidateName:   c.Name,
		MatchPercentage: e.cfg.Weights.Apply(b),
		Breakdown:       b,
		Reasoning:       Reasons(b, e.cfg.Thresholds),
	}
}

// Recommend scores every candidate against the responses and returns the
// top ranked majors. An empty catalog yields an empty list.
func (e *Engine) Recommend(candidates []Candidate, r UserResponses) []MatchResult {
	userSkills := r.Skills()

	results := e.scoreAll(len(candidates), func(i int) MatchResult {
		return e.score(candidates[i], userSkills, r)
	})

	return Rank(results, e.cfg.TopN)
}

// DeepDive scores specializations or occupations of one major against the
// deep-dive answers. There is no skill dimension at this level.
func (e *Engine) DeepDive(candidates []Candidate, ratings RatingMap) []MatchResult {
	results := e.scoreAll(len(candidates), func(i int) MatchResult {
		return e.scoreDeepDive(candidates[i], ratings)
	})

	return Rank(results, e.cfg.DeepDiveTopN)
}

func (e *Engine) scoreDeepDive(c Candidate, ratings RatingMap) MatchResult {
	var b ScoreBreakdown
	if len(c.IdealInterests) > 0 && len(c.IdealStrengths) > 0 {
		b.Interest = RatingScore(c.IdealInterests, ratings, e.cfg.Scale)
		b.Strength = RatingScore(c.IdealStrengths, ratings, e.cfg.Scale)
	} else {
		// A single profile feeds both dimensions so the weighted sum equals it.
		single := RatingScore(mergeRatings(c.IdealInterests, c.IdealStrengths), ratings, e.cfg.Scale)
		b.Interest = single
		b.Strength = single
	}

	return MatchResult{
		CandidateID:     c.ID,
		CandidateName:   c.Name,
		MatchPercentage: e.cfg.DeepDiveWeights.Apply(b),
		Breakdown:       b,
		Reasoning:       Reasons(b, e.cfg.Thresholds),
	}
}

// scoreAll runs score for indexes [0, n). Large catalogs are split across
// workers; every goroutine owns its own slot in the output.
func (e *Engine) scoreAll(n int, score func(i int) MatchResult) []MatchResult {
	results := make([]MatchResult, n)

	if n < parallelThreshold || e.cfg.Workers <= 1 {
		for i := range n {
			results[i] = score(i)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)
	for i := range n {
		g.Go(func() error {
			results[i] = score(i)
			return nil
		})
	}
	// Scoring never fails.
	_ = g.Wait()

	return results
}
