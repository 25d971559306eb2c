package engine

import (
	"errors"
	"fmt"
	"math"
)

// Tier-1 aggregation weights.
const (
	SkillWeight    = 0.5
	InterestWeight = 0.3
	StrengthWeight = 0.2
)

// Deep-dive weights, used when a candidate models interests and strengths separately.
const (
	DeepDiveInterestWeight = 0.5
	DeepDiveStrengthWeight = 0.5
)

// Rating scale bounds.
const (
	RatingMin = 1
	RatingMax = 5
)

// Reasoning thresholds.
const (
	StrongSkillThreshold = 70
	SomeSkillThreshold   = 40
	InterestThreshold    = 80
	StrengthThreshold    = 80
)

// Result sizes.
const (
	DefaultTopN         = 7
	DefaultDeepDiveTopN = 10
)

const (
	weightTolerance   = 0.001
	defaultWorkers    = 4
	parallelThreshold = 64
)

// Weights are the relative importance of each score dimension.
type Weights struct {
	Skill    float64 `mapstructure:"skill" json:"skill"`
	Interest float64 `mapstructure:"interest" json:"interest"`
	Strength float64 `mapstructure:"strength" json:"strength"`
}

// DefaultWeights returns the Tier-1 weights.
func DefaultWeights() Weights {
	return Weights{Skill: SkillWeight, Interest: InterestWeight, Strength: StrengthWeight}
}

// DefaultDeepDiveWeights returns the deep-dive weights. The skill dimension is
// not modeled at that granularity.
func DefaultDeepDiveWeights() Weights {
	return Weights{Interest: DeepDiveInterestWeight, Strength: DeepDiveStrengthWeight}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Skill + w.Interest + w.Strength
}

// Validate checks that weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Interest < 0 || w.Strength < 0 {
		return fmt.Errorf("negative weight in %+v", w)
	}
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	return nil
}

// Apply combines a breakdown into a single match percentage.
func (w Weights) Apply(b ScoreBreakdown) float64 {
	return b.Skill*w.Skill + b.Interest*w.Interest + b.Strength*w.Strength
}

// Scale is the closed rating range used by users and ideal profiles.
type Scale struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// DefaultScale returns the 1..5 scale.
func DefaultScale() Scale {
	return Scale{Min: RatingMin, Max: RatingMax}
}

// Span is the maximum possible distance between two ratings.
func (s Scale) Span() int {
	return s.Max - s.Min
}

// Contains reports whether v lies within the scale.
func (s Scale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Thresholds drive the reasoning rules.
type Thresholds struct {
	StrongSkill float64 `mapstructure:"strong-skill"`
	SomeSkill   float64 `mapstructure:"some-skill"`
	Interest    float64 `mapstructure:"interest"`
	Strength    float64 `mapstructure:"strength"`
}

// DefaultThresholds returns the 70/40/80/80 thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongSkill: StrongSkillThreshold,
		SomeSkill:   SomeSkillThreshold,
		Interest:    InterestThreshold,
		Strength:    StrengthThreshold,
	}
}

// Config tunes the engine.
type Config struct {
	Weights         Weights    `mapstructure:"weights"`
	DeepDiveWeights Weights    `mapstructure:"deep-dive-weights"`
	Scale           Scale      `mapstructure:"scale"`
	Thresholds      Thresholds `mapstructure:"thresholds"`
	// TopN caps Tier-1 results. Zero or less returns every candidate.
	TopN         int `mapstructure:"top-n"`
	DeepDiveTopN int `mapstructure:"deep-dive-top-n"`
	// Workers bounds the goroutines used to score large catalogs.
	Workers int `mapstructure:"workers"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Weights:         DefaultWeights(),
		DeepDiveWeights: DefaultDeepDiveWeights(),
		Scale:           DefaultScale(),
		Thresholds:      DefaultThresholds(),
		TopN:            DefaultTopN,
		DeepDiveTopN:    DefaultDeepDiveTopN,
		Workers:         defaultWorkers,
	}
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error
	if err := c.Weights.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("weights: %w", err))
	}
	if err := c.DeepDiveWeights.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("deep-dive weights: %w", err))
	}
	if c.DeepDiveWeights.Skill != 0 {
		errs = append(errs, fmt.Errorf("deep-dive weights: skill must be 0, got %.2f", c.DeepDiveWeights.Skill))
	}
	if c.Scale.Span() <= 0 {
		errs = append(errs, fmt.Errorf("scale: max (%d) must be greater than min (%d)", c.Scale.Max, c.Scale.Min))
	}
	t := c.Thresholds
	if t.StrongSkill < 0 || t.SomeSkill < 0 || t.Interest < 0 || t.Strength < 0 {
		errs = append(errs, fmt.Errorf("thresholds: negative value in %+v", t))
	}
	if t.SomeSkill > t.StrongSkill {
		errs = append(errs, fmt.Errorf("thresholds: some-skill (%.0f) above strong-skill (%.0f)", t.SomeSkill, t.StrongSkill))
	}
	return errors.Join(errs...)
}
