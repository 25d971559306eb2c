package engine

import (
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()

	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults"},
		{
			name:    "weights do not sum to one",
			mutate:  func(c *Config) { c.Weights.Skill = 0.6 },
			wantErr: "must sum to 1.0",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Weights = Weights{Skill: 1.2, Interest: -0.2} },
			wantErr: "negative weight",
		},
		{
			name:    "deep-dive weights",
			mutate:  func(c *Config) { c.DeepDiveWeights = Weights{Interest: 0.5} },
			wantErr: "deep-dive weights",
		},
		{
			name:    "deep-dive skill weight",
			mutate:  func(c *Config) { c.DeepDiveWeights = Weights{Skill: 0.5, Interest: 0.25, Strength: 0.25} },
			wantErr: "skill must be 0",
		},
		{
			name:    "inverted scale",
			mutate:  func(c *Config) { c.Scale = Scale{Min: 5, Max: 1} },
			wantErr: "scale",
		},
		{
			name:    "skill thresholds out of order",
			mutate:  func(c *Config) { c.Thresholds.SomeSkill = 75 },
			wantErr: "some-skill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			_, err := New(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 1e-9)
	assert.InDelta(t, 1.0, DefaultDeepDiveWeights().Sum(), 1e-9)
}

func TestRankOrdersAndAssignsRanks(t *testing.T) {
	t.Parallel()

	ranked := Rank([]MatchResult{
		{CandidateID: "low", MatchPercentage: 10},
		{CandidateID: "high", MatchPercentage: 52.5},
	}, 0)

	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].CandidateID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "low", ranked[1].CandidateID)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankBreaksTiesByID(t *testing.T) {
	t.Parallel()

	input := func() []MatchResult {
		return []MatchResult{
			{CandidateID: "c", MatchPercentage: 40},
			{CandidateID: "a", MatchPercentage: 40},
			{CandidateID: "b", MatchPercentage: 40},
			{CandidateID: "top", MatchPercentage: 90},
		}
	}

	first := Rank(input(), 0)
	for range 10 {
		assert.Equal(t, first, Rank(input(), 0))
	}

	ids := make([]string, 0, len(first))
	for _, r := range first {
		ids = append(ids, r.CandidateID)
	}
	assert.Equal(t, []string{"top", "a", "b", "c"}, ids)
}

func TestRankKeepsFullPrecision(t *testing.T) {
	t.Parallel()

	// Both round to 50.00 but must not tie.
	ranked := Rank([]MatchResult{
		{CandidateID: "a", MatchPercentage: 50.001},
		{CandidateID: "b", MatchPercentage: 50.004},
	}, 0)

	assert.Equal(t, "b", ranked[0].CandidateID)
	assert.Equal(t, ranked[0].Rounded(), ranked[1].Rounded())
}

func TestRankTruncates(t *testing.T) {
	t.Parallel()

	results := make([]MatchResult, 0, 12)
	for i := range 12 {
		results = append(results, MatchResult{CandidateID: fmt.Sprintf("m%02d", i), MatchPercentage: float64(i)})
	}

	ranked := Rank(results, DefaultTopN)
	require.Len(t, ranked, DefaultTopN)
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, "m11", ranked[0].CandidateID)
	assert.Equal(t, "m05", ranked[DefaultTopN-1].CandidateID)
}

func endToEndCatalog() []Candidate {
	return []Candidate{
		{
			ID:             "major-b",
			Name:           "Major B",
			RequiredSkills: refs("x", "y"),
			IdealInterests: RatingMap{"a": 1},
			IdealStrengths: RatingMap{"b": 1},
		},
		{
			ID:             "major-a",
			Name:           "Major A",
			RequiredSkills: refs("s1", "s2", "s3", "s4", "s5"),
			IdealInterests: RatingMap{"a": 5},
			IdealStrengths: RatingMap{"b": 5},
		},
	}
}

func endToEndResponses() UserResponses {
	return UserResponses{
		SkillsCurrent:    refs("s1", "s2"),
		SkillsAspiration: refs("s3", "unrelated"),
		Interests:        RatingMap{"a": 5},
		Strengths:        RatingMap{"b": 5},
	}
}

func TestRecommendEndToEnd(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)
	results := e.Recommend(endToEndCatalog(), endToEndResponses())

	require.Len(t, results, 2)

	a, b := results[0], results[1]
	assert.Equal(t, "major-a", a.CandidateID)
	assert.Equal(t, "Major A", a.CandidateName)
	assert.Equal(t, 1, a.Rank)
	assert.Equal(t, "major-b", b.CandidateID)
	assert.Equal(t, 2, b.Rank)
	assert.Greater(t, a.MatchPercentage, b.MatchPercentage)

	assert.InDelta(t, 60, a.Breakdown.Skill, 1e-9)
	assert.InDelta(t, 100, a.Breakdown.Interest, 1e-9)
	assert.InDelta(t, 100, a.Breakdown.Strength, 1e-9)
	assert.InDelta(t, 80, a.MatchPercentage, 1e-9)
	assert.Equal(t, []string{ReasonSomeSkills, ReasonInterests, ReasonStrengths}, a.Reasoning)

	assert.Zero(t, b.Breakdown.Skill)
	assert.Zero(t, b.Breakdown.Interest)
	assert.Zero(t, b.MatchPercentage)
	assert.Empty(t, b.Reasoning)
}

func TestRecommendMatchIsRecomputable(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)
	for _, r := range e.Recommend(endToEndCatalog(), endToEndResponses()) {
		assert.InDelta(t, DefaultWeights().Apply(r.Breakdown), r.MatchPercentage, 1e-9)
	}
}

func TestRecommendIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)

	first, err := json.Marshal(e.Recommend(endToEndCatalog(), endToEndResponses()))
	require.NoError(t, err)
	second, err := json.Marshal(e.Recommend(endToEndCatalog(), endToEndResponses()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRecommendEmptyInputs(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)

	results := e.Recommend(nil, endToEndResponses())
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results = e.Recommend(endToEndCatalog(), UserResponses{})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Zero(t, r.MatchPercentage)
		assert.Empty(t, r.Reasoning)
	}
	// Equal scores fall back to id order.
	assert.Equal(t, "major-a", results[0].CandidateID)
}

func TestRecommendCandidateWithoutSkills(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)
	results := e.Recommend([]Candidate{{ID: "m", IdealInterests: RatingMap{"a": 5}}}, endToEndResponses())

	require.Len(t, results, 1)
	assert.Zero(t, results[0].Breakdown.Skill)
	assert.InDelta(t, 30, results[0].MatchPercentage, 1e-9)
}

func TestRecommendParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	catalog := make([]Candidate, 0, parallelThreshold*3)
	for i := range parallelThreshold * 3 {
		catalog = append(catalog, Candidate{
			ID:             fmt.Sprintf("major-%03d", i),
			RequiredSkills: refs(fmt.Sprintf("s%d", i%5), fmt.Sprintf("s%d", i%7)),
			IdealInterests: RatingMap{"a": 1 + i%5},
			IdealStrengths: RatingMap{"b": 1 + i%3},
		})
	}
	responses := UserResponses{
		SkillsCurrent: refs("s1", "s3"),
		Interests:     RatingMap{"a": 4},
		Strengths:     RatingMap{"b": 2},
	}

	sequential := newEngine(t, func(c *Config) { c.Workers = 1; c.TopN = 0 })
	parallel := newEngine(t, func(c *Config) { c.Workers = 8; c.TopN = 0 })

	assert.Equal(t, sequential.Recommend(catalog, responses), parallel.Recommend(catalog, responses))
}

func TestDeepDive(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)

	candidates := []Candidate{
		{
			ID:             "single",
			IdealInterests: RatingMap{"q1": 5, "q2": 3},
		},
		{
			ID:             "split",
			IdealInterests: RatingMap{"q1": 5},
			IdealStrengths: RatingMap{"q2": 1},
		},
		{
			ID: "empty",
		},
	}
	ratings := RatingMap{"q1": 5, "q2": 1}

	results := e.DeepDive(candidates, ratings)
	require.Len(t, results, 3)

	byID := map[string]MatchResult{}
	for _, r := range results {
		byID[r.CandidateID] = r
	}

	single := byID["single"]
	assert.InDelta(t, 75, single.MatchPercentage, 1e-9)
	assert.Zero(t, single.Breakdown.Skill)
	assert.InDelta(t, 75, single.Breakdown.Interest, 1e-9)
	assert.InDelta(t, 75, single.Breakdown.Strength, 1e-9)

	split := byID["split"]
	assert.InDelta(t, 100, split.Breakdown.Interest, 1e-9)
	assert.InDelta(t, 100, split.Breakdown.Strength, 1e-9)
	assert.InDelta(t, 100, split.MatchPercentage, 1e-9)
	assert.Equal(t, []string{ReasonInterests, ReasonStrengths}, split.Reasoning)

	assert.Zero(t, byID["empty"].MatchPercentage)

	assert.Equal(t, "split", results[0].CandidateID)
	assert.Equal(t, "single", results[1].CandidateID)
	assert.Equal(t, "empty", results[2].CandidateID)
}

func TestDeepDiveWeightsAreConfigurable(t *testing.T) {
	t.Parallel()

	e := newEngine(t, func(c *Config) { c.DeepDiveWeights = Weights{Interest: 0.8, Strength: 0.2} })

	results := e.DeepDive([]Candidate{{
		ID:             "split",
		IdealInterests: RatingMap{"q1": 5},
		IdealStrengths: RatingMap{"q2": 5},
	}}, RatingMap{"q1": 5, "q2": 1})

	require.Len(t, results, 1)
	assert.InDelta(t, 80, results[0].MatchPercentage, 1e-9)
}

func TestDeepDiveTruncates(t *testing.T) {
	t.Parallel()

	e := newEngine(t, func(c *Config) { c.DeepDiveTopN = 2 })

	candidates := []Candidate{
		{ID: "a", IdealInterests: RatingMap{"q": 5}},
		{ID: "b", IdealInterests: RatingMap{"q": 4}},
		{ID: "c", IdealInterests: RatingMap{"q": 1}},
	}

	results := e.DeepDive(candidates, RatingMap{"q": 5})
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].CandidateID)
	assert.Equal(t, "b", results[1].CandidateID)
}

func TestScoreIsUnranked(t *testing.T) {
	t.Parallel()

	e := newEngine(t, nil)
	r := e.Score(endToEndCatalog()[1], endToEndResponses())

	assert.Zero(t, r.Rank)
	assert.InDelta(t, 80, r.MatchPercentage, 1e-9)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 52.35, Round2(52.3456), 1e-9)
	assert.InDelta(t, 33.33, MatchResult{MatchPercentage: 100.0 / 3}.Rounded(), 1e-9)
}
