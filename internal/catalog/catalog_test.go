package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

const testCatalog = `
skills:
  - id: python
    name: Python
  - id: statistics
    name: Statistics
interests:
  - id: tech
    text: I enjoy working with technology.
strengths:
  - id: analysis
    text: I break problems into parts.
majors:
  - id: cs
    name: Computer Science
    required_skills: [python, statistics]
    ideal_interests: {tech: 5}
    ideal_strengths: {analysis: 4}
    questions:
      - id: cs-ml
        text: How much do you enjoy building models?
        category: ai
    specializations:
      - id: cs-ai
        name: Artificial Intelligence
        ideal_interests: {cs-ml: 5}
    occupations:
      - id: 15-1252.00
        title: Software Developers
        tasks:
          - Analyze user needs, then design software.
          - Test programs.
        ideal_ratings: {cs-ml: 2}
  - id: art
    name: Fine Arts
`

func parseTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Parse([]byte(testCatalog))
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	c := parseTestCatalog(t)

	require.Len(t, c.Majors, 2)
	assert.Equal(t, []string{"cs", "art"}, c.MajorIDs())
	assert.Len(t, c.Skills, 2)
	assert.Equal(t, "tech", c.Interests[0].ID)

	cs := c.FindMajor("cs")
	require.NotNil(t, cs)
	assert.Equal(t, engine.RatingMap{"tech": 5}, cs.IdealInterests)
	assert.Equal(t, []engine.SkillRef{"python", "statistics"}, cs.RequiredSkills)
	assert.Nil(t, c.FindMajor("missing"))
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("majors: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Majors, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMajorCandidates(t *testing.T) {
	candidates := parseTestCatalog(t).MajorCandidates()

	require.Equal(t, 2, candidates.Len())
	cs := candidates.FindByID("cs")
	require.NotNil(t, cs)
	assert.Equal(t, "Computer Science", cs.Name)
	assert.Equal(t, engine.RatingMap{"analysis": 4}, cs.IdealStrengths)
}

func TestDeepDive(t *testing.T) {
	cs := parseTestCatalog(t).FindMajor("cs")

	candidates := cs.DeepDive(engine.DefaultScale())
	assert.Equal(t, []string{"cs-ai", "15-1252.00"}, candidates.IDs())

	occupation := candidates.FindByID("15-1252.00")
	require.NotNil(t, occupation)
	assert.Equal(t, "Software Developers", occupation.Name)
	assert.Equal(t, engine.RatingMap{
		"15-1252.00/task-1": 5,
		"15-1252.00/task-2": 5,
		"cs-ml":             2,
	}, occupation.IdealInterests)
}

func TestDeepDiveQuestions(t *testing.T) {
	cs := parseTestCatalog(t).FindMajor("cs")

	qs := cs.DeepDiveQuestions()
	require.Len(t, qs, 3)
	assert.Equal(t, "cs-ml", qs[0].ID)
	assert.Equal(t, "15-1252.00/task-1", qs[1].ID)
	assert.Equal(t, "How much would you enjoy analyzing user needs?", qs[1].Text)
	assert.Equal(t, "How much would you enjoy testing programs?", qs[2].Text)
}

func TestCandidatesExclude(t *testing.T) {
	candidates := &Candidates{Items: []engine.Candidate{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	assert.Nil(t, candidates.Exclude(nil))
	assert.Equal(t, []string{"a", "c"}, candidates.Exclude([]string{"c", "a", "zzz"}))
	assert.Equal(t, []string{"b"}, candidates.IDs())

	removed := candidates.ExcludeFunc(func(c engine.Candidate) bool { return c.ID == "b" })
	assert.Equal(t, []string{"b"}, removed)
	assert.Zero(t, candidates.Len())
}

func TestDecodeResponses(t *testing.T) {
	r, err := DecodeResponses(map[string]any{
		"skills_current":    []any{" Python ", "SQL"},
		"skills_aspiration": []any{"statistics"},
		"interests":         map[string]any{"tech": "4"},
		"strengths":         map[string]any{"analysis": 5},
		"ratings":           map[string]any{"cs-ml": 3},
	})
	require.NoError(t, err)

	assert.Equal(t, engine.RatingMap{"tech": 4}, r.Interests)
	assert.Equal(t, engine.RatingMap{"cs-ml": 3}, r.Ratings)

	u := r.UserResponses()
	assert.Equal(t, []engine.SkillRef{"python", "sql"}, u.SkillsCurrent)
	assert.Equal(t, []engine.SkillRef{"statistics"}, u.SkillsAspiration)
	assert.Equal(t, engine.RatingMap{"analysis": 5}, u.Strengths)
}

func TestDecodeResponsesRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeResponses(map[string]any{"favourites": []any{"cs"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding responses")
}

func TestDecodeResponsesRejectsNonWholeRatings(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "fraction", value: 4.7},
		{name: "bool", value: true},
		{name: "empty string", value: ""},
		{name: "text", value: "four"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResponses(map[string]any{
				"interests": map[string]any{"a": tt.value},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decoding responses")
		})
	}
}

func TestDecodeResponsesAcceptsWholeFloats(t *testing.T) {
	r, err := DecodeResponses(map[string]any{
		"interests": map[string]any{"a": 4.0, "b": " 2 "},
	})
	require.NoError(t, err)
	assert.Equal(t, engine.RatingMap{"a": 4, "b": 2}, r.Interests)
}

func TestLoadResponses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.yaml")
	content := "skills_current: [python]\ninterests:\n  tech: 5\nstrengths:\n  analysis: \"3\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := LoadResponses(path)
	require.NoError(t, err)
	assert.Equal(t, engine.RatingMap{"analysis": 3}, r.Strengths)
	assert.Equal(t, []engine.SkillRef{"python"}, r.SkillsCurrent)
}

func TestDismissedFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dismissed.json")

	empty, err := GetDismissedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, empty.IDs())

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	empty.Append(Dismiss([]engine.MatchResult{
		{CandidateID: "cs", CandidateName: "Computer Science"},
		{CandidateID: "art"},
	}, "tier-1", now))
	empty.Append(Dismiss([]engine.MatchResult{{CandidateID: "cs-ai"}}, "deep-dive", now))
	require.NoError(t, empty.ToFile(path))

	loaded, err := GetDismissedFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cs", "art", "cs-ai"}, loaded.IDs())
	assert.Equal(t, []string{"cs", "art"}, loaded.IDsForTier("tier-1"))
	assert.Equal(t, []string{"cs-ai"}, loaded.IDsForTier("deep-dive"))
	assert.Equal(t, "tier-1", loaded.Items[0].Tier)
	assert.Equal(t, "Computer Science", loaded.Items[0].Name)
	assert.True(t, loaded.Items[0].DismissedAt.Equal(now))
}

func TestDismissedEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dismissed.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	d, err := GetDismissedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, d.Items)
}
