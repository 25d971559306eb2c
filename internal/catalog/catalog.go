// Package catalog loads majors, specializations and occupations from disk and
// turns them into engine candidates.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
	"github.com/Nour-Al-Hazzouri/majorly/internal/questions"
)

type Catalog struct {
	Skills    []*Skill `yaml:"skills" validate:"unique=ID,dive"`
	Interests []*Trait `yaml:"interests" validate:"unique=ID,dive"`
	Strengths []*Trait `yaml:"strengths" validate:"unique=ID,dive"`
	Majors    []*Major `yaml:"majors" validate:"unique=ID,dive"`
}

type Skill struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name"`
}

// Trait is a Tier-1 interest or strength statement the user rates.
type Trait struct {
	ID   string `yaml:"id" validate:"required"`
	Text string `yaml:"text" validate:"required"`
}

type Major struct {
	ID              string               `yaml:"id" validate:"required"`
	Name            string               `yaml:"name" validate:"required"`
	RequiredSkills  []engine.SkillRef    `yaml:"required_skills" validate:"dive,required"`
	IdealInterests  engine.RatingMap     `yaml:"ideal_interests" validate:"dive,keys,required,endkeys,rating"`
	IdealStrengths  engine.RatingMap     `yaml:"ideal_strengths" validate:"dive,keys,required,endkeys,rating"`
	Specializations []*Specialization    `yaml:"specializations" validate:"unique=ID,dive"`
	Occupations     []*Occupation        `yaml:"occupations" validate:"unique=ID,dive"`
	Questions       []questions.Question `yaml:"questions" validate:"unique=ID,dive"`
}

type Specialization struct {
	ID             string           `yaml:"id" validate:"required"`
	Name           string           `yaml:"name" validate:"required"`
	IdealInterests engine.RatingMap `yaml:"ideal_interests" validate:"dive,keys,required,endkeys,rating"`
	IdealStrengths engine.RatingMap `yaml:"ideal_strengths" validate:"dive,keys,required,endkeys,rating"`
}

// Occupation is scored on situational questions generated from its tasks and
// on any curated question listed in IdealRatings.
type Occupation struct {
	ID           string           `yaml:"id" validate:"required"`
	Title        string           `yaml:"title" validate:"required"`
	Tasks        []string         `yaml:"tasks"`
	IdealRatings engine.RatingMap `yaml:"ideal_ratings" validate:"dive,keys,required,endkeys,rating"`
}

// Load reads a YAML catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	return &c, nil
}

func (c *Catalog) FindMajor(id string) *Major {
	for _, m := range c.Majors {
		if m.ID == id {
			return m
		}
	}

	return nil
}

func (c *Catalog) MajorIDs() []string {
	ids := make([]string, 0, len(c.Majors))
	for _, m := range c.Majors {
		ids = append(ids, m.ID)
	}

	return ids
}

// MajorCandidates returns the Tier-1 candidates.
func (c *Catalog) MajorCandidates() *Candidates {
	items := make([]engine.Candidate, 0, len(c.Majors))
	for _, m := range c.Majors {
		items = append(items, engine.Candidate{
			ID:             m.ID,
			Name:           m.Name,
			RequiredSkills: m.RequiredSkills,
			IdealInterests: m.IdealInterests,
			IdealStrengths: m.IdealStrengths,
		})
	}

	return &Candidates{Items: items}
}

// DeepDive returns the specializations and occupations of the major as
// candidates. Occupation profiles include generated task questions.
func (m *Major) DeepDive(scale engine.Scale) *Candidates {
	items := make([]engine.Candidate, 0, len(m.Specializations)+len(m.Occupations))
	for _, s := range m.Specializations {
		items = append(items, engine.Candidate{
			ID:             s.ID,
			Name:           s.Name,
			IdealInterests: s.IdealInterests,
			IdealStrengths: s.IdealStrengths,
		})
	}

	for _, o := range m.Occupations {
		items = append(items, engine.Candidate{
			ID:             o.ID,
			Name:           o.Title,
			IdealInterests: questions.IdealProfile(o.ID, o.Tasks, o.IdealRatings, scale),
		})
	}

	return &Candidates{Items: items}
}

// DeepDiveQuestions returns the curated questions followed by the
// situational questions of every occupation.
func (m *Major) DeepDiveQuestions() []questions.Question {
	result := make([]questions.Question, 0, len(m.Questions))
	result = append(result, m.Questions...)

	for _, o := range m.Occupations {
		result = append(result, questions.Situational(o.ID, o.Tasks)...)
	}

	return result
}
