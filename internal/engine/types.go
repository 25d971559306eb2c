// Package engine scores candidates (majors, specializations, occupations)
// against a user's assessment and ranks them.
//
// Everything in this package is pure: candidates and responses must be fully
// loaded and validated by the caller, and the same input always yields the
// same ranked output.
package engine

import (
	"math"
	"slices"
	"strings"
)

// SkillRef is a canonical skill identifier.
type SkillRef string

// NormalizeSkillRef returns the canonical form of a skill identifier.
func NormalizeSkillRef(ref SkillRef) SkillRef {
	return SkillRef(strings.ToLower(strings.TrimSpace(string(ref))))
}

// SkillSet is a deduplicated set of normalized skill identifiers.
type SkillSet map[SkillRef]struct{}

// NewSkillSet normalizes the given refs and collapses duplicates. Empty
// identifiers are dropped.
func NewSkillSet(groups ...[]SkillRef) SkillSet {
	set := make(SkillSet)
	for _, refs := range groups {
		for _, ref := range refs {
			normalized := NormalizeSkillRef(ref)
			if normalized == "" {
				continue
			}
			set[normalized] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains ref. The ref is normalized first.
func (s SkillSet) Has(ref SkillRef) bool {
	_, ok := s[NormalizeSkillRef(ref)]
	return ok
}

// Sorted returns the members in ascending order.
func (s SkillSet) Sorted() []SkillRef {
	refs := make([]SkillRef, 0, len(s))
	for ref := range s {
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	return refs
}

// RatingMap maps a trait or question identifier to a rating on the configured
// scale. Unrated traits are absent keys.
type RatingMap map[string]int

// Candidate is a major, specialization or occupation with its ideal profile.
type Candidate struct {
	ID             string
	Name           string
	RequiredSkills []SkillRef
	IdealInterests RatingMap
	IdealStrengths RatingMap
}

// UserResponses is a completed Tier-1 assessment.
type UserResponses struct {
	SkillsCurrent    []SkillRef
	SkillsAspiration []SkillRef
	Interests        RatingMap
	Strengths        RatingMap
}

// Skills returns the union of current and aspiration skills.
func (r UserResponses) Skills() SkillSet {
	return NewSkillSet(r.SkillsCurrent, r.SkillsAspiration)
}

// ScoreBreakdown holds the per-dimension scores, each in [0,100].
type ScoreBreakdown struct {
	Skill    float64 `json:"skill"`
	Interest float64 `json:"interest"`
	Strength float64 `json:"strength"`
}

// MatchResult is one scored and ranked candidate.
type MatchResult struct {
	CandidateID     string         `json:"candidate_id"`
	CandidateName   string         `json:"candidate_name,omitempty"`
	MatchPercentage float64        `json:"match_percentage"`
	Breakdown       ScoreBreakdown `json:"score_breakdown"`
	Reasoning       []string       `json:"reasoning"`
	Rank            int            `json:"rank"`
}

// Rounded returns the match percentage rounded for display.
func (r MatchResult) Rounded() float64 {
	return Round2(r.MatchPercentage)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
