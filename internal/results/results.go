// Package results holds one ranked run and renders it for the console and
// for dump files.
package results

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

const (
	TierRecommend = "tier-1"
	TierDeepDive  = "deep-dive"
)

// Results is a ranked run. Items keep full precision; rounding happens only
// when rendering.
type Results struct {
	RunID     string
	Tier      string
	Major     string
	CreatedAt time.Time
	Weights   engine.Weights
	Items     []engine.MatchResult
}

type dump struct {
	RunID     string               `json:"run_id"`
	Tier      string               `json:"tier"`
	Major     string               `json:"major_id,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	Weights   engine.Weights       `json:"weights"`
	Items     []engine.MatchResult `json:"items"`
}

// New wraps ranked items with a fresh run id.
func New(tier, major string, weights engine.Weights, items []engine.MatchResult) *Results {
	return &Results{
		RunID:     uuid.NewString(),
		Tier:      tier,
		Major:     major,
		CreatedAt: time.Now().UTC(),
		Weights:   weights,
		Items:     items,
	}
}

func (r *Results) Len() int {
	return len(r.Items)
}

func (r *Results) IDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		ids = append(ids, item.CandidateID)
	}
	return ids
}

func (r *Results) FindByID(id string) *engine.MatchResult {
	for i := range r.Items {
		if r.Items[i].CandidateID == id {
			return &r.Items[i]
		}
	}
	return nil
}

// Exclude removes items with the given ids. Remaining ranks are unchanged.
func (r *Results) Exclude(ids []string) {
	r.Items = slices.DeleteFunc(r.Items, func(item engine.MatchResult) bool {
		return slices.Contains(ids, item.CandidateID)
	})
}

// Rounded returns a copy of the items with every score rounded to two decimals.
func (r *Results) Rounded() []engine.MatchResult {
	rounded := make([]engine.MatchResult, 0, len(r.Items))
	for _, item := range r.Items {
		item.MatchPercentage = item.Rounded()
		item.Breakdown = engine.ScoreBreakdown{
			Skill:    engine.Round2(item.Breakdown.Skill),
			Interest: engine.Round2(item.Breakdown.Interest),
			Strength: engine.Round2(item.Breakdown.Strength),
		}
		rounded = append(rounded, item)
	}
	return rounded
}

func (r *Results) MarshalJSON() ([]byte, error) {
	return json.Marshal(dump{
		RunID:     r.RunID,
		Tier:      r.Tier,
		Major:     r.Major,
		CreatedAt: r.CreatedAt,
		Weights:   r.Weights,
		Items:     r.Rounded(),
	})
}

// Lines renders one line per item, for example "1. Computer Science (cs) 82.50%".
func (r *Results) Lines() []string {
	lines := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, Line(item))
	}
	return lines
}

func Line(item engine.MatchResult) string {
	name := item.CandidateName
	if name == "" {
		name = item.CandidateID
	}
	return fmt.Sprintf("%d. %s (%s) %.2f%%", item.Rank, name, item.CandidateID, item.Rounded())
}

// Explain describes how the match percentage of id was computed.
func (r *Results) Explain(id string) (string, error) {
	item := r.FindByID(id)
	if item == nil {
		return "", fmt.Errorf("there is no such candidate id %s", id)
	}

	b := item.Breakdown
	w := r.Weights

	var sb strings.Builder
	sb.WriteString(Line(*item))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  skill    %6.2f x %.2f = %6.2f\n", b.Skill, w.Skill, b.Skill*w.Skill)
	fmt.Fprintf(&sb, "  interest %6.2f x %.2f = %6.2f\n", b.Interest, w.Interest, b.Interest*w.Interest)
	fmt.Fprintf(&sb, "  strength %6.2f x %.2f = %6.2f\n", b.Strength, w.Strength, b.Strength*w.Strength)
	for _, reason := range item.Reasoning {
		sb.WriteString("  - ")
		sb.WriteString(reason)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// DumpToTmpFile writes the rounded results as JSON into the temp dir and
// returns the file name.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "majorly_"+r.Tier+"_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
