package catalog

import (
	"errors"
	"io/fs"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

// DismissedCandidates is the content of a dismiss file: candidates the user
// does not want to see again. Majors and deep-dive candidates share the file,
// so every entry records the tier it was dismissed from.
type DismissedCandidates struct {
	Items []*DismissedCandidate
}

// DismissedCandidate is one dismissed result. An empty Tier applies to
// every tier.
type DismissedCandidate struct {
	ID          string
	Name        string
	Tier        string `json:",omitempty"`
	DismissedAt time.Time
}

// Dismiss converts shown results of tier into dismiss entries.
func Dismiss(results []engine.MatchResult, tier string, now time.Time) *DismissedCandidates {
	dismissed := &DismissedCandidates{}
	for _, r := range results {
		dismissed.Items = append(dismissed.Items, &DismissedCandidate{
			ID:          r.CandidateID,
			Name:        r.CandidateName,
			Tier:        tier,
			DismissedAt: now.UTC(),
		})
	}
	return dismissed
}

// GetDismissedFromFile reads a dismiss file. A missing or empty file is an
// empty list.
func GetDismissedFromFile(path string) (*DismissedCandidates, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &DismissedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &DismissedCandidates{}, nil
	}

	var dismissed DismissedCandidates
	if err := json.NewDecoder(file).Decode(&dismissed); err != nil {
		return nil, err
	}
	return &dismissed, nil
}

func (d *DismissedCandidates) Append(s *DismissedCandidates) {
	d.Items = append(d.Items, s.Items...)
}

func (d *DismissedCandidates) IDs() []string {
	ids := make([]string, 0, len(d.Items))

	for _, v := range d.Items {
		ids = append(ids, v.ID)
	}

	return ids
}

// IDsForTier returns the ids dismissed from tier, including entries without
// a tier.
func (d *DismissedCandidates) IDsForTier(tier string) []string {
	ids := make([]string, 0, len(d.Items))

	for _, v := range d.Items {
		if v.Tier == "" || v.Tier == tier {
			ids = append(ids, v.ID)
		}
	}

	return ids
}

func (d *DismissedCandidates) ToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
