package catalog

import (
	"slices"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

type Candidates struct {
	Items []engine.Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, len(c.Items))

	for _, v := range c.Items {
		ids = append(ids, v.ID)
	}

	return ids
}

func (c *Candidates) FindByID(id string) *engine.Candidate {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}

	return nil
}

// Exclude removes candidates whose id is in ids and returns the removed ids.
func (c *Candidates) Exclude(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}

	excluded := make([]string, 0)
	kept := make([]engine.Candidate, 0, len(c.Items))

	for _, v := range c.Items {
		if slices.Contains(ids, v.ID) {
			excluded = append(excluded, v.ID)
			continue
		}
		kept = append(kept, v)
	}

	c.Items = kept

	return excluded
}

// ExcludeFunc removes candidates matching fn and returns the removed ids.
func (c *Candidates) ExcludeFunc(fn func(engine.Candidate) bool) []string {
	excluded := make([]string, 0)
	kept := make([]engine.Candidate, 0, len(c.Items))

	for _, v := range c.Items {
		if fn(v) {
			excluded = append(excluded, v.ID)
			continue
		}
		kept = append(kept, v)
	}

	c.Items = kept

	return excluded
}
