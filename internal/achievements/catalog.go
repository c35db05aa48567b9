package achievements

import "fmt"

// Catalog is an immutable, validated set of achievement entries.
type Catalog struct {
	entries []Achievement
	byID    map[string]Achievement
}

// NewCatalog validates and indexes entries. IDs must be unique, targets
// positive, requirement types known, and milestone requirements must
// name a counter key.
func NewCatalog(entries []Achievement) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Achievement, len(entries))}
	for _, a := range entries {
		if a.ID == "" {
			return nil, fmt.Errorf("achievement with empty ID")
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate achievement ID %q", a.ID)
		}
		if a.Requirement.Target <= 0 {
			return nil, fmt.Errorf("achievement %s: target must be positive", a.ID)
		}
		if _, err := resolve(a.Requirement, UserStats{}); err != nil {
			return nil, fmt.Errorf("achievement %s: %w", a.ID, err)
		}
		if a.Requirement.Type == ReqMilestone && a.Requirement.CounterKey == "" {
			return nil, fmt.Errorf("achievement %s: milestone requirement missing counter key", a.ID)
		}
		c.entries = append(c.entries, a)
		c.byID[a.ID] = a
	}
	return c, nil
}

// All returns catalog entries in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) All() []Achievement {
	return c.entries
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
