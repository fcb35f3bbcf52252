package translations

import (
	"fmt"

	"translations-manager/core/resolver"
	"translations-manager/core/storage"

	"go.uber.org/zap"
)

// CleanGroup holds the dead keys of one lang file of one locale.
type CleanGroup struct {
	Locale string
	File   string
	Keys   []string
}

// CleanPlan lists every dead translation a clean run would remove.
type CleanPlan struct {
	Groups []CleanGroup
	// Total is the number of dead key errors in the plan.
	Total int
}

// Cleaner removes dependent translations that have no reference counterpart.
type Cleaner struct {
	store    storage.Store
	settings *Settings
	logger   *zap.Logger
}

func NewCleaner(store storage.Store, settings *Settings, logger *zap.Logger) *Cleaner {
	return &Cleaner{store: store, settings: settings, logger: logger}
}

// Plan groups the dead key errors of listing by locale and file, in listing order.
// Ignored errors are left out.
func (c *Cleaner) Plan(listing *Listing) *CleanPlan {
	plan := &CleanPlan{}
	index := make(map[[2]string]int)
	for _, e := range listing.Errors(true) {
		if e.Kind != NoReferenceTranslation {
			continue
		}
		id := [2]string{e.Locale, e.File}
		i, ok := index[id]
		if !ok {
			i = len(plan.Groups)
			index[id] = i
			plan.Groups = append(plan.Groups, CleanGroup{Locale: e.Locale, File: e.File})
		}
		plan.Groups[i].Keys = append(plan.Groups[i].Keys, e.Key)
		plan.Total++
	}
	return plan
}

// Apply removes the planned keys, reading and writing each file once.
// It returns the number of dead key errors processed.
func (c *Cleaner) Apply(plan *CleanPlan) (int, error) {
	for _, g := range plan.Groups {
		path := c.settings.LangFilePath(g.Locale, g.File)
		t, err := c.store.ReadTree(path)
		if err != nil {
			return 0, fmt.Errorf("failed to clean '%s/%s': %w", g.Locale, g.File, err)
		}

		removed := 0
		for _, key := range g.Keys {
			if resolver.Remove(key, t) {
				removed++
			}
		}

		if err := c.store.WriteTree(path, t); err != nil {
			return 0, fmt.Errorf("failed to clean '%s/%s': %w", g.Locale, g.File, err)
		}
		c.logger.Debug("Cleaned file",
			zap.String("locale", g.Locale),
			zap.String("file", g.File),
			zap.Int("removed", removed),
		)
	}
	return plan.Total, nil
}

// Clean removes every dead translation in listing.
func (c *Cleaner) Clean(listing *Listing) (int, error) {
	return c.Apply(c.Plan(listing))
}
