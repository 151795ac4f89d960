// Package identity derives stable numeric ids from class names and
// resolves cross-references between raw records.
package identity

import (
	"log/slog"

	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
)

// HeroForItem returns the id of the hero whose bound ability slots contain
// the given item class name, nil when no hero owns it.
func HeroForItem(className string, heroes []*rawdata.Hero) *int {
	for _, h := range heroes {
		if h.OwnsItem(className) {
			return h.HeroID
		}
	}
	return nil
}

// ComponentItemIDs maps an upgrade's component class names to their ids.
// Self-references and names that resolve to no known item are dropped.
func ComponentItemIDs(upgrade *rawdata.Upgrade, items []rawdata.Item, log *slog.Logger) []uint32 {
	if len(upgrade.ComponentItems) == 0 {
		return nil
	}
	if log == nil {
		log = slog.Default()
	}

	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.Base().ClassName] = struct{}{}
	}

	ids := make([]uint32, 0, len(upgrade.ComponentItems))
	for _, component := range upgrade.ComponentItems {
		if component == upgrade.ClassName {
			continue
		}
		if _, ok := known[component]; !ok {
			log.Debug("Component item not found",
				"class_name", upgrade.ClassName, "component", component)
			continue
		}
		ids = append(ids, ClassNameID(component))
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
