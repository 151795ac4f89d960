package rawdata

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/raimannma/deadlock-assets-api/internal/metrics"
	"github.com/raimannma/deadlock-assets-api/internal/utils"
)

// namespacePrefix is stripped from class names before classification.
const namespacePrefix = "citadel_"

// Decoder turns one build's untyped key-value dump into typed raw records.
//
// Classification is driven by the first underscore token of the class name.
// Hero-intrinsic abilities are named after the hero instead of carrying an
// "ability" prefix, so a hero short-name allowlist disambiguates them. That
// allowlist is injected configuration: it grows whenever new heroes ship and
// is a heuristic, not a schema guarantee.
type Decoder struct {
	heroNames map[string]struct{}
	log       *slog.Logger
}

// NewDecoder creates a decoder with the given hero short-name allowlist.
func NewDecoder(heroNames []string, log *slog.Logger) *Decoder {
	if log == nil {
		log = slog.Default()
	}
	set := make(map[string]struct{}, len(heroNames))
	for _, n := range heroNames {
		set[strings.ToLower(n)] = struct{}{}
	}
	return &Decoder{heroNames: set, log: log}
}

// skipEntry filters out template records that do not describe concrete
// entities.
func skipEntry(className string) bool {
	if strings.Contains(className, "base") || strings.Contains(className, "dummy") {
		return true
	}
	return strings.Contains(className, "generic") && !strings.Contains(className, "citadel")
}

// DecodeHeroes decodes the raw hero dump. Records that fail to decode or
// lack a hero id are dropped; the rest of the batch is unaffected.
func (d *Decoder) DecodeHeroes(raw map[string]json.RawMessage) []*Hero {
	heroes := make([]*Hero, 0, len(raw))
	for className, data := range raw {
		if !strings.HasPrefix(className, "hero_") || skipEntry(className) {
			continue
		}
		var h Hero
		if err := json.Unmarshal(data, &h); err != nil {
			d.log.Warn("Failed to decode hero record", "class_name", className, "error", err)
			metrics.DecodeRecordsDropped.WithLabelValues("hero").Inc()
			continue
		}
		if h.HeroID == nil {
			d.log.Warn("Hero record missing hero id", "class_name", className)
			metrics.DecodeRecordsDropped.WithLabelValues("hero").Inc()
			continue
		}
		h.ClassName = className
		heroes = append(heroes, &h)
	}
	sort.Slice(heroes, func(i, j int) bool { return *heroes[i].HeroID < *heroes[j].HeroID })
	metrics.DecodeRecordsTotal.WithLabelValues("hero").Add(float64(len(heroes)))
	return heroes
}

// DecodeItems decodes the raw item dump into abilities, weapons and
// upgrades. Entries that classify to none of the three kinds are reported
// and dropped.
func (d *Decoder) DecodeItems(raw map[string]json.RawMessage) []Item {
	items := make([]Item, 0, len(raw))
	for className, data := range raw {
		if skipEntry(className) {
			continue
		}

		item := d.classify(className)
		if item == nil {
			d.log.Warn("Unknown class name", "class_name", className)
			metrics.DecodeRecordsDropped.WithLabelValues("item").Inc()
			continue
		}

		if err := json.Unmarshal(data, item); err != nil {
			d.log.Warn("Failed to decode item record",
				"class_name", className, "kind", item.Kind(), "error", err)
			metrics.DecodeRecordsDropped.WithLabelValues("item").Inc()
			continue
		}
		item.Base().ClassName = className
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Base().ClassName < items[j].Base().ClassName
	})
	metrics.DecodeRecordsTotal.WithLabelValues("item").Add(float64(len(items)))
	return items
}

// classify picks the concrete record type for a class name, nil when the
// name matches nothing known.
func (d *Decoder) classify(className string) Item {
	name := strings.ToLower(utils.StripPrefix(className, namespacePrefix))
	first, _, _ := strings.Cut(name, "_")

	switch first {
	case "ability":
		return &Ability{}
	case "upgrade":
		return &Upgrade{}
	case "weapon":
		return &Weapon{}
	}
	if _, ok := d.heroNames[first]; ok {
		return &Ability{}
	}
	return nil
}
