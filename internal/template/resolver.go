// Package template resolves {s:...} and {i:...} placeholders embedded in
// localized description strings.
package template

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/raimannma/deadlock-assets-api/internal/localization"
	"github.com/raimannma/deadlock-assets-api/internal/metrics"
	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
)

var (
	strPlaceholder = regexp.MustCompile(`\{s:([^}]+)\}`)
	intPlaceholder = regexp.MustCompile(`\{i:([^}]+)\}`)
)

// varToLoc maps keybind variables to their localization tokens.
var varToLoc = map[string]string{
	"key_duck":    "citadel_keybind_crouch",
	"in_mantle":   "citadel_keybind_mantle",
	"key_innate_1": "citadel_keybind_roll",
}

// Resolver substitutes placeholder variables with values from item
// properties, ability tier upgrades, hero slot bindings and the
// localization table. A variable that resolves to nothing is left verbatim
// so the text stays inspectable.
type Resolver struct {
	heroes []*rawdata.Hero
	table  *localization.Table
	log    *slog.Logger
}

// NewResolver creates a resolver bound to one build's heroes and one
// language table.
func NewResolver(heroes []*rawdata.Hero, table *localization.Table, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{heroes: heroes, table: table, log: log}
}

// Resolve expands all placeholders in input for the given item. The tier
// selects ability upgrade overrides; pass nil for untiered text. Nil or
// empty input yields nil.
func (r *Resolver) Resolve(item rawdata.Item, input *string, tier *int) *string {
	if input == nil || *input == "" {
		return nil
	}
	out := r.resolvePattern(item, *input, strPlaceholder, tier)
	out = r.resolvePattern(item, out, intPlaceholder, tier)
	return &out
}

func (r *Resolver) resolvePattern(item rawdata.Item, input string, pattern *regexp.Regexp, tier *int) string {
	return pattern.ReplaceAllStringFunc(input, func(match string) string {
		variable := pattern.FindStringSubmatch(match)[1]
		if value, ok := r.resolveVariable(item, variable, tier); ok {
			return value
		}
		r.log.Warn("Failed to resolve placeholder",
			"class_name", item.Base().ClassName, "variable", variable)
		metrics.UnresolvedPlaceholders.Inc()
		return match
	})
}

// resolveVariable runs the lookup chain for one placeholder variable.
func (r *Resolver) resolveVariable(item rawdata.Item, variable string, tier *int) (string, bool) {
	base := item.Base()

	var value any
	if p, ok := base.Property(variable); ok {
		value = p.Value.Value()
	} else {
		for _, p := range base.Properties {
			if p.LocTokenOverride != nil && *p.LocTokenOverride == variable {
				value = p.Value.Value()
				break
			}
		}
	}

	// Tiered ability text reads its numbers from the tier's property
	// upgrades, falling back to the base property value.
	if ability, ok := item.(*rawdata.Ability); ok && tier != nil && len(ability.Upgrades) >= *tier {
		for _, pu := range ability.Upgrades[*tier-1].PropertyUpgrades {
			if !strings.EqualFold(pu.Name, variable) {
				continue
			}
			if s, isStr := pu.Bonus.Value().(string); isStr {
				// bonus values carry a trailing meter unit
				value = strings.TrimRight(s, "m")
			} else if !pu.Bonus.IsNil() {
				value = pu.Bonus.Value()
			}
			break
		}
	}

	if value == nil {
		value = r.resolveSpecial(item, variable)
	}

	s := stringify(value)
	return s, s != ""
}

// resolveSpecial handles keybind and hero variables that have no backing
// property. Returns nil when the variable stays unknown.
func (r *Resolver) resolveSpecial(item rawdata.Item, variable string) any {
	switch variable {
	case "iv_attack":
		return "LMC"
	case "iv_attack2":
		return "RMC"
	case "key_alt_cast":
		return "M3"
	case "key_reload":
		return "R"
	case "ability_key":
		return r.abilityKey(item)
	case "hero_name":
		return r.heroName(item)
	}
	if strings.HasPrefix(variable, "in_ability") {
		token := "citadel_keybind_ability" + variable[len(variable)-1:]
		if v, ok := r.table.Lookup(token); ok {
			return v
		}
		return nil
	}
	token := variable
	if mapped, ok := varToLoc[variable]; ok {
		token = mapped
	}
	if v, ok := r.table.Lookup(token); ok {
		return v
	}
	return nil
}

// abilityKey returns the signature slot index the item is bound to on its
// owning hero.
func (r *Resolver) abilityKey(item rawdata.Item) any {
	className := item.Base().ClassName
	for _, h := range r.heroes {
		for slot, bound := range h.Items {
			if bound != className {
				continue
			}
			if index, ok := slot.AbilityIndex(); ok {
				return index
			}
		}
	}
	return nil
}

// heroName returns the display name of the item's owning hero, falling
// back to parsing the hero short name out of the item class name.
func (r *Resolver) heroName(item rawdata.Item) any {
	className := item.Base().ClassName
	for _, h := range r.heroes {
		if h.OwnsItem(className) {
			return r.table.Get(h.ClassName)
		}
	}

	parts := strings.SplitN(className, "_", 3)
	if len(parts) < 2 {
		return nil
	}
	short := parts[1]
	if v, ok := r.table.Lookup(short); ok {
		return v
	}
	if v, ok := r.table.Lookup("hero_" + short); ok {
		return v
	}
	return nil
}

// stringify renders a resolved value. Empty strings and nil mean
// unresolved.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	default:
		return ""
	}
}
