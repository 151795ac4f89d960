package registry

import (
	"strconv"
	"strings"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

// Snapshot is one build projected into one language, with lookup indexes
// over the projected entities. Snapshots are immutable once built.
type Snapshot struct {
	Build    int
	Language domain.Language

	Heroes []domain.Hero
	Items  []domain.Item
	Ranks  []domain.Rank

	heroByID    map[int]*domain.Hero
	itemByID    map[uint32]domain.Item
	itemByClass map[string]domain.Item
}

// NewSnapshot indexes the projected entities for lookup by id and class name.
func NewSnapshot(build int, lang domain.Language, heroes []domain.Hero, items []domain.Item, ranks []domain.Rank) *Snapshot {
	s := &Snapshot{
		Build:       build,
		Language:    lang,
		Heroes:      heroes,
		Items:       items,
		Ranks:       ranks,
		heroByID:    make(map[int]*domain.Hero, len(heroes)),
		itemByID:    make(map[uint32]domain.Item, len(items)),
		itemByClass: make(map[string]domain.Item, len(items)),
	}
	for i := range heroes {
		s.heroByID[heroes[i].ID] = &heroes[i]
	}
	for _, item := range items {
		s.itemByID[item.ItemID()] = item
		s.itemByClass[item.ItemClassName()] = item
	}
	return s
}

// ActiveHeroes returns the heroes that are enabled and released.
func (s *Snapshot) ActiveHeroes() []domain.Hero {
	out := make([]domain.Hero, 0, len(s.Heroes))
	for _, h := range s.Heroes {
		if !h.Disabled && !h.InDevelopment {
			out = append(out, h)
		}
	}
	return out
}

// HeroByID looks a hero up by its numeric id.
func (s *Snapshot) HeroByID(id int) (*domain.Hero, error) {
	if h, ok := s.heroByID[id]; ok {
		return h, nil
	}
	return nil, domain.ErrHeroNotFound
}

// HeroByName matches a hero by localized name or class name,
// case-insensitive.
func (s *Snapshot) HeroByName(name string) (*domain.Hero, error) {
	for i := range s.Heroes {
		h := &s.Heroes[i]
		if strings.EqualFold(h.Name, name) || strings.EqualFold(h.ClassName, name) {
			return h, nil
		}
	}
	return nil, domain.ErrHeroNotFound
}

// ItemByIDOrClassName resolves an item by numeric id when the key parses as
// one, otherwise by class name.
func (s *Snapshot) ItemByIDOrClassName(key string) (domain.Item, error) {
	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		if item, ok := s.itemByID[uint32(id)]; ok {
			return item, nil
		}
		return nil, domain.ErrItemNotFound
	}
	if item, ok := s.itemByClass[key]; ok {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

// ItemsByHeroID returns every item bound to the hero.
func (s *Snapshot) ItemsByHeroID(heroID int) []domain.Item {
	out := make([]domain.Item, 0, 8)
	for _, item := range s.Items {
		if owner := item.HeroID(); owner != nil && *owner == heroID {
			out = append(out, item)
		}
	}
	return out
}

// ItemsByType returns every item of the given kind.
func (s *Snapshot) ItemsByType(itemType domain.ItemType) []domain.Item {
	out := make([]domain.Item, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ItemType() == itemType {
			out = append(out, item)
		}
	}
	return out
}

// ItemsBySlotType returns every upgrade in the given shop slot category.
func (s *Snapshot) ItemsBySlotType(slot domain.ItemSlotType) []domain.Item {
	out := make([]domain.Item, 0, len(s.Items))
	for _, item := range s.Items {
		if upgrade, ok := item.(*domain.Upgrade); ok && upgrade.ItemSlotType == slot {
			out = append(out, item)
		}
	}
	return out
}
