package handler

import (
	"context"
	"fmt"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/registry"
)

// stubCatalog serves pre-built snapshots keyed by (build, language).
type stubCatalog struct {
	versions  []int
	snapshots map[string]*registry.Snapshot
}

func snapshotKey(build int, lang domain.Language) string {
	return fmt.Sprintf("%d:%s", build, lang)
}

func newStubCatalog(snapshots ...*registry.Snapshot) *stubCatalog {
	c := &stubCatalog{snapshots: make(map[string]*registry.Snapshot)}
	seen := make(map[int]bool)
	for _, s := range snapshots {
		c.snapshots[snapshotKey(s.Build, s.Language)] = s
		if !seen[s.Build] {
			seen[s.Build] = true
			c.versions = append(c.versions, s.Build)
		}
	}
	return c
}

func (c *stubCatalog) Versions() []int { return c.versions }

func (c *stubCatalog) Latest() (int, error) {
	if len(c.versions) == 0 {
		return 0, registry.ErrNoBuilds
	}
	return c.versions[0], nil
}

func (c *stubCatalog) Snapshot(_ context.Context, id int, lang domain.Language) (*registry.Snapshot, error) {
	if s, ok := c.snapshots[snapshotKey(id, lang)]; ok {
		return s, nil
	}
	if s, ok := c.snapshots[snapshotKey(id, domain.LanguageEnglish)]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: build %d", domain.ErrBuildNotFound, id)
}

func intPtr(v int) *int { return &v }

// testSnapshot builds a small but representative snapshot: two heroes (one
// disabled), a signature ability, a hero weapon and two upgrades.
func testSnapshot(build int, lang domain.Language) *registry.Snapshot {
	heroes := []domain.Hero{
		{ID: 1, ClassName: "hero_astro", Name: "Holliday", PlayerSelectable: true},
		{ID: 2, ClassName: "hero_bebop", Name: "Bebop", Disabled: true},
	}

	items := []domain.Item{
		&domain.Ability{ItemBase: domain.ItemBase{
			ID: 1000, ClassName: "citadel_ability_dash", Name: "Dash",
			Type: domain.ItemTypeAbility, Hero: intPtr(1),
		}},
		&domain.Weapon{ItemBase: domain.ItemBase{
			ID: 1001, ClassName: "citadel_weapon_astro_set", Name: "Pistol",
			Type: domain.ItemTypeWeapon, Hero: intPtr(1),
		}},
		&domain.Upgrade{
			ItemBase: domain.ItemBase{
				ID: 1002, ClassName: "upgrade_headshot_booster", Name: "Headshot Booster",
				Type: domain.ItemTypeUpgrade,
			},
			ItemSlotType: domain.ItemSlotTypeWeaponMod,
			Shopable:     true,
		},
		&domain.Upgrade{
			ItemBase: domain.ItemBase{
				ID: 1003, ClassName: "upgrade_extra_stamina", Name: "Extra Stamina",
				Type: domain.ItemTypeUpgrade,
			},
			ItemSlotType: domain.ItemSlotTypeTech,
			Shopable:     true,
		},
	}

	ranks := []domain.Rank{
		{Tier: 0, Name: "Obscurus", Color: "#333333"},
		{Tier: 1, Name: "Initiate", Color: "#CB643B"},
	}

	return registry.NewSnapshot(build, lang, heroes, items, ranks)
}
