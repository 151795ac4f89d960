package rawdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

var testHeroNames = []string{"astro", "bebop", "inferno"}

func TestDecodeHeroes(t *testing.T) {
	raw := map[string]json.RawMessage{
		"hero_astro":       json.RawMessage(`{"m_HeroID": 1, "m_bDisabled": false}`),
		"hero_bebop":       json.RawMessage(`{"m_HeroID": 2}`),
		"hero_base":        json.RawMessage(`{"m_HeroID": 99}`),
		"hero_dummy_test":  json.RawMessage(`{"m_HeroID": 98}`),
		"astro_melee":      json.RawMessage(`{"m_HeroID": 97}`),
		"hero_no_id":       json.RawMessage(`{"m_bDisabled": true}`),
		"hero_broken":      json.RawMessage(`"not an object"`),
	}

	d := NewDecoder(testHeroNames, nil)
	heroes := d.DecodeHeroes(raw)

	require.Len(t, heroes, 2)
	assert.Equal(t, "hero_astro", heroes[0].ClassName)
	assert.Equal(t, 1, *heroes[0].HeroID)
	assert.Equal(t, "hero_bebop", heroes[1].ClassName)
	assert.Equal(t, 2, *heroes[1].HeroID)
}

func TestDecodeItems_Classification(t *testing.T) {
	raw := map[string]json.RawMessage{
		"citadel_ability_dash":      json.RawMessage(`{}`),
		"upgrade_headshot_booster":  json.RawMessage(`{"m_iItemTier": 1}`),
		"citadel_weapon_astro_set":  json.RawMessage(`{}`),
		"astro_gun":                 json.RawMessage(`{}`),
		"astro_unknown_junk":        json.RawMessage(`{}`),
		"hero_base_ability":         json.RawMessage(`{}`),
		"generic_person":            json.RawMessage(`{}`),
		"totally_unknown_thing":     json.RawMessage(`{}`),
	}

	d := NewDecoder(testHeroNames, nil)
	items := d.DecodeItems(raw)

	kinds := make(map[string]domain.ItemType, len(items))
	for _, item := range items {
		kinds[item.Base().ClassName] = item.Kind()
	}

	assert.Equal(t, map[string]domain.ItemType{
		"citadel_ability_dash":     domain.ItemTypeAbility,
		"upgrade_headshot_booster": domain.ItemTypeUpgrade,
		"citadel_weapon_astro_set": domain.ItemTypeWeapon,
		// hero-intrinsic abilities classify through the allowlist
		"astro_gun":          domain.ItemTypeAbility,
		"astro_unknown_junk": domain.ItemTypeAbility,
	}, kinds)
}

func TestDecodeItems_SortedByClassName(t *testing.T) {
	raw := map[string]json.RawMessage{
		"upgrade_c": json.RawMessage(`{}`),
		"upgrade_a": json.RawMessage(`{}`),
		"upgrade_b": json.RawMessage(`{}`),
	}

	d := NewDecoder(testHeroNames, nil)
	items := d.DecodeItems(raw)

	require.Len(t, items, 3)
	assert.Equal(t, "upgrade_a", items[0].Base().ClassName)
	assert.Equal(t, "upgrade_b", items[1].Base().ClassName)
	assert.Equal(t, "upgrade_c", items[2].Base().ClassName)
}

func TestDecodeItems_BrokenRecordDoesNotPoisonBatch(t *testing.T) {
	raw := map[string]json.RawMessage{
		"upgrade_good":   json.RawMessage(`{"m_bDisabled": false}`),
		"upgrade_broken": json.RawMessage(`[1, 2, 3]`),
	}

	d := NewDecoder(testHeroNames, nil)
	items := d.DecodeItems(raw)

	require.Len(t, items, 1)
	assert.Equal(t, "upgrade_good", items[0].Base().ClassName)
}

func TestLoadHeroNames(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(dir, "hero_names.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid list", func(t *testing.T) {
		path := writeFile(t, `{"version": "1", "heroes": ["Astro", "bebop"]}`)
		names, err := LoadHeroNames(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"astro", "bebop"}, names)
	})

	t.Run("empty list", func(t *testing.T) {
		path := writeFile(t, `{"heroes": []}`)
		_, err := LoadHeroNames(path)
		assert.ErrorIs(t, err, ErrInvalidHeroNames)
	})

	t.Run("duplicate name", func(t *testing.T) {
		path := writeFile(t, `{"heroes": ["astro", "Astro"]}`)
		_, err := LoadHeroNames(path)
		assert.ErrorIs(t, err, ErrDuplicateHeroName)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadHeroNames(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}
