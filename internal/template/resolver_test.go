package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/localization"
	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
)

func decodeAbility(t *testing.T, className, data string) *rawdata.Ability {
	t.Helper()
	var a rawdata.Ability
	require.NoError(t, json.Unmarshal([]byte(data), &a))
	a.ClassName = className
	return &a
}

func decodeHero(t *testing.T, className, data string) *rawdata.Hero {
	t.Helper()
	var h rawdata.Hero
	require.NoError(t, json.Unmarshal([]byte(data), &h))
	h.ClassName = className
	return &h
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func testResolver(t *testing.T) (*Resolver, *rawdata.Ability) {
	t.Helper()
	ability := decodeAbility(t, "astro_gun", `{
		"m_mapAbilityProperties": {
			"AbilityDamage": {"m_strValue": "80"},
			"AbilityCooldown": {"m_strValue": "12.5", "m_strLocTokenOverride": "cooldown_label"}
		},
		"m_vecAbilityUpgrades": [
			{"m_vecPropertyUpgrades": []},
			{"m_vecPropertyUpgrades": [
				{"m_strPropertyName": "abilitydamage", "m_strBonus": "120m"}
			]}
		]
	}`)
	hero := decodeHero(t, "hero_astro", `{
		"m_HeroID": 1,
		"m_mapBoundAbilities": {"ESlot_Signature_2": "astro_gun"}
	}`)
	table := localization.NewTable(domain.LanguageEnglish, map[string]string{
		"hero_astro":              "Astro",
		"citadel_keybind_ability2": "Q",
		"citadel_keybind_crouch":  "Ctrl",
	})
	return NewResolver([]*rawdata.Hero{hero}, table, nil), ability
}

func TestResolve_PropertyValue(t *testing.T) {
	r, ability := testResolver(t)

	out := r.Resolve(ability, strPtr("Deals {s:AbilityDamage} damage"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Deals 80 damage", *out)
}

func TestResolve_LocTokenOverride(t *testing.T) {
	r, ability := testResolver(t)

	out := r.Resolve(ability, strPtr("Cooldown {s:cooldown_label}s"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Cooldown 12.5s", *out)
}

func TestResolve_TierOverride(t *testing.T) {
	r, ability := testResolver(t)

	// tier 2 reads the upgrade bonus, case-insensitive, unit suffix removed
	out := r.Resolve(ability, strPtr("Deals {s:AbilityDamage} damage"), intPtr(2))
	require.NotNil(t, out)
	assert.Equal(t, "Deals 120 damage", *out)

	// tier 1 has no matching upgrade so the base value holds
	out = r.Resolve(ability, strPtr("Deals {s:AbilityDamage} damage"), intPtr(1))
	require.NotNil(t, out)
	assert.Equal(t, "Deals 80 damage", *out)
}

func TestResolve_Keybinds(t *testing.T) {
	r, ability := testResolver(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "primary attack", input: "Press {s:iv_attack}", expected: "Press LMC"},
		{name: "secondary attack", input: "Press {s:iv_attack2}", expected: "Press RMC"},
		{name: "alt cast", input: "Press {s:key_alt_cast}", expected: "Press M3"},
		{name: "reload", input: "Press {s:key_reload}", expected: "Press R"},
		{name: "crouch via alias", input: "Press {s:key_duck}", expected: "Press Ctrl"},
		{name: "ability keybind", input: "Press {s:in_ability2}", expected: "Press Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Resolve(ability, &tt.input, nil)
			require.NotNil(t, out)
			assert.Equal(t, tt.expected, *out)
		})
	}
}

func TestResolve_AbilityKey(t *testing.T) {
	r, ability := testResolver(t)

	out := r.Resolve(ability, strPtr("Signature {i:ability_key}"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Signature 2", *out)
}

func TestResolve_HeroName(t *testing.T) {
	r, ability := testResolver(t)

	out := r.Resolve(ability, strPtr("{s:hero_name} fires"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Astro fires", *out)
}

func TestResolve_HeroName_ClassNameFallback(t *testing.T) {
	r, _ := testResolver(t)

	// not bound to any hero slot, hero short name parsed from class name
	orphan := decodeAbility(t, "citadel_astro_trick", `{}`)
	out := r.Resolve(orphan, strPtr("{s:hero_name} trick"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Astro trick", *out)
}

func TestResolve_UnresolvedLeftVerbatim(t *testing.T) {
	r, ability := testResolver(t)

	out := r.Resolve(ability, strPtr("Mystery {s:does_not_exist} value"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Mystery {s:does_not_exist} value", *out)
}

func TestResolve_NilAndEmpty(t *testing.T) {
	r, ability := testResolver(t)

	assert.Nil(t, r.Resolve(ability, nil, nil))
	assert.Nil(t, r.Resolve(ability, strPtr(""), nil))
}

func TestResolve_NoPlaceholders(t *testing.T) {
	r, ability := testResolver(t)

	out := r.Resolve(ability, strPtr("Plain text"), nil)
	require.NotNil(t, out)
	assert.Equal(t, "Plain text", *out)
}
