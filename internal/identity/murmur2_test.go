package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNameID(t *testing.T) {
	tests := []struct {
		className string
		expected  uint32
	}{
		{"", 3050872623},
		{"a", 516911585},
		{"ab", 3892251786},
		{"abc", 3603893526},
		{"abcd", 3022530028},
		{"citadel_ability_dash", 2207638101},
		{"citadel_weapon_astro_set", 2082220949},
		{"upgrade_headshot_booster", 2010028405},
		{"citadel_upgrade_clip_size", 2531284088},
		{"hero_astro", 18073204},
	}

	for _, tt := range tests {
		t.Run(tt.className, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassNameID(tt.className))
		})
	}
}

func TestClassNameID_Deterministic(t *testing.T) {
	assert.Equal(t, ClassNameID("upgrade_headshot_booster"), ClassNameID("upgrade_headshot_booster"))
	assert.NotEqual(t, ClassNameID("upgrade_headshot_booster"), ClassNameID("upgrade_headshot_boosters"))
}
