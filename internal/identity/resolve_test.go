package identity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
)

func decodeHero(t *testing.T, className, data string) *rawdata.Hero {
	t.Helper()
	var h rawdata.Hero
	require.NoError(t, json.Unmarshal([]byte(data), &h))
	h.ClassName = className
	return &h
}

func TestHeroForItem(t *testing.T) {
	heroes := []*rawdata.Hero{
		decodeHero(t, "hero_astro", `{
			"m_HeroID": 1,
			"m_mapBoundAbilities": {
				"ESlot_Signature_1": "astro_gun",
				"ESlot_Signature_2": "astro_charge"
			}
		}`),
		decodeHero(t, "hero_bebop", `{
			"m_HeroID": 2,
			"m_mapBoundAbilities": {
				"ESlot_Signature_1": "bebop_hook"
			}
		}`),
	}

	owner := HeroForItem("bebop_hook", heroes)
	require.NotNil(t, owner)
	assert.Equal(t, 2, *owner)

	assert.Nil(t, HeroForItem("upgrade_headshot_booster", heroes))
}

func TestComponentItemIDs(t *testing.T) {
	clipSize := &rawdata.Upgrade{}
	clipSize.ClassName = "citadel_upgrade_clip_size"

	items := []rawdata.Item{clipSize}

	upgrade := &rawdata.Upgrade{
		ComponentItems: []string{
			"citadel_upgrade_clip_size",
			"upgrade_does_not_exist",
			"upgrade_titanic",
		},
	}
	upgrade.ClassName = "upgrade_titanic"

	ids := ComponentItemIDs(upgrade, items, nil)
	// the self-reference and the unknown component are dropped
	assert.Equal(t, []uint32{ClassNameID("citadel_upgrade_clip_size")}, ids)
}

func TestComponentItemIDs_Empty(t *testing.T) {
	upgrade := &rawdata.Upgrade{}
	upgrade.ClassName = "upgrade_lonely"

	assert.Nil(t, ComponentItemIDs(upgrade, nil, nil))
}
