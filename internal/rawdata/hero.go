package rawdata

import (
	"encoding/json"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

// SlotMap maps a hero's binding slots to item class names. Keys with an
// unrecognized slot identifier are dropped during decode (they are logged by
// the slot parser).
type SlotMap map[domain.HeroSlot]string

// UnmarshalJSON decodes the engine's slot-keyed object leniently.
func (m *SlotMap) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SlotMap, len(raw))
	for k, v := range raw {
		slot := domain.ParseHeroSlot(k)
		if slot == domain.HeroSlotUnknown {
			continue
		}
		out[slot] = v
	}
	*m = out
	return nil
}

// ShopStatsDisplay is one category block of the hero's shop stat panel.
type ShopStatsDisplay struct {
	DisplayStats      []string `json:"m_vecDisplayStats"`
	OtherDisplayStats []string `json:"m_vecOtherDisplayStats"`
	WeaponAttributes  *string  `json:"m_eWeaponAttributes"`
	WeaponImage       *string  `json:"m_strWeaponImage"`
}

// ShopStatDisplay is the hero's shop stat panel configuration.
type ShopStatDisplay struct {
	SpiritStatsDisplay   *ShopStatsDisplay `json:"m_eSpiritStatsDisplay"`
	VitalityStatsDisplay *ShopStatsDisplay `json:"m_eVitalityStatsDisplay"`
	WeaponStatsDisplay   *ShopStatsDisplay `json:"m_eWeaponStatsDisplay"`
}

// StatsDisplay configures the in-game hero stat panels.
type StatsDisplay struct {
	HealthHeaderStats []string `json:"m_vecHealthHeaderStats"`
	MagicHeaderStats  []string `json:"m_vecMagicHeaderStats"`
	MagicStats        []string `json:"m_vecMagicStats"`
	WeaponHeaderStats []string `json:"m_vecWeaponHeaderStats"`
	WeaponStats       []string `json:"m_vecWeaponStats"`
}

// StatsUIStat is one entry of the hero stats UI panel.
type StatsUIStat struct {
	Category string `json:"m_eStatCategory"`
	StatType string `json:"m_eStatType"`
}

// StatsUI configures the hero stats UI panel.
type StatsUI struct {
	WeaponStatDisplay string        `json:"m_eWeaponStatDisplay"`
	DisplayStats      []StatsUIStat `json:"m_vecDisplayStats"`
}

// ItemSlotInfo holds the per-tier purchase limits of one slot category.
type ItemSlotInfo struct {
	MaxPurchasesForTier []int `json:"m_arMaxPurchasesForTier"`
}

// LevelInfo describes one hero level-up step.
type LevelInfo struct {
	UseStandardUpgrade *bool          `json:"m_bUseStandardUpgrade"`
	BonusCurrencies    map[string]int `json:"m_mapBonusCurrencies"`
	RequiredGold       *int           `json:"m_unRequiredGold"`
}

// PurchaseBonus is one slot-purchase reward step.
type PurchaseBonus struct {
	ValueType string `json:"m_ValueType"`
	Tier      int    `json:"m_nTier"`
	Value     string `json:"m_strValue"`
}

// ScalingStat describes how one stat scales with spirit power.
type ScalingStat struct {
	ScalingStat string  `json:"eScalingStat"`
	Scale       float64 `json:"flScale"`
}

// Hero is a raw hero record. HeroID is the only required field; everything
// else may be absent in a given build.
type Hero struct {
	ClassName string `json:"-"`

	HeroID              *int     `json:"m_HeroID"`
	RecommendedUpgrades []string `json:"m_RecommendedUpgrades"`
	PlayerSelectable    bool     `json:"m_bPlayerSelectable"`
	BotSelectable       bool     `json:"m_bBotSelectable"`
	Disabled            bool     `json:"m_bDisabled"`
	InDevelopment       bool     `json:"m_bInDevelopment"`
	NeedsTesting        bool     `json:"m_bNeedsTesting"`
	AssignedPlayersOnly bool     `json:"m_bAssignedPlayersOnly"`
	LimitedTesting      bool     `json:"m_bLimitedTesting"`
	Complexity          int      `json:"m_nComplexity"`
	ModelSkin           int      `json:"m_nModelSkin"`
	Readability         int      `json:"m_nReadability"`

	StartingStats map[string]float64 `json:"m_mapStartingStats"`

	IconHeroCard   *string `json:"m_strIconHeroCard"`
	IconImageSmall *string `json:"m_strIconImageSmall"`
	MinimapImage   *string `json:"m_strMinimapImage"`
	SelectionImage *string `json:"m_strSelectionImage"`
	TopBarImage    *string `json:"m_strTopBarImage"`
	TopBarVertical *string `json:"m_strTopBarVertical"`
	WeaponImage    *string `json:"m_strWeaponImage"`

	ColorGlowEnemy    []int `json:"m_colorGlowEnemy"`
	ColorGlowFriendly []int `json:"m_colorGlowFriendly"`
	ColorGlowTeam1    []int `json:"m_colorGlowTeam1"`
	ColorGlowTeam2    []int `json:"m_colorGlowTeam2"`
	ColorUI           []int `json:"m_colorUI"`

	CollisionHeight                   float64  `json:"m_flCollisionHeight"`
	CollisionRadius                   float64  `json:"m_flCollisionRadius"`
	FootstepSoundTravelDistanceMeters float64  `json:"m_flFootstepSoundTravelDistanceMeters"`
	StealthSpeedMetersPerSecond       float64  `json:"m_flStealthSpeedMetersPerSecond"`
	StepHeight                        float64  `json:"m_flStepHeight"`
	StepSoundTime                     float64  `json:"m_flStepSoundTime"`
	StepSoundTimeSprinting            *float64 `json:"m_flStepSoundTimeSprinting"`

	ShopStatDisplay *ShopStatDisplay `json:"m_ShopStatDisplay"`
	StatsDisplay    *StatsDisplay    `json:"m_heroStatsDisplay"`
	StatsUI         *StatsUI         `json:"m_heroStatsUI"`

	Items                   SlotMap                    `json:"m_mapBoundAbilities"`
	ItemSlotInfo            map[string]ItemSlotInfo    `json:"m_mapItemSlotInfo"`
	LevelInfo               map[string]LevelInfo       `json:"m_mapLevelInfo"`
	PurchaseBonuses         map[string][]PurchaseBonus `json:"m_mapPurchaseBonuses"`
	ScalingStats            map[string]ScalingStat     `json:"m_mapScalingStats"`
	StandardLevelUpUpgrades map[string]float64         `json:"m_mapStandardLevelUpUpgrades"`
}

// OwnsItem reports whether the hero has className bound to any slot.
func (h *Hero) OwnsItem(className string) bool {
	for _, v := range h.Items {
		if v == className {
			return true
		}
	}
	return false
}

// GenericData is the build-wide shared data block. Only the parts this
// service projects are decoded.
type GenericData struct {
	ItemPricePerTier []int `json:"m_nItemPricePerTier"`
}
