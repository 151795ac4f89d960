package domain

// HeroImages collects every named image slot of a hero, each with its webp
// sibling.
type HeroImages struct {
	IconHeroCard       *string `json:"icon_hero_card,omitempty"`
	IconHeroCardWebp   *string `json:"icon_hero_card_webp,omitempty"`
	IconImageSmall     *string `json:"icon_image_small,omitempty"`
	IconImageSmallWebp *string `json:"icon_image_small_webp,omitempty"`
	MinimapImage       *string `json:"minimap_image,omitempty"`
	MinimapImageWebp   *string `json:"minimap_image_webp,omitempty"`
	SelectionImage     *string `json:"selection_image,omitempty"`
	SelectionImageWebp *string `json:"selection_image_webp,omitempty"`
	TopBarImage        *string `json:"top_bar_image,omitempty"`
	TopBarImageWebp    *string `json:"top_bar_image_webp,omitempty"`
	TopBarVertical     *string `json:"top_bar_vertical,omitempty"`
	TopBarVerticalWebp *string `json:"top_bar_vertical_webp,omitempty"`
	WeaponImage        *string `json:"weapon_image,omitempty"`
	WeaponImageWebp    *string `json:"weapon_image_webp,omitempty"`
}

// HeroDescription groups the hero's localized flavor texts.
type HeroDescription struct {
	Lore      *string `json:"lore,omitempty"`
	Role      *string `json:"role,omitempty"`
	Playstyle *string `json:"playstyle,omitempty"`
}

// HeroPhysics groups the hero's movement/collision parameters.
type HeroPhysics struct {
	CollisionHeight                   float64  `json:"collision_height"`
	CollisionRadius                   float64  `json:"collision_radius"`
	FootstepSoundTravelDistanceMeters float64  `json:"footstep_sound_travel_distance_meters"`
	StealthSpeedMetersPerSecond       float64  `json:"stealth_speed_meters_per_second"`
	StepHeight                        float64  `json:"step_height"`
	StepSoundTime                     float64  `json:"step_sound_time"`
	StepSoundTimeSprinting            *float64 `json:"step_sound_time_sprinting,omitempty"`
}

// HeroColors groups the hero's UI color assignments as RGB triples.
type HeroColors struct {
	GlowEnemy    []int `json:"glow_enemy,omitempty"`
	GlowFriendly []int `json:"glow_friendly,omitempty"`
	GlowTeam1    []int `json:"glow_team1,omitempty"`
	GlowTeam2    []int `json:"glow_team2,omitempty"`
	UI           []int `json:"ui,omitempty"`
}

// HeroShopSpiritStatsDisplay lists the spirit stats shown in the shop.
type HeroShopSpiritStatsDisplay struct {
	DisplayStats []string `json:"display_stats,omitempty"`
}

// HeroShopVitalityStatsDisplay lists the vitality stats shown in the shop.
type HeroShopVitalityStatsDisplay struct {
	DisplayStats      []string `json:"display_stats,omitempty"`
	OtherDisplayStats []string `json:"other_display_stats,omitempty"`
}

// HeroShopWeaponStatsDisplay lists the weapon stats shown in the shop,
// including the rendered weapon image.
type HeroShopWeaponStatsDisplay struct {
	DisplayStats      []string `json:"display_stats,omitempty"`
	OtherDisplayStats []string `json:"other_display_stats,omitempty"`
	WeaponAttributes  []string `json:"weapon_attributes"`
	WeaponImage       *string  `json:"weapon_image,omitempty"`
	WeaponImageWebp   *string  `json:"weapon_image_webp,omitempty"`
}

// HeroShopStatDisplay is the shop stat panel configuration of a hero.
type HeroShopStatDisplay struct {
	SpiritStatsDisplay   HeroShopSpiritStatsDisplay   `json:"spirit_stats_display"`
	VitalityStatsDisplay HeroShopVitalityStatsDisplay `json:"vitality_stats_display"`
	WeaponStatsDisplay   HeroShopWeaponStatsDisplay   `json:"weapon_stats_display"`
}

// HeroStatsDisplay configures the in-game stat panels.
type HeroStatsDisplay struct {
	HealthHeaderStats []string `json:"health_header_stats,omitempty"`
	HealthStats       []string `json:"health_stats,omitempty"`
	MagicHeaderStats  []string `json:"magic_header_stats,omitempty"`
	MagicStats        []string `json:"magic_stats,omitempty"`
	WeaponHeaderStats []string `json:"weapon_header_stats,omitempty"`
	WeaponStats       []string `json:"weapon_stats,omitempty"`
}

// HeroStatsUIStat is one stat entry of the hero stats UI.
type HeroStatsUIStat struct {
	Category string `json:"category"`
	StatType string `json:"stat_type"`
}

// HeroStatsUI configures the hero stats UI panel.
type HeroStatsUI struct {
	WeaponStatDisplay string            `json:"weapon_stat_display,omitempty"`
	DisplayStats      []HeroStatsUIStat `json:"display_stats,omitempty"`
}

// HeroLevelInfo describes one level-up step. BonusCurrencies is normalized to
// the list of granted currency keys.
type HeroLevelInfo struct {
	UseStandardUpgrade *bool    `json:"use_standard_upgrade,omitempty"`
	BonusCurrencies    []string `json:"bonus_currencies,omitempty"`
	RequiredGold       *int     `json:"required_gold,omitempty"`
}

// HeroStartingStat wraps a base stat value with its internal display-name
// token for client rendering.
type HeroStartingStat struct {
	Value           float64 `json:"value"`
	DisplayStatName string  `json:"display_stat_name"`
}

// HeroItemSlotInfo holds the purchase limits of one item slot category.
type HeroItemSlotInfo struct {
	MaxPurchasesForTier []int `json:"max_purchases_for_tier,omitempty"`
}

// HeroPurchaseBonus is one slot-purchase reward step.
type HeroPurchaseBonus struct {
	ValueType string `json:"value_type"`
	Tier      int    `json:"tier"`
	Value     string `json:"value"`
}

// HeroScalingStat describes how one stat scales with spirit power.
type HeroScalingStat struct {
	ScalingStat string  `json:"scaling_stat"`
	Scale       float64 `json:"scale"`
}

// Hero is the localized API projection of a playable hero.
type Hero struct {
	ID                      int                                  `json:"id"`
	ClassName               string                               `json:"class_name"`
	Name                    string                               `json:"name"`
	Description             HeroDescription                      `json:"description"`
	RecommendedUpgrades     []string                             `json:"recommended_upgrades,omitempty"`
	PlayerSelectable        bool                                 `json:"player_selectable"`
	BotSelectable           bool                                 `json:"bot_selectable"`
	Disabled                bool                                 `json:"disabled"`
	InDevelopment           bool                                 `json:"in_development"`
	NeedsTesting            bool                                 `json:"needs_testing"`
	AssignedPlayersOnly     bool                                 `json:"assigned_players_only"`
	LimitedTesting          bool                                 `json:"limited_testing"`
	Complexity              int                                  `json:"complexity"`
	Skin                    int                                  `json:"skin"`
	Readability             int                                  `json:"readability"`
	Images                  HeroImages                           `json:"images"`
	Items                   map[HeroSlot]string                  `json:"items,omitempty"`
	StartingStats           map[string]HeroStartingStat          `json:"starting_stats,omitempty"`
	ItemSlotInfo            map[ItemSlotType]HeroItemSlotInfo    `json:"item_slot_info,omitempty"`
	Physics                 HeroPhysics                          `json:"physics"`
	Colors                  HeroColors                           `json:"colors"`
	ShopStatDisplay         *HeroShopStatDisplay                 `json:"shop_stat_display,omitempty"`
	StatsDisplay            *HeroStatsDisplay                    `json:"stats_display,omitempty"`
	StatsUI                 *HeroStatsUI                         `json:"hero_stats_ui,omitempty"`
	LevelInfo               map[string]HeroLevelInfo             `json:"level_info,omitempty"`
	ScalingStats            map[string]HeroScalingStat           `json:"scaling_stats,omitempty"`
	PurchaseBonuses         map[ItemSlotType][]HeroPurchaseBonus `json:"purchase_bonuses,omitempty"`
	StandardLevelUpUpgrades map[string]float64                   `json:"standard_level_up_upgrades,omitempty"`
}
