package domain

// Property is one named numeric/text parameter of an ability or upgrade.
// Value holds a float64 or a string depending on the source data.
type Property struct {
	Value                any     `json:"value,omitempty"`
	DisableValue         *string `json:"disable_value,omitempty"`
	CanSetTokenOverride  *bool   `json:"can_set_token_override,omitempty"`
	ProvidedPropertyType *string `json:"provided_property_type,omitempty"`
	CSSClass             *string `json:"css_class,omitempty"`
	LocTokenOverride     *string `json:"loc_token_override,omitempty"`
	DisplayUnits         *string `json:"display_units,omitempty"`
}

// PropertyUpgrade overrides one property's displayed value for a single tier.
type PropertyUpgrade struct {
	Name            string  `json:"name"`
	Bonus           any     `json:"bonus"`
	ScaleStatFilter *string `json:"scale_stat_filter,omitempty"`
	UpgradeType     *string `json:"upgrade_type,omitempty"`
}

// AbilityUpgrade is one tier of an ability's upgrade track.
type AbilityUpgrade struct {
	PropertyUpgrades []PropertyUpgrade `json:"property_upgrades"`
}

// BulletSpeedCurveSpline is one control point of a bullet speed curve.
type BulletSpeedCurveSpline struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	SlopeIncoming float64 `json:"slope_incoming"`
	SlopeOutgoing float64 `json:"slope_outgoing"`
}

// BulletSpeedCurve maps projectile travel distance to speed.
type BulletSpeedCurve struct {
	Spline     []BulletSpeedCurveSpline `json:"spline,omitempty"`
	DomainMins []float64                `json:"domain_mins,omitempty"`
	DomainMaxs []float64                `json:"domain_maxs,omitempty"`
}

// WeaponInfo carries the ballistic parameters of a weapon.
type WeaponInfo struct {
	BulletDamage        *float64          `json:"bullet_damage,omitempty"`
	BulletGravityScale  *float64          `json:"bullet_gravity_scale,omitempty"`
	BulletLifetime      *float64          `json:"bullet_lifetime,omitempty"`
	BulletRadius        *float64          `json:"bullet_radius,omitempty"`
	BulletSpeedCurve    *BulletSpeedCurve `json:"bullet_speed_curve,omitempty"`
	Bullets             *int              `json:"bullets,omitempty"`
	BurstShotCooldown   *float64          `json:"burst_shot_cooldown,omitempty"`
	BurstShotCount      *int              `json:"burst_shot_count,omitempty"`
	CanZoom             *bool             `json:"can_zoom,omitempty"`
	ClipSize            *int              `json:"clip_size,omitempty"`
	CycleTime           *float64          `json:"cycle_time,omitempty"`
	DamageFalloffBias   *float64          `json:"damage_falloff_bias,omitempty"`
	DamageFalloffEnd    *float64          `json:"damage_falloff_end_range,omitempty"`
	DamageFalloffStart  *float64          `json:"damage_falloff_start_range,omitempty"`
	IntraBurstCycleTime *float64          `json:"intra_burst_cycle_time,omitempty"`
	Range               *float64          `json:"range,omitempty"`
	RecoilRecoverySpeed *float64          `json:"recoil_recovery_speed,omitempty"`
	RecoilSpeed         *float64          `json:"recoil_speed,omitempty"`
	ReloadDuration      *float64          `json:"reload_duration,omitempty"`
	ReloadMoveSpeed     *float64          `json:"reload_move_speed,omitempty"`
	ShootMoveSpeedPct   *float64          `json:"shoot_move_speed_percent,omitempty"`
	Spread              *float64          `json:"spread,omitempty"`
	StandingSpread      *float64          `json:"standing_spread,omitempty"`
	ZoomFov             *float64          `json:"zoom_fov,omitempty"`
	ZoomMoveSpeedPct    *float64          `json:"zoom_move_speed_percent,omitempty"`
}

// ItemBase carries the fields shared by every item kind.
type ItemBase struct {
	ID           uint32              `json:"id"`
	ClassName    string              `json:"class_name"`
	Name         string              `json:"name"`
	Type         ItemType            `json:"type"`
	StartTrained *bool               `json:"start_trained,omitempty"`
	Image        *string             `json:"image,omitempty"`
	ImageWebp    *string             `json:"image_webp,omitempty"`
	Hero         *int                `json:"hero,omitempty"`
	UpdateTime   *int64              `json:"update_time,omitempty"`
	Properties   map[string]Property `json:"properties,omitempty"`
}

// ItemID implements Item.
func (b *ItemBase) ItemID() uint32 { return b.ID }

// ItemClassName implements Item.
func (b *ItemBase) ItemClassName() string { return b.ClassName }

// ItemType implements Item.
func (b *ItemBase) ItemType() ItemType { return b.Type }

// HeroID implements Item.
func (b *ItemBase) HeroID() *int { return b.Hero }

// AbilityDescription is the localized, template-expanded description block of
// an ability, one entry per fixed localization-key suffix.
type AbilityDescription struct {
	Desc   *string `json:"desc,omitempty"`
	Quip   *string `json:"quip,omitempty"`
	T1Desc *string `json:"t1_desc,omitempty"`
	T2Desc *string `json:"t2_desc,omitempty"`
	T3Desc *string `json:"t3_desc,omitempty"`
}

// AbilityVideos holds the preview clip in both served encodings.
type AbilityVideos struct {
	Webm *string `json:"webm,omitempty"`
	Mp4  *string `json:"mp4,omitempty"`
}

// Ability is the localized API projection of a hero ability.
type Ability struct {
	ItemBase

	Behaviours         []string           `json:"behaviours,omitempty"`
	Description        AbilityDescription `json:"description"`
	Upgrades           []AbilityUpgrade   `json:"upgrades,omitempty"`
	AbilityType        AbilityType        `json:"ability_type,omitempty"`
	DependantAbilities []string           `json:"dependant_abilities,omitempty"`
	Videos             *AbilityVideos     `json:"videos,omitempty"`
}

// Weapon is the localized API projection of a hero weapon.
type Weapon struct {
	ItemBase

	WeaponInfo *WeaponInfo `json:"weapon_info,omitempty"`
}

// Upgrade is the localized API projection of a purchasable item.
type Upgrade struct {
	ItemBase

	ItemSlotType     ItemSlotType `json:"item_slot_type,omitempty"`
	ItemTier         ItemTier     `json:"item_tier,omitempty"`
	Disabled         *bool        `json:"disabled,omitempty"`
	Activation       Activation   `json:"activation,omitempty"`
	ComponentItems   []string     `json:"component_items,omitempty"`
	ComponentItemIDs []uint32     `json:"component_item_ids,omitempty"`
	IsActiveItem     bool         `json:"is_active_item"`
	Shopable         bool         `json:"shopable"`
	Cost             *int         `json:"cost,omitempty"`
}

// Item is implemented by Ability, Weapon and Upgrade.
type Item interface {
	ItemID() uint32
	ItemClassName() string
	ItemType() ItemType
	HeroID() *int
}
