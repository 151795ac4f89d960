// Package rawdata decodes the untyped game-data dump of one build into typed
// raw records. The upstream schema evolves between builds, so every field
// except the class name is optional and decoding is tolerant: unknown records
// are dropped with a diagnostic, never a hard failure.
package rawdata

import (
	"encoding/json"
	"strconv"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

// FlexValue decodes a JSON scalar that may arrive as a number or a string.
// Numeric strings are coerced to float64 to match the numeric use downstream.
type FlexValue struct {
	val any
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexValue) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if s, ok := v.(string); ok {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			v = parsed
		}
	}
	f.val = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.val)
}

// Value returns the decoded scalar: float64, string or nil.
func (f FlexValue) Value() any { return f.val }

// IsNil reports whether no value was decoded.
func (f FlexValue) IsNil() bool { return f.val == nil }

// String renders the value the way it appears in expanded description text.
// Floats drop the trailing zeros the JSON encoding may carry.
func (f FlexValue) String() string {
	switch v := f.val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// Property is one entry of an item's ability-property map.
type Property struct {
	Value                FlexValue
	DisableValue         *string
	CanSetTokenOverride  *bool
	ProvidedPropertyType *string
	CSSClass             *string
	LocTokenOverride     *string
	DisplayUnits         *string
}

// UnmarshalJSON accepts the engine keys. m_strVAlue is a typo in the original
// data schema; it stays supported as a decode alias for m_strValue.
func (p *Property) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value                FlexValue `json:"m_strValue"`
		ValueTypo            FlexValue `json:"m_strVAlue"`
		DisableValue         *string   `json:"m_strDisableValue"`
		CanSetTokenOverride  *bool     `json:"m_bCanSetTokenOverride"`
		ProvidedPropertyType *string   `json:"m_eProvidedPropertyType"`
		CSSClass             *string   `json:"m_strCSSClass"`
		LocTokenOverride     *string   `json:"m_strLocTokenOverride"`
		DisplayUnits         *string   `json:"m_eDisplayUnits"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Value = raw.Value
	if p.Value.IsNil() {
		p.Value = raw.ValueTypo
	}
	p.DisableValue = raw.DisableValue
	p.CanSetTokenOverride = raw.CanSetTokenOverride
	p.ProvidedPropertyType = raw.ProvidedPropertyType
	p.CSSClass = raw.CSSClass
	p.LocTokenOverride = raw.LocTokenOverride
	p.DisplayUnits = raw.DisplayUnits
	return nil
}

// BulletSpeedCurveSpline is one control point of a bullet speed curve.
type BulletSpeedCurveSpline struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	SlopeIncoming float64 `json:"m_flSlopeIncoming"`
	SlopeOutgoing float64 `json:"m_flSlopeOutgoing"`
}

// BulletSpeedCurve maps projectile travel distance to speed.
type BulletSpeedCurve struct {
	Spline     []BulletSpeedCurveSpline `json:"m_spline"`
	DomainMins []float64                `json:"m_vDomainMins"`
	DomainMaxs []float64                `json:"m_vDomainMaxs"`
}

// WeaponInfo carries the ballistic parameters of a weapon record.
type WeaponInfo struct {
	BulletDamage        *float64          `json:"m_flBulletDamage"`
	BulletGravityScale  *float64          `json:"m_flBulletGravityScale"`
	BulletLifetime      *float64          `json:"m_flBulletLifetime"`
	BulletRadius        *float64          `json:"m_flBulletRadius"`
	BulletSpeedCurve    *BulletSpeedCurve `json:"m_BulletSpeedCurve"`
	Bullets             *int              `json:"m_iBullets"`
	BurstShotCooldown   *float64          `json:"m_flBurstShotCooldown"`
	BurstShotCount      *int              `json:"m_iBurstShotCount"`
	CanZoom             *bool             `json:"m_bCanZoom"`
	ClipSize            *int              `json:"m_iClipSize"`
	CycleTime           *float64          `json:"m_flCycleTime"`
	DamageFalloffBias   *float64          `json:"m_flDamageFalloffBias"`
	DamageFalloffEnd    *float64          `json:"m_flDamageFalloffEndRange"`
	DamageFalloffStart  *float64          `json:"m_flDamageFalloffStartRange"`
	IntraBurstCycleTime *float64          `json:"m_flIntraBurstCycleTime"`
	Range               *float64          `json:"m_flRange"`
	RecoilRecoverySpeed *float64          `json:"m_flRecoilRecoverySpeed"`
	RecoilSpeed         *float64          `json:"m_flRecoilSpeed"`
	ReloadDuration      *float64          `json:"m_flReloadDuration"`
	ReloadMoveSpeed     *float64          `json:"m_flReloadMoveSpeed"`
	ShootMoveSpeedPct   *float64          `json:"m_flShootMoveSpeedPercent"`
	Spread              *float64          `json:"m_flSpread"`
	StandingSpread      *float64          `json:"m_flStandingSpread"`
	ZoomFov             *float64          `json:"m_flZoomFov"`
	ZoomMoveSpeedPct    *float64          `json:"m_flZoomMoveSpeedPercent"`
}

// PropertyUpgrade overrides one property's value at a given upgrade tier.
type PropertyUpgrade struct {
	Name            string    `json:"m_strPropertyName"`
	Bonus           FlexValue `json:"m_strBonus"`
	ScaleStatFilter *string   `json:"m_eScaleStatFilter"`
	UpgradeType     *string   `json:"m_eUpgradeType"`
}

// AbilityUpgrade is one tier of an ability's upgrade track.
type AbilityUpgrade struct {
	PropertyUpgrades []PropertyUpgrade `json:"m_vecPropertyUpgrades"`
}

// ItemBase carries the fields present on every item record.
type ItemBase struct {
	ClassName    string              `json:"-"`
	StartTrained *bool               `json:"m_bStartTrained"`
	Image        *string             `json:"m_strAbilityImage"`
	Video        *string             `json:"m_strMoviePreviewPath"`
	UpdateTime   *int64              `json:"m_iUpdateTime"`
	Properties   map[string]Property `json:"m_mapAbilityProperties"`
	CSSClass     *string             `json:"m_strCSSClass"`
	WeaponInfo   *WeaponInfo         `json:"m_WeaponInfo"`
}

// Base implements Item.
func (b *ItemBase) Base() *ItemBase { return b }

// Property returns the named property, or false when absent.
func (b *ItemBase) Property(name string) (Property, bool) {
	p, ok := b.Properties[name]
	return p, ok
}

// Ability is a raw hero-ability record.
type Ability struct {
	ItemBase

	BehaviourBits      *string            `json:"m_AbilityBehaviorsBits"`
	Upgrades           []AbilityUpgrade   `json:"m_vecAbilityUpgrades"`
	AbilityType        domain.AbilityType `json:"m_eAbilityType"`
	DependantAbilities []string           `json:"m_vecDependentAbilities"`
}

// Kind implements Item.
func (*Ability) Kind() domain.ItemType { return domain.ItemTypeAbility }

// Weapon is a raw hero-weapon record.
type Weapon struct {
	ItemBase
}

// Kind implements Item.
func (*Weapon) Kind() domain.ItemType { return domain.ItemTypeWeapon }

// Upgrade is a raw purchasable-item record.
type Upgrade struct {
	ItemBase

	ItemSlotType   domain.ItemSlotType `json:"m_eItemSlotType"`
	ItemTier       domain.ItemTier     `json:"m_iItemTier"`
	Disabled       *bool               `json:"m_bDisabled"`
	Activation     domain.Activation   `json:"m_eAbilityActivation"`
	ComponentItems []string            `json:"m_vecComponentItems"`
}

// Kind implements Item.
func (*Upgrade) Kind() domain.ItemType { return domain.ItemTypeUpgrade }

// Item is implemented by Ability, Weapon and Upgrade.
type Item interface {
	Base() *ItemBase
	Kind() domain.ItemType
}
