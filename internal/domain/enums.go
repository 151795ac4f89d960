package domain

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
)

// The game data encodes enums as engine identifiers ("EItemSlotType_WeaponMod",
// "EModTier_3", "ESlot_Signature_1"). The vocabulary grows between builds, so
// every parse here is lenient: unrecognized input maps to an explicit Unknown
// variant and a diagnostic is logged, never an error.

// ItemType distinguishes the three concrete item kinds.
type ItemType string

const (
	ItemTypeWeapon  ItemType = "weapon"
	ItemTypeAbility ItemType = "ability"
	ItemTypeUpgrade ItemType = "upgrade"
	ItemTypeUnknown ItemType = ""
)

// ParseItemType matches case-insensitively on the public value.
func ParseItemType(raw string) ItemType {
	switch strings.ToLower(raw) {
	case "weapon":
		return ItemTypeWeapon
	case "ability":
		return ItemTypeAbility
	case "upgrade":
		return ItemTypeUpgrade
	}
	slog.Warn("Unknown item type", "value", raw)
	return ItemTypeUnknown
}

// ItemSlotType is the shop category of an upgrade.
type ItemSlotType string

const (
	ItemSlotTypeWeaponMod ItemSlotType = "weapon_mod"
	ItemSlotTypeArmor     ItemSlotType = "armor"
	ItemSlotTypeTech      ItemSlotType = "tech"
	ItemSlotTypeUnknown   ItemSlotType = ""
)

var itemSlotTypeAliases = map[string]ItemSlotType{
	"weapon_mod":              ItemSlotTypeWeaponMod,
	"eitemslottype_weaponmod": ItemSlotTypeWeaponMod,
	"armor":                   ItemSlotTypeArmor,
	"eitemslottype_armor":     ItemSlotTypeArmor,
	"tech":                    ItemSlotTypeTech,
	"eitemslottype_tech":      ItemSlotTypeTech,
}

// ParseItemSlotType accepts both the public value and the engine identifier.
func ParseItemSlotType(raw string) ItemSlotType {
	if v, ok := itemSlotTypeAliases[strings.ToLower(raw)]; ok {
		return v
	}
	slog.Warn("Unknown item slot type", "value", raw)
	return ItemSlotTypeUnknown
}

// UnmarshalJSON decodes an engine identifier leniently.
func (t *ItemSlotType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseItemSlotType(s)
	return nil
}

// Purchasable reports whether items in this slot category appear in the shop.
func (t ItemSlotType) Purchasable() bool {
	switch t {
	case ItemSlotTypeWeaponMod, ItemSlotTypeArmor, ItemSlotTypeTech:
		return true
	}
	return false
}

// ItemTier is the upgrade price tier (1-4). Zero means unknown.
type ItemTier int

const ItemTierUnknown ItemTier = 0

// UnmarshalJSON accepts either a plain number or an "EModTier_N" identifier.
func (t *ItemTier) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = parseItemTier(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	idx := strings.LastIndex(s, "_")
	if idx != -1 {
		if n, err := strconv.Atoi(s[idx+1:]); err == nil {
			*t = parseItemTier(n)
			return nil
		}
	}
	slog.Warn("Unknown item tier", "value", s)
	*t = ItemTierUnknown
	return nil
}

func parseItemTier(n int) ItemTier {
	if n < 1 || n > 4 {
		slog.Warn("Unknown item tier", "value", n)
		return ItemTierUnknown
	}
	return ItemTier(n)
}

// AbilityType categorizes how an ability is granted to a hero.
type AbilityType string

const (
	AbilityTypeInnate    AbilityType = "innate"
	AbilityTypeItem      AbilityType = "item"
	AbilityTypeSignature AbilityType = "signature"
	AbilityTypeUltimate  AbilityType = "ultimate"
	AbilityTypeUnknown   AbilityType = ""

	// AbilityTypeWeapon marks the hero's gun, modeled as an ability upstream.
	AbilityTypeWeapon AbilityType = "weapon"
)

var abilityTypeAliases = map[string]AbilityType{
	"innate":                  AbilityTypeInnate,
	"eabilitytype_innate":     AbilityTypeInnate,
	"item":                    AbilityTypeItem,
	"eabilitytype_item":       AbilityTypeItem,
	"signature":               AbilityTypeSignature,
	"eabilitytype_signature":  AbilityTypeSignature,
	"ultimate":                AbilityTypeUltimate,
	"eabilitytype_ultimate":   AbilityTypeUltimate,
	"weapon":                  AbilityTypeWeapon,
	"eabilitytype_weapon":     AbilityTypeWeapon,
}

// UnmarshalJSON decodes an engine identifier leniently.
func (t *AbilityType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if v, ok := abilityTypeAliases[strings.ToLower(s)]; ok {
		*t = v
		return nil
	}
	slog.Warn("Unknown ability type", "value", s)
	*t = AbilityTypeUnknown
	return nil
}

// Activation is the cast mode of an upgrade's active component.
type Activation string

const (
	ActivationHoldToggle     Activation = "hold_toggle"
	ActivationInstantCast    Activation = "instant_cast"
	ActivationOnButtonIsDown Activation = "on_button_is_down"
	ActivationPassive        Activation = "passive"
	ActivationPress          Activation = "press"
	ActivationPressToggle    Activation = "press_toggle"
	ActivationUnknown        Activation = ""
)

var activationAliases = map[string]Activation{
	"hold_toggle":       ActivationHoldToggle,
	"instant_cast":      ActivationInstantCast,
	"on_button_is_down": ActivationOnButtonIsDown,
	"passive":           ActivationPassive,
	"press":             ActivationPress,
	"press_toggle":      ActivationPressToggle,

	"citadel_ability_activation_hold_toggle":       ActivationHoldToggle,
	"citadel_ability_activation_instant_cast":      ActivationInstantCast,
	"citadel_ability_activation_on_button_is_down": ActivationOnButtonIsDown,
	"citadel_ability_activation_passive":           ActivationPassive,
	"citadel_ability_activation_press":             ActivationPress,
	"citadel_ability_activation_press_toggle":      ActivationPressToggle,
}

// UnmarshalJSON decodes an engine identifier leniently.
func (a *Activation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if v, ok := activationAliases[strings.ToLower(s)]; ok {
		*a = v
		return nil
	}
	slog.Warn("Unknown ability activation", "value", s)
	*a = ActivationUnknown
	return nil
}

// HeroSlot is a fixed binding point on a hero for one of its items.
type HeroSlot string

const (
	HeroSlotWeaponPrimary    HeroSlot = "weapon_primary"
	HeroSlotWeaponSecondary  HeroSlot = "weapon_secondary"
	HeroSlotWeaponMelee      HeroSlot = "weapon_melee"
	HeroSlotAbilityMantle    HeroSlot = "ability_mantle"
	HeroSlotAbilityJump      HeroSlot = "ability_jump"
	HeroSlotAbilitySlide     HeroSlot = "ability_slide"
	HeroSlotAbilityZipLine   HeroSlot = "ability_zip_line"
	HeroSlotAbilityZipBoost  HeroSlot = "ability_zip_line_boost"
	HeroSlotAbilityClimbRope HeroSlot = "ability_climb_rope"
	HeroSlotAbilityInnate1   HeroSlot = "ability_innate1"
	HeroSlotAbilityInnate2   HeroSlot = "ability_innate2"
	HeroSlotAbilityInnate3   HeroSlot = "ability_innate3"
	HeroSlotSignature1       HeroSlot = "signature1"
	HeroSlotSignature2       HeroSlot = "signature2"
	HeroSlotSignature3       HeroSlot = "signature3"
	HeroSlotSignature4       HeroSlot = "signature4"
	HeroSlotUnknown          HeroSlot = ""
)

var heroSlotAliases = map[string]HeroSlot{
	"weapon_primary":              HeroSlotWeaponPrimary,
	"eslot_weapon_primary":        HeroSlotWeaponPrimary,
	"weapon_secondary":            HeroSlotWeaponSecondary,
	"eslot_weapon_secondary":      HeroSlotWeaponSecondary,
	"weapon_melee":                HeroSlotWeaponMelee,
	"eslot_weapon_melee":          HeroSlotWeaponMelee,
	"ability_mantle":              HeroSlotAbilityMantle,
	"eslot_ability_mantle":        HeroSlotAbilityMantle,
	"ability_jump":                HeroSlotAbilityJump,
	"eslot_ability_jump":          HeroSlotAbilityJump,
	"ability_slide":               HeroSlotAbilitySlide,
	"eslot_ability_slide":         HeroSlotAbilitySlide,
	"ability_zip_line":            HeroSlotAbilityZipLine,
	"eslot_ability_zipline":       HeroSlotAbilityZipLine,
	"ability_zip_line_boost":      HeroSlotAbilityZipBoost,
	"eslot_ability_ziplineboost":  HeroSlotAbilityZipBoost,
	"ability_climb_rope":          HeroSlotAbilityClimbRope,
	"eslot_ability_climbrope":     HeroSlotAbilityClimbRope,
	"ability_innate1":             HeroSlotAbilityInnate1,
	"eslot_ability_innate_1":      HeroSlotAbilityInnate1,
	"ability_innate2":             HeroSlotAbilityInnate2,
	"eslot_ability_innate_2":      HeroSlotAbilityInnate2,
	"ability_innate3":             HeroSlotAbilityInnate3,
	"eslot_ability_innate_3":      HeroSlotAbilityInnate3,
	"signature1":                  HeroSlotSignature1,
	"eslot_signature_1":           HeroSlotSignature1,
	"signature2":                  HeroSlotSignature2,
	"eslot_signature_2":           HeroSlotSignature2,
	"signature3":                  HeroSlotSignature3,
	"eslot_signature_3":           HeroSlotSignature3,
	"signature4":                  HeroSlotSignature4,
	"eslot_signature_4":           HeroSlotSignature4,
}

// ParseHeroSlot accepts both the public value and the engine identifier.
func ParseHeroSlot(raw string) HeroSlot {
	if v, ok := heroSlotAliases[strings.ToLower(raw)]; ok {
		return v
	}
	slog.Warn("Unknown hero slot", "value", raw)
	return HeroSlotUnknown
}

// AbilityIndex returns the 1-based signature slot index for signature slots,
// false for every other slot.
func (s HeroSlot) AbilityIndex() (int, bool) {
	switch s {
	case HeroSlotSignature1:
		return 1, true
	case HeroSlotSignature2:
		return 2, true
	case HeroSlotSignature3:
		return 3, true
	case HeroSlotSignature4:
		return 4, true
	}
	return 0, false
}
