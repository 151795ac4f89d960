// Package projection converts raw build records into the localized
// API-facing entities. Every field is mapped explicitly so schema drift in
// the raw data surfaces as a decode warning instead of leaking through.
package projection

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/raimannma/deadlock-assets-api/internal/assets"
	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/identity"
	"github.com/raimannma/deadlock-assets-api/internal/localization"
	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
	"github.com/raimannma/deadlock-assets-api/internal/template"
)

// Builder projects one build's raw records into API entities for one
// language.
type Builder struct {
	heroes   []*rawdata.Hero
	items    []rawdata.Item
	table    *localization.Table
	resolver *template.Resolver
	norm     *assets.Normalizer
	prices   []int
	log      *slog.Logger
}

// NewBuilder wires a projection over one build's decoded records.
// prices is the item-price-per-tier table from the build's generic data.
func NewBuilder(
	heroes []*rawdata.Hero,
	items []rawdata.Item,
	table *localization.Table,
	norm *assets.Normalizer,
	prices []int,
	log *slog.Logger,
) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		heroes:   heroes,
		items:    items,
		table:    table,
		resolver: template.NewResolver(heroes, table, log),
		norm:     norm,
		prices:   prices,
		log:      log,
	}
}

// Heroes projects all heroes, sorted by id.
func (b *Builder) Heroes() []domain.Hero {
	out := make([]domain.Hero, 0, len(b.heroes))
	for _, h := range b.heroes {
		out = append(out, b.buildHero(h))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Ranks projects the ranked ladder tiers with their localized names.
func (b *Builder) Ranks() []domain.Rank {
	out := make([]domain.Rank, 0, domain.RankTiers)
	for tier := 0; tier < domain.RankTiers; tier++ {
		out = append(out, domain.Rank{
			Tier:  tier,
			Name:  b.table.Get(fmt.Sprintf("Citadel_ranks_rank%d", tier)),
			Color: domain.RankColor(tier),
		})
	}
	return out
}

// Items projects all items, sorted by id.
func (b *Builder) Items() []domain.Item {
	out := make([]domain.Item, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, b.buildItem(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID() < out[j].ItemID() })
	return out
}

func (b *Builder) buildItem(raw rawdata.Item) domain.Item {
	switch item := raw.(type) {
	case *rawdata.Ability:
		return b.buildAbility(item)
	case *rawdata.Weapon:
		return b.buildWeapon(item)
	case *rawdata.Upgrade:
		return b.buildUpgrade(item)
	}
	// the decoder only produces the three kinds above
	panic("unreachable item kind")
}

func (b *Builder) buildItemBase(raw rawdata.Item) domain.ItemBase {
	base := raw.Base()
	image := b.norm.ImageURL(base.Image)
	return domain.ItemBase{
		ID:           identity.ClassNameID(base.ClassName),
		ClassName:    base.ClassName,
		Name:         b.table.Get(base.ClassName),
		Type:         raw.Kind(),
		StartTrained: base.StartTrained,
		Image:        image,
		ImageWebp:    b.norm.WebpURL(image),
		Hero:         identity.HeroForItem(base.ClassName, b.heroes),
		UpdateTime:   base.UpdateTime,
		Properties:   buildProperties(base.Properties),
	}
}

func buildProperties(raw map[string]rawdata.Property) map[string]domain.Property {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]domain.Property, len(raw))
	for name, p := range raw {
		out[name] = domain.Property{
			Value:                p.Value.Value(),
			DisableValue:         p.DisableValue,
			CanSetTokenOverride:  p.CanSetTokenOverride,
			ProvidedPropertyType: p.ProvidedPropertyType,
			CSSClass:             p.CSSClass,
			LocTokenOverride:     p.LocTokenOverride,
			DisplayUnits:         p.DisplayUnits,
		}
	}
	return out
}

func (b *Builder) buildAbility(raw *rawdata.Ability) *domain.Ability {
	ability := &domain.Ability{
		ItemBase:           b.buildItemBase(raw),
		Behaviours:         splitPipeList(raw.BehaviourBits),
		Description:        b.buildAbilityDescription(raw),
		Upgrades:           buildAbilityUpgrades(raw.Upgrades),
		AbilityType:        raw.AbilityType,
		DependantAbilities: raw.DependantAbilities,
	}
	if webm := b.norm.VideoURL(raw.Video); webm != nil {
		ability.Videos = &domain.AbilityVideos{
			Webm: webm,
			Mp4:  b.norm.Mp4URL(webm),
		}
	}
	return ability
}

// buildAbilityDescription resolves the five fixed description tokens of an
// ability. Tiered variants read their numbers from the matching upgrade
// tier.
func (b *Builder) buildAbilityDescription(raw *rawdata.Ability) domain.AbilityDescription {
	tiered := func(suffix string, tier int) *string {
		return b.resolver.Resolve(raw, b.lookupToken(raw.ClassName+suffix), &tier)
	}
	return domain.AbilityDescription{
		Desc:   b.resolver.Resolve(raw, b.lookupToken(raw.ClassName+"_desc"), nil),
		Quip:   b.resolver.Resolve(raw, b.lookupToken(raw.ClassName+"_quip"), nil),
		T1Desc: tiered("_t1_desc", 1),
		T2Desc: tiered("_t2_desc", 2),
		T3Desc: tiered("_t3_desc", 3),
	}
}

func (b *Builder) lookupToken(token string) *string {
	if v, ok := b.table.Lookup(token); ok {
		return &v
	}
	return nil
}

func buildAbilityUpgrades(raw []rawdata.AbilityUpgrade) []domain.AbilityUpgrade {
	if len(raw) == 0 {
		return nil
	}
	out := make([]domain.AbilityUpgrade, 0, len(raw))
	for _, u := range raw {
		upgrades := make([]domain.PropertyUpgrade, 0, len(u.PropertyUpgrades))
		for _, pu := range u.PropertyUpgrades {
			upgrades = append(upgrades, domain.PropertyUpgrade{
				Name:            pu.Name,
				Bonus:           pu.Bonus.Value(),
				ScaleStatFilter: pu.ScaleStatFilter,
				UpgradeType:     pu.UpgradeType,
			})
		}
		out = append(out, domain.AbilityUpgrade{PropertyUpgrades: upgrades})
	}
	return out
}

func (b *Builder) buildWeapon(raw *rawdata.Weapon) *domain.Weapon {
	return &domain.Weapon{
		ItemBase:   b.buildItemBase(raw),
		WeaponInfo: buildWeaponInfo(raw.WeaponInfo),
	}
}

func buildWeaponInfo(raw *rawdata.WeaponInfo) *domain.WeaponInfo {
	if raw == nil {
		return nil
	}
	return &domain.WeaponInfo{
		BulletDamage:        raw.BulletDamage,
		BulletGravityScale:  raw.BulletGravityScale,
		BulletLifetime:      raw.BulletLifetime,
		BulletRadius:        raw.BulletRadius,
		BulletSpeedCurve:    buildBulletSpeedCurve(raw.BulletSpeedCurve),
		Bullets:             raw.Bullets,
		BurstShotCooldown:   raw.BurstShotCooldown,
		BurstShotCount:      raw.BurstShotCount,
		CanZoom:             raw.CanZoom,
		ClipSize:            raw.ClipSize,
		CycleTime:           raw.CycleTime,
		DamageFalloffBias:   raw.DamageFalloffBias,
		DamageFalloffEnd:    raw.DamageFalloffEnd,
		DamageFalloffStart:  raw.DamageFalloffStart,
		IntraBurstCycleTime: raw.IntraBurstCycleTime,
		Range:               raw.Range,
		RecoilRecoverySpeed: raw.RecoilRecoverySpeed,
		RecoilSpeed:         raw.RecoilSpeed,
		ReloadDuration:      raw.ReloadDuration,
		ReloadMoveSpeed:     raw.ReloadMoveSpeed,
		ShootMoveSpeedPct:   raw.ShootMoveSpeedPct,
		Spread:              raw.Spread,
		StandingSpread:      raw.StandingSpread,
		ZoomFov:             raw.ZoomFov,
		ZoomMoveSpeedPct:    raw.ZoomMoveSpeedPct,
	}
}

func buildBulletSpeedCurve(raw *rawdata.BulletSpeedCurve) *domain.BulletSpeedCurve {
	if raw == nil {
		return nil
	}
	spline := make([]domain.BulletSpeedCurveSpline, 0, len(raw.Spline))
	for _, p := range raw.Spline {
		spline = append(spline, domain.BulletSpeedCurveSpline{
			X:             p.X,
			Y:             p.Y,
			SlopeIncoming: p.SlopeIncoming,
			SlopeOutgoing: p.SlopeOutgoing,
		})
	}
	return &domain.BulletSpeedCurve{
		Spline:     spline,
		DomainMins: raw.DomainMins,
		DomainMaxs: raw.DomainMaxs,
	}
}

func (b *Builder) buildUpgrade(raw *rawdata.Upgrade) *domain.Upgrade {
	base := b.buildItemBase(raw)
	disabled := raw.Disabled != nil && *raw.Disabled
	upgrade := &domain.Upgrade{
		ItemBase:         base,
		ItemSlotType:     raw.ItemSlotType,
		ItemTier:         raw.ItemTier,
		Disabled:         raw.Disabled,
		Activation:       raw.Activation,
		ComponentItems:   raw.ComponentItems,
		ComponentItemIDs: identity.ComponentItemIDs(raw, b.items, b.log),
		IsActiveItem:     raw.Activation != domain.ActivationPassive,
		Shopable:         !disabled && raw.ItemSlotType.Purchasable() && base.Image != nil,
		Cost:             b.costForTier(raw.ItemTier),
	}
	return upgrade
}

// costForTier indexes the build's price table by tier. Untiered upgrades
// and tiers the table does not cover have no cost.
func (b *Builder) costForTier(tier domain.ItemTier) *int {
	t := int(tier)
	if t <= 0 || t >= len(b.prices) {
		return nil
	}
	cost := b.prices[t]
	return &cost
}

// splitPipeList splits a "|" separated engine list and trims each entry.
func splitPipeList(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	parts := strings.Split(*raw, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
