package projection

import (
	"sort"
	"strings"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
	"github.com/raimannma/deadlock-assets-api/internal/utils"
)

func (b *Builder) buildHero(raw *rawdata.Hero) domain.Hero {
	return domain.Hero{
		ID:                      *raw.HeroID,
		ClassName:               raw.ClassName,
		Name:                    b.table.Get(raw.ClassName),
		Description:             b.buildHeroDescription(raw),
		RecommendedUpgrades:     raw.RecommendedUpgrades,
		PlayerSelectable:        raw.PlayerSelectable,
		BotSelectable:           raw.BotSelectable,
		Disabled:                raw.Disabled,
		InDevelopment:           raw.InDevelopment,
		NeedsTesting:            raw.NeedsTesting,
		AssignedPlayersOnly:     raw.AssignedPlayersOnly,
		LimitedTesting:          raw.LimitedTesting,
		Complexity:              raw.Complexity,
		Skin:                    raw.ModelSkin,
		Readability:             raw.Readability,
		Images:                  b.buildHeroImages(raw),
		Items:                   raw.Items,
		StartingStats:           buildStartingStats(raw.StartingStats),
		ItemSlotInfo:            buildItemSlotInfo(raw.ItemSlotInfo),
		Physics:                 buildHeroPhysics(raw),
		Colors:                  buildHeroColors(raw),
		ShopStatDisplay:         b.buildShopStatDisplay(raw.ShopStatDisplay),
		StatsDisplay:            buildStatsDisplay(raw.StatsDisplay),
		StatsUI:                 buildStatsUI(raw.StatsUI),
		LevelInfo:               buildLevelInfo(raw.LevelInfo),
		ScalingStats:            buildScalingStats(raw.ScalingStats),
		PurchaseBonuses:         buildPurchaseBonuses(raw.PurchaseBonuses),
		StandardLevelUpUpgrades: raw.StandardLevelUpUpgrades,
	}
}

// buildHeroDescription reads the three fixed flavor-text tokens. Absent
// tokens stay nil instead of falling back to the token name.
func (b *Builder) buildHeroDescription(raw *rawdata.Hero) domain.HeroDescription {
	return domain.HeroDescription{
		Lore:      b.lookupToken(raw.ClassName + "_lore"),
		Role:      b.lookupToken(raw.ClassName + "_role"),
		Playstyle: b.lookupToken(raw.ClassName + "_playstyle"),
	}
}

func (b *Builder) buildHeroImages(raw *rawdata.Hero) domain.HeroImages {
	images := domain.HeroImages{
		IconHeroCard:   b.norm.ImageURL(raw.IconHeroCard),
		IconImageSmall: b.norm.ImageURL(raw.IconImageSmall),
		MinimapImage:   b.norm.ImageURL(raw.MinimapImage),
		SelectionImage: b.norm.ImageURL(raw.SelectionImage),
		TopBarImage:    b.norm.ImageURL(raw.TopBarImage),
		TopBarVertical: b.norm.ImageURL(raw.TopBarVertical),
		WeaponImage:    b.norm.ImageURL(raw.WeaponImage),
	}
	images.IconHeroCardWebp = b.norm.WebpURL(images.IconHeroCard)
	images.IconImageSmallWebp = b.norm.WebpURL(images.IconImageSmall)
	images.MinimapImageWebp = b.norm.WebpURL(images.MinimapImage)
	images.SelectionImageWebp = b.norm.WebpURL(images.SelectionImage)
	images.TopBarImageWebp = b.norm.WebpURL(images.TopBarImage)
	images.TopBarVerticalWebp = b.norm.WebpURL(images.TopBarVertical)
	images.WeaponImageWebp = b.norm.WebpURL(images.WeaponImage)
	return images
}

// buildStartingStats converts engine stat keys like "EMaxMoveSpeed" into
// snake_case keys, keeping the engine key as the display token.
func buildStartingStats(raw map[string]float64) map[string]domain.HeroStartingStat {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]domain.HeroStartingStat, len(raw))
	for key, value := range raw {
		name := utils.CamelToSnake(strings.TrimPrefix(key, "E"))
		out[name] = domain.HeroStartingStat{
			Value:           value,
			DisplayStatName: key,
		}
	}
	return out
}

func buildItemSlotInfo(raw map[string]rawdata.ItemSlotInfo) map[domain.ItemSlotType]domain.HeroItemSlotInfo {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[domain.ItemSlotType]domain.HeroItemSlotInfo, len(raw))
	for key, info := range raw {
		slot := domain.ParseItemSlotType(key)
		if slot == domain.ItemSlotTypeUnknown {
			continue
		}
		out[slot] = domain.HeroItemSlotInfo{MaxPurchasesForTier: info.MaxPurchasesForTier}
	}
	return out
}

func buildHeroPhysics(raw *rawdata.Hero) domain.HeroPhysics {
	return domain.HeroPhysics{
		CollisionHeight:                   raw.CollisionHeight,
		CollisionRadius:                   raw.CollisionRadius,
		FootstepSoundTravelDistanceMeters: raw.FootstepSoundTravelDistanceMeters,
		StealthSpeedMetersPerSecond:       raw.StealthSpeedMetersPerSecond,
		StepHeight:                        raw.StepHeight,
		StepSoundTime:                     raw.StepSoundTime,
		StepSoundTimeSprinting:            raw.StepSoundTimeSprinting,
	}
}

func buildHeroColors(raw *rawdata.Hero) domain.HeroColors {
	return domain.HeroColors{
		GlowEnemy:    raw.ColorGlowEnemy,
		GlowFriendly: raw.ColorGlowFriendly,
		GlowTeam1:    raw.ColorGlowTeam1,
		GlowTeam2:    raw.ColorGlowTeam2,
		UI:           raw.ColorUI,
	}
}

func (b *Builder) buildShopStatDisplay(raw *rawdata.ShopStatDisplay) *domain.HeroShopStatDisplay {
	if raw == nil {
		return nil
	}
	out := &domain.HeroShopStatDisplay{}
	if raw.SpiritStatsDisplay != nil {
		out.SpiritStatsDisplay = domain.HeroShopSpiritStatsDisplay{
			DisplayStats: raw.SpiritStatsDisplay.DisplayStats,
		}
	}
	if raw.VitalityStatsDisplay != nil {
		out.VitalityStatsDisplay = domain.HeroShopVitalityStatsDisplay{
			DisplayStats:      raw.VitalityStatsDisplay.DisplayStats,
			OtherDisplayStats: raw.VitalityStatsDisplay.OtherDisplayStats,
		}
	}
	if raw.WeaponStatsDisplay != nil {
		weaponImage := b.norm.ImageURL(raw.WeaponStatsDisplay.WeaponImage)
		attributes := splitPipeList(raw.WeaponStatsDisplay.WeaponAttributes)
		if attributes == nil {
			attributes = []string{}
		}
		out.WeaponStatsDisplay = domain.HeroShopWeaponStatsDisplay{
			DisplayStats:      raw.WeaponStatsDisplay.DisplayStats,
			OtherDisplayStats: raw.WeaponStatsDisplay.OtherDisplayStats,
			WeaponAttributes:  attributes,
			WeaponImage:       weaponImage,
			WeaponImageWebp:   b.norm.WebpURL(weaponImage),
		}
	}
	return out
}

func buildStatsDisplay(raw *rawdata.StatsDisplay) *domain.HeroStatsDisplay {
	if raw == nil {
		return nil
	}
	return &domain.HeroStatsDisplay{
		HealthHeaderStats: raw.HealthHeaderStats,
		HealthStats:       raw.HealthHeaderStats,
		MagicHeaderStats:  raw.MagicHeaderStats,
		MagicStats:        raw.MagicStats,
		WeaponHeaderStats: raw.WeaponHeaderStats,
		WeaponStats:       raw.WeaponStats,
	}
}

func buildStatsUI(raw *rawdata.StatsUI) *domain.HeroStatsUI {
	if raw == nil {
		return nil
	}
	stats := make([]domain.HeroStatsUIStat, 0, len(raw.DisplayStats))
	for _, s := range raw.DisplayStats {
		stats = append(stats, domain.HeroStatsUIStat{
			Category: s.Category,
			StatType: s.StatType,
		})
	}
	return &domain.HeroStatsUI{
		WeaponStatDisplay: raw.WeaponStatDisplay,
		DisplayStats:      stats,
	}
}

// buildLevelInfo normalizes each level's bonus currencies from a
// currency-to-amount map down to the sorted list of granted currency keys.
func buildLevelInfo(raw map[string]rawdata.LevelInfo) map[string]domain.HeroLevelInfo {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]domain.HeroLevelInfo, len(raw))
	for level, info := range raw {
		var currencies []string
		if len(info.BonusCurrencies) > 0 {
			currencies = make([]string, 0, len(info.BonusCurrencies))
			for currency := range info.BonusCurrencies {
				currencies = append(currencies, currency)
			}
			sort.Strings(currencies)
		}
		out[level] = domain.HeroLevelInfo{
			UseStandardUpgrade: info.UseStandardUpgrade,
			BonusCurrencies:    currencies,
			RequiredGold:       info.RequiredGold,
		}
	}
	return out
}

func buildScalingStats(raw map[string]rawdata.ScalingStat) map[string]domain.HeroScalingStat {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]domain.HeroScalingStat, len(raw))
	for key, s := range raw {
		out[key] = domain.HeroScalingStat{
			ScalingStat: s.ScalingStat,
			Scale:       s.Scale,
		}
	}
	return out
}

func buildPurchaseBonuses(raw map[string][]rawdata.PurchaseBonus) map[domain.ItemSlotType][]domain.HeroPurchaseBonus {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[domain.ItemSlotType][]domain.HeroPurchaseBonus, len(raw))
	for key, bonuses := range raw {
		slot := domain.ParseItemSlotType(key)
		if slot == domain.ItemSlotTypeUnknown {
			continue
		}
		converted := make([]domain.HeroPurchaseBonus, 0, len(bonuses))
		for _, bonus := range bonuses {
			converted = append(converted, domain.HeroPurchaseBonus{
				ValueType: bonus.ValueType,
				Tier:      bonus.Tier,
				Value:     bonus.Value,
			})
		}
		out[slot] = converted
	}
	return out
}
