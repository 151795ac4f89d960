package registry

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raimannma/deadlock-assets-api/internal/assets"
	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

const (
	testHeroesJSON = `{
		"hero_astro": {
			"m_HeroID": 1,
			"m_mapBoundAbilities": {"ESlot_Signature_1": "astro_gun"}
		},
		"hero_bebop": {
			"m_HeroID": 2,
			"m_bDisabled": true
		}
	}`
	testItemsJSON = `{
		"astro_gun": {"m_strAbilityImage": "{images}/abilities/astro_gun.psd"},
		"upgrade_headshot_booster": {
			"m_iItemTier": 1,
			"m_eItemSlotType": "EItemSlotType_WeaponMod",
			"m_strAbilityImage": "{images}/upgrades/headshot_booster.psd",
			"m_strCSSClass": "HeadshotBooster"
		}
	}`
	testIconCSS = `.HeadshotBooster {
		background-image: url("s2r://panorama/images/upgrades/headshot_booster_alt_psd.vtex");
	}`
	testGenericJSON = `{"m_nItemPricePerTier": [0, 500, 1250, 3000, 6200]}`
	testEnglishLoc  = `{"lang": {"Tokens": {
		"hero_astro": "Astro",
		"astro_gun": "Star Cannon",
		"upgrade_headshot_booster": "Headshot Booster"
	}}}`
	testGermanLoc = `{"lang": {"Tokens": {"hero_astro": "Astro (DE)"}}}`
)

func writeBuild(t *testing.T, dir string, id int) {
	t.Helper()
	buildDir := filepath.Join(dir, strconv.Itoa(id), dataSubdir)
	locDir := filepath.Join(buildDir, localizationDir)
	require.NoError(t, os.MkdirAll(locDir, 0o755))

	files := map[string]string{
		filepath.Join(buildDir, heroesFile):                testHeroesJSON,
		filepath.Join(buildDir, itemsFile):                 testItemsJSON,
		filepath.Join(buildDir, genericDataFile):           testGenericJSON,
		filepath.Join(buildDir, iconStylesheet):            testIconCSS,
		filepath.Join(locDir, "citadel_main_english.json"): testEnglishLoc,
		filepath.Join(locDir, "citadel_main_german.json"):  testGermanLoc,
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func testRegistry(t *testing.T, buildIDs ...int) *Registry {
	t.Helper()
	dir := t.TempDir()
	for _, id := range buildIDs {
		writeBuild(t, dir, id)
	}
	norm := assets.NewNormalizer("https://assets.example.com/images", "https://assets.example.com/videos")
	r, err := NewRegistry(dir, []string{"astro", "bebop"}, norm, nil)
	require.NoError(t, err)
	require.NoError(t, r.Refresh())
	return r
}

func TestRefresh_DiscoversBuilds(t *testing.T) {
	r := testRegistry(t, 5212, 5470, 5301)

	assert.Equal(t, []int{5470, 5301, 5212}, r.Versions())

	latest, err := r.Latest()
	require.NoError(t, err)
	assert.Equal(t, 5470, latest)
}

func TestRefresh_EmptyDir(t *testing.T) {
	norm := assets.NewNormalizer("http://img", "http://vid")
	r, err := NewRegistry(t.TempDir(), []string{"astro"}, norm, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, r.Refresh(), ErrNoBuilds)
}

func TestRefresh_IgnoresNonNumericEntries(t *testing.T) {
	dir := t.TempDir()
	writeBuild(t, dir, 100)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "not-a-build"), 0o755))

	norm := assets.NewNormalizer("http://img", "http://vid")
	r, err := NewRegistry(dir, []string{"astro"}, norm, nil)
	require.NoError(t, err)
	require.NoError(t, r.Refresh())
	assert.Equal(t, []int{100}, r.Versions())
}

func TestBuild_UnknownID(t *testing.T) {
	r := testRegistry(t, 100)

	_, err := r.Build(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrBuildNotFound)
}

func TestSnapshot(t *testing.T) {
	r := testRegistry(t, 100)
	ctx := context.Background()

	snapshot, err := r.Snapshot(ctx, 100, domain.LanguageEnglish)
	require.NoError(t, err)

	require.Len(t, snapshot.Heroes, 2)
	assert.Equal(t, "Astro", snapshot.Heroes[0].Name)
	require.Len(t, snapshot.Items, 2)

	hero, err := snapshot.HeroByID(1)
	require.NoError(t, err)
	assert.Equal(t, "hero_astro", hero.ClassName)

	_, err = snapshot.HeroByID(42)
	assert.ErrorIs(t, err, domain.ErrHeroNotFound)

	byName, err := snapshot.HeroByName("astro")
	require.NoError(t, err)
	assert.Equal(t, hero.ID, byName.ID)

	item, err := snapshot.ItemByIDOrClassName("astro_gun")
	require.NoError(t, err)
	assert.Equal(t, "Star Cannon", item.(*domain.Ability).Name)

	byID, err := snapshot.ItemByIDOrClassName(strconv.FormatUint(uint64(item.ItemID()), 10))
	require.NoError(t, err)
	assert.Equal(t, item.ItemID(), byID.ItemID())

	_, err = snapshot.ItemByIDOrClassName("upgrade_nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	require.Len(t, snapshot.Ranks, domain.RankTiers)
	assert.Equal(t, "#CB643B", snapshot.Ranks[1].Color)
	// no rank tokens in the fixture, names fall back to the token itself
	assert.Equal(t, "Citadel_ranks_rank1", snapshot.Ranks[1].Name)
}

func TestSnapshot_IconStylesheetOverride(t *testing.T) {
	r := testRegistry(t, 100)

	snapshot, err := r.Snapshot(context.Background(), 100, domain.LanguageEnglish)
	require.NoError(t, err)

	// the stylesheet rule for the item's CSS class replaces the record image
	booster, err := snapshot.ItemByIDOrClassName("upgrade_headshot_booster")
	require.NoError(t, err)
	image := booster.(*domain.Upgrade).Image
	require.NotNil(t, image)
	assert.Equal(t, "https://assets.example.com/images/upgrades/headshot_booster_alt_psd.png", *image)

	// the gun has no CSS class, its own image survives
	gun, err := snapshot.ItemByIDOrClassName("astro_gun")
	require.NoError(t, err)
	require.NotNil(t, gun.(*domain.Ability).Image)
	assert.Equal(t, "https://assets.example.com/images/abilities/astro_gun_psd.png", *gun.(*domain.Ability).Image)
}

func TestSnapshot_Cached(t *testing.T) {
	r := testRegistry(t, 100)
	ctx := context.Background()

	first, err := r.Snapshot(ctx, 100, domain.LanguageEnglish)
	require.NoError(t, err)
	second, err := r.Snapshot(ctx, 100, domain.LanguageEnglish)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSnapshot_LanguageOverlay(t *testing.T) {
	r := testRegistry(t, 100)
	ctx := context.Background()

	german, err := r.Snapshot(ctx, 100, domain.LanguageGerman)
	require.NoError(t, err)

	hero, err := german.HeroByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Astro (DE)", hero.Name)

	// untranslated items fall back to English
	item, err := german.ItemByIDOrClassName("astro_gun")
	require.NoError(t, err)
	assert.Equal(t, "Star Cannon", item.(*domain.Ability).Name)
}

func TestSnapshot_Filters(t *testing.T) {
	r := testRegistry(t, 100)
	ctx := context.Background()

	snapshot, err := r.Snapshot(ctx, 100, domain.LanguageEnglish)
	require.NoError(t, err)

	active := snapshot.ActiveHeroes()
	require.Len(t, active, 1)
	assert.Equal(t, "hero_astro", active[0].ClassName)

	byHero := snapshot.ItemsByHeroID(1)
	require.Len(t, byHero, 1)
	assert.Equal(t, "astro_gun", byHero[0].ItemClassName())

	upgrades := snapshot.ItemsByType(domain.ItemTypeUpgrade)
	require.Len(t, upgrades, 1)
	assert.Equal(t, "upgrade_headshot_booster", upgrades[0].ItemClassName())

	weaponMods := snapshot.ItemsBySlotType(domain.ItemSlotTypeWeaponMod)
	require.Len(t, weaponMods, 1)

	assert.Empty(t, snapshot.ItemsBySlotType(domain.ItemSlotTypeTech))
}

func TestBootstrap(t *testing.T) {
	r := testRegistry(t, 100, 200)

	require.NoError(t, r.Bootstrap(context.Background()))

	// latest build is cached after bootstrap
	snapshot, err := r.Snapshot(context.Background(), 200, domain.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, 200, snapshot.Build)
}
