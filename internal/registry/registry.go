// Package registry discovers game builds on disk and serves per-build,
// per-language snapshots of the projected asset data. The newest build is
// loaded eagerly at startup; older builds load on first request.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/raimannma/deadlock-assets-api/internal/assets"
	"github.com/raimannma/deadlock-assets-api/internal/concurrency"
	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/localization"
	"github.com/raimannma/deadlock-assets-api/internal/metrics"
	"github.com/raimannma/deadlock-assets-api/internal/projection"
	"github.com/raimannma/deadlock-assets-api/internal/rawdata"
)

const (
	dataSubdir       = "v2"
	heroesFile       = "raw_heroes.json"
	itemsFile        = "raw_items.json"
	genericDataFile  = "generic_data.json"
	iconStylesheet   = "ability_icons.css"
	localizationDir  = "localization"
	snapshotCacheCap = 64
)

// ErrNoBuilds means the builds directory holds no usable build.
var ErrNoBuilds = errors.New("no builds available")

// Build is one decoded game build, before localization.
type Build struct {
	ID     int
	Heroes []*rawdata.Hero
	Items  []rawdata.Item
	Prices []int

	dir string
}

type snapshotKey struct {
	build int
	lang  domain.Language
}

// Registry serves builds and snapshots. Loading is serialized per key so a
// burst of requests for a cold build decodes it once.
type Registry struct {
	dir     string
	decoder *rawdata.Decoder
	norm    *assets.Normalizer
	log     *slog.Logger

	mu       sync.RWMutex
	versions []int
	builds   map[int]*Build

	locks     *concurrency.LockManager
	snapshots *lru.Cache[snapshotKey, *Snapshot]
}

// NewRegistry creates a registry over the given builds directory.
func NewRegistry(dir string, heroNames []string, norm *assets.Normalizer, log *slog.Logger) (*Registry, error) {
	if log == nil {
		log = slog.Default()
	}
	cache, err := lru.New[snapshotKey, *Snapshot](snapshotCacheCap)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}
	return &Registry{
		dir:       dir,
		decoder:   rawdata.NewDecoder(heroNames, log),
		norm:      norm,
		log:       log,
		builds:    make(map[int]*Build),
		locks:     concurrency.NewLockManager(),
		snapshots: cache,
	}, nil
}

// Bootstrap discovers builds and eagerly loads the newest one together
// with its English snapshot.
func (r *Registry) Bootstrap(ctx context.Context) error {
	if err := r.Refresh(); err != nil {
		return err
	}
	latest, err := r.Latest()
	if err != nil {
		return err
	}
	if _, err := r.Snapshot(ctx, latest, domain.LanguageEnglish); err != nil {
		return fmt.Errorf("failed to load latest build %d: %w", latest, err)
	}
	r.log.Info("Registry bootstrapped", "latest_build", latest, "builds", len(r.Versions()))
	return nil
}

// Refresh re-reads the builds directory. Directory names that are not
// positive integers are ignored.
func (r *Registry) Refresh() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to read builds directory: %w", err)
	}

	versions := make([]int, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.Atoi(entry.Name())
		if err != nil || id <= 0 {
			continue
		}
		versions = append(versions, id)
	}
	if len(versions) == 0 {
		return fmt.Errorf("%w: %s", ErrNoBuilds, r.dir)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(versions)))

	r.mu.Lock()
	r.versions = versions
	r.mu.Unlock()
	return nil
}

// Versions lists the known build ids, newest first.
func (r *Registry) Versions() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.versions))
	copy(out, r.versions)
	return out
}

// Latest returns the newest known build id.
func (r *Registry) Latest() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.versions) == 0 {
		return 0, ErrNoBuilds
	}
	return r.versions[0], nil
}

// Has reports whether the build id is known.
func (r *Registry) Has(id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.versions {
		if v == id {
			return true
		}
	}
	return false
}

// Build returns the decoded build, loading it on first access.
func (r *Registry) Build(ctx context.Context, id int) (*Build, error) {
	if !r.Has(id) {
		return nil, fmt.Errorf("%w: build %d", domain.ErrBuildNotFound, id)
	}

	r.mu.RLock()
	build, ok := r.builds[id]
	r.mu.RUnlock()
	if ok {
		return build, nil
	}

	err := r.locks.WithLock("build:"+strconv.Itoa(id), func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.mu.RLock()
		build, ok = r.builds[id]
		r.mu.RUnlock()
		if ok {
			return nil
		}

		loaded, err := r.loadBuild(id)
		if err != nil {
			return err
		}
		r.mu.Lock()
		r.builds[id] = loaded
		r.mu.Unlock()
		build = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return build, nil
}

// Snapshot returns the build projected into the language, cached per
// (build, language) pair.
func (r *Registry) Snapshot(ctx context.Context, id int, lang domain.Language) (*Snapshot, error) {
	key := snapshotKey{build: id, lang: lang}
	if snapshot, ok := r.snapshots.Get(key); ok {
		metrics.LocalizationCacheHits.Inc()
		return snapshot, nil
	}
	metrics.LocalizationCacheMisses.Inc()

	build, err := r.Build(ctx, id)
	if err != nil {
		return nil, err
	}

	var snapshot *Snapshot
	err = r.locks.WithLock(fmt.Sprintf("snapshot:%d:%s", id, lang), func() error {
		if cached, ok := r.snapshots.Get(key); ok {
			snapshot = cached
			return nil
		}

		table, err := localization.Load(filepath.Join(build.dir, localizationDir), lang, r.log)
		if err != nil {
			return fmt.Errorf("failed to load localization for build %d: %w", id, err)
		}

		builder := projection.NewBuilder(build.Heroes, build.Items, table, r.norm, build.Prices, r.log)
		snapshot = NewSnapshot(id, lang, builder.Heroes(), builder.Items(), builder.Ranks())
		r.snapshots.Add(key, snapshot)
		r.log.Info("Snapshot built",
			"build", id, "language", lang,
			"heroes", len(snapshot.Heroes), "items", len(snapshot.Items))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *Registry) loadBuild(id int) (*Build, error) {
	start := time.Now()
	dir := filepath.Join(r.dir, strconv.Itoa(id), dataSubdir)

	var rawHeroes map[string]json.RawMessage
	if err := readJSONFile(filepath.Join(dir, heroesFile), &rawHeroes); err != nil {
		metrics.BuildLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	var rawItems map[string]json.RawMessage
	if err := readJSONFile(filepath.Join(dir, itemsFile), &rawItems); err != nil {
		metrics.BuildLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// generic data is optional; without it upgrades just carry no cost
	var generic rawdata.GenericData
	if err := readJSONFile(filepath.Join(dir, genericDataFile), &generic); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			metrics.BuildLoadsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		r.log.Debug("Generic data missing", "build", id)
	}

	build := &Build{
		ID:     id,
		Heroes: r.decoder.DecodeHeroes(rawHeroes),
		Items:  r.decoder.DecodeItems(rawItems),
		Prices: generic.ItemPricePerTier,
		dir:    dir,
	}

	// The icon stylesheet is optional; without it item images come from the
	// records alone.
	icons, err := assets.ParseIconOverrides(filepath.Join(dir, iconStylesheet))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		r.log.Warn("Failed to parse icon stylesheet", "build", id, "error", err)
	}
	applyIconOverrides(build.Items, icons)

	metrics.BuildLoadsTotal.WithLabelValues("success").Inc()
	metrics.BuildLoadDuration.Observe(time.Since(start).Seconds())
	r.log.Info("Build loaded",
		"build", id, "heroes", len(build.Heroes), "items", len(build.Items),
		"duration", time.Since(start))
	return build, nil
}

// applyIconOverrides replaces an item's image reference with its stylesheet
// override. Records without an image or CSS class keep what they have, so
// the override never invents an icon for an imageless record.
func applyIconOverrides(items []rawdata.Item, icons assets.IconOverrides) {
	if len(icons) == 0 {
		return
	}
	for _, item := range items {
		base := item.Base()
		if base.Image == nil || base.CSSClass == nil || *base.CSSClass == "" {
			continue
		}
		if ref, ok := icons[*base.CSSClass]; ok {
			override := ref
			base.Image = &override
		}
	}
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
