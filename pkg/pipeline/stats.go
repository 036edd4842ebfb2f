package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matzehuels/benchorder/pkg/cache"
	"github.com/matzehuels/benchorder/pkg/graphml"
	"github.com/matzehuels/benchorder/pkg/manifest"
	"github.com/matzehuels/benchorder/pkg/observability"
)

const statsKeyType = "graphstats"

// StatsTable maps slug to the shape of its exported graph. Slugs whose graph
// is missing or unreadable are absent.
type StatsTable map[string]graphml.Stats

// TableInfo summarises how a StatsTable was built.
type TableInfo struct {
	Slugs       int // distinct slugs in the manifest
	CacheHits   int
	Parsed      int
	Unavailable int
}

// GraphPath returns where the graph for slug lives in graphsDir.
func GraphPath(graphsDir, slug string) string {
	return filepath.Join(graphsDir, slug+".graphml")
}

// BuildStatsTable reads every graph named by the manifest exactly once.
//
// Shapes are cached by the SHA-256 of the file contents, so an unchanged
// graph is never parsed twice across runs. Cache failures are ignored.
func (r *Runner) BuildStatsTable(ctx context.Context, m *manifest.Manifest, graphsDir string) (StatsTable, TableInfo) {
	table := make(StatsTable)
	var info TableInfo

	for _, s := range m.Slugs() {
		info.Slugs++
		path := GraphPath(graphsDir, s)

		data, ok := readRegular(path)
		if !ok {
			info.Unavailable++
			r.Logger.Debug("graph unavailable", "slug", s, "path", path)
			continue
		}

		key := r.Keyer.StatsKey(cache.Hash(data))
		if st, hit := r.cachedStats(ctx, key); hit {
			table[s] = st
			info.CacheHits++
			continue
		}

		st, ok := graphml.ReadStats(bytes.NewReader(data))
		if !ok {
			info.Unavailable++
			r.Logger.Warn("unreadable graph", "slug", s, "path", path)
			continue
		}
		table[s] = st
		info.Parsed++
		r.storeStats(ctx, key, st)
	}
	return table, info
}

func (r *Runner) cachedStats(ctx context.Context, key string) (graphml.Stats, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, statsKeyType)
		return graphml.Stats{}, false
	}
	var st graphml.Stats
	if err := json.Unmarshal(data, &st); err != nil {
		observability.Cache().OnCacheMiss(ctx, statsKeyType)
		return graphml.Stats{}, false
	}
	observability.Cache().OnCacheHit(ctx, statsKeyType)
	return st, true
}

func (r *Runner) storeStats(ctx context.Context, key string, st graphml.Stats) {
	data, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLStats); err != nil {
		r.Logger.Debug("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, statsKeyType, len(data))
}

// readRegular returns the contents of path if it is a readable regular file.
func readRegular(path string) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return data, true
}
