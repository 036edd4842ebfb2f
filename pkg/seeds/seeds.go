// Package seeds locates the curated artifacts of the external extraction runs.
//
// The run tree looks like
//
//	<root>/<topic>/<YYYYMMDD_HHMMSS>/curated_artifacts/entities_pruned.parquet
//	<root>/<topic>/<YYYYMMDD_HHMMSS>/curated_artifacts/relationships_pruned.parquet
//	<root>/<topic>/<YYYYMMDD_HHMMSS>/curated_artifacts/curated_llm_package.json   (optional)
//	<root>/<topic>/<YYYYMMDD_HHMMSS>/community_details.json                       (optional)
//
// Run directory names sort lexicographically in chronological order; the
// selection rule depends on that.
package seeds

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Environment variable naming the root of the external checkout.
const EnvRoot = "ISABENCH_ROOT"

// Layout of the external checkout and its runs.
const (
	seedsSubdir     = "output/2025_seeds"
	curatedDir      = "curated_artifacts"
	entitiesFile    = "entities_pruned.parquet"
	relationsFile   = "relationships_pruned.parquet"
	packageFile     = "curated_llm_package.json"
	detailsFile     = "community_details.json"
	runNameLength   = len("20250101_000000")
	defaultCheckout = "ISAbench"
)

// Root returns the seeds root: $ISABENCH_ROOT/output/2025_seeds, or the
// sibling checkout <projectRoot>/../ISAbench/output/2025_seeds when the
// variable is unset.
func Root(projectRoot string) string {
	base := os.Getenv(EnvRoot)
	if base == "" {
		base = filepath.Join(filepath.Dir(filepath.Clean(projectRoot)), defaultCheckout)
	}
	return filepath.Join(base, filepath.FromSlash(seedsSubdir))
}

// Run is one qualifying run directory.
type Run struct {
	Dir string
}

// Name is the run's timestamp directory name.
func (r Run) Name() string { return filepath.Base(r.Dir) }

// Entities is the pruned entity table.
func (r Run) Entities() string { return filepath.Join(r.Dir, curatedDir, entitiesFile) }

// Relationships is the pruned relationship table.
func (r Run) Relationships() string { return filepath.Join(r.Dir, curatedDir, relationsFile) }

// Package is the optional curated LLM package holding community summaries.
func (r Run) Package() string { return filepath.Join(r.Dir, curatedDir, packageFile) }

// Details is the optional community details document.
func (r Run) Details() string { return filepath.Join(r.Dir, detailsFile) }

// IsRunName reports whether name has the timestamp shape of a run directory:
// 15 characters with exactly one underscore.
func IsRunName(name string) bool {
	return len(name) == runNameLength && strings.Count(name, "_") == 1
}

// FindLatestRun returns the newest run for topic that has both curated
// tables. Candidates are directories under <root>/<topic> named like a
// timestamp; the lexicographically greatest name that qualifies wins.
// ok is false when the topic has no qualifying run.
func FindLatestRun(root, topic string) (Run, bool) {
	if topic == "" || strings.ContainsAny(topic, `/\`) || topic == "." || topic == ".." {
		return Run{}, false
	}
	topicDir := filepath.Join(root, topic)
	entries, err := os.ReadDir(topicDir)
	if err != nil {
		return Run{}, false
	}

	var names []string
	for _, e := range entries {
		if !IsRunName(e.Name()) || !isDir(filepath.Join(topicDir, e.Name())) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	slices.Reverse(names)

	for _, name := range names {
		run := Run{Dir: filepath.Join(topicDir, name)}
		if exists(run.Entities()) && exists(run.Relationships()) {
			return run, true
		}
	}
	return Run{}, false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
