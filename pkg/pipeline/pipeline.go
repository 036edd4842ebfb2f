// Package pipeline runs the two batch stages of benchorder.
//
// Export walks the unique topics of the dataset, finds each topic's latest
// complete extraction run, and publishes its graph under an anonymized slug
// together with community metadata and a topic→slug manifest.
//
// Reorder scores every dataset row by the shape of its topic's exported
// graph, splits the scores into quantile bands, shuffles each band with a
// single seeded generator, and renumbers the rows in their new order.
//
// Both stages load all inputs, compute everything in memory and only then
// write. A run that fails leaves the output tree untouched.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Reorder(ctx, pipeline.ReorderOptions{
//	    Dataset:   "assets/data/iAgentBench.json",
//	    Manifest:  "assets/data/graphs/manifest.json",
//	    GraphsDir: "assets/data/graphs",
//	    OutputDir: "assets/data/reordered",
//	    Seed:      42,
//	})
//
// [Runner.Plan] computes the same ordering without writing anything.
package pipeline

import (
	"fmt"
	"time"

	"github.com/matzehuels/benchorder/pkg/graphml"
	"github.com/matzehuels/benchorder/pkg/rank"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// OutputFile is the reordered dataset's name inside rseed_<seed>/,
	// whatever the input file is called.
	OutputFile = "iAgentBench.json"

	// SeedInfoFile sits next to the reordered dataset.
	SeedInfoFile = "seed_info.json"

	// SeedInfoDescription explains how the reordered dataset was produced.
	SeedInfoDescription = "Reordered by graph demo score (sweet-spot size), then banded shuffle for diversity; ids 1..N."

	// topicLogWidth truncates topics in progress output.
	topicLogWidth = 50
)

// SeedDir returns the output sub-directory for a seed ("rseed_42").
func SeedDir(seed int64) string {
	return fmt.Sprintf("rseed_%d", seed)
}

// =============================================================================
// Options
// =============================================================================

// ReorderOptions configures [Runner.Plan] and [Runner.Reorder].
type ReorderOptions struct {
	Dataset   string // input dataset file
	Manifest  string // topic→slug manifest written by Export
	GraphsDir string // directory holding <slug>.graphml files
	OutputDir string // base directory for rseed_<seed>/
	Seed      int64
	Bands     int        // quantile bands; 0 means rank.DefaultBands
	Ideal     rank.Ideal // zero value means rank.DefaultIdeal

	// OutputName overrides OutputFile. It must be a bare file name.
	OutputName string
}

// ValidateAndSetDefaults checks required fields and fills defaults.
func (o *ReorderOptions) ValidateAndSetDefaults() error {
	if o.Dataset == "" {
		return fmt.Errorf("dataset path is required")
	}
	if o.Manifest == "" {
		return fmt.Errorf("manifest path is required")
	}
	if o.GraphsDir == "" {
		return fmt.Errorf("graphs directory is required")
	}
	if o.Bands == 0 {
		o.Bands = rank.DefaultBands
	}
	if o.Bands < 1 {
		return fmt.Errorf("bands must be at least 1, got %d", o.Bands)
	}
	if o.Ideal == (rank.Ideal{}) {
		o.Ideal = rank.DefaultIdeal
	}
	return o.Ideal.Validate()
}

// ExportOptions configures [Runner.Export].
type ExportOptions struct {
	Dataset   string // input dataset file
	GraphsDir string // output directory for graphs, metadata and manifest
	SeedsRoot string // root of the extraction run tree
}

// ValidateAndSetDefaults checks required fields.
func (o *ExportOptions) ValidateAndSetDefaults() error {
	switch {
	case o.Dataset == "":
		return fmt.Errorf("dataset path is required")
	case o.GraphsDir == "":
		return fmt.Errorf("graphs directory is required")
	case o.SeedsRoot == "":
		return fmt.Errorf("seeds root is required")
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// PlannedRow is one row of the final order.
type PlannedRow struct {
	Source   int    // index in the input dataset
	ID       string // newly assigned id
	Topic    string
	Slug     string // "" when the topic is not in the manifest
	Stats    graphml.Stats
	HasGraph bool
	Score    float64
	Band     int
}

// Plan is a computed reordering.
type Plan struct {
	Rows       []PlannedRow
	Thresholds []float64
	Histogram  []int // rows per band
	Table      StatsTable
	TableInfo  TableInfo
	Options    ReorderOptions
}

// WithGraph counts rows that resolved to a graph.
func (p *Plan) WithGraph() int {
	n := 0
	for _, r := range p.Rows {
		if r.HasGraph {
			n++
		}
	}
	return n
}

// ReorderResult describes a completed reorder run.
type ReorderResult struct {
	Plan         *Plan
	OutputPath   string
	SeedInfoPath string
	Duration     time.Duration
}

// SeedInfo is the provenance record written next to the reordered dataset.
type SeedInfo struct {
	Seed        int64  `json:"seed"`
	InputPath   string `json:"input_path"`
	OutputPath  string `json:"output_path"`
	Description string `json:"description"`
}

// ExportedTopic is one topic published by Export.
type ExportedTopic struct {
	Topic      string
	Slug       string
	Run        string // run directory the graph came from
	Stats      graphml.Stats
	HasMeta    bool
	HasDetails bool
}

// SkippedTopic is a topic Export could not publish.
type SkippedTopic struct {
	Topic  string
	Reason string
}

// ExportResult describes a completed export run.
type ExportResult struct {
	Topics       int // unique topics in the dataset
	Exported     []ExportedTopic
	Skipped      []SkippedTopic
	ManifestPath string
	Duration     time.Duration
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
