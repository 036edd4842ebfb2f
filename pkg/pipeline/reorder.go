package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/matzehuels/benchorder/pkg/dataset"
	"github.com/matzehuels/benchorder/pkg/errors"
	"github.com/matzehuels/benchorder/pkg/manifest"
	"github.com/matzehuels/benchorder/pkg/observability"
	"github.com/matzehuels/benchorder/pkg/pyrand"
	"github.com/matzehuels/benchorder/pkg/rank"
)

// Plan computes the reordering without writing anything. The returned plan
// carries the rows in final order with their new ids; the dataset rows
// themselves are returned alongside in the same order.
func (r *Runner) Plan(ctx context.Context, opts ReorderOptions) (*Plan, []dataset.Row, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	if err := errors.RequireFile("input", opts.Dataset); err != nil {
		return nil, nil, err
	}
	if err := errors.RequireFile("manifest", opts.Manifest); err != nil {
		return nil, nil, err
	}

	rows, err := dataset.Load(opts.Dataset)
	if err != nil {
		return nil, nil, err
	}
	m, err := manifest.Load(opts.Manifest)
	if err != nil {
		return nil, nil, err
	}
	if len(m.Skipped) > 0 {
		r.Logger.Warn("manifest entries without a valid slug ignored", "count", len(m.Skipped))
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	table, info := r.BuildStatsTable(ctx, m, opts.GraphsDir)
	r.Logger.Debug("built stats table",
		"slugs", info.Slugs,
		"cached", info.CacheHits,
		"parsed", info.Parsed,
		"unavailable", info.Unavailable)

	planned := make([]PlannedRow, len(rows))
	scores := make([]float64, len(rows))
	for i, row := range rows {
		p := PlannedRow{Source: i, Topic: row.Topic(), Score: rank.NoGraphScore}
		if s, ok := m.Lookup(p.Topic); ok {
			p.Slug = s
			if st, ok := table[s]; ok {
				p.Stats = st
				p.HasGraph = true
				p.Score = opts.Ideal.Score(st)
			}
		}
		planned[i] = p
		scores[i] = p.Score
	}

	rng := pyrand.New(opts.Seed)
	placements := rank.Order(scores, opts.Bands, rng)

	plan := &Plan{
		Rows:       make([]PlannedRow, len(placements)),
		Thresholds: rank.Thresholds(scores, opts.Bands),
		Histogram:  rank.Histogram(placements),
		Table:      table,
		TableInfo:  info,
		Options:    opts,
	}
	ordered := make([]dataset.Row, len(placements))
	for i, pl := range placements {
		row := rows[pl.Index]
		row.SetID(i + 1)
		ordered[i] = row

		p := planned[pl.Index]
		p.Band = pl.Band
		p.ID = dataset.FormatID(i + 1)
		plan.Rows[i] = p
	}
	return plan, ordered, nil
}

// Reorder computes the plan and writes the reordered dataset and its seed
// info under <OutputDir>/rseed_<seed>/.
func (r *Runner) Reorder(ctx context.Context, opts ReorderOptions) (res *ReorderResult, err error) {
	start := time.Now()
	defer func() {
		var rows int
		var hist []int
		if res != nil {
			rows = len(res.Plan.Rows)
			hist = res.Plan.Histogram
		}
		observability.Pipeline().OnReorderComplete(ctx, rows, hist, time.Since(start), err)
	}()

	if opts.OutputDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "output directory is required")
	}

	plan, rows, err := r.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	opts = plan.Options

	name := opts.OutputName
	if name == "" {
		name = OutputFile
	}
	if err := errors.ValidateFileName(name); err != nil {
		return nil, err
	}
	outDir := filepath.Join(opts.OutputDir, SeedDir(opts.Seed))
	outPath := filepath.Join(outDir, name)
	infoPath := filepath.Join(outDir, SeedInfoFile)

	data, err := dataset.Marshal(rows)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode reordered dataset")
	}
	info, err := marshalIndent(SeedInfo{
		Seed:        opts.Seed,
		InputPath:   opts.Dataset,
		OutputPath:  outPath,
		Description: SeedInfoDescription,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode seed info")
	}

	var out staging
	out.add(outPath, data)
	out.add(infoPath, info)
	if err := out.commit(); err != nil {
		return nil, fmt.Errorf("write outputs: %w", err)
	}

	r.Logger.Info("reordered dataset",
		"rows", len(plan.Rows),
		"with_graph", plan.WithGraph(),
		"bands", len(plan.Histogram),
		"seed", opts.Seed)

	return &ReorderResult{
		Plan:         plan,
		OutputPath:   outPath,
		SeedInfoPath: infoPath,
		Duration:     time.Since(start),
	}, nil
}
