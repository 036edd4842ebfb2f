package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/benchorder/pkg/community"
	"github.com/matzehuels/benchorder/pkg/dataset"
	"github.com/matzehuels/benchorder/pkg/errors"
	"github.com/matzehuels/benchorder/pkg/graphml"
	"github.com/matzehuels/benchorder/pkg/manifest"
	"github.com/matzehuels/benchorder/pkg/observability"
	"github.com/matzehuels/benchorder/pkg/records"
	"github.com/matzehuels/benchorder/pkg/seeds"
	"github.com/matzehuels/benchorder/pkg/slug"
)

// Skip reasons reported for topics Export could not publish.
const (
	ReasonNoRun      = "no qualifying run"
	ReasonBadRecords = "unreadable curated tables"
	ReasonBadGraph   = "graph encoding failed"
)

// MetaPath returns where the community metadata for slug lives.
func MetaPath(graphsDir, slug string) string {
	return filepath.Join(graphsDir, slug+"_meta.json")
}

// DetailsPath returns where the community details for slug live.
func DetailsPath(graphsDir, slug string) string {
	return filepath.Join(graphsDir, slug+"_details.json")
}

// Export publishes one graph per dataset topic that has a complete run, plus
// the manifest. Topics without a usable run are skipped and left out of the
// manifest. Nothing is written unless every topic has been processed.
func (r *Runner) Export(ctx context.Context, opts ExportOptions) (res *ExportResult, err error) {
	start := time.Now()
	defer func() {
		var exported, skipped int
		if res != nil {
			exported, skipped = len(res.Exported), len(res.Skipped)
		}
		observability.Pipeline().OnExportComplete(ctx, exported, skipped, time.Since(start), err)
	}()

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	if err := errors.RequireDir("seeds root", opts.SeedsRoot); err != nil {
		return nil, errors.New(errors.ErrCodeFileNotFound,
			"seeds root not found: %s (set %s if ISAbench is elsewhere)", opts.SeedsRoot, seeds.EnvRoot)
	}
	if err := errors.RequireFile("dataset", opts.Dataset); err != nil {
		return nil, err
	}

	rows, err := dataset.Load(opts.Dataset)
	if err != nil {
		return nil, err
	}
	topics := dataset.UniqueTopics(rows)
	r.Logger.Info("unique topics in dataset", "count", len(topics))

	res = &ExportResult{
		Topics:       len(topics),
		ManifestPath: filepath.Join(opts.GraphsDir, manifest.FileName),
	}
	m := manifest.New()
	var out staging

	for _, topic := range topics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		exp, reason := r.exportTopic(topic, opts, &out)
		if reason != "" {
			res.Skipped = append(res.Skipped, SkippedTopic{Topic: topic, Reason: reason})
			observability.Pipeline().OnExportSkip(ctx, topic, reason)
			r.Logger.Debug("skipped topic", "topic", truncate(topic, topicLogWidth), "reason", reason)
			continue
		}
		m.Add(topic, exp.Slug)
		res.Exported = append(res.Exported, exp)
		observability.Pipeline().OnExportTopic(ctx, topic, exp.Slug, exp.Stats.Nodes, exp.Stats.Edges)
		r.Logger.Info("exported graph",
			"topic", truncate(topic, topicLogWidth),
			"slug", exp.Slug,
			"nodes", exp.Stats.Nodes,
			"edges", exp.Stats.Edges)
	}

	data, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	out.add(res.ManifestPath, data)

	if err := out.commit(); err != nil {
		return nil, err
	}
	res.Duration = time.Since(start)
	r.Logger.Info("wrote manifest", "entries", m.Len(), "path", res.ManifestPath)
	return res, nil
}

// exportTopic stages the files for one topic. A non-empty reason means the
// topic was skipped and nothing was staged for it.
func (r *Runner) exportTopic(topic string, opts ExportOptions, out *staging) (ExportedTopic, string) {
	run, ok := seeds.FindLatestRun(opts.SeedsRoot, topic)
	if !ok {
		return ExportedTopic{}, ReasonNoRun
	}

	nodes, err := records.ReadEntities(run.Entities())
	if err != nil {
		r.Logger.Warn("read entities", "topic", truncate(topic, topicLogWidth), "err", err)
		return ExportedTopic{}, ReasonBadRecords
	}
	edges, err := records.ReadRelationships(run.Relationships())
	if err != nil {
		r.Logger.Warn("read relationships", "topic", truncate(topic, topicLogWidth), "err", err)
		return ExportedTopic{}, ReasonBadRecords
	}
	doc, st, err := graphml.Marshal(nodes, edges)
	if err != nil {
		r.Logger.Warn("encode graph", "topic", truncate(topic, topicLogWidth), "err", err)
		return ExportedTopic{}, ReasonBadGraph
	}

	s := slug.FromTopic(topic)
	exp := ExportedTopic{Topic: topic, Slug: s, Run: run.Dir, Stats: st}
	out.add(GraphPath(opts.GraphsDir, s), doc)

	if fileExists(run.Package()) {
		if meta, err := r.buildMeta(run.Package()); err != nil {
			r.Logger.Warn("skipping community metadata", "topic", truncate(topic, topicLogWidth), "err", err)
		} else {
			out.add(MetaPath(opts.GraphsDir, s), meta)
			exp.HasMeta = true
		}
	}

	if details, ok := readRegular(run.Details()); ok {
		if community.ValidDetails(details) {
			out.add(DetailsPath(opts.GraphsDir, s), details)
			exp.HasDetails = true
		} else {
			r.Logger.Warn("skipping invalid community details", "topic", truncate(topic, topicLogWidth), "path", run.Details())
		}
	}
	return exp, ""
}

func (r *Runner) buildMeta(path string) ([]byte, error) {
	meta, err := community.BuildMetaFile(path)
	if err != nil {
		return nil, err
	}
	return meta.Marshal()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
