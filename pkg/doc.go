// Package pkg provides the libraries behind benchorder, a curation tool for
// the iAgentBench benchmark.
//
// # Overview
//
// benchorder publishes each benchmark topic's knowledge graph under an
// anonymized slug, then reorders the benchmark so rows whose topic has a
// demo-sized graph come first. The pkg directory is organized into three
// areas:
//
//  1. Domain: [slug], [graphml], [rank], [pyrand], [dataset], [manifest],
//     [community], [records], [seeds]
//  2. Orchestration: [pipeline] (export and reorder stages)
//  3. Infrastructure: [cache], [config], [errors], [observability],
//     [buildinfo], [render]
//
// # Architecture
//
// The export stage:
//
//	dataset topics
//	      ↓
//	[seeds] latest complete run per topic
//	      ↓
//	[records] entity/relationship parquet tables
//	      ↓
//	[graphml] <slug>.graphml   [community] <slug>_meta.json
//	      ↓
//	[manifest] topic→slug
//
// The reorder stage:
//
//	[manifest] + <slug>.graphml
//	      ↓
//	[graphml] node/edge counts (cached by content hash in [cache])
//	      ↓
//	[rank] score → quantile bands → seeded shuffle ([pyrand])
//	      ↓
//	[dataset] rows renumbered 0001..N under rseed_<seed>/
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	if _, err := runner.Export(ctx, pipeline.ExportOptions{...}); err != nil {
//	    return err
//	}
//	res, err := runner.Reorder(ctx, pipeline.ReorderOptions{Seed: 42, ...})
//
// [slug]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/slug
// [graphml]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/graphml
// [rank]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/rank
// [pyrand]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/pyrand
// [dataset]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/dataset
// [manifest]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/manifest
// [community]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/community
// [records]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/records
// [seeds]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/seeds
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/buildinfo
// [render]: https://pkg.go.dev/github.com/matzehuels/benchorder/pkg/render
package pkg
