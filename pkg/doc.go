// Package pkg provides the core libraries for building Mermaid diagram text.
//
// # Overview
//
// Mermaid constructs flowchart, class and entity-relationship diagrams as
// Mermaid-syntax text from typed, validating builders. The pkg directory is
// organized into three main areas:
//
//  1. [diagram] - Library core (builders, validation, deterministic rendering)
//  2. tooling   - Manifests, pipeline, caching, storage, export
//  3. service   - HTTP render service and its supporting packages
//
// # Architecture
//
// The typical data flow through the tool layer:
//
//	TOML/JSON manifest (file, stdin, or URL)
//	         ↓
//	    [manifest] package (decode + validate + build)
//	         ↓
//	    [diagram] package (typed builders → finalized diagram)
//	         ↓
//	    [pipeline] package (cache-aware load → build → render)
//	         ↓
//	    Mermaid text / DOT / SVG / PNG output
//
// # Quick Start
//
// Build a flowchart directly against the library core:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/mermaid/pkg/diagram/flowchart"
//	)
//
//	builder := flowchart.NewBuilder()
//	nb, _ := flowchart.NewNode().Label("Start")
//	start, _ := builder.Node(nb)
//	nb, _ = flowchart.NewNode().Shape(flowchart.ShapeStadium).Label("Done")
//	done, _ := builder.Node(nb)
//	builder.Edge(flowchart.NewEdge().Source(start).Destination(done))
//	fmt.Print(builder.Build())
//
// Or render a declarative manifest through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//	result, err := runner.Execute(ctx, &pipeline.Options{Source: "shop.toml"})
//
// # Main Packages
//
// ## Library Core
//
// [diagram] - Generic diagram machinery: the rendering protocol, style
// system, arrow shapes, node/edge/configuration capabilities and the
// builder state machine every flavor wraps. Pure and deterministic; no
// I/O, no goroutines, no layout.
//
// [diagram/flowchart] - Flowcharts with 46 node shapes, subgraphs, click
// events, edge curve styles and per-edge styling.
//
// [diagram/class] - Class diagrams with attributes, methods, annotations
// and relation multiplicities.
//
// [diagram/er] - Entity-relationship diagrams with typed attributes and
// crow's-foot cardinalities.
//
// ## Tooling
//
// [manifest] - Declarative TOML/JSON diagram definitions walked through
// the typed builders, with JSON Schema validation for JSON input.
//
// [pipeline] - Load → validate → build → render stages with per-stage
// timings and content-hash caching.
//
// [cache] - Cache backends for fetched sources, rendered text and
// exports: file-based for the CLI, Redis for multi-instance service
// deployments, null for tests and --no-cache.
//
// [store] - Named diagram persistence: MongoDB for the service,
// in-memory for tests and standalone mode.
//
// [export] - Diagram structure flattened to Graphviz DOT, with SVG and
// PNG rendering in-process through go-graphviz.
//
// ## Service
//
// [service] - chi-routed HTTP API: POST /api/render plus diagram CRUD
// over the store, with koanf file/env/flag configuration.
//
// [httputil] - Retrying HTTP client used for remote manifest sources.
//
// [observability] - Pipeline, cache and HTTP hook points with a
// charmbracelet/log implementation.
//
// [errors] - Structured errors with stable codes shared by the CLI and
// the service error responses.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/diagram/...        # Library core only
//	go test -run Example ./pkg/...   # Examples only
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/diagram
// [diagram/flowchart]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/diagram/flowchart
// [diagram/class]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/diagram/class
// [diagram/er]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/diagram/er
// [manifest]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/manifest
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/store
// [export]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/export
// [service]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/service
// [httputil]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mermaid/pkg/buildinfo
package pkg
