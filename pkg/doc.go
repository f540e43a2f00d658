// Package pkg provides the core libraries for giftcircle.
//
// # Overview
//
// Giftcircle assigns every participant of a gift exchange one person to give
// to, forming a single circle through everyone. When groups are used, nobody
// gives to someone from their own group. The pkg directory is organized into
// these areas:
//
//  1. [circle] - Domain logic (participants, groups, the randomized search)
//  2. [io] - Participant files in and circle documents out
//  3. [render] - Graphviz diagrams of a circle
//  4. [history] - SQLite record of past draws
//  5. [errors], [observability], [buildinfo] - Shared plumbing
//
// # Architecture
//
// The typical data flow through giftcircle:
//
//	CSV / JSON participant file
//	         ↓
//	    [io] package (parse and validate records)
//	         ↓
//	    [circle] package (check feasibility, search for a circle)
//	         ↓
//	    [io] / [render] packages (CSV, JSON, YAML, chain, DOT, SVG, PNG, PDF)
//	         ↓
//	    [history] package (optional record of the draw)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/giftcircle/pkg/circle"
//	    gio "github.com/matzehuels/giftcircle/pkg/io"
//	)
//
//	people, _ := gio.ImportFile("family.csv")
//	res, _ := circle.Generate(context.Background(), people, circle.Options{
//	    UseGroups: true,
//	})
//	_ = gio.WriteCSV(os.Stdout, res)
//
// # Main Packages
//
// [circle] - Participants, group statistics and the circle builder. A draw
// builds candidate paths with a random greedy walk that forces the largest
// remaining group whenever it could otherwise run out of partners, validates
// the closed cycle and retries up to a bounded number of attempts. Seeds make
// draws reproducible.
//
// [io] - Reading CSV and JSON participant files with per-record validation,
// and writing a drawn circle as CSV, JSON, YAML or a chain of names.
//
// [render] - DOT generation and Graphviz (WASM) rendering to SVG, with
// rsvg-convert for PNG and PDF.
//
// [history] - A SQLite store of recorded draws used by the CLI and the HTTP
// API.
//
// [errors] - Coded errors shared by every entry point, and input validation
// helpers.
//
// [observability] - Hooks for draw, store and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/circle/...   # Specific package
//	go test -run Example       # Examples only
//
// [circle]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/circle
// [io]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/render
// [history]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/history
// [errors]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/giftcircle/pkg/buildinfo
package pkg
