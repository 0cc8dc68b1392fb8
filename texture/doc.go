// Copyright 2025 The Phystex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package texture represents 2D grids of physical-attribute samples.
//
// # Overview
//
// Unlike graphical textures, a physical texture stores per-cell physical
// properties (roughness, height, ...) as full-range uint32 values on a 2D
// grid. Normalized float input in [0.0, 1.0] is scaled to that range on
// construction. The package provides:
//   - Construction from normalized floats or raw uint32 samples
//   - A single-line CSV codec for persistence
//   - Explicit release semantics for ending a texture's lifecycle
//
// # Basic Usage
//
//	import "github.com/phystex/phystex/texture"
//
//	func main() {
//	    t, err := texture.FromFloats(2, 2, []float64{0.0, 1.0, 0.5, 0.25})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := t.WriteFile("height.csv"); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    loaded, err := texture.ReadFile("height.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = loaded.At(1, 0) // 4294967295
//	}
//
// # Data Layout
//
// Samples are stored as a flat row-major sequence: element (x, y) lives at
// index y*width + x. Width and height are unsigned 16-bit extents; each
// sample is a full-range unsigned 32-bit value.
//
// # File Format
//
// The CSV record is a single line with every field comma-terminated and no
// trailing newline:
//
//	<width>,<height>,<v0>,<v1>,...,<vN>,
//
// # Error Handling
//
// All failure conditions (mismatched sample counts, unreadable files, short
// or malformed records, operations on released textures) surface as errors
// to the caller; no operation leaves a partially populated texture behind.
// Out-of-bounds indexing panics, like out-of-bounds slice access.
package texture
