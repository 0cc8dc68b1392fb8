// Copyright 2025 The Phystex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package texture

import (
	"io"

	"github.com/phystex/phystex/internal/texture"
)

// Texture is a 2D grid of physical-property samples stored as a flat,
// row-major sequence of uint32 values.
//
// A Texture is created populated by one of the constructors or by the CSV
// decoder, may be serialized any number of times, and may be released
// explicitly. Methods on a released Texture fail loudly: accessors panic
// and the codec returns ErrReleased.
type Texture = texture.Texture

// Sentinel errors returned by constructors and the CSV codec.
var (
	// ErrSizeMismatch reports a sample slice whose length does not equal
	// width*height.
	ErrSizeMismatch = texture.ErrSizeMismatch

	// ErrShortRecord reports a CSV record with fewer data fields than its
	// width/height header implies.
	ErrShortRecord = texture.ErrShortRecord

	// ErrReleased reports an operation on a released Texture.
	ErrReleased = texture.ErrReleased
)

// FromFloats creates a texture from normalized floating-point samples.
//
// Each sample is scaled by the maximum uint32 value and truncated, so 1.0
// maps exactly to 4294967295 and 0.25 to 1073741823. Samples outside
// [0.0, 1.0] are clamped. len(samples) must equal width*height.
//
// Example:
//
//	t, err := texture.FromFloats(2, 2, []float64{0.0, 1.0, 0.5, 0.25})
func FromFloats(width, height uint16, samples []float64) (*Texture, error) {
	return texture.FromFloats(width, height, samples)
}

// FromInts creates a texture from raw uint32 samples, copied exactly with
// no scaling. len(samples) must equal width*height.
func FromInts(width, height uint16, samples []uint32) (*Texture, error) {
	return texture.FromInts(width, height, samples)
}

// New creates a zero-filled texture.
//
// Example:
//
//	t := texture.New(64, 64)
func New(width, height uint16) *Texture {
	return texture.New(width, height)
}

// Full creates a texture filled with a specific sample value.
func Full(width, height uint16, value uint32) *Texture {
	return texture.Full(width, height, value)
}

// Decode reads a texture from a single-line CSV record.
//
// Short input yields ErrShortRecord; malformed fields yield wrapped parse
// errors. On failure nothing is partially populated.
func Decode(r io.Reader) (*Texture, error) {
	return texture.Decode(r)
}

// ReadFile reads a texture from the CSV record at path.
//
// Example:
//
//	t, err := texture.ReadFile("height.csv")
func ReadFile(path string) (*Texture, error) {
	return texture.ReadFile(path)
}
