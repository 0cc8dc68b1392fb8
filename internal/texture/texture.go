// Package texture provides the core physical texture type and its CSV codec.
package texture

import (
	"fmt"
	"math"
)

// Texture is a 2D grid of physical-property samples (roughness, height, ...)
// stored as a flat row-major sequence of uint32 values.
//
// The grid never interprets 2D position itself beyond index arithmetic:
// element (x, y) lives at data[y*width + x].
type Texture struct {
	width  uint16
	height uint16
	data   []uint32 // row-major; nil once released
}

// Width returns the number of columns.
func (t *Texture) Width() uint16 {
	return t.width
}

// Height returns the number of rows.
func (t *Texture) Height() uint16 {
	return t.height
}

// NumElements returns the total number of samples (width * height).
func (t *Texture) NumElements() int {
	return int(t.width) * int(t.height)
}

// Data returns the texture's samples in row-major order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the texture.
// Returns nil for a released texture.
func (t *Texture) Data() []uint32 {
	return t.data
}

// At returns the sample at column x, row y.
// Panics if the position is out of bounds or the texture has been released.
func (t *Texture) At(x, y int) uint32 {
	return t.data[t.offset(x, y)]
}

// Set stores a sample at column x, row y.
// Panics if the position is out of bounds or the texture has been released.
func (t *Texture) Set(value uint32, x, y int) {
	t.data[t.offset(x, y)] = value
}

// offset converts an (x, y) position to a flat row-major index.
func (t *Texture) offset(x, y int) int {
	if t.data == nil {
		panic("texture has been released")
	}
	if x < 0 || x >= int(t.width) {
		panic(fmt.Sprintf("x index %d out of bounds (width %d)", x, t.width))
	}
	if y < 0 || y >= int(t.height) {
		panic(fmt.Sprintf("y index %d out of bounds (height %d)", y, t.height))
	}
	return y*int(t.width) + x
}

// Floats returns the samples as normalized float64 values in [0.0, 1.0],
// the inverse of the scaling performed by FromFloats (up to truncation).
// Panics if the texture has been released.
func (t *Texture) Floats() []float64 {
	if t.data == nil {
		panic("texture has been released")
	}
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		out[i] = float64(v) / math.MaxUint32
	}
	return out
}

// Clone creates a deep copy of the texture.
// Panics if the texture has been released.
func (t *Texture) Clone() *Texture {
	if t.data == nil {
		panic("texture has been released")
	}
	data := make([]uint32, len(t.data))
	copy(data, t.data)
	return &Texture{
		width:  t.width,
		height: t.height,
		data:   data,
	}
}

// Release drops the texture's data buffer and marks the texture empty.
// Releasing an already-released texture is a no-op. The garbage collector
// reclaims the buffer; Release exists so callers can end a texture's
// lifecycle explicitly and have later accesses fail loudly.
func (t *Texture) Release() {
	t.data = nil
}

// Released reports whether the texture's buffer has been released.
// A zero-sized texture is populated, not released: its buffer exists
// and is empty.
func (t *Texture) Released() bool {
	return t.data == nil
}

// String returns a human-readable representation of the texture.
func (t *Texture) String() string {
	if t.data == nil {
		return fmt.Sprintf("Texture(%dx%d, released)", t.width, t.height)
	}
	return fmt.Sprintf("Texture(%dx%d, %d samples)", t.width, t.height, len(t.data))
}
