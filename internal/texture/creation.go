package texture

import (
	"fmt"
	"math"
)

// FromFloats creates a texture from normalized floating-point samples.
// Each sample is scaled by the maximum uint32 value and truncated (not
// rounded), so 0.25 maps to 1073741823 and 1.0 maps exactly to 4294967295.
// Samples outside [0.0, 1.0] are clamped to the representable range.
//
// len(samples) must equal width*height, otherwise ErrSizeMismatch.
//
// Example:
//
//	t, err := texture.FromFloats(2, 2, []float64{0.0, 1.0, 0.5, 0.25})
func FromFloats(width, height uint16, samples []float64) (*Texture, error) {
	size := int(width) * int(height)
	if len(samples) != size {
		return nil, fmt.Errorf("got %d samples for %dx%d texture: %w",
			len(samples), width, height, ErrSizeMismatch)
	}

	data := make([]uint32, size)
	for i, v := range samples {
		data[i] = scaleNormalized(v)
	}
	return &Texture{width: width, height: height, data: data}, nil
}

// FromInts creates a texture from raw uint32 samples, copied exactly.
//
// len(samples) must equal width*height, otherwise ErrSizeMismatch.
func FromInts(width, height uint16, samples []uint32) (*Texture, error) {
	size := int(width) * int(height)
	if len(samples) != size {
		return nil, fmt.Errorf("got %d samples for %dx%d texture: %w",
			len(samples), width, height, ErrSizeMismatch)
	}

	data := make([]uint32, size)
	copy(data, samples)
	return &Texture{width: width, height: height, data: data}, nil
}

// New creates a zero-filled texture.
func New(width, height uint16) *Texture {
	return &Texture{
		width:  width,
		height: height,
		data:   make([]uint32, int(width)*int(height)),
	}
}

// Full creates a texture filled with a specific sample value.
func Full(width, height uint16, value uint32) *Texture {
	t := New(width, height)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// scaleNormalized maps a normalized sample to the full uint32 range by
// truncation. Out-of-range input is clamped: the source behavior there is
// undefined, and Go's float-to-uint conversion is implementation-specific
// out of range.
func scaleNormalized(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return math.MaxUint32
	}
	return uint32(v * math.MaxUint32)
}
