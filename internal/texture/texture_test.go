package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAtSet_RowMajor verifies (x, y) access against the flat row-major layout.
func TestAtSet_RowMajor(t *testing.T) {
	tex := New(3, 2)

	tex.Set(7, 2, 1) // column 2, row 1
	assert.Equal(t, uint32(7), tex.At(2, 1))
	assert.Equal(t, uint32(7), tex.Data()[1*3+2])
}

// TestAt_OutOfBoundsPanics verifies assert-style bounds behavior.
func TestAt_OutOfBoundsPanics(t *testing.T) {
	tex := New(2, 2)

	assert.Panics(t, func() { tex.At(2, 0) })
	assert.Panics(t, func() { tex.At(0, -1) })
	assert.Panics(t, func() { tex.Set(1, 0, 2) })
}

// TestFloats verifies the normalized view inverts the float constructor.
func TestFloats(t *testing.T) {
	samples := []float64{0.0, 1.0, 0.5, 0.25}
	tex, err := FromFloats(2, 2, samples)
	require.NoError(t, err)

	got := tex.Floats()
	require.Len(t, got, 4)
	for i, want := range samples {
		// Truncation during construction loses at most one integer step.
		assert.InDelta(t, want, got[i], 1.0/4294967295.0, "sample mismatch at index %d", i)
	}
}

// TestClone_Independent verifies deep-copy semantics.
func TestClone_Independent(t *testing.T) {
	tex, err := FromInts(2, 1, []uint32{1, 2})
	require.NoError(t, err)

	clone := tex.Clone()
	clone.Set(99, 0, 0)

	assert.Equal(t, uint32(1), tex.At(0, 0))
	assert.Equal(t, uint32(99), clone.At(0, 0))
	assert.Equal(t, tex.Width(), clone.Width())
	assert.Equal(t, tex.Height(), clone.Height())
}

// TestRelease verifies the empty state and that a second release is safe.
func TestRelease(t *testing.T) {
	tex, err := FromInts(1, 2, []uint32{1, 2})
	require.NoError(t, err)
	require.False(t, tex.Released())

	tex.Release()
	assert.True(t, tex.Released())
	assert.Nil(t, tex.Data())

	// Released textures must fail loudly, not read stale memory.
	assert.Panics(t, func() { tex.At(0, 0) })
	assert.Panics(t, func() { tex.Floats() })
	assert.Panics(t, func() { tex.Clone() })

	// Idempotent.
	tex.Release()
	assert.True(t, tex.Released())
}

// TestString covers both lifecycle states.
func TestString(t *testing.T) {
	tex := New(2, 3)
	assert.Equal(t, "Texture(2x3, 6 samples)", tex.String())

	tex.Release()
	assert.Equal(t, "Texture(2x3, released)", tex.String())
}
