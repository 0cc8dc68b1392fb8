package texture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes the texture as a single-line CSV record to w:
//
//	<width>,<height>,<v0>,<v1>,...,<vN>,
//
// Every field including the last sample is followed by a comma; there is no
// trailing newline. A zero-sized texture produces a header-only record.
// Returns ErrReleased if the texture has been released.
func (t *Texture) Encode(w io.Writer) error {
	if t.data == nil {
		return ErrReleased
	}

	// Write errors are sticky in bufio; Flush reports the first one.
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d,%d,", t.width, t.height)
	for _, v := range t.data {
		fmt.Fprintf(bw, "%d,", v)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Decode reads a texture from a single-line CSV record.
//
// The width and height header fields are parsed first, then exactly
// width*height sample fields. Fewer sample fields than the header implies
// is ErrShortRecord; surplus fields past the declared count are ignored.
// A trailing newline is tolerated. On any failure no texture is returned
// and nothing is partially populated.
func Decode(r io.Reader) (*Texture, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	fields := strings.Split(strings.TrimRight(string(raw), "\r\n"), ",")
	// The comma after the last field produces one empty trailing field.
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	if len(fields) < 2 {
		return nil, fmt.Errorf("missing width/height header: %w", ErrShortRecord)
	}
	width, err := parseExtent(fields[0], "width")
	if err != nil {
		return nil, err
	}
	height, err := parseExtent(fields[1], "height")
	if err != nil {
		return nil, err
	}

	size := int(width) * int(height)
	if len(fields)-2 < size {
		return nil, fmt.Errorf("header declares %d samples, record holds %d: %w",
			size, len(fields)-2, ErrShortRecord)
	}

	data := make([]uint32, size)
	for i := range data {
		v, err := strconv.ParseUint(fields[2+i], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid sample at field %d: %w", 2+i, err)
		}
		data[i] = uint32(v)
	}

	return &Texture{width: width, height: height, data: data}, nil
}

// parseExtent parses a width/height header field as an unsigned 16-bit value.
func parseExtent(field, name string) (uint16, error) {
	v, err := strconv.ParseUint(field, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, field, err)
	}
	return uint16(v), nil
}

// WriteFile writes the texture's CSV record to path, truncating any
// existing content. Returns ErrReleased if the texture has been released.
func (t *Texture) WriteFile(path string) error {
	if t.data == nil {
		return ErrReleased
	}

	//nolint:gosec // G304: File path comes from the caller, which is expected for texture saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := t.Encode(file); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}

// ReadFile reads a texture from the CSV record at path.
func ReadFile(path string) (*Texture, error) {
	//nolint:gosec // G304: File path comes from the caller, which is expected for texture loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	t, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return t, nil
}
