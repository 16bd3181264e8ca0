// SPDX-License-Identifier: MIT

package field

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readChunk bounds allocations made before the values have been read.
const readChunk = 1 << 20

// ReadText parses the text volume format: the first line lists the size of
// every axis (its token count is the dimension), followed by the values in
// row-major order separated by arbitrary whitespace.
func ReadText(r io.Reader) (*Field, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedInput, err)
	}
	tokens := strings.Fields(header)
	if len(tokens) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(tokens) > MaxDim {
		return nil, ErrDimTooLarge
	}
	shape := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: axis size %q", ErrMalformedInput, tok)
		}
		shape[i] = n
	}
	total, err := volume(shape)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, min(total, readChunk))
	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q", ErrMalformedInput, sc.Text())
		}
		values = append(values, v)
		if len(values) > total {
			return nil, ErrShapeMismatch
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return New(shape, values)
}

// ReadRaw parses the raw binary volume format (little-endian): an int32
// dimension, one uint32 size per axis, then uint16 values in row-major order.
func ReadRaw(r io.Reader) (*Field, error) {
	var dim int32
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, fmt.Errorf("%w: reading dimension: %v", ErrMalformedInput, err)
	}
	if dim <= 0 {
		return nil, ErrEmptyGrid
	}
	if dim > MaxDim {
		return nil, ErrDimTooLarge
	}
	sizes := make([]uint32, dim)
	if err := binary.Read(r, binary.LittleEndian, sizes); err != nil {
		return nil, fmt.Errorf("%w: reading axis sizes: %v", ErrMalformedInput, err)
	}
	shape := make([]int, dim)
	for i, s := range sizes {
		shape[i] = int(s)
	}
	total, err := volume(shape)
	if err != nil {
		return nil, err
	}

	// Allocation grows only with the values actually present.
	values := make([]float64, 0, min(total, readChunk))
	raw := make([]uint16, min(total, readChunk))
	for len(values) < total {
		k := min(total-len(values), len(raw))
		if err := binary.Read(r, binary.LittleEndian, raw[:k]); err != nil {
			return nil, fmt.Errorf("%w: reading %d values: %v", ErrMalformedInput, total, err)
		}
		for _, v := range raw[:k] {
			values = append(values, float64(v))
		}
	}

	return New(shape, values)
}

// WriteRaw encodes f in the raw binary volume format. Values are truncated
// to uint16, so it is only lossless for integral values in [0, 65535].
func WriteRaw(w io.Writer, f *Field) error {
	if err := binary.Write(w, binary.LittleEndian, int32(f.Dim())); err != nil {
		return err
	}
	sizes := make([]uint32, f.Dim())
	for i, s := range f.shape {
		sizes[i] = uint32(s)
	}
	if err := binary.Write(w, binary.LittleEndian, sizes); err != nil {
		return err
	}
	raw := make([]uint16, len(f.values))
	for i, v := range f.values {
		raw[i] = uint16(v)
	}
	return binary.Write(w, binary.LittleEndian, raw)
}

// IsTextPath reports whether path names a text volume (".txt" or ".cub").
func IsTextPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".cub"
}

// Load reads the volume at path, choosing ReadText for ".txt"/".cub" files
// and ReadRaw otherwise.
func Load(path string) (*Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: opening %s: %w", path, err)
	}
	defer fh.Close()

	if IsTextPath(path) {
		return ReadText(fh)
	}
	return ReadRaw(bufio.NewReader(fh))
}
