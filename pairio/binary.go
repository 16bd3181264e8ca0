// SPDX-License-Identifier: MIT

package pairio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/cubepers/field"
	"github.com/katalvlaran/cubepers/persistence"
)

var order = binary.LittleEndian

// maxRecords bounds header counts accepted by the readers.
const maxRecords = 1 << 31

// CoordPair is a pair as stored in a binary pairs file: coordinates only.
type CoordPair struct {
	Birth field.Coord
	Death field.Coord
}

// WritePairs encodes pairs (one slice per dimension, len(pairs) == dim) in
// the binary pairs format.
func WritePairs(w io.Writer, pairs [][]persistence.Pair, dim int) error {
	if dim < 1 || dim > field.MaxDim || len(pairs) != dim {
		return ErrDimMismatch
	}
	bw := bufio.NewWriter(w)

	header := make([]uint32, 0, dim+1)
	header = append(header, uint32(dim))
	for _, ps := range pairs {
		header = append(header, uint32(len(ps)))
	}
	if err := binary.Write(bw, order, header); err != nil {
		return fmt.Errorf("pairio: writing pairs header: %w", err)
	}

	buf := make([]uint32, 2*dim)
	for _, ps := range pairs {
		for _, p := range ps {
			if len(p.Birth) != dim || len(p.Death) != dim {
				return ErrDimMismatch
			}
			encodeCoord(buf[:dim], p.Birth)
			encodeCoord(buf[dim:], p.Death)
			if err := binary.Write(bw, order, buf); err != nil {
				return fmt.Errorf("pairio: writing pairs: %w", err)
			}
		}
	}

	return bw.Flush()
}

// ReadPairs decodes a binary pairs file.
func ReadPairs(r io.Reader) ([][]CoordPair, error) {
	br := bufio.NewReader(r)

	var n uint32
	if err := binary.Read(br, order, &n); err != nil {
		return nil, fmt.Errorf("pairio: reading dimension: %w", err)
	}
	if n < 1 || n > field.MaxDim {
		return nil, fmt.Errorf("%w: dimension %d", ErrBadHeader, n)
	}
	dim := int(n)

	counts := make([]uint32, dim)
	if err := binary.Read(br, order, counts); err != nil {
		return nil, fmt.Errorf("pairio: reading pair counts: %w", err)
	}

	out := make([][]CoordPair, dim)
	buf := make([]uint32, 2*dim)
	for d, c := range counts {
		if c >= maxRecords {
			return nil, fmt.Errorf("%w: %d pairs", ErrBadHeader, c)
		}
		out[d] = make([]CoordPair, 0, min(int(c), 1<<16))
		for i := uint32(0); i < c; i++ {
			if err := binary.Read(br, order, buf); err != nil {
				return nil, fmt.Errorf("pairio: reading pair %d of dimension %d: %w", i, d, err)
			}
			b, err := decodeCoord(buf[:dim])
			if err != nil {
				return nil, err
			}
			e, err := decodeCoord(buf[dim:])
			if err != nil {
				return nil, err
			}
			out[d] = append(out[d], CoordPair{Birth: b, Death: e})
		}
	}

	return out, nil
}

// WriteCertificates encodes one dimension's certificate lists. Each list is
// a set of vertex indices, resolved through vertices.
func WriteCertificates(w io.Writer, lists [][]int, vertices []field.Coord, dim int) error {
	if dim < 1 || dim > field.MaxDim {
		return ErrDimMismatch
	}
	if len(lists) > math.MaxInt32 {
		return ErrBadHeader
	}
	bw := bufio.NewWriter(w)

	header := make([]int32, dim+1)
	header[0] = int32(dim)
	header[1] = int32(len(lists))
	if err := binary.Write(bw, order, header); err != nil {
		return fmt.Errorf("pairio: writing certificate header: %w", err)
	}

	sizeWord := make([]uint32, dim)
	coord := make([]uint32, dim)
	for i, list := range lists {
		if len(list) == 0 {
			return fmt.Errorf("%w: record %d is empty", ErrBadCertificate, i)
		}
		sizeWord[0] = uint32(len(list))
		if err := binary.Write(bw, order, sizeWord); err != nil {
			return fmt.Errorf("pairio: writing certificate %d: %w", i, err)
		}
		for _, v := range list {
			if v < 0 || v >= len(vertices) {
				return fmt.Errorf("%w: vertex %d out of range", ErrBadCertificate, v)
			}
			if len(vertices[v]) != dim {
				return ErrDimMismatch
			}
			encodeCoord(coord, vertices[v])
			if err := binary.Write(bw, order, coord); err != nil {
				return fmt.Errorf("pairio: writing certificate %d: %w", i, err)
			}
		}
	}

	return bw.Flush()
}

// ReadCertificates decodes a certificate file into coordinate lists.
func ReadCertificates(r io.Reader) ([][]field.Coord, error) {
	br := bufio.NewReader(r)

	var n int32
	if err := binary.Read(br, order, &n); err != nil {
		return nil, fmt.Errorf("pairio: reading dimension: %w", err)
	}
	if n < 1 || n > field.MaxDim {
		return nil, fmt.Errorf("%w: dimension %d", ErrBadHeader, n)
	}
	dim := int(n)

	header := make([]int32, dim)
	if err := binary.Read(br, order, header); err != nil {
		return nil, fmt.Errorf("pairio: reading certificate header: %w", err)
	}
	if header[0] < 0 {
		return nil, fmt.Errorf("%w: %d records", ErrBadHeader, header[0])
	}

	out := make([][]field.Coord, 0, min(int(header[0]), 1<<16))
	sizeWord := make([]uint32, dim)
	buf := make([]uint32, dim)
	for i := 0; i < int(header[0]); i++ {
		if err := binary.Read(br, order, sizeWord); err != nil {
			return nil, fmt.Errorf("pairio: reading certificate %d: %w", i, err)
		}
		size := sizeWord[0]
		if size == 0 || size >= maxRecords {
			return nil, fmt.Errorf("%w: record %d has size %d", ErrBadCertificate, i, size)
		}
		rec := make([]field.Coord, 0, min(int(size), 1<<16))
		for k := uint32(0); k < size; k++ {
			if err := binary.Read(br, order, buf); err != nil {
				return nil, fmt.Errorf("pairio: reading certificate %d: %w", i, err)
			}
			c, err := decodeCoord(buf)
			if err != nil {
				return nil, err
			}
			rec = append(rec, c)
		}
		out = append(out, rec)
	}

	return out, nil
}

// encodeCoord writes c axis-reversed and 1-indexed into dst.
func encodeCoord(dst []uint32, c field.Coord) {
	n := len(c)
	for i := range dst {
		dst[i] = uint32(c[n-1-i] + 1)
	}
}

func decodeCoord(src []uint32) (field.Coord, error) {
	n := len(src)
	c := make(field.Coord, n)
	for i, v := range src {
		if v == 0 {
			return nil, ErrBadCoordinate
		}
		c[n-1-i] = int(v - 1)
	}
	return c, nil
}
