// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/vout/engine"
)

// LUT parse errors.
var (
	// ErrLUTNoSize is returned when a .cube file declares no
	// LUT_3D_SIZE.
	ErrLUTNoSize = errors.New("swrender: cube LUT missing LUT_3D_SIZE")

	// ErrLUTTruncated is returned when the table has fewer entries
	// than the declared size requires.
	ErrLUTTruncated = errors.New("swrender: cube LUT table truncated")
)

// ParseCubeLUT parses a 3D lookup table in Adobe .cube format:
// optional TITLE, LUT_3D_SIZE N, optional DOMAIN_MIN/DOMAIN_MAX, then
// N^3 RGB triplets with red varying fastest.
func (e *Engine) ParseCubeLUT(data []byte) (*engine.CustomLUT, error) {
	lut := &engine.CustomLUT{
		DomainMax: [3]float32{1, 1, 1},
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch strings.ToUpper(fields[0]) {
		case "TITLE":
			continue
		case "LUT_1D_SIZE":
			return nil, fmt.Errorf("swrender: 1D cube LUTs are not supported (line %d)", line)
		case "LUT_3D_SIZE":
			if len(fields) != 2 {
				return nil, fmt.Errorf("swrender: malformed LUT_3D_SIZE (line %d)", line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 2 || n > 256 {
				return nil, fmt.Errorf("swrender: bad LUT_3D_SIZE %q (line %d)", fields[1], line)
			}
			lut.Size = n
			lut.Table = make([]float32, 0, 3*n*n*n)
		case "DOMAIN_MIN", "DOMAIN_MAX":
			if len(fields) != 4 {
				return nil, fmt.Errorf("swrender: malformed %s (line %d)", fields[0], line)
			}
			var v [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("swrender: bad %s value (line %d): %w", fields[0], line, err)
				}
				v[i] = float32(f)
			}
			if strings.ToUpper(fields[0]) == "DOMAIN_MIN" {
				lut.DomainMin = v
			} else {
				lut.DomainMax = v
			}
		default:
			// Table row.
			if lut.Size == 0 {
				return nil, ErrLUTNoSize
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("swrender: malformed table row (line %d)", line)
			}
			for _, fstr := range fields {
				f, err := strconv.ParseFloat(fstr, 32)
				if err != nil {
					return nil, fmt.Errorf("swrender: bad table value (line %d): %w", line, err)
				}
				lut.Table = append(lut.Table, float32(f))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("swrender: reading cube LUT: %w", err)
	}

	if lut.Size == 0 {
		return nil, ErrLUTNoSize
	}
	if len(lut.Table) < 3*lut.Size*lut.Size*lut.Size {
		return nil, ErrLUTTruncated
	}
	return lut, nil
}

// lookupLUT samples a 3D LUT at normalized (r, g, b) using trilinear
// interpolation.
func lookupLUT(lut *engine.CustomLUT, r, g, b float32) (float32, float32, float32) {
	n := lut.Size
	idx := func(ri, gi, bi int) int {
		// Red varies fastest in .cube table order.
		return 3 * (bi*n*n + gi*n + ri)
	}

	norm := func(v float32, axis int) float32 {
		lo, hi := lut.DomainMin[axis], lut.DomainMax[axis]
		if hi <= lo {
			return 0
		}
		v = (v - lo) / (hi - lo)
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return v * float32(n-1)
	}

	fr, fg, fb := norm(r, 0), norm(g, 1), norm(b, 2)
	r0, g0, b0 := int(fr), int(fg), int(fb)
	r1, g1, b1 := r0+1, g0+1, b0+1
	if r1 >= n {
		r1 = n - 1
	}
	if g1 >= n {
		g1 = n - 1
	}
	if b1 >= n {
		b1 = n - 1
	}
	tr, tg, tb := fr-float32(r0), fg-float32(g0), fb-float32(b0)

	var out [3]float32
	for c := 0; c < 3; c++ {
		c000 := lut.Table[idx(r0, g0, b0)+c]
		c100 := lut.Table[idx(r1, g0, b0)+c]
		c010 := lut.Table[idx(r0, g1, b0)+c]
		c110 := lut.Table[idx(r1, g1, b0)+c]
		c001 := lut.Table[idx(r0, g0, b1)+c]
		c101 := lut.Table[idx(r1, g0, b1)+c]
		c011 := lut.Table[idx(r0, g1, b1)+c]
		c111 := lut.Table[idx(r1, g1, b1)+c]

		c00 := c000 + (c100-c000)*tr
		c10 := c010 + (c110-c010)*tr
		c01 := c001 + (c101-c001)*tr
		c11 := c011 + (c111-c011)*tr
		c0 := c00 + (c10-c00)*tg
		c1 := c01 + (c11-c01)*tg
		out[c] = c0 + (c1-c0)*tb
	}
	return out[0], out[1], out[2]
}
