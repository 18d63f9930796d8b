// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"errors"
	"strings"
	"testing"
)

const identityCube = `# identity
TITLE "identity"
LUT_3D_SIZE 2
0.0 0.0 0.0
1.0 0.0 0.0
0.0 1.0 0.0
1.0 1.0 0.0
0.0 0.0 1.0
1.0 0.0 1.0
0.0 1.0 1.0
1.0 1.0 1.0
`

func TestParseCubeLUT(t *testing.T) {
	e := New()
	lut, err := e.ParseCubeLUT([]byte(identityCube))
	if err != nil {
		t.Fatalf("ParseCubeLUT: %v", err)
	}
	if lut.Size != 2 {
		t.Errorf("size = %d, want 2", lut.Size)
	}
	if len(lut.Table) != 24 {
		t.Errorf("table entries = %d, want 24", len(lut.Table))
	}
	if lut.DomainMin != [3]float32{0, 0, 0} || lut.DomainMax != [3]float32{1, 1, 1} {
		t.Errorf("domain = %v..%v, want unit cube", lut.DomainMin, lut.DomainMax)
	}
}

func TestIdentityLUTLookup(t *testing.T) {
	e := New()
	lut, err := e.ParseCubeLUT([]byte(identityCube))
	if err != nil {
		t.Fatalf("ParseCubeLUT: %v", err)
	}

	probes := [][3]float32{{0, 0, 0}, {1, 1, 1}, {0.5, 0.25, 0.75}}
	for _, p := range probes {
		r, g, b := lookupLUT(lut, p[0], p[1], p[2])
		const eps = 1e-4
		if abs(r-p[0]) > eps || abs(g-p[1]) > eps || abs(b-p[2]) > eps {
			t.Errorf("lookup(%v) = (%v, %v, %v), want identity", p, r, g, b)
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestParseCubeLUTErrors(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		in   string
	}{
		{"missing size", "0.0 0.0 0.0\n"},
		{"truncated table", "LUT_3D_SIZE 2\n0.0 0.0 0.0\n"},
		{"1d lut", "LUT_1D_SIZE 16\n"},
		{"bad size", "LUT_3D_SIZE nope\n"},
		{"bad row", "LUT_3D_SIZE 2\n0.0 0.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.ParseCubeLUT([]byte(tt.in)); err == nil {
				t.Error("expected parse error")
			}
		})
	}

	if _, err := e.ParseCubeLUT([]byte("TITLE \"empty\"\n")); !errors.Is(err, ErrLUTNoSize) {
		t.Errorf("error = %v, want ErrLUTNoSize", err)
	}
}

func TestParseCubeLUTDomain(t *testing.T) {
	e := New()
	src := strings.Replace(identityCube, "LUT_3D_SIZE 2",
		"LUT_3D_SIZE 2\nDOMAIN_MIN 0.0 0.0 0.0\nDOMAIN_MAX 2.0 2.0 2.0", 1)
	lut, err := e.ParseCubeLUT([]byte(src))
	if err != nil {
		t.Fatalf("ParseCubeLUT: %v", err)
	}
	if lut.DomainMax != [3]float32{2, 2, 2} {
		t.Errorf("domain max = %v, want (2,2,2)", lut.DomainMax)
	}

	// Half the domain maps to half the identity output.
	r, _, _ := lookupLUT(lut, 1, 0, 0)
	if abs(r-0.5) > 1e-4 {
		t.Errorf("lookup(1,0,0) r = %v, want 0.5", r)
	}
}
