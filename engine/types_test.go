// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "testing"

func TestChromaOffset(t *testing.T) {
	tests := []struct {
		loc    ChromaLocation
		dx, dy float32
	}{
		{ChromaUnknown, 0, 0},
		{ChromaLeft, -0.5, 0},
		{ChromaCenter, 0, 0},
		{ChromaTopLeft, -0.5, -0.5},
		{ChromaTop, 0, -0.5},
		{ChromaBottomLeft, -0.5, 0.5},
		{ChromaBottom, 0, 0.5},
	}

	for _, tt := range tests {
		dx, dy := ChromaOffset(tt.loc)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("ChromaOffset(%d) = (%v, %v), want (%v, %v)",
				tt.loc, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestColorSpaceIsHDR(t *testing.T) {
	if (ColorSpace{Transfer: TransferBT1886}).IsHDR() {
		t.Error("BT.1886 misclassified as HDR")
	}
	if !(ColorSpace{Transfer: TransferPQ}).IsHDR() {
		t.Error("PQ not classified as HDR")
	}
	if !(ColorSpace{Transfer: TransferHLG}).IsHDR() {
		t.Error("HLG not classified as HDR")
	}
}

func TestColorSystemIsYCbCr(t *testing.T) {
	ycc := []ColorSystem{SystemBT601, SystemBT709, SystemBT2020NC, SystemBT2020C}
	for _, s := range ycc {
		if !s.IsYCbCr() {
			t.Errorf("system %d should be YCbCr", s)
		}
	}
	for _, s := range []ColorSystem{SystemUnknown, SystemRGB, SystemXYZ} {
		if s.IsYCbCr() {
			t.Errorf("system %d should not be YCbCr", s)
		}
	}
}

func TestTargetFromSwapFrame(t *testing.T) {
	fbo := &fakeTex{w: 1920, h: 1080}
	frame := SwapFrame{FBO: fbo, Flipped: true}
	target := TargetFromSwapFrame(&frame)
	if target.FBO != fbo {
		t.Error("target FBO not taken from frame")
	}
	want := RectF{0, 0, 1920, 1080}
	if target.Crop != want {
		t.Errorf("target crop = %+v, want %+v", target.Crop, want)
	}
}

// fakeTex is a minimal Tex for descriptor tests.
type fakeTex struct{ w, h int }

func (f *fakeTex) Width() int  { return f.w }
func (f *fakeTex) Height() int { return f.h }
