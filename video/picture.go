// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import (
	"errors"
	"fmt"

	"github.com/gogpu/vout/engine"
)

// Picture errors.
var (
	// ErrUnknownFormat is returned for formats with no registered
	// plane layout.
	ErrUnknownFormat = errors.New("video: unknown pixel format")

	// ErrInvalidDimensions is returned for non-positive dimensions.
	ErrInvalidDimensions = errors.New("video: invalid dimensions")
)

// Orientation describes how a decoded picture must be transformed for
// display.
type Orientation int

// Picture orientations. Transposed is a 90 degree rotation combined
// with a vertical flip; AntiTransposed combines the rotation with a
// horizontal flip.
const (
	OrientNormal Orientation = iota
	OrientHFlipped
	OrientVFlipped
	OrientRotated90
	OrientRotated180
	OrientRotated270
	OrientTransposed
	OrientAntiTransposed
)

// ColorRange is the signal quantization range of a format.
type ColorRange int

// Quantization ranges.
const (
	RangeUnknown ColorRange = iota
	RangeLimited
	RangeFull
)

// Format describes the geometry and colorimetry of a video stream.
type Format struct {
	// Pixel is the fourcc pixel format.
	Pixel PixelFormat

	// Width and Height are the coded dimensions; the visible rectangle
	// starts at (XOffset, YOffset).
	Width, Height               int
	XOffset, YOffset            int
	VisibleWidth, VisibleHeight int

	// SARNum and SARDen give the sample aspect ratio. Zero means 1:1.
	SARNum, SARDen int

	Orientation Orientation

	// Colorimetry metadata; zero values mean unknown.
	Primaries engine.ColorPrimaries
	Transfer  engine.ColorTransfer
	Space     engine.ColorSystem
	Range     ColorRange
	ChromaLoc engine.ChromaLocation

	// HDR metadata; zero values mean absent.
	MaxCLL, MaxFALL       float32
	MasteringMinLuminance float32
	MasteringMaxLuminance float32
}

// Visible returns the visible dimensions, defaulting to the coded ones.
func (f *Format) Visible() (w, h int) {
	w, h = f.VisibleWidth, f.VisibleHeight
	if w == 0 {
		w = f.Width
	}
	if h == 0 {
		h = f.Height
	}
	return w, h
}

// SAR returns the sample aspect ratio, defaulting to 1:1.
func (f *Format) SAR() (num, den int) {
	if f.SARNum <= 0 || f.SARDen <= 0 {
		return 1, 1
	}
	return f.SARNum, f.SARDen
}

// PicturePlane is one plane of a decoded picture.
type PicturePlane struct {
	// Pixels is the raw plane data, Pitch*Lines bytes.
	Pixels []byte

	// Pitch is the row stride in bytes; Lines is the row count.
	Pitch, Lines int
}

// Picture is a decoded video frame.
type Picture struct {
	Format Format
	Planes []PicturePlane
}

// NewPicture allocates a picture with planes laid out according to the
// format registry.
func NewPicture(f Format) (*Picture, error) {
	desc, ok := formatRegistry[f.Pixel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f.Pixel)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, f.Width, f.Height)
	}

	pic := &Picture{Format: f, Planes: make([]PicturePlane, len(desc.planes))}
	for i, pl := range desc.planes {
		w := (f.Width + (1 << pl.wShift) - 1) >> pl.wShift
		h := (f.Height + (1 << pl.hShift) - 1) >> pl.hShift
		pitch := w * pl.components * pl.sampleBits / 8
		pic.Planes[i] = PicturePlane{
			Pixels: make([]byte, pitch*h),
			Pitch:  pitch,
			Lines:  h,
		}
	}
	return pic, nil
}

// Region is one pre-rendered subtitle or graphic element, a
// single-plane picture positioned relative to the video placement.
type Region struct {
	Picture *Picture

	// X and Y offset the region from the placement origin.
	X, Y int
}

// Subpicture is an ordered set of regions composited over the video.
type Subpicture struct {
	Regions []*Region
}
