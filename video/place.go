// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

// Align positions the picture along one display axis.
type Align int

// Alignment values. The zero value centers.
const (
	AlignCenter Align = iota
	AlignStart        // left or top
	AlignEnd          // right or bottom
)

// DisplayConfig describes the display area a picture is placed into.
type DisplayConfig struct {
	// Width and Height are the display dimensions in pixels.
	Width, Height int

	// AlignH and AlignV position the picture when it does not fill
	// the display.
	AlignH, AlignV Align

	// Fill scales the picture to occupy as much of the display as the
	// aspect ratio permits. When false the picture keeps its source
	// size scaled by Zoom.
	Fill bool

	// ZoomNum/ZoomDen scale the picture when Fill is false. Zero
	// means 1:1.
	ZoomNum, ZoomDen int
}

// Place is an on-screen rectangle in display coordinates.
type Place struct {
	X, Y          int
	Width, Height int
}

// PlacePicture computes the on-screen rectangle for a source format
// within a display configuration, honoring sample aspect ratio, fill
// mode, zoom and alignment.
func PlacePicture(f *Format, cfg *DisplayConfig) Place {
	srcW, srcH := f.Visible()
	sarN, sarD := f.SAR()

	// Apparent source width after aspect correction.
	dispW := srcW * sarN / sarD
	if dispW <= 0 || srcH <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return Place{}
	}

	var p Place
	if cfg.Fill {
		// Fit the display while preserving aspect.
		if cfg.Width*srcH <= cfg.Height*dispW {
			p.Width = cfg.Width
			p.Height = cfg.Width * srcH / dispW
		} else {
			p.Height = cfg.Height
			p.Width = cfg.Height * dispW / srcH
		}
	} else {
		zn, zd := cfg.ZoomNum, cfg.ZoomDen
		if zn <= 0 || zd <= 0 {
			zn, zd = 1, 1
		}
		p.Width = dispW * zn / zd
		p.Height = srcH * zn / zd
	}

	switch cfg.AlignH {
	case AlignStart:
		p.X = 0
	case AlignEnd:
		p.X = cfg.Width - p.Width
	default:
		p.X = (cfg.Width - p.Width) / 2
	}
	switch cfg.AlignV {
	case AlignStart:
		p.Y = 0
	case AlignEnd:
		p.Y = cfg.Height - p.Height
	default:
		p.Y = (cfg.Height - p.Height) / 2
	}
	return p
}
