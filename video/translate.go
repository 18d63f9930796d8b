// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import (
	"fmt"

	"github.com/gogpu/vout/engine"
)

// ColorSpace translates a format's colorimetry metadata into an engine
// color space descriptor, inferring unset fields from the geometry.
func ColorSpace(f *Format) engine.ColorSpace {
	cs := engine.ColorSpace{
		Primaries: f.Primaries,
		Transfer:  f.Transfer,
	}

	if cs.Primaries == engine.PrimariesUnknown {
		cs.Primaries = inferPrimaries(f)
	}
	if cs.Transfer == engine.TransferUnknown {
		if cs.Primaries == engine.PrimariesBT2020 {
			cs.Transfer = engine.TransferPQ
		} else {
			cs.Transfer = engine.TransferBT1886
		}
	}

	if f.MaxCLL > 0 {
		cs.SigPeak = f.MaxCLL / 203.0 // cd/m² relative to SDR white
	}
	if f.MaxFALL > 0 {
		cs.SigAvg = f.MaxFALL / 203.0
	}
	return cs
}

// inferPrimaries guesses the primaries from the picture height, the
// convention used when streams carry no metadata: SD material is
// BT.601, everything above is BT.709.
func inferPrimaries(f *Format) engine.ColorPrimaries {
	_, h := f.Visible()
	switch {
	case h == 0:
		return engine.PrimariesUnknown
	case h <= 486:
		return engine.PrimariesBT601_525
	case h <= 576:
		return engine.PrimariesBT601_625
	default:
		return engine.PrimariesBT709
	}
}

// ColorRepr translates a format into an engine color representation.
func ColorRepr(f *Format) engine.ColorRepr {
	desc := formatRegistry[f.Pixel]

	repr := engine.ColorRepr{
		System: f.Space,
		Alpha:  engine.AlphaUnknown,
	}

	if repr.System == engine.SystemUnknown {
		if desc.yuv {
			switch inferPrimaries(f) {
			case engine.PrimariesBT601_525, engine.PrimariesBT601_625:
				repr.System = engine.SystemBT601
			case engine.PrimariesBT2020:
				repr.System = engine.SystemBT2020NC
			default:
				repr.System = engine.SystemBT709
			}
		} else {
			repr.System = engine.SystemRGB
		}
	}

	switch f.Range {
	case RangeFull:
		repr.Levels = engine.LevelsFull
	case RangeLimited:
		repr.Levels = engine.LevelsLimited
	default:
		// YUV defaults to limited range, RGB to full.
		if desc.yuv {
			repr.Levels = engine.LevelsLimited
		} else {
			repr.Levels = engine.LevelsFull
		}
	}

	if desc.alpha {
		repr.Alpha = engine.AlphaIndependent
	}

	if len(desc.planes) > 0 {
		pl := desc.planes[0]
		repr.Bits = engine.BitEncoding{
			SampleDepth: pl.sampleBits,
			ColorDepth:  pl.depth,
			BitShift:    pl.bitShift,
		}
	}
	return repr
}

// ChromaLoc returns the chroma siting of the format, defaulting to
// left siting for subsampled YUV when the metadata is silent (the MPEG
// convention).
func ChromaLoc(f *Format) engine.ChromaLocation {
	if f.ChromaLoc != engine.ChromaUnknown {
		return f.ChromaLoc
	}
	desc := formatRegistry[f.Pixel]
	if !desc.yuv {
		return engine.ChromaUnknown
	}
	for _, pl := range desc.planes {
		if pl.wShift > 0 || pl.hShift > 0 {
			return engine.ChromaLeft
		}
	}
	return engine.ChromaUnknown
}

// PlaneData translates a picture's planes into engine upload
// descriptors. The returned slice has one entry per picture plane, in
// plane index order.
func PlaneData(pic *Picture) ([]engine.PlaneData, error) {
	desc, ok := formatRegistry[pic.Format.Pixel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, pic.Format.Pixel)
	}
	if len(pic.Planes) != len(desc.planes) {
		return nil, fmt.Errorf("video: plane count mismatch: picture has %d, %s has %d",
			len(pic.Planes), pic.Format.Pixel, len(desc.planes))
	}

	data := make([]engine.PlaneData, len(pic.Planes))
	for i, pl := range desc.planes {
		src := &pic.Planes[i]
		sampleBytes := pl.sampleBits / 8
		d := engine.PlaneData{
			Height:      src.Lines,
			Components:  pl.components,
			PixelStride: pl.components * sampleBytes,
			RowStride:   src.Pitch,
			BitShift:    pl.bitShift,
			Pixels:      src.Pixels,
		}
		d.Width = src.Pitch / d.PixelStride
		for c := 0; c < pl.components; c++ {
			d.ComponentSize[c] = pl.depth
			d.ComponentMap[c] = pl.channels[c]
		}
		data[i] = d
	}
	return data, nil
}
