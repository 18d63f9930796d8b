// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"errors"
	"fmt"

	"github.com/gogpu/vout/engine"
)

// Engine errors.
var (
	// ErrNoPixels is returned when plane data carries no pixel buffer.
	ErrNoPixels = errors.New("swrender: plane data has no pixels")

	// ErrBadStride is returned when strides do not cover the plane.
	ErrBadStride = errors.New("swrender: plane stride too small")

	// ErrBadTexture is returned when a texture handle belongs to a
	// different engine implementation.
	ErrBadTexture = errors.New("swrender: foreign texture handle")
)

// Engine is the software implementation of engine.GPU.
type Engine struct{}

// New creates a software engine.
func New() *Engine { return &Engine{} }

// texture is a CPU texture: normalized float samples in row-major
// order, components interleaved.
type texture struct {
	w, h       int
	components int
	layout     [4]int // component depths, to detect layout changes
	samples    []float32
}

func (t *texture) Width() int  { return t.w }
func (t *texture) Height() int { return t.h }

// sample returns component c of pixel (x, y), clamping coordinates to
// the texture bounds.
func (t *texture) sample(x, y, c int) float32 {
	if x < 0 {
		x = 0
	} else if x >= t.w {
		x = t.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.h {
		y = t.h - 1
	}
	return t.samples[(y*t.w+x)*t.components+c]
}

// UploadPlane uploads plane data, reusing the texture slot when the
// geometry and component layout are unchanged and recreating it
// otherwise.
func (e *Engine) UploadPlane(plane *engine.Plane, tex *engine.Tex, data *engine.PlaneData) error {
	if len(data.Pixels) == 0 {
		return ErrNoPixels
	}
	if data.Width <= 0 || data.Height <= 0 || data.Components <= 0 {
		return fmt.Errorf("swrender: invalid plane geometry %dx%dx%d",
			data.Width, data.Height, data.Components)
	}
	if data.RowStride < data.Width*data.PixelStride || len(data.Pixels) < data.RowStride*data.Height {
		return ErrBadStride
	}

	t, err := e.slot(tex, data)
	if err != nil {
		return err
	}

	sampleBytes := data.PixelStride / data.Components
	for y := 0; y < data.Height; y++ {
		row := data.Pixels[y*data.RowStride:]
		for x := 0; x < data.Width; x++ {
			px := row[x*data.PixelStride:]
			for c := 0; c < data.Components; c++ {
				depth := data.ComponentSize[c]
				var raw uint32
				switch sampleBytes {
				case 1:
					raw = uint32(px[c])
				case 2:
					raw = uint32(px[c*2]) | uint32(px[c*2+1])<<8
					raw >>= uint(data.BitShift)
				default:
					return fmt.Errorf("swrender: unsupported sample size %d bytes", sampleBytes)
				}
				maxVal := float32(uint32(1)<<uint(depth) - 1)
				t.samples[(y*data.Width+x)*data.Components+c] = float32(raw) / maxVal
			}
		}
	}

	*plane = engine.Plane{
		Texture:      t,
		Components:   data.Components,
		ComponentMap: data.ComponentMap,
	}
	return nil
}

// slot returns the texture behind tex, recreating it when the incoming
// data does not match its geometry or layout.
func (e *Engine) slot(tex *engine.Tex, data *engine.PlaneData) (*texture, error) {
	if *tex != nil {
		t, ok := (*tex).(*texture)
		if !ok {
			return nil, ErrBadTexture
		}
		if t.w == data.Width && t.h == data.Height &&
			t.components == data.Components && t.layout == data.ComponentSize {
			return t, nil
		}
	}
	t := &texture{
		w:          data.Width,
		h:          data.Height,
		components: data.Components,
		layout:     data.ComponentSize,
		samples:    make([]float32, data.Width*data.Height*data.Components),
	}
	*tex = t
	return t, nil
}

// NewTex creates a blank RGBA texture. Used by the swapchain and by
// hosts that render into offscreen targets.
func (e *Engine) NewTex(w, h int) engine.Tex {
	return &texture{
		w: w, h: h,
		components: 4,
		layout:     [4]int{8, 8, 8, 8},
		samples:    make([]float32, w*h*4),
	}
}

// ClearTex fills tex with a flat RGBA color.
func (e *Engine) ClearTex(tex engine.Tex, color [4]float32) error {
	t, ok := tex.(*texture)
	if !ok {
		return ErrBadTexture
	}
	n := t.components
	for i := 0; i < len(t.samples); i += n {
		for c := 0; c < n; c++ {
			t.samples[i+c] = color[c]
		}
	}
	return nil
}

// DestroyTex releases the texture slot. The sample memory is garbage
// collected once no frame references it.
func (e *Engine) DestroyTex(tex *engine.Tex) {
	*tex = nil
}

var _ engine.GPU = (*Engine)(nil)
