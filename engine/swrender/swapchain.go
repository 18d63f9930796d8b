// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/vout/engine"
)

// ErrNoFrameStarted is returned when SubmitFrame is called without a
// started frame.
var ErrNoFrameStarted = errors.New("swrender: no frame started")

// SwapchainOptions configures an in-memory swapchain.
type SwapchainOptions struct {
	// Width and Height are the initial framebuffer dimensions.
	Width, Height int

	// Flipped makes the swapchain report an upside-down surface, the
	// way GL-style windowing systems deliver their buffers.
	Flipped bool
}

// Swapchain is a double-buffered in-memory swapchain.
type Swapchain struct {
	eng     *Engine
	w, h    int
	flipped bool

	buffers [2]*texture
	back    int
	started bool
}

// NewSwapchain creates a swapchain backed by CPU framebuffers.
func NewSwapchain(eng *Engine, opts SwapchainOptions) *Swapchain {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	sc := &Swapchain{eng: eng, w: w, h: h, flipped: opts.Flipped}
	return sc
}

// StartFrame acquires the back buffer for rendering.
func (sc *Swapchain) StartFrame() (engine.SwapFrame, bool) {
	buf := sc.buffers[sc.back]
	if buf == nil || buf.w != sc.w || buf.h != sc.h {
		buf = sc.eng.NewTex(sc.w, sc.h).(*texture)
		sc.buffers[sc.back] = buf
	}
	sc.started = true
	return engine.SwapFrame{
		FBO:     buf,
		Flipped: sc.flipped,
		Color:   engine.ColorSpace{Primaries: engine.PrimariesBT709, Transfer: engine.TransferSRGB},
		Repr: engine.ColorRepr{
			System: engine.SystemRGB,
			Levels: engine.LevelsFull,
			Alpha:  engine.AlphaPremultiplied,
			Bits:   engine.BitEncoding{SampleDepth: 8, ColorDepth: 8},
		},
	}, true
}

// SubmitFrame finishes the frame started by StartFrame.
func (sc *Swapchain) SubmitFrame() error {
	if !sc.started {
		return ErrNoFrameStarted
	}
	sc.started = false
	return nil
}

// SwapBuffers presents the back buffer.
func (sc *Swapchain) SwapBuffers() {
	sc.back = 1 - sc.back
}

// Resize sets new framebuffer dimensions, effective from the next
// StartFrame. The buffers are recreated lazily.
func (sc *Swapchain) Resize(width, height int) (int, int) {
	if width > 0 {
		sc.w = width
	}
	if height > 0 {
		sc.h = height
	}
	return sc.w, sc.h
}

// Flipped reports the configured flip state.
func (sc *Swapchain) Flipped() bool { return sc.flipped }

// Frontbuffer returns the last presented framebuffer as an image, or
// nil when nothing has been presented yet. Intended for readback in
// tests and offline rendering.
func (sc *Swapchain) Frontbuffer() *image.RGBA {
	buf := sc.buffers[1-sc.back]
	if buf == nil {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, buf.w, buf.h))
	for y := 0; y < buf.h; y++ {
		for x := 0; x < buf.w; x++ {
			base := (y*buf.w + x) * 4
			img.SetRGBA(x, y, color.RGBA{
				R: clamp8(buf.samples[base+0]),
				G: clamp8(buf.samples[base+1]),
				B: clamp8(buf.samples[base+2]),
				A: clamp8(buf.samples[base+3]),
			})
		}
	}
	return img
}

func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

var _ engine.Swapchain = (*Swapchain)(nil)
