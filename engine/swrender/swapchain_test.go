// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/vout/engine"
)

func TestSwapchainFrameCycle(t *testing.T) {
	e := New()
	sc := NewSwapchain(e, SwapchainOptions{Width: 8, Height: 6})

	frame, ok := sc.StartFrame()
	if !ok {
		t.Fatal("StartFrame failed")
	}
	if frame.FBO.Width() != 8 || frame.FBO.Height() != 6 {
		t.Errorf("framebuffer = %dx%d, want 8x6", frame.FBO.Width(), frame.FBO.Height())
	}
	if frame.Repr.System != engine.SystemRGB || frame.Repr.Levels != engine.LevelsFull {
		t.Errorf("unexpected framebuffer representation %+v", frame.Repr)
	}
	if err := sc.SubmitFrame(); err != nil {
		t.Fatalf("SubmitFrame: %v", err)
	}
	sc.SwapBuffers()

	// The same back buffer must not be handed out twice in a row.
	next, _ := sc.StartFrame()
	if next.FBO == frame.FBO {
		t.Error("StartFrame returned the presented buffer")
	}
}

func TestSubmitWithoutStart(t *testing.T) {
	sc := NewSwapchain(New(), SwapchainOptions{Width: 4, Height: 4})
	if err := sc.SubmitFrame(); !errors.Is(err, ErrNoFrameStarted) {
		t.Errorf("error = %v, want ErrNoFrameStarted", err)
	}
}

func TestSwapchainResize(t *testing.T) {
	sc := NewSwapchain(New(), SwapchainOptions{Width: 4, Height: 4})
	frame, _ := sc.StartFrame()
	if frame.FBO.Width() != 4 {
		t.Fatalf("initial width = %d", frame.FBO.Width())
	}
	_ = sc.SubmitFrame()

	w, h := sc.Resize(10, 12)
	if w != 10 || h != 12 {
		t.Errorf("Resize = %dx%d, want 10x12", w, h)
	}
	frame, _ = sc.StartFrame()
	if frame.FBO.Width() != 10 || frame.FBO.Height() != 12 {
		t.Errorf("framebuffer = %dx%d after resize", frame.FBO.Width(), frame.FBO.Height())
	}

	// Non-positive dimensions keep the previous value.
	w, h = sc.Resize(0, -3)
	if w != 10 || h != 12 {
		t.Errorf("Resize(0, -3) = %dx%d, want unchanged", w, h)
	}
}

func TestSwapchainFlipped(t *testing.T) {
	sc := NewSwapchain(New(), SwapchainOptions{Width: 2, Height: 2, Flipped: true})
	frame, _ := sc.StartFrame()
	if !frame.Flipped {
		t.Error("frame does not report the flipped surface")
	}
	if !sc.Flipped() {
		t.Error("swapchain does not report the flipped surface")
	}
}

func TestFrontbufferReadback(t *testing.T) {
	e := New()
	sc := NewSwapchain(e, SwapchainOptions{Width: 2, Height: 2})

	if sc.Frontbuffer() != nil {
		t.Fatal("frontbuffer before any present")
	}

	frame, _ := sc.StartFrame()
	if err := e.ClearTex(frame.FBO, [4]float32{0, 1, 0, 1}); err != nil {
		t.Fatalf("ClearTex: %v", err)
	}
	if err := sc.SubmitFrame(); err != nil {
		t.Fatalf("SubmitFrame: %v", err)
	}
	sc.SwapBuffers()

	img := sc.Frontbuffer()
	if img == nil {
		t.Fatal("no frontbuffer after present")
	}
	want := color.RGBA{G: 255, A: 255}
	if got := img.RGBAAt(1, 1); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}
