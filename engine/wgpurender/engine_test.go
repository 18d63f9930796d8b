// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpurender

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/vout/engine"
	"github.com/gogpu/vout/engine/swrender"
)

func TestEngineInit(t *testing.T) {
	e := New()

	if e.IsInitialized() {
		t.Error("engine should not be initialized before Init()")
	}

	err := e.Init()
	if err != nil {
		// No GPU in the test environment is acceptable.
		t.Logf("Init() returned error (expected without a GPU): %v", err)
		return
	}

	if !e.IsInitialized() {
		t.Error("engine should be initialized after Init()")
	}
	if e.Device().IsZero() {
		t.Error("Device() should not be zero after Init()")
	}
	if e.Queue().IsZero() {
		t.Error("Queue() should not be zero after Init()")
	}
	if info := e.GPUInfo(); info != nil {
		t.Logf("GPU: %s", info.String())
	}

	// Double init is idempotent.
	if err := e.Init(); err != nil {
		t.Errorf("second Init(): %v", err)
	}

	e.Close()
	if e.IsInitialized() {
		t.Error("engine should not be initialized after Close()")
	}
	if !e.Device().IsZero() {
		t.Error("Device() should be zero after Close()")
	}
}

func TestEngineCloseUninitialized(t *testing.T) {
	e := New()
	e.Close() // safe on an uninitialized engine
	e.Close()
}

func TestNewRendererRequiresInit(t *testing.T) {
	e := New()
	if _, err := e.NewRenderer(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}

// Plane uploads and asset parsing work without a device.
func TestCPUPathsWithoutDevice(t *testing.T) {
	e := New()

	var plane engine.Plane
	var tex engine.Tex
	data := &engine.PlaneData{
		Width: 2, Height: 2,
		Components:    1,
		ComponentSize: [4]int{8},
		PixelStride:   1,
		RowStride:     2,
		Pixels:        []byte{0, 64, 128, 255},
	}
	if err := e.UploadPlane(&plane, &tex, data); err != nil {
		t.Fatalf("UploadPlane: %v", err)
	}
	if tex.Width() != 2 || tex.Height() != 2 {
		t.Errorf("texture = %dx%d, want 2x2", tex.Width(), tex.Height())
	}

	if _, err := e.ParseCubeLUT([]byte("LUT_3D_SIZE 2\n")); err == nil {
		t.Error("expected error for truncated LUT")
	}

	e.DestroyTex(&tex)
	if tex != nil {
		t.Error("texture slot not cleared")
	}
}

func TestSharedDevice(t *testing.T) {
	p := &stubProvider{}
	e := NewShared(p)

	if !e.IsInitialized() {
		t.Fatal("shared engine should be initialized on creation")
	}
	if e.Provider() != gpucontext.DeviceProvider(p) {
		t.Error("provider not retained")
	}
	if _, err := e.NewRenderer(); err != nil {
		t.Errorf("NewRenderer on shared engine: %v", err)
	}

	// Close must not touch the host's device.
	e.Close()
	if p.destroyed {
		t.Error("shared device was released by Close()")
	}
}

func TestSwapchainRoundTrip(t *testing.T) {
	e := New()
	sc := e.NewSwapchain(swrender.SwapchainOptions{Width: 4, Height: 4})

	frame, ok := sc.StartFrame()
	if !ok {
		t.Fatal("StartFrame failed")
	}
	if err := e.ClearTex(frame.FBO, [4]float32{0, 0, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if err := sc.SubmitFrame(); err != nil {
		t.Fatalf("SubmitFrame: %v", err)
	}
	sc.SwapBuffers()
}

type stubDevice struct{ destroyed *bool }

func (d *stubDevice) Poll(wait bool) {}
func (d *stubDevice) Destroy()       { *d.destroyed = true }

type stubQueue struct{}
type stubAdapter struct{}

type stubProvider struct{ destroyed bool }

func (p *stubProvider) Device() gpucontext.Device   { return &stubDevice{destroyed: &p.destroyed} }
func (p *stubProvider) Queue() gpucontext.Queue     { return stubQueue{} }
func (p *stubProvider) Adapter() gpucontext.Adapter { return stubAdapter{} }
func (p *stubProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}
func (p *stubProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}
