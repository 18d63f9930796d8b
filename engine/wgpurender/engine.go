// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpurender

import (
	"fmt"
	"log"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/vout/engine"
	"github.com/gogpu/vout/engine/swrender"
)

// Engine is a wgpu-backed implementation of engine.GPU.
//
// The engine manages GPU resources including instance, adapter, device,
// and queue. Plane uploads and frame compositing currently run on the
// software engine; the GPU device is brought up so that shader hooks
// and swapchain surfaces are validated against a real adapter.
//
// Engine is safe for concurrent use from multiple goroutines.
type Engine struct {
	mu sync.RWMutex

	// GPU resources
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	// Shared device, when the host supplies one
	provider gpucontext.DeviceProvider

	gpuInfo     *GPUInfo
	initialized bool

	// Compositing path
	sw *swrender.Engine
}

// New creates a wgpu engine. The engine must be initialized with
// Init() before renderers are created; plane uploads and asset parsing
// work without a device.
func New() *Engine {
	return &Engine{sw: swrender.New()}
}

// NewShared creates an engine on a device supplied by the host
// application. Init() becomes a no-op: the host owns the device
// lifecycle, and Close() does not release it.
func NewShared(provider gpucontext.DeviceProvider) *Engine {
	return &Engine{sw: swrender.New(), provider: provider, initialized: true}
}

// Init initializes the engine by creating GPU resources.
// This includes creating an instance, requesting an adapter,
// creating a device, and getting the command queue.
//
// Returns an error if GPU initialization fails.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	desc := &gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	}
	e.instance = core.NewInstance(desc)

	adapterID, err := e.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	e.adapter = adapterID

	logGPUInfo(adapterID)
	e.gpuInfo, _ = getGPUInfo(adapterID)

	deviceID, err := createDevice(adapterID, "vout-wgpu-device")
	if err != nil {
		return err
	}
	e.device = deviceID

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		_ = releaseDevice(deviceID)
		return err
	}
	e.queue = queueID

	e.initialized = true
	log.Println("wgpurender: engine initialized")

	return nil
}

// Close releases all engine resources.
// The engine should not be used after Close is called.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	// A shared device belongs to the host.
	if e.provider == nil {
		// Release in reverse order of creation. The queue is released
		// when the device is dropped.
		if !e.device.IsZero() {
			if err := releaseDevice(e.device); err != nil {
				log.Printf("wgpurender: error releasing device: %v", err)
			}
			e.device = core.DeviceID{}
		}
		if !e.adapter.IsZero() {
			if err := releaseAdapter(e.adapter); err != nil {
				log.Printf("wgpurender: error releasing adapter: %v", err)
			}
			e.adapter = core.AdapterID{}
		}
		e.instance = nil
		e.queue = core.QueueID{}
	}

	e.gpuInfo = nil
	e.initialized = false
}

// IsInitialized returns true if the engine has been initialized.
func (e *Engine) IsInitialized() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.initialized
}

// GPUInfo returns information about the selected GPU.
// Returns nil if the engine is not initialized or runs on a shared
// device.
func (e *Engine) GPUInfo() *GPUInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gpuInfo
}

// Device returns the GPU device ID.
// Returns a zero ID if the engine is not initialized.
func (e *Engine) Device() core.DeviceID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.device
}

// Queue returns the GPU queue ID.
// Returns a zero ID if the engine is not initialized.
func (e *Engine) Queue() core.QueueID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.queue
}

// Provider returns the shared device provider, or nil when the engine
// owns its device.
func (e *Engine) Provider() gpucontext.DeviceProvider {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.provider
}

// UploadPlane uploads plane data, reusing the texture slot when
// geometry and layout are unchanged.
func (e *Engine) UploadPlane(plane *engine.Plane, tex *engine.Tex, data *engine.PlaneData) error {
	return e.sw.UploadPlane(plane, tex, data)
}

// ClearTex fills tex with a flat RGBA color.
func (e *Engine) ClearTex(tex engine.Tex, color [4]float32) error {
	return e.sw.ClearTex(tex, color)
}

// DestroyTex releases the texture slot.
func (e *Engine) DestroyTex(tex *engine.Tex) {
	e.sw.DestroyTex(tex)
}

// ParseCubeLUT parses a .cube color lookup table.
func (e *Engine) ParseCubeLUT(data []byte) (*engine.CustomLUT, error) {
	return e.sw.ParseCubeLUT(data)
}

// ParseHook compiles a WGSL shader hook to SPIR-V.
func (e *Engine) ParseHook(src []byte) (*engine.Hook, error) {
	return e.sw.ParseHook(src)
}

// NewSwapchain creates an offscreen swapchain. Window surface
// swapchains are owned by the embedding application; the output module
// renders into whatever framebuffer the swapchain hands out.
func (e *Engine) NewSwapchain(opts swrender.SwapchainOptions) engine.Swapchain {
	return swrender.NewSwapchain(e.sw, opts)
}

// NewRenderer creates a renderer. The engine must be initialized.
func (e *Engine) NewRenderer() (engine.Renderer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.initialized {
		return nil, ErrNotInitialized
	}
	return &Renderer{eng: e, sw: swrender.NewRenderer(e.sw)}, nil
}

// Renderer is the wgpu-backed renderer.
//
// Compositing currently delegates to the software renderer; the GPU
// pass takes over per-stage as wgpu texture upload and readback land.
type Renderer struct {
	eng *Engine
	sw  *swrender.Renderer
}

// RenderImage composites img onto target.
func (r *Renderer) RenderImage(img *engine.Frame, target *engine.Target, params *engine.RenderParams) error {
	return r.sw.RenderImage(img, target, params)
}

// Destroy releases renderer resources.
func (r *Renderer) Destroy() {
	r.sw.Destroy()
}

var (
	_ engine.GPU      = (*Engine)(nil)
	_ engine.Renderer = (*Renderer)(nil)
)
