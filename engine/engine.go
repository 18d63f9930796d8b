// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

// MaxPlanes is the maximum number of planes a frame can carry:
// luma, two chroma planes and an optional alpha plane.
const MaxPlanes = 4

// GPU is the texture and asset-parsing capability surface of a
// rendering engine.
//
// GPU implementations are not required to be safe for concurrent use;
// the display pipeline brackets every call with the context's
// MakeCurrent/ReleaseCurrent discipline and drives all GPU work from a
// single thread.
type GPU interface {
	// UploadPlane uploads data into the texture slot pointed to by tex,
	// creating the texture on first use and transparently recreating it
	// when the incoming geometry or component layout differs from the
	// current one. On success, plane is filled in to describe the
	// uploaded texture.
	UploadPlane(plane *Plane, tex *Tex, data *PlaneData) error

	// ClearTex fills tex with the given RGBA color (components in the
	// 0..1 range).
	ClearTex(tex Tex, color [4]float32) error

	// DestroyTex releases the texture slot pointed to by tex and sets
	// it to nil. Destroying a nil slot is a no-op.
	DestroyTex(tex *Tex)

	// ParseCubeLUT parses a color lookup table in .cube format.
	ParseCubeLUT(data []byte) (*CustomLUT, error)

	// ParseHook parses and compiles a custom shader hook from source.
	ParseHook(src []byte) (*Hook, error)
}

// Tex is an opaque engine texture handle.
type Tex interface {
	// Width returns the texture width in pixels.
	Width() int
	// Height returns the texture height in pixels.
	Height() int
}

// SwapFrame describes one acquired swapchain frame.
type SwapFrame struct {
	// FBO is the framebuffer texture to render into.
	FBO Tex

	// Flipped reports whether the surface delivers frames upside down.
	// Placement must be computed in the flipped coordinate system.
	Flipped bool

	// Color and Repr describe the colorimetry of the framebuffer.
	Color ColorSpace
	Repr  ColorRepr
}

// Swapchain is the presentation surface of a rendering engine.
type Swapchain interface {
	// StartFrame acquires the next frame to render into. ok is false
	// when no frame is currently available, which is a benign condition
	// (the surface may be temporarily unavailable); the caller should
	// skip the display cycle and retry on the next one.
	StartFrame() (frame SwapFrame, ok bool)

	// SubmitFrame submits the frame acquired by the last StartFrame.
	SubmitFrame() error

	// SwapBuffers presents the last submitted frame.
	SwapBuffers()

	// Resize requests new swapchain dimensions and returns the
	// dimensions actually in effect, which may differ transiently.
	Resize(width, height int) (int, int)
}

// Renderer renders frames onto render targets.
type Renderer interface {
	// RenderImage renders img onto target using the given parameters.
	RenderImage(img *Frame, target *Target, params *RenderParams) error

	// Destroy releases all renderer-owned resources.
	Destroy()
}

// TargetFromSwapFrame initializes a render target covering the whole
// framebuffer of an acquired swapchain frame.
func TargetFromSwapFrame(frame *SwapFrame) Target {
	return Target{
		FBO: frame.FBO,
		Crop: RectF{
			X1: float32(frame.FBO.Width()),
			Y1: float32(frame.FBO.Height()),
		},
		Color: frame.Color,
		Repr:  frame.Repr,
	}
}
