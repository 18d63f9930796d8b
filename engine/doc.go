// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package engine defines the capability surface of a GPU rendering
// engine as consumed by the vout display pipeline.
//
// The package contains no rendering code of its own. It declares the
// interfaces an engine must provide (texture upload, swapchain frame
// cycling, image rendering) together with the descriptor types that
// travel across that boundary: frames, planes, overlays, colorimetry
// and the layered render-parameter configuration.
//
// Two implementations ship with this module:
//
//   - engine/swrender: a pure Go software engine used as the reference
//     implementation and test vehicle.
//   - engine/wgpurender: a wgpu-backed engine that manages real GPU
//     device lifecycle and shares the software compositor while wgpu
//     texture upload support matures.
//
// Hosts with their own engine integrate by implementing GPU, Swapchain
// and Renderer.
package engine
