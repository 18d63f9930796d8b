// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpurender provides the wgpu-backed rendering engine.
//
// The engine manages GPU resources through gogpu/wgpu: instance,
// adapter, device and queue. Device setup follows the usual order:
//
//	Instance -> Adapter -> Device -> Queue
//
// Compositing currently runs through the software engine while wgpu
// texture upload and readback mature; shader hooks are compiled to
// SPIR-V through naga so assets validated here run unchanged once the
// GPU path takes over. Hosts embedding the output module in a larger
// GPU application can share their device through a
// gpucontext.DeviceProvider instead of letting the engine create its
// own.
package wgpurender
