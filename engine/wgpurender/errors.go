// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpurender

import "errors"

var (
	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("wgpurender: no GPU adapter available")

	// ErrNotInitialized is returned when the engine is used before Init.
	ErrNotInitialized = errors.New("wgpurender: engine not initialized")
)
