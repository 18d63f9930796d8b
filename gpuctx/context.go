// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuctx provides the GPU context abstraction the display
// pipeline runs against: an engine bundle guarded by a make-current /
// release-current discipline.
//
// Every GPU-touching operation must be bracketed by a successful
// MakeCurrent and a matching ReleaseCurrent. MakeCurrent never blocks:
// when the context is momentarily unavailable it reports failure and
// the caller skips the current display cycle.
package gpuctx

import (
	"errors"

	"github.com/subchen/go-trylock/v2"

	"github.com/gogpu/vout/engine"
)

// ErrNoRenderer is returned when a context cannot create a renderer.
var ErrNoRenderer = errors.New("gpuctx: renderer creation not supported")

// Context is a GPU context owning an engine, a swapchain, and the
// exclusive-access discipline around them.
type Context interface {
	// MakeCurrent acquires the context for GPU work. It returns false
	// without blocking when the context is unavailable.
	MakeCurrent() bool

	// ReleaseCurrent releases the context. Must be called exactly once
	// for every successful MakeCurrent, on every exit path.
	ReleaseCurrent()

	// GPU returns the engine's texture/parsing capabilities.
	GPU() engine.GPU

	// Swapchain returns the presentation surface.
	Swapchain() engine.Swapchain

	// NewRenderer creates a renderer on this context. The caller owns
	// the renderer and must destroy it under the context lock.
	NewRenderer() (engine.Renderer, error)
}

// Local is a Context for engines living in the same process, guarded
// by a non-blocking mutex.
type Local struct {
	mu          trylock.TryLocker
	gpu         engine.GPU
	swapchain   engine.Swapchain
	newRenderer func() (engine.Renderer, error)
}

// NewLocal creates a context around an engine bundle. newRenderer may
// be nil, in which case NewRenderer fails with ErrNoRenderer.
func NewLocal(gpu engine.GPU, sc engine.Swapchain, newRenderer func() (engine.Renderer, error)) *Local {
	return &Local{
		mu:          trylock.New(),
		gpu:         gpu,
		swapchain:   sc,
		newRenderer: newRenderer,
	}
}

// MakeCurrent acquires the context without blocking.
func (l *Local) MakeCurrent() bool {
	return l.mu.TryLock(nil)
}

// ReleaseCurrent releases the context.
func (l *Local) ReleaseCurrent() {
	l.mu.Unlock()
}

// GPU returns the engine capabilities.
func (l *Local) GPU() engine.GPU { return l.gpu }

// Swapchain returns the presentation surface.
func (l *Local) Swapchain() engine.Swapchain { return l.swapchain }

// NewRenderer creates a renderer on this context.
func (l *Local) NewRenderer() (engine.Renderer, error) {
	if l.newRenderer == nil {
		return nil, ErrNoRenderer
	}
	return l.newRenderer()
}

var _ Context = (*Local)(nil)
