// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"os"

	"github.com/gogpu/vout/engine"
)

// assetCache holds the session's custom LUT and shader hook, each
// identified by its source file path. An asset is reparsed only when
// the path changes; an empty path clears it. On load failure the path
// is still recorded so the failing file is not retried every call, but
// no asset is installed.
type assetCache struct {
	gpu engine.GPU

	lutPath string
	lut     *engine.CustomLUT

	hookPath string
	hook     *engine.Hook
}

// loadLUT loads and parses a .cube LUT, cached by path.
func (c *assetCache) loadLUT(path string) {
	if path == c.lutPath {
		return
	}
	c.lutPath = path
	c.lut = nil
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		Logger().Warn("failed to read LUT file, feature disabled",
			"path", path, "error", err)
		return
	}
	lut, err := c.gpu.ParseCubeLUT(data)
	if err != nil {
		Logger().Warn("failed to parse LUT file, feature disabled",
			"path", path, "error", err)
		return
	}
	c.lut = lut
}

// loadHook loads and compiles a custom shader hook, cached by path.
func (c *assetCache) loadHook(path string) {
	if path == c.hookPath {
		return
	}
	c.hookPath = path
	c.hook = nil
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		Logger().Warn("failed to read shader hook, feature disabled",
			"path", path, "error", err)
		return
	}
	hook, err := c.gpu.ParseHook(data)
	if err != nil {
		Logger().Warn("failed to compile shader hook, feature disabled",
			"path", path, "error", err)
		return
	}
	c.hook = hook
}
