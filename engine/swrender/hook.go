// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/vout/engine"
)

// ErrEmptyHook is returned when a hook source is empty.
var ErrEmptyHook = errors.New("swrender: empty shader hook source")

// ParseHook compiles a WGSL shader hook to SPIR-V. The software
// compositor cannot execute hooks, but parsing them here keeps asset
// validation engine-independent: a hook accepted by swrender is a hook
// any SPIR-V consuming engine can run.
func (e *Engine) ParseHook(src []byte) (*engine.Hook, error) {
	if len(strings.TrimSpace(string(src))) == 0 {
		return nil, ErrEmptyHook
	}

	spirvBytes, err := naga.Compile(string(src))
	if err != nil {
		return nil, fmt.Errorf("swrender: compiling shader hook: %w", err)
	}

	// SPIR-V words are little-endian 32-bit.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return &engine.Hook{
		Name:   hookName(src),
		Source: src,
		SPIRV:  words,
	}, nil
}

// hookName extracts a label from a "//!DESC name" comment, falling
// back to a generic label.
func hookName(src []byte) string {
	for _, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "//!DESC"); ok {
			if name := strings.TrimSpace(rest); name != "" {
				return name
			}
		}
	}
	return "user shader"
}
