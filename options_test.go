// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/vout/engine"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Deband.Enable {
		t.Error("debanding enabled by default")
	}
	if opts.Deband.Iterations != engine.DefaultDebandParams.Iterations {
		t.Errorf("deband iterations = %d, want %d",
			opts.Deband.Iterations, engine.DefaultDebandParams.Iterations)
	}
	if opts.Dither.Method != "blue-noise" {
		t.Errorf("dither method = %q, want blue-noise", opts.Dither.Method)
	}
	if opts.Upscaler.Preset != "builtin" || opts.Downscaler.Preset != "builtin" {
		t.Error("scalers should default to the engine builtin")
	}
	if opts.LUTEntries != engine.DefaultRenderParams.LUTEntries {
		t.Errorf("lut entries = %d, want %d",
			opts.LUTEntries, engine.DefaultRenderParams.LUTEntries)
	}
}

func TestLoadOptions(t *testing.T) {
	const doc = `
lut-entries = 128
skip-antialiasing = true

[deband]
enable = true
iterations = 2

[upscaler]
preset = "lanczos"

[target]
primaries = "bt2020"
transfer = "pq"
`
	path := filepath.Join(t.TempDir(), "vout.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}

	if !opts.Deband.Enable || opts.Deband.Iterations != 2 {
		t.Errorf("deband = %+v", opts.Deband)
	}
	// Fields absent from the file keep their defaults.
	if opts.Deband.Threshold != engine.DefaultDebandParams.Threshold {
		t.Errorf("deband threshold = %v, want default", opts.Deband.Threshold)
	}
	if opts.Upscaler.Preset != "lanczos" {
		t.Errorf("upscaler preset = %q", opts.Upscaler.Preset)
	}
	if opts.Target.Primaries != "bt2020" || opts.Target.Transfer != "pq" {
		t.Errorf("target = %+v", opts.Target)
	}
	if opts.LUTEntries != 128 || !opts.SkipAntiAliasing {
		t.Errorf("flat options not applied: entries=%d skip=%v",
			opts.LUTEntries, opts.SkipAntiAliasing)
	}
	if opts.Dither.Method != "blue-noise" {
		t.Errorf("untouched section changed: %+v", opts.Dither)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOptionsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("deband = {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Error("expected parse error")
	}
}
