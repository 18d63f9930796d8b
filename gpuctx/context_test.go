// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuctx

import (
	"errors"
	"testing"

	"github.com/gogpu/vout/engine"
)

func TestLocalMakeCurrentExclusive(t *testing.T) {
	ctx := NewLocal(nil, nil, nil)

	if !ctx.MakeCurrent() {
		t.Fatal("MakeCurrent failed on idle context")
	}

	// A second acquisition must fail immediately instead of blocking.
	done := make(chan bool, 1)
	go func() { done <- ctx.MakeCurrent() }()
	if <-done {
		t.Error("MakeCurrent succeeded while context was held")
	}

	ctx.ReleaseCurrent()
	if !ctx.MakeCurrent() {
		t.Error("MakeCurrent failed after release")
	}
	ctx.ReleaseCurrent()
}

func TestLocalNewRendererUnsupported(t *testing.T) {
	ctx := NewLocal(nil, nil, nil)
	if _, err := ctx.NewRenderer(); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("NewRenderer error = %v, want ErrNoRenderer", err)
	}
}

func TestLocalNewRenderer(t *testing.T) {
	want := &nopRenderer{}
	ctx := NewLocal(nil, nil, func() (engine.Renderer, error) { return want, nil })
	r, err := ctx.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if r != engine.Renderer(want) {
		t.Error("NewRenderer returned a different renderer")
	}
}

type nopRenderer struct{}

func (*nopRenderer) RenderImage(*engine.Frame, *engine.Target, *engine.RenderParams) error {
	return nil
}
func (*nopRenderer) Destroy() {}
