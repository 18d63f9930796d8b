// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package vout bridges a media player's video output to a GPU
// rendering engine.
//
// A Display session is opened against a gpuctx.Context with the
// decoded stream's format and a set of Options. Each display cycle the
// host calls Prepare to upload the current picture and any subtitle
// overlays, compute placement, and dispatch one render pass, then
// Display to present the frame:
//
//	d, err := vout.Open(ctx, &format, &cfg, opts)
//	if err != nil {
//	    ...
//	}
//	defer d.Close()
//
//	for pic := range frames {
//	    d.Prepare(pic, nil, pts)
//	    d.Display(pic)
//	}
//
// Rendering tunables (debanding, scaling kernels, tone mapping,
// dithering, LUTs, shader hooks) are assembled once at open time into
// a single render configuration applied on every frame. Reconfigure
// swaps the configuration between frames.
//
// By default the package produces no log output; call SetLogger to
// enable diagnostics.
package vout
