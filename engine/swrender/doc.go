// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swrender is the pure Go software implementation of the
// engine interfaces.
//
// It keeps textures as CPU sample buffers and composites with the
// golang.org/x/image/draw scalers. The compositor implements plane
// merging, YCbCr conversion, cropping, rotation and flips, scaling
// with a kernel selected from the render parameters, custom 3D LUTs
// and overlay blending. Shader-dependent passes (debanding, sigmoid,
// dithering, peak detection, hooks) are validated and accepted but not
// executed; swrender composites at 8 bits per channel.
//
// swrender doubles as the reference engine for tests and for hosts
// without a GPU.
package swrender
