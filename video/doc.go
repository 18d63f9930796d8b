// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package video models decoded video pictures and their formats, and
// translates them into the descriptor vocabulary of package engine.
//
// It covers three concerns:
//
//   - pixel formats: a fourcc-keyed registry of plane layouts with
//     fallback chains for format negotiation,
//   - pictures and subpictures: plane storage for decoded frames and
//     pre-rendered subtitle regions,
//   - translation and placement: colorimetry/plane-layout conversion
//     to engine descriptors, and on-screen rectangle computation from
//     aspect, crop, zoom and alignment rules.
package video
