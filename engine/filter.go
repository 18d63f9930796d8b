// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "fmt"

// FilterFunction identifies a filter kernel or window function.
// FilterNone means no function is selected; a FilterConfig whose
// Kernel is FilterNone is invalid.
type FilterFunction int

// Available filter functions.
const (
	FilterNone FilterFunction = iota
	FilterBox
	FilterTriangle
	FilterGaussian
	FilterSinc
	FilterJinc
	FilterLanczos
	FilterHann
	FilterHamming
	FilterBlackman
	FilterKaiser
	FilterSpline16
	FilterSpline36
	FilterSpline64
	FilterMitchell
	FilterCatmullRom
	FilterBicubic
)

// String returns the canonical filter function name.
func (f FilterFunction) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterBox:
		return "box"
	case FilterTriangle:
		return "triangle"
	case FilterGaussian:
		return "gaussian"
	case FilterSinc:
		return "sinc"
	case FilterJinc:
		return "jinc"
	case FilterLanczos:
		return "lanczos"
	case FilterHann:
		return "hann"
	case FilterHamming:
		return "hamming"
	case FilterBlackman:
		return "blackman"
	case FilterKaiser:
		return "kaiser"
	case FilterSpline16:
		return "spline16"
	case FilterSpline36:
		return "spline36"
	case FilterSpline64:
		return "spline64"
	case FilterMitchell:
		return "mitchell"
	case FilterCatmullRom:
		return "catmull_rom"
	case FilterBicubic:
		return "bicubic"
	default:
		return fmt.Sprintf("FilterFunction(%d)", int(f))
	}
}

// FilterConfig composes a scaling filter from a kernel, an optional
// window, and shaping parameters.
type FilterConfig struct {
	// Kernel is the base filter function. Required.
	Kernel FilterFunction

	// Window optionally windows the kernel.
	Window FilterFunction

	// Clamp limits negative filter weights (0 = ringing allowed,
	// 1 = fully clamped).
	Clamp float32

	// Blur widens (>1) or sharpens (<1) the kernel.
	Blur float32

	// Taper flattens the center of the kernel.
	Taper float32

	// Polar samples the kernel radially (EWA) instead of separably.
	Polar bool
}

// ScalerPreset selects a scaling filter from a fixed table of named
// configurations.
type ScalerPreset int

// Available scaler presets.
const (
	// ScaleBuiltin leaves scaling to the engine default.
	ScaleBuiltin ScalerPreset = iota
	ScaleBilinear
	ScaleBicubic
	ScaleOversample
	ScaleSpline36
	ScaleLanczos
	ScaleMitchell
	ScaleEWALanczos

	// ScaleCustom composes the filter from individual tunables
	// instead of the preset table.
	ScaleCustom
)

// presetConfigs is the fixed table backing PresetFilter. ScaleBuiltin
// and ScaleCustom intentionally map to nil.
var presetConfigs = [...]*FilterConfig{
	ScaleBuiltin:    nil,
	ScaleBilinear:   {Kernel: FilterTriangle, Blur: 1},
	ScaleBicubic:    {Kernel: FilterBicubic, Blur: 1},
	ScaleOversample: {Kernel: FilterBox, Blur: 1},
	ScaleSpline36:   {Kernel: FilterSpline36, Blur: 1},
	ScaleLanczos:    {Kernel: FilterSinc, Window: FilterSinc, Blur: 1},
	ScaleMitchell:   {Kernel: FilterMitchell, Blur: 1},
	ScaleEWALanczos: {Kernel: FilterJinc, Window: FilterJinc, Blur: 1, Polar: true},
	ScaleCustom:     nil,
}

// PresetFilter returns the filter configuration for a preset. The
// returned pointer refers to shared read-only storage. ok is false for
// out-of-range presets; ScaleBuiltin and ScaleCustom return (nil, true)
// since neither names a table entry.
func PresetFilter(p ScalerPreset) (cfg *FilterConfig, ok bool) {
	if p < 0 || int(p) >= len(presetConfigs) {
		return nil, false
	}
	return presetConfigs[p], true
}
