// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

// DebandParams controls the debanding pass.
type DebandParams struct {
	// Iterations is the number of debanding steps. 0 disables the
	// averaging but grain may still apply.
	Iterations int

	// Threshold is the cut-off below which pixels are smoothed.
	Threshold float32

	// Radius is the sampling radius in pixels.
	Radius float32

	// Grain is the amount of noise added after debanding.
	Grain float32
}

// DefaultDebandParams are sensible defaults for DebandParams.
var DefaultDebandParams = DebandParams{
	Iterations: 1,
	Threshold:  4.0,
	Radius:     16.0,
	Grain:      6.0,
}

// SigmoidParams controls sigmoidal contrast during upscaling.
type SigmoidParams struct {
	// Center is the luminance the curve is centered on.
	Center float32

	// Slope is the steepness of the curve.
	Slope float32
}

// DefaultSigmoidParams are sensible defaults for SigmoidParams.
var DefaultSigmoidParams = SigmoidParams{
	Center: 0.75,
	Slope:  6.5,
}

// RenderIntent is the gamut mapping intent.
type RenderIntent int

// Gamut mapping intents.
const (
	IntentPerceptual RenderIntent = iota
	IntentRelativeColorimetric
	IntentSaturation
	IntentAbsoluteColorimetric
)

// ToneMapping identifies a tone mapping curve.
type ToneMapping int

// Tone mapping curves.
const (
	ToneMapClip ToneMapping = iota
	ToneMapMobius
	ToneMapReinhard
	ToneMapHable
	ToneMapGamma
	ToneMapLinear
	ToneMapBT2390
)

// ColorMapParams controls color space conversion and tone mapping.
type ColorMapParams struct {
	Intent RenderIntent

	ToneMappingAlgo  ToneMapping
	ToneMappingParam float32

	DesaturationStrength float32
	DesaturationExponent float32
	DesaturationBase     float32

	// MaxBoost is the maximum brightness boost during tone mapping.
	MaxBoost float32

	// GamutClipping hard-clips out-of-gamut colors instead of
	// desaturating them.
	GamutClipping bool

	// GamutWarning highlights out-of-gamut colors.
	GamutWarning bool
}

// DefaultColorMapParams are sensible defaults for ColorMapParams.
var DefaultColorMapParams = ColorMapParams{
	Intent:               IntentRelativeColorimetric,
	ToneMappingAlgo:      ToneMapBT2390,
	ToneMappingParam:     1.0,
	DesaturationStrength: 0.75,
	DesaturationExponent: 1.5,
	DesaturationBase:     0.18,
	MaxBoost:             1.0,
}

// DitherMethod identifies a dithering algorithm.
type DitherMethod int

// Dithering algorithms.
const (
	DitherBlueNoise DitherMethod = iota
	DitherOrderedLUT
	DitherOrderedFixed
	DitherWhiteNoise
)

// DitherParams controls output dithering.
type DitherParams struct {
	Method DitherMethod

	// LUTSize is the log2 size of the dither matrix.
	LUTSize int

	// Temporal cycles the dither pattern every frame.
	Temporal bool
}

// DefaultDitherParams are sensible defaults for DitherParams.
var DefaultDitherParams = DitherParams{
	Method:  DitherBlueNoise,
	LUTSize: 6,
}

// PeakDetectParams controls HDR peak detection.
type PeakDetectParams struct {
	// SmoothingPeriod is the number of frames the detected peak is
	// averaged over.
	SmoothingPeriod float32

	// SceneThresholdLow and SceneThresholdHigh bound the scene-change
	// detection, in dB.
	SceneThresholdLow  float32
	SceneThresholdHigh float32
}

// DefaultPeakDetectParams are sensible defaults for PeakDetectParams.
var DefaultPeakDetectParams = PeakDetectParams{
	SmoothingPeriod:    100.0,
	SceneThresholdLow:  5.5,
	SceneThresholdHigh: 10.0,
}

// RenderParams is the complete render configuration applied on every
// dispatch. Optional features are enabled by non-nil sub-parameter
// pointers and disabled by nil ones.
//
// RenderParams is assembled once per session and treated as read-only
// while frames are in flight.
type RenderParams struct {
	// Upscaler and Downscaler select the scaling filters. nil leaves
	// the engine default in place.
	Upscaler   *FilterConfig
	Downscaler *FilterConfig

	Deband     *DebandParams
	Sigmoid    *SigmoidParams
	ColorMap   *ColorMapParams
	Dither     *DitherParams
	PeakDetect *PeakDetectParams

	// AllowDelayedPeakDetect permits peak detection results to lag one
	// frame behind, avoiding a pipeline stall. Only meaningful when
	// PeakDetect is set.
	AllowDelayedPeakDetect bool

	// LUTEntries is the resolution of internally generated lookup
	// textures.
	LUTEntries int

	// AntiringingStrength controls the scaler anti-ringing filter.
	AntiringingStrength float32

	// SkipAntiAliasing disables anti-aliasing when downscaling.
	SkipAntiAliasing bool

	// PolarCutoff truncates polar kernels below this weight.
	PolarCutoff float32

	// DisableOverlaySampling blits overlays directly instead of
	// resampling them.
	DisableOverlaySampling bool

	// DisableLinearScaling scales in gamma light.
	DisableLinearScaling bool

	// DisableBuiltinScalers forces the general scaling path.
	DisableBuiltinScalers bool

	// LUT optionally applies a custom lookup table; LUTType selects
	// where in the pipeline it runs.
	LUT     *CustomLUT
	LUTType LUTType

	// Hooks are custom shader stages injected into the pipeline.
	Hooks []*Hook
}

// DefaultRenderParams is the baseline configuration with all optional
// features disabled.
var DefaultRenderParams = RenderParams{
	LUTEntries:  64,
	PolarCutoff: 0.001,
}
