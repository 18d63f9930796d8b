// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/vout/engine"
)

// Options holds every rendering tunable of a display session. The set
// is read once when the session opens; Reconfigure installs a new set
// between frames.
//
// String-valued selectors use the canonical lowercase names listed
// next to each field. An empty string keeps the default.
type Options struct {
	Deband     DebandOptions   `toml:"deband"`
	Sigmoid    SigmoidOptions  `toml:"sigmoid"`
	ColorMap   ColorMapOptions `toml:"color-map"`
	Dither     DitherOptions   `toml:"dither"`
	PeakDetect PeakOptions     `toml:"peak-detect"`
	Target     TargetOptions   `toml:"target"`
	Upscaler   ScalerOptions   `toml:"upscaler"`
	Downscaler ScalerOptions   `toml:"downscaler"`
	LUT        LUTOptions      `toml:"lut"`
	Shader     ShaderOptions   `toml:"shader"`

	// LUTEntries is the resolution of internally generated lookup
	// textures.
	LUTEntries int `toml:"lut-entries"`

	// Antiringing controls the scaler anti-ringing strength (0..1).
	Antiringing float32 `toml:"antiringing"`

	// SkipAntiAliasing disables anti-aliasing when downscaling.
	SkipAntiAliasing bool `toml:"skip-antialiasing"`

	// PolarCutoff truncates polar kernel weights below this value.
	PolarCutoff float32 `toml:"polar-cutoff"`

	// OverlayDirect blits overlays directly instead of resampling.
	OverlayDirect bool `toml:"overlay-direct"`

	// DisableLinear scales in gamma light instead of linear light.
	DisableLinear bool `toml:"disable-linear"`

	// ForceGeneral forces the general scaling path even where a builtin
	// sampler would do.
	ForceGeneral bool `toml:"force-general"`
}

// DebandOptions controls the debanding pass.
type DebandOptions struct {
	Enable     bool    `toml:"enable"`
	Iterations int     `toml:"iterations"`
	Threshold  float32 `toml:"threshold"`
	Radius     float32 `toml:"radius"`
	Grain      float32 `toml:"grain"`
}

// SigmoidOptions controls sigmoidal contrast during upscaling.
type SigmoidOptions struct {
	Enable bool    `toml:"enable"`
	Center float32 `toml:"center"`
	Slope  float32 `toml:"slope"`
}

// ColorMapOptions controls gamut mapping and tone mapping.
type ColorMapOptions struct {
	// Intent: "perceptual", "relative", "saturation", "absolute".
	Intent string `toml:"intent"`

	// ToneMapping: "clip", "mobius", "reinhard", "hable", "gamma",
	// "linear", "bt2390".
	ToneMapping      string  `toml:"tone-mapping"`
	ToneMappingParam float32 `toml:"tone-mapping-param"`

	DesatStrength float32 `toml:"desat-strength"`
	DesatExponent float32 `toml:"desat-exponent"`
	DesatBase     float32 `toml:"desat-base"`

	MaxBoost      float32 `toml:"max-boost"`
	GamutClipping bool    `toml:"gamut-clipping"`
	GamutWarning  bool    `toml:"gamut-warning"`
}

// DitherOptions controls output dithering.
type DitherOptions struct {
	// Method: "blue-noise", "ordered-lut", "ordered-fixed",
	// "white-noise", or "none" to disable.
	Method   string `toml:"method"`
	LUTSize  int    `toml:"lut-size"`
	Temporal bool   `toml:"temporal"`

	// Depth overrides the dither target bit depth; 0 uses the
	// framebuffer depth.
	Depth int `toml:"depth"`
}

// PeakOptions controls HDR peak detection.
type PeakOptions struct {
	// Period is the smoothing period in frames; 0 disables detection.
	Period             float32 `toml:"period"`
	SceneThresholdLow  float32 `toml:"scene-threshold-low"`
	SceneThresholdHigh float32 `toml:"scene-threshold-high"`

	// AllowDelayed permits detection results to lag one frame behind.
	AllowDelayed bool `toml:"allow-delayed"`
}

// TargetOptions overrides the colorimetry reported by the swapchain.
// Empty/zero fields keep the surface-inferred value.
type TargetOptions struct {
	// Primaries: "bt601-525", "bt601-625", "bt709", "bt2020", "dci-p3",
	// "display-p3", "adobe", "prophoto".
	Primaries string `toml:"primaries"`

	// Transfer: "bt1886", "srgb", "linear", "gamma22", "gamma28", "pq",
	// "hlg".
	Transfer string `toml:"transfer"`

	// SigAvg is the assumed average signal level of the display.
	SigAvg float32 `toml:"sig-avg"`
}

// ScalerOptions selects a scaling filter.
type ScalerOptions struct {
	// Preset: "builtin", "bilinear", "bicubic", "oversample",
	// "spline36", "lanczos", "mitchell", "ewa-lanczos", or "custom" to
	// compose the filter from the fields below.
	Preset string `toml:"preset"`

	// Custom filter composition, used only with the "custom" preset.
	Kernel string  `toml:"kernel"`
	Window string  `toml:"window"`
	Clamp  float32 `toml:"clamp"`
	Blur   float32 `toml:"blur"`
	Taper  float32 `toml:"taper"`
	Polar  bool    `toml:"polar"`
}

// LUTOptions selects a custom color lookup table.
type LUTOptions struct {
	// File is the path of a .cube LUT; empty means none.
	File string `toml:"file"`

	// Mode: "auto", "native", "linear", "conversion", "decoding",
	// "encoding".
	Mode string `toml:"mode"`
}

// ShaderOptions selects a custom shader hook.
type ShaderOptions struct {
	// File is the path of a WGSL hook source; empty means none.
	File string `toml:"file"`
}

// DefaultOptions returns the baseline option set: dithering with blue
// noise, peak detection on, everything else at engine defaults.
func DefaultOptions() *Options {
	return &Options{
		Deband: DebandOptions{
			Iterations: engine.DefaultDebandParams.Iterations,
			Threshold:  engine.DefaultDebandParams.Threshold,
			Radius:     engine.DefaultDebandParams.Radius,
			Grain:      engine.DefaultDebandParams.Grain,
		},
		Sigmoid: SigmoidOptions{
			Center: engine.DefaultSigmoidParams.Center,
			Slope:  engine.DefaultSigmoidParams.Slope,
		},
		ColorMap: ColorMapOptions{
			Intent:           "relative",
			ToneMapping:      "bt2390",
			ToneMappingParam: engine.DefaultColorMapParams.ToneMappingParam,
			DesatStrength:    engine.DefaultColorMapParams.DesaturationStrength,
			DesatExponent:    engine.DefaultColorMapParams.DesaturationExponent,
			DesatBase:        engine.DefaultColorMapParams.DesaturationBase,
			MaxBoost:         engine.DefaultColorMapParams.MaxBoost,
		},
		Dither: DitherOptions{
			Method:  "blue-noise",
			LUTSize: engine.DefaultDitherParams.LUTSize,
		},
		PeakDetect: PeakOptions{
			Period:             engine.DefaultPeakDetectParams.SmoothingPeriod,
			SceneThresholdLow:  engine.DefaultPeakDetectParams.SceneThresholdLow,
			SceneThresholdHigh: engine.DefaultPeakDetectParams.SceneThresholdHigh,
		},
		Upscaler:    ScalerOptions{Preset: "builtin"},
		Downscaler:  ScalerOptions{Preset: "builtin"},
		LUT:         LUTOptions{Mode: "auto"},
		LUTEntries:  engine.DefaultRenderParams.LUTEntries,
		PolarCutoff: engine.DefaultRenderParams.PolarCutoff,
	}
}

// LoadOptions reads a TOML options file, applying it over
// DefaultOptions. Fields absent from the file keep their defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vout: reading options: %w", err)
	}

	opts := DefaultOptions()
	if err := toml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("vout: parsing options: %w", err)
	}
	return opts, nil
}

// Selector name tables. Unknown names map to the zero value, which the
// parameter assembler treats as "unset" or reports, depending on the
// field.

var intentNames = map[string]engine.RenderIntent{
	"perceptual": engine.IntentPerceptual,
	"relative":   engine.IntentRelativeColorimetric,
	"saturation": engine.IntentSaturation,
	"absolute":   engine.IntentAbsoluteColorimetric,
}

var toneMappingNames = map[string]engine.ToneMapping{
	"clip":     engine.ToneMapClip,
	"mobius":   engine.ToneMapMobius,
	"reinhard": engine.ToneMapReinhard,
	"hable":    engine.ToneMapHable,
	"gamma":    engine.ToneMapGamma,
	"linear":   engine.ToneMapLinear,
	"bt2390":   engine.ToneMapBT2390,
}

var ditherMethodNames = map[string]engine.DitherMethod{
	"blue-noise":    engine.DitherBlueNoise,
	"ordered-lut":   engine.DitherOrderedLUT,
	"ordered-fixed": engine.DitherOrderedFixed,
	"white-noise":   engine.DitherWhiteNoise,
}

var primariesNames = map[string]engine.ColorPrimaries{
	"bt601-525":  engine.PrimariesBT601_525,
	"bt601-625":  engine.PrimariesBT601_625,
	"bt709":      engine.PrimariesBT709,
	"bt2020":     engine.PrimariesBT2020,
	"dci-p3":     engine.PrimariesDCIP3,
	"display-p3": engine.PrimariesDisplayP3,
	"adobe":      engine.PrimariesAdobeRGB,
	"prophoto":   engine.PrimariesProPhoto,
}

var transferNames = map[string]engine.ColorTransfer{
	"bt1886":  engine.TransferBT1886,
	"srgb":    engine.TransferSRGB,
	"linear":  engine.TransferLinear,
	"gamma22": engine.TransferGamma22,
	"gamma28": engine.TransferGamma28,
	"pq":      engine.TransferPQ,
	"hlg":     engine.TransferHLG,
}

var scalerPresetNames = map[string]engine.ScalerPreset{
	"builtin":     engine.ScaleBuiltin,
	"bilinear":    engine.ScaleBilinear,
	"bicubic":     engine.ScaleBicubic,
	"oversample":  engine.ScaleOversample,
	"spline36":    engine.ScaleSpline36,
	"lanczos":     engine.ScaleLanczos,
	"mitchell":    engine.ScaleMitchell,
	"ewa-lanczos": engine.ScaleEWALanczos,
	"custom":      engine.ScaleCustom,
}

var filterNames = map[string]engine.FilterFunction{
	"box":      engine.FilterBox,
	"triangle": engine.FilterTriangle,
	"gaussian": engine.FilterGaussian,
	"sinc":     engine.FilterSinc,
	"jinc":     engine.FilterJinc,
	"lanczos":  engine.FilterLanczos,
	"hann":     engine.FilterHann,
	"hamming":  engine.FilterHamming,
	"blackman": engine.FilterBlackman,
	"kaiser":   engine.FilterKaiser,
	"spline16": engine.FilterSpline16,
	"spline36": engine.FilterSpline36,
	"spline64": engine.FilterSpline64,
	"mitchell": engine.FilterMitchell,
	"catmull":  engine.FilterCatmullRom,
	"bicubic":  engine.FilterBicubic,
}

// lutMode routes a custom LUT to a point of the pipeline.
type lutMode int

const (
	// lutModeAuto lets the engine pick from the LUT contents.
	lutModeAuto lutMode = iota
	// lutModeNative applies in the image's native colorspace.
	lutModeNative
	// lutModeLinear applies on linearized, normalized RGB.
	lutModeLinear
	// lutModeConversion replaces the color conversion step.
	lutModeConversion
	// lutModeDecoding applies to the source image before conversion.
	lutModeDecoding
	// lutModeEncoding applies to the target after conversion.
	lutModeEncoding
)

var lutModeNames = map[string]lutMode{
	"":           lutModeAuto,
	"auto":       lutModeAuto,
	"native":     lutModeNative,
	"linear":     lutModeLinear,
	"conversion": lutModeConversion,
	"decoding":   lutModeDecoding,
	"encoding":   lutModeEncoding,
}
