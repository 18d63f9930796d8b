// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"github.com/gogpu/vout/engine"
)

// buildParams assembles the render configuration from an option set.
// Every optional feature ends up explicitly enabled (sub-parameter
// pointer set) or disabled (nil). A sub-feature that fails to build
// degrades to disabled with a warning; assembly itself never fails.
func buildParams(opts *Options) engine.RenderParams {
	params := engine.DefaultRenderParams

	if opts.Deband.Enable && (opts.Deband.Iterations > 0 || opts.Deband.Grain > 0) {
		params.Deband = &engine.DebandParams{
			Iterations: opts.Deband.Iterations,
			Threshold:  opts.Deband.Threshold,
			Radius:     opts.Deband.Radius,
			Grain:      opts.Deband.Grain,
		}
	}

	if opts.Sigmoid.Enable {
		params.Sigmoid = &engine.SigmoidParams{
			Center: opts.Sigmoid.Center,
			Slope:  opts.Sigmoid.Slope,
		}
	}

	params.ColorMap = &engine.ColorMapParams{
		Intent:               intentNames[opts.ColorMap.Intent],
		ToneMappingAlgo:      toneMappingNames[opts.ColorMap.ToneMapping],
		ToneMappingParam:     opts.ColorMap.ToneMappingParam,
		DesaturationStrength: opts.ColorMap.DesatStrength,
		DesaturationExponent: opts.ColorMap.DesatExponent,
		DesaturationBase:     opts.ColorMap.DesatBase,
		MaxBoost:             opts.ColorMap.MaxBoost,
		GamutClipping:        opts.ColorMap.GamutClipping,
		GamutWarning:         opts.ColorMap.GamutWarning,
	}

	if method, ok := ditherMethodNames[opts.Dither.Method]; ok {
		params.Dither = &engine.DitherParams{
			Method:   method,
			LUTSize:  opts.Dither.LUTSize,
			Temporal: opts.Dither.Temporal,
		}
	} else if opts.Dither.Method != "" && opts.Dither.Method != "none" {
		Logger().Warn("unknown dither method, dithering disabled",
			"method", opts.Dither.Method)
	}

	if opts.PeakDetect.Period > 0 {
		params.PeakDetect = &engine.PeakDetectParams{
			SmoothingPeriod:    opts.PeakDetect.Period,
			SceneThresholdLow:  opts.PeakDetect.SceneThresholdLow,
			SceneThresholdHigh: opts.PeakDetect.SceneThresholdHigh,
		}
		params.AllowDelayedPeakDetect = opts.PeakDetect.AllowDelayed
	}

	params.Upscaler = scalerFilter(&opts.Upscaler, "upscaler")
	params.Downscaler = scalerFilter(&opts.Downscaler, "downscaler")

	if opts.LUTEntries > 0 {
		params.LUTEntries = opts.LUTEntries
	}
	params.AntiringingStrength = opts.Antiringing
	params.SkipAntiAliasing = opts.SkipAntiAliasing
	if opts.PolarCutoff > 0 {
		params.PolarCutoff = opts.PolarCutoff
	}
	params.DisableOverlaySampling = opts.OverlayDirect
	params.DisableLinearScaling = opts.DisableLinear
	params.DisableBuiltinScalers = opts.ForceGeneral

	return params
}

// scalerFilter resolves one scaler option group to a filter
// configuration, nil meaning "engine default". An invalid custom
// kernel falls back to the default with a diagnostic rather than
// failing the session.
func scalerFilter(o *ScalerOptions, which string) *engine.FilterConfig {
	preset, ok := scalerPresetNames[o.Preset]
	if !ok && o.Preset != "" {
		Logger().Warn("unknown scaler preset, using engine default",
			"scaler", which, "preset", o.Preset)
		return nil
	}

	if preset != engine.ScaleCustom {
		cfg, _ := engine.PresetFilter(preset)
		return cfg
	}

	kernel, ok := filterNames[o.Kernel]
	if !ok || kernel == engine.FilterNone {
		Logger().Warn("invalid custom scaler kernel, using engine default",
			"scaler", which, "kernel", o.Kernel)
		return nil
	}
	return &engine.FilterConfig{
		Kernel: kernel,
		Window: filterNames[o.Window],
		Clamp:  o.Clamp,
		Blur:   o.Blur,
		Taper:  o.Taper,
		Polar:  o.Polar,
	}
}

// targetOverrides holds the pre-parsed target colorimetry overrides of
// an option set, applied to every frame's render target.
type targetOverrides struct {
	primaries engine.ColorPrimaries
	transfer  engine.ColorTransfer
	sigAvg    float32

	// ditherDepth overrides the target bit depth; 0 keeps the
	// framebuffer depth.
	ditherDepth int
}

// parseTargetOverrides resolves the override selectors once at open
// time. Unknown names leave the field unset and log a warning.
func parseTargetOverrides(opts *Options) targetOverrides {
	var ov targetOverrides

	if opts.Target.Primaries != "" {
		p, ok := primariesNames[opts.Target.Primaries]
		if !ok {
			Logger().Warn("unknown target primaries, ignoring",
				"primaries", opts.Target.Primaries)
		}
		ov.primaries = p
	}
	if opts.Target.Transfer != "" {
		t, ok := transferNames[opts.Target.Transfer]
		if !ok {
			Logger().Warn("unknown target transfer, ignoring",
				"transfer", opts.Target.Transfer)
		}
		ov.transfer = t
	}
	ov.sigAvg = opts.Target.SigAvg
	ov.ditherDepth = opts.Dither.Depth
	return ov
}

// apply rewrites the target descriptor with the overrides. Only
// explicitly set fields are touched; everything else keeps the value
// inferred from the swapchain surface.
func (ov *targetOverrides) apply(target *engine.Target) {
	if ov.primaries != engine.PrimariesUnknown {
		target.Color.Primaries = ov.primaries
	}
	if ov.transfer != engine.TransferUnknown {
		target.Color.Transfer = ov.transfer
		// The light classification depends on the transfer function;
		// reset it so the engine re-infers it.
		target.Color.Light = engine.LightUnknown
	}
	if ov.sigAvg > 0 {
		target.Color.SigAvg = ov.sigAvg
	}

	if ov.ditherDepth > 0 && target.Repr.Bits.SampleDepth > 0 {
		// Preserve the color-depth-to-sample-depth ratio at the new
		// sample depth.
		bits := &target.Repr.Bits
		bits.ColorDepth = bits.ColorDepth * ov.ditherDepth / bits.SampleDepth
		bits.SampleDepth = ov.ditherDepth
	}
}
