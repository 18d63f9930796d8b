// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vout

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/vout/engine"
	"github.com/gogpu/vout/gpuctx"
	"github.com/gogpu/vout/video"
)

// Session errors.
var (
	// ErrContextBusy is returned when the GPU context cannot be
	// acquired at open time.
	ErrContextBusy = errors.New("vout: GPU context unavailable")

	// ErrUnknownQuery is returned by Control for queries the session
	// does not understand.
	ErrUnknownQuery = errors.New("vout: unknown control query")
)

// Query is a control request from the host player.
type Query int

// Control queries.
const (
	// QueryDisplaySize signals that the display dimensions in the
	// session's DisplayConfig changed; the swapchain is resized eagerly.
	QueryDisplaySize Query = iota

	// QueryAspectRatio, QueryCrop and QueryZoom signal placement policy
	// changes. They are accepted as no-ops since placement is
	// recomputed every frame.
	QueryAspectRatio
	QueryCrop
	QueryZoom
)

// Clear colors: transparent black for the background outside the
// picture area, opaque red when a frame fails to render so the failure
// is observable instead of showing stale content.
var (
	colorTransparent = [4]float32{0, 0, 0, 0}
	colorError       = [4]float32{1, 0, 0, 1}
)

// SubtitleFormats lists the pixel formats accepted for subtitle
// regions: full-color RGBA and single-plane grayscale masks.
var SubtitleFormats = []video.PixelFormat{video.FormatRGBA, video.FormatGrey}

// Driver is the host-facing video output interface. A host player
// drives one frame per display cycle: Prepare renders without
// presenting, Display presents, Control delivers geometry changes.
type Driver interface {
	Prepare(pic *video.Picture, sub *video.Subpicture, pts time.Duration)
	Display(pic *video.Picture)
	Control(q Query) error
	Close()
}

// Display is a video output session on a GPU context. It owns the
// renderer, the assembled render configuration, and the plane and
// overlay texture caches.
//
// All methods must be called from the host's single display thread.
type Display struct {
	ctx      gpuctx.Context
	renderer engine.Renderer

	format video.Format
	cfg    video.DisplayConfig

	params    engine.RenderParams
	overrides targetOverrides
	assets    assetCache
	lutMode   lutMode

	chromaLoc engine.ChromaLocation

	// Plane texture slots, one per source plane, reused across frames.
	planeTex [engine.MaxPlanes]engine.Tex

	// Overlay slots, grown to the maximum region count seen this
	// session and never shrunk.
	overlays   []engine.Overlay
	overlayTex []engine.Tex
}

// Open creates a display session on ctx for a stream in the given
// format. The pixel format is negotiated: when the engine cannot
// handle it as-is, f.Pixel is rewritten to the closest supported
// fallback (RGBA as the last resort), so the caller learns the
// accepted format from f. cfg describes the display area; the session
// keeps a copy, updated via SetDisplayConfig. opts may be nil for
// defaults.
//
// On failure no partial session is left behind.
func Open(ctx gpuctx.Context, f *video.Format, cfg *video.DisplayConfig, opts *Options) (*Display, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	negotiateFormat(f)

	if !ctx.MakeCurrent() {
		return nil, ErrContextBusy
	}
	renderer, err := ctx.NewRenderer()
	ctx.ReleaseCurrent()
	if err != nil {
		return nil, fmt.Errorf("vout: creating renderer: %w", err)
	}

	d := &Display{
		ctx:       ctx,
		renderer:  renderer,
		format:    *f,
		assets:    assetCache{gpu: ctx.GPU()},
		chromaLoc: video.ChromaLoc(f),
	}
	if cfg != nil {
		d.cfg = *cfg
	}
	d.configure(opts)

	Logger().Info("display session opened",
		"pixel", f.Pixel.String(), "planes", video.PlaneCount(f.Pixel))
	return d, nil
}

// negotiateFormat rewrites f.Pixel to a format the engine can upload:
// the format itself when registered, otherwise the first registered
// entry of its fallback chain, otherwise RGBA. The format is never
// left unset.
func negotiateFormat(f *video.Format) {
	if video.Registered(f.Pixel) {
		return
	}
	for _, fb := range video.Fallbacks(f.Pixel) {
		if video.Registered(fb) {
			Logger().Info("substituting pixel format",
				"requested", f.Pixel.String(), "using", fb.String())
			f.Pixel = fb
			return
		}
	}
	Logger().Warn("unsupported pixel format with no fallback, forcing RGBA",
		"requested", f.Pixel.String())
	f.Pixel = video.FormatRGBA
}

// configure installs an option set: loads assets, assembles the render
// configuration, and resolves the target overrides. Individual feature
// failures degrade to "disabled" and never abort.
func (d *Display) configure(opts *Options) {
	d.assets.loadLUT(opts.LUT.File)
	d.assets.loadHook(opts.Shader.File)

	d.params = buildParams(opts)
	d.overrides = parseTargetOverrides(opts)

	mode, ok := lutModeNames[opts.LUT.Mode]
	if !ok {
		Logger().Warn("unknown LUT mode, using auto", "mode", opts.LUT.Mode)
	}
	d.lutMode = mode

	switch d.lutMode {
	case lutModeNative:
		d.params.LUT, d.params.LUTType = d.assets.lut, engine.LUTNative
	case lutModeLinear:
		d.params.LUT, d.params.LUTType = d.assets.lut, engine.LUTNormalized
	case lutModeConversion:
		d.params.LUT, d.params.LUTType = d.assets.lut, engine.LUTConversion
	case lutModeAuto:
		d.params.LUT, d.params.LUTType = d.assets.lut, engine.LUTUnspecified
		// Decoding and encoding modes attach per-frame to the source or
		// target descriptor instead of the global configuration.
	}

	if d.assets.hook != nil {
		d.params.Hooks = []*engine.Hook{d.assets.hook}
	}
}

// Prepare uploads pic and any subtitle overlays, computes placement,
// and dispatches one render pass, without presenting. The timestamp is
// a pacing hint and is not interpreted by the session.
//
// Failure to acquire the context or a swapchain frame skips the cycle
// silently; per-frame render failures paint the framebuffer in the
// error color and the frame is submitted anyway.
func (d *Display) Prepare(pic *video.Picture, sub *video.Subpicture, pts time.Duration) {
	_ = pts

	if !d.ctx.MakeCurrent() {
		return
	}
	defer d.ctx.ReleaseCurrent()

	sc := d.ctx.Swapchain()
	frame, ok := sc.StartFrame()
	if !ok {
		return
	}

	target := engine.TargetFromSwapFrame(&frame)
	if err := d.renderFrame(pic, sub, &frame, &target); err != nil {
		Logger().Error("frame render failed", "error", err)
		_ = d.ctx.GPU().ClearTex(target.FBO, colorError)
	}
	if err := sc.SubmitFrame(); err != nil {
		Logger().Error("frame submit failed", "error", err)
	}
}

// renderFrame performs the per-frame pipeline: plane upload, placement
// and orientation, overlay upload, background clear, render dispatch.
// Any error aborts to the caller, which paints the error color and
// still submits.
func (d *Display) renderFrame(pic *video.Picture, sub *video.Subpicture, frame *engine.SwapFrame, target *engine.Target) error {
	gpu := d.ctx.GPU()

	var img engine.Frame
	img.Color = video.ColorSpace(&pic.Format)
	img.Repr = video.ColorRepr(&pic.Format)

	x0 := float32(pic.Format.XOffset)
	y0 := float32(pic.Format.YOffset)
	w, h := pic.Format.Visible()
	img.Crop = engine.RectF{X0: x0, Y0: y0, X1: x0 + float32(w), Y1: y0 + float32(h)}
	orientFrame(&img, pic.Format.Orientation)

	data, err := video.PlaneData(pic)
	if err != nil {
		return err
	}
	img.NumPlanes = len(data)
	for i := range data {
		if err := gpu.UploadPlane(&img.Planes[i], &d.planeTex[i], &data[i]); err != nil {
			return fmt.Errorf("uploading plane %d: %w", i, err)
		}
		// Chroma siting applies to the chroma planes only, never the
		// luma or alpha plane, and only when the siting is determinate.
		if i != 0 && i != 3 && d.chromaLoc != engine.ChromaUnknown {
			img.Planes[i].ShiftX, img.Planes[i].ShiftY = engine.ChromaOffset(d.chromaLoc)
		}
	}

	fbW, fbH := frame.FBO.Width(), frame.FBO.Height()
	place := d.placeFrame(&pic.Format, fbW, fbH, frame.Flipped)
	target.Crop = engine.RectF{
		X0: float32(place.X),
		Y0: float32(place.Y),
		X1: float32(place.X + place.Width),
		Y1: float32(place.Y + place.Height),
	}
	d.overrides.apply(target)

	count := 0
	if sub != nil {
		count = d.uploadOverlays(sub, place, frame.Flipped)
	}
	target.Overlays = d.overlays[:count]

	switch d.lutMode {
	case lutModeDecoding:
		img.LUT, img.LUTType = d.assets.lut, engine.LUTConversion
	case lutModeEncoding:
		target.LUT, target.LUTType = d.assets.lut, engine.LUTConversion
	}

	// Clear first unless the picture covers the whole framebuffer, so
	// no stale content bleeds outside the placement.
	full := engine.RectF{X1: float32(fbW), Y1: float32(fbH)}
	if target.Crop.Normalized() != full {
		if err := gpu.ClearTex(target.FBO, colorTransparent); err != nil {
			Logger().Debug("background clear failed", "error", err)
		}
	}

	if err := d.renderer.RenderImage(&img, target, &d.params); err != nil {
		return fmt.Errorf("render dispatch: %w", err)
	}
	return nil
}

// placeFrame computes the on-screen rectangle for the current display
// configuration. When the surface delivers frames upside down, the
// vertical alignment is inverted before placement and the computed
// rectangle's vertical origin and height are inverted after — the two
// compensating inversions map the intent onto the flipped coordinate
// system.
func (d *Display) placeFrame(f *video.Format, fbW, fbH int, flipped bool) video.Place {
	cfg := d.cfg
	cfg.Width, cfg.Height = fbW, fbH
	if flipped {
		switch cfg.AlignV {
		case video.AlignStart:
			cfg.AlignV = video.AlignEnd
		case video.AlignEnd:
			cfg.AlignV = video.AlignStart
		}
	}
	place := video.PlacePicture(f, &cfg)
	if flipped {
		place.Y = fbH - place.Y
		place.Height = -place.Height
	}
	return place
}

// orientFrame maps a picture orientation onto the source descriptor:
// flips swap crop-axis endpoints, rotations tag a rotation amount, and
// the transpose cases combine a 90 degree tag with an axis swap.
func orientFrame(img *engine.Frame, o video.Orientation) {
	switch o {
	case video.OrientHFlipped:
		img.Crop.X0, img.Crop.X1 = img.Crop.X1, img.Crop.X0
	case video.OrientVFlipped:
		img.Crop.Y0, img.Crop.Y1 = img.Crop.Y1, img.Crop.Y0
	case video.OrientRotated90:
		img.Rotation = engine.Rotation90
	case video.OrientRotated180:
		img.Rotation = engine.Rotation180
	case video.OrientRotated270:
		img.Rotation = engine.Rotation270
	case video.OrientTransposed:
		img.Rotation = engine.Rotation90
		img.Crop.Y0, img.Crop.Y1 = img.Crop.Y1, img.Crop.Y0
	case video.OrientAntiTransposed:
		img.Rotation = engine.Rotation90
		img.Crop.X0, img.Crop.X1 = img.Crop.X1, img.Crop.X0
	}
}

// uploadOverlays uploads the subtitle regions into the overlay slots,
// growing the slot arrays to the region count (never shrinking them).
// It returns the number of regions successfully uploaded; a failure
// partway truncates the active set rather than failing the frame.
func (d *Display) uploadOverlays(sub *video.Subpicture, place video.Place, flipped bool) int {
	n := len(sub.Regions)
	for len(d.overlays) < n {
		d.overlays = append(d.overlays, engine.Overlay{})
		d.overlayTex = append(d.overlayTex, nil)
	}

	ysign := 1
	if flipped {
		ysign = -1
	}

	gpu := d.ctx.GPU()
	count := 0
	for i, reg := range sub.Regions {
		data, err := video.PlaneData(reg.Picture)
		if err != nil {
			Logger().Warn("overlay region unusable, truncating",
				"region", i, "error", err)
			break
		}
		if len(data) != 1 {
			Logger().Warn("overlay region not single-plane, truncating",
				"region", i, "planes", len(data))
			break
		}
		ov := &d.overlays[i]
		if err := gpu.UploadPlane(&ov.Plane, &d.overlayTex[i], &data[0]); err != nil {
			Logger().Warn("overlay upload failed, truncating",
				"region", i, "error", err)
			break
		}

		w, h := reg.Picture.Format.Visible()
		ov.Rect = engine.Rect{
			X0: place.X + reg.X,
			Y0: place.Y + reg.Y*ysign,
			X1: place.X + reg.X + w,
			Y1: place.Y + (reg.Y+h)*ysign,
		}
		ov.Mode = engine.OverlayNormal
		if reg.Picture.Format.Pixel == video.FormatGrey {
			ov.Mode = engine.OverlayMonochrome
		}
		// Each overlay carries its own colorimetry, not the picture's.
		ov.Color = video.ColorSpace(&reg.Picture.Format)
		ov.Repr = video.ColorRepr(&reg.Picture.Format)
		count++
	}
	return count
}

// Display presents the frame prepared by the last Prepare. It runs
// regardless of whether that render succeeded, keeping the display
// loop alive.
func (d *Display) Display(pic *video.Picture) {
	_ = pic

	if !d.ctx.MakeCurrent() {
		return
	}
	defer d.ctx.ReleaseCurrent()
	d.ctx.Swapchain().SwapBuffers()
}

// SetDisplayConfig installs a new display configuration. Call between
// frames, then Control with the matching query.
func (d *Display) SetDisplayConfig(cfg video.DisplayConfig) {
	d.cfg = cfg
}

// Control handles a geometry-change notification from the host.
// Display size changes resize the swapchain eagerly, swallowing
// transient failures; aspect/crop/zoom changes are no-ops since
// placement is recomputed every frame. Unknown queries return an
// error.
func (d *Display) Control(q Query) error {
	switch q {
	case QueryDisplaySize:
		if d.ctx.MakeCurrent() {
			w, h := d.ctx.Swapchain().Resize(d.cfg.Width, d.cfg.Height)
			d.ctx.ReleaseCurrent()
			if w != d.cfg.Width || h != d.cfg.Height {
				// The session continues with whatever the swapchain
				// reports.
				Logger().Debug("swapchain resize not honored exactly",
					"requested_w", d.cfg.Width, "requested_h", d.cfg.Height,
					"got_w", w, "got_h", h)
			}
		}
		return nil
	case QueryAspectRatio, QueryCrop, QueryZoom:
		return nil
	default:
		Logger().Error("unknown control query", "query", int(q))
		return fmt.Errorf("%w: %d", ErrUnknownQuery, q)
	}
}

// Reconfigure installs a new option set between frames: assets are
// reloaded (cached by path), the render configuration is reassembled,
// and the target overrides are re-resolved. Individual feature
// failures degrade to "disabled" with a diagnostic. Must not be called
// while a frame is in flight.
func (d *Display) Reconfigure(opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	d.configure(opts)
	return nil
}

// Format returns the negotiated stream format.
func (d *Display) Format() video.Format {
	return d.format
}

// Teardown must run under the context lock, so Close retries the
// non-blocking acquisition long enough to outlast any display cycle
// still in flight before giving up.
const (
	closeAcquireAttempts = 100
	closeAcquireDelay    = time.Millisecond
)

// Close destroys the cached textures and the renderer under the
// context lock. The context itself belongs to the host and is left
// untouched.
func (d *Display) Close() {
	if !d.acquireForClose() {
		Logger().Warn("closing display without GPU context, leaking textures")
		return
	}
	defer d.ctx.ReleaseCurrent()

	gpu := d.ctx.GPU()
	for i := range d.planeTex {
		gpu.DestroyTex(&d.planeTex[i])
	}
	for i := range d.overlayTex {
		gpu.DestroyTex(&d.overlayTex[i])
	}
	if d.renderer != nil {
		d.renderer.Destroy()
		d.renderer = nil
	}
}

func (d *Display) acquireForClose() bool {
	for i := 0; i < closeAcquireAttempts; i++ {
		if d.ctx.MakeCurrent() {
			return true
		}
		time.Sleep(closeAcquireDelay)
	}
	return false
}

var _ Driver = (*Display)(nil)
