// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swrender

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/vout/engine"
)

// Renderer errors.
var (
	// ErrNoPlanes is returned when a frame carries no planes.
	ErrNoPlanes = errors.New("swrender: frame has no planes")

	// ErrEmptyCrop is returned when a crop rectangle has no area.
	ErrEmptyCrop = errors.New("swrender: empty crop rectangle")
)

// Renderer is the software implementation of engine.Renderer.
type Renderer struct {
	eng *Engine
}

// NewRenderer creates a renderer on the engine.
func NewRenderer(eng *Engine) *Renderer {
	return &Renderer{eng: eng}
}

// Destroy releases renderer resources. The software renderer holds
// none beyond the engine reference.
func (r *Renderer) Destroy() {}

// RenderImage composites img onto target.
//
// Scaling runs with a kernel bucketed from the configured filter;
// debanding, sigmoid, dithering, peak detection and hooks are accepted
// but not executed by the software compositor.
func (r *Renderer) RenderImage(img *engine.Frame, target *engine.Target, params *engine.RenderParams) error {
	if img.NumPlanes <= 0 {
		return ErrNoPlanes
	}
	fbo, ok := target.FBO.(*texture)
	if !ok {
		return ErrBadTexture
	}
	if params == nil {
		params = &engine.DefaultRenderParams
	}

	src, err := decodeFrame(img)
	if err != nil {
		return err
	}
	src = rotateRGBA(src, img.Rotation)

	dst := target.Crop
	flipX := dst.X1 < dst.X0
	flipY := dst.Y1 < dst.Y0
	nd := dst.Normalized().Round()
	if nd.W() <= 0 || nd.H() <= 0 {
		return ErrEmptyCrop
	}

	scaled := image.NewRGBA(image.Rect(0, 0, nd.W(), nd.H()))
	interp := scaleInterpolator(params, src.Bounds().Dx()*src.Bounds().Dy(), nd.W()*nd.H())
	interp.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	if flipX {
		flipHorizontal(scaled)
	}
	if flipY {
		flipVertical(scaled)
	}

	if target.LUT != nil && target.LUTType == engine.LUTConversion {
		applyLUTRGBA(scaled, target.LUT)
	}

	canvas := textureRGBA(fbo)
	xdraw.Draw(canvas, image.Rect(nd.X0, nd.Y0, nd.X1, nd.Y1), scaled, image.Point{}, xdraw.Src)

	for i := range target.Overlays {
		if err := r.compositeOverlay(canvas, &target.Overlays[i], params); err != nil {
			return fmt.Errorf("swrender: overlay %d: %w", i, err)
		}
	}

	rgbaToTexture(canvas, fbo)
	return nil
}

// compositeOverlay blends one overlay region into the canvas.
func (r *Renderer) compositeOverlay(canvas *image.RGBA, ov *engine.Overlay, params *engine.RenderParams) error {
	src, err := overlayRGBA(ov)
	if err != nil {
		return err
	}

	rect := ov.Rect
	flipX := rect.X1 < rect.X0
	flipY := rect.Y1 < rect.Y0
	nr := rect.Normalized()
	if nr.W() <= 0 || nr.H() <= 0 {
		return nil // degenerate region, nothing to draw
	}

	if src.Bounds().Dx() != nr.W() || src.Bounds().Dy() != nr.H() {
		resized := image.NewRGBA(image.Rect(0, 0, nr.W(), nr.H()))
		var interp xdraw.Interpolator = xdraw.ApproxBiLinear
		if params.DisableOverlaySampling {
			interp = xdraw.NearestNeighbor
		}
		interp.Scale(resized, resized.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		src = resized
	}
	if flipX {
		flipHorizontal(src)
	}
	if flipY {
		flipVertical(src)
	}

	xdraw.Draw(canvas, image.Rect(nr.X0, nr.Y0, nr.X1, nr.Y1), src, image.Point{}, xdraw.Over)
	return nil
}

// decodeFrame merges the frame planes into an RGBA image covering the
// source crop, applying chroma siting offsets and color conversion.
func decodeFrame(img *engine.Frame) (*image.RGBA, error) {
	luma, ok := img.Planes[0].Texture.(*texture)
	if !ok {
		return nil, ErrBadTexture
	}
	iw, ih := luma.w, luma.h

	crop := img.Crop
	if crop == (engine.RectF{}) {
		crop = engine.RectF{X1: float32(iw), Y1: float32(ih)}
	}
	flipX := crop.X1 < crop.X0
	flipY := crop.Y1 < crop.Y0
	nc := crop.Normalized().Round()
	w, h := nc.W(), nc.H()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCrop
	}

	ycc := img.Repr.System.IsYCbCr()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := nc.Y0 + y
		if flipY {
			sy = nc.Y1 - 1 - y
		}
		for x := 0; x < w; x++ {
			sx := nc.X0 + x
			if flipX {
				sx = nc.X1 - 1 - x
			}

			// Channel defaults: opaque, chroma centered for YCbCr.
			ch := [4]float32{0, 0, 0, 1}
			if ycc {
				ch[1], ch[2] = 0.5, 0.5
			}
			var seen [4]bool
			for p := 0; p < img.NumPlanes; p++ {
				plane := &img.Planes[p]
				pt, ok := plane.Texture.(*texture)
				if !ok {
					return nil, ErrBadTexture
				}
				px := int((float32(sx)+0.5)*float32(pt.w)/float32(iw) - plane.ShiftX)
				py := int((float32(sy)+0.5)*float32(pt.h)/float32(ih) - plane.ShiftY)
				for c := 0; c < plane.Components; c++ {
					channel := plane.ComponentMap[c]
					ch[channel] = pt.sample(px, py, c)
					seen[channel] = true
				}
			}

			rr, gg, bb, aa := convertPixel(ch, seen, img)
			base := out.PixOffset(x, y)
			out.Pix[base+0] = clamp8(rr)
			out.Pix[base+1] = clamp8(gg)
			out.Pix[base+2] = clamp8(bb)
			out.Pix[base+3] = clamp8(aa)
		}
	}
	return out, nil
}

// Limited-range scale factors in depth-normalized units.
const (
	lumaBlack  = 16.0 / 255.0
	lumaRange  = 219.0 / 255.0
	chromaSpan = 224.0 / 255.0
)

// convertPixel turns gathered channel values into linear-light-agnostic
// RGBA, honoring the representation and any conversion LUT.
func convertPixel(ch [4]float32, seen [4]bool, img *engine.Frame) (r, g, b, a float32) {
	if img.LUT != nil && img.LUTType == engine.LUTConversion {
		// The LUT replaces the color conversion step entirely.
		r, g, b = lookupLUT(img.LUT, ch[0], ch[1], ch[2])
		return r, g, b, ch[3]
	}
	if img.LUT != nil && img.LUTType == engine.LUTNative {
		ch[0], ch[1], ch[2] = lookupLUT(img.LUT, ch[0], ch[1], ch[2])
	}

	repr := &img.Repr
	if repr.System.IsYCbCr() {
		yv, cb, cr := ch[0], ch[1]-0.5, ch[2]-0.5
		if repr.Levels != engine.LevelsFull {
			yv = (yv - lumaBlack) / lumaRange
			cb /= chromaSpan
			cr /= chromaSpan
		}
		kr, kb := matrixCoefficients(repr.System)
		kg := 1 - kr - kb
		r = yv + 2*(1-kr)*cr
		b = yv + 2*(1-kb)*cb
		g = (yv - kr*r - kb*b) / kg
	} else {
		r, g, b = ch[0], ch[1], ch[2]
		if seen[0] && !seen[1] && !seen[2] {
			// Single-channel (grayscale) source.
			g, b = r, r
		}
		if repr.Levels == engine.LevelsLimited {
			r = (r - lumaBlack) / lumaRange
			g = (g - lumaBlack) / lumaRange
			b = (b - lumaBlack) / lumaRange
		}
	}
	a = ch[3]

	if img.LUT != nil && img.LUTType == engine.LUTNormalized {
		r, g, b = lookupLUT(img.LUT, r, g, b)
	}
	return r, g, b, a
}

// matrixCoefficients returns the (Kr, Kb) luma coefficients of a
// YCbCr system.
func matrixCoefficients(s engine.ColorSystem) (kr, kb float32) {
	switch s {
	case engine.SystemBT601:
		return 0.299, 0.114
	case engine.SystemBT2020NC, engine.SystemBT2020C:
		return 0.2627, 0.0593
	default: // BT.709 and anything unclassified
		return 0.2126, 0.0722
	}
}

// overlayRGBA expands an overlay plane into an RGBA image.
func overlayRGBA(ov *engine.Overlay) (*image.RGBA, error) {
	pt, ok := ov.Plane.Texture.(*texture)
	if !ok {
		return nil, ErrBadTexture
	}

	out := image.NewRGBA(image.Rect(0, 0, pt.w, pt.h))
	mono := ov.Mode == engine.OverlayMonochrome
	for y := 0; y < pt.h; y++ {
		for x := 0; x < pt.w; x++ {
			ch := [4]float32{0, 0, 0, 1}
			var seen [4]bool
			for c := 0; c < ov.Plane.Components; c++ {
				channel := ov.Plane.ComponentMap[c]
				ch[channel] = pt.sample(x, y, c)
				seen[channel] = true
			}
			if mono {
				// The single plane acts as an alpha mask.
				ch = [4]float32{1, 1, 1, ch[0]}
			} else if seen[0] && !seen[1] && !seen[2] {
				ch[1], ch[2] = ch[0], ch[0]
			}

			// draw.Over expects premultiplied alpha.
			base := out.PixOffset(x, y)
			out.Pix[base+0] = clamp8(ch[0] * ch[3])
			out.Pix[base+1] = clamp8(ch[1] * ch[3])
			out.Pix[base+2] = clamp8(ch[2] * ch[3])
			out.Pix[base+3] = clamp8(ch[3])
		}
	}
	return out, nil
}

// scaleInterpolator buckets the configured filter into one of the
// x/image/draw kernels, picking the upscaler or downscaler by the
// scaling direction.
func scaleInterpolator(params *engine.RenderParams, srcArea, dstArea int) xdraw.Interpolator {
	cfg := params.Upscaler
	if dstArea < srcArea {
		cfg = params.Downscaler
	}
	if cfg == nil {
		return xdraw.CatmullRom // engine default
	}
	switch cfg.Kernel {
	case engine.FilterBox:
		return xdraw.NearestNeighbor
	case engine.FilterTriangle, engine.FilterGaussian:
		return xdraw.ApproxBiLinear
	default:
		return xdraw.CatmullRom
	}
}

// applyLUTRGBA runs a 3D LUT over an RGBA image in place.
func applyLUTRGBA(img *image.RGBA, lut *engine.CustomLUT) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			base := img.PixOffset(x, y)
			r := float32(img.Pix[base+0]) / 255
			g := float32(img.Pix[base+1]) / 255
			bl := float32(img.Pix[base+2]) / 255
			r, g, bl = lookupLUT(lut, r, g, bl)
			img.Pix[base+0] = clamp8(r)
			img.Pix[base+1] = clamp8(g)
			img.Pix[base+2] = clamp8(bl)
		}
	}
}

// textureRGBA converts an RGBA texture to an image for compositing.
func textureRGBA(t *texture) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.w, t.h))
	for i := 0; i < t.w*t.h; i++ {
		img.Pix[i*4+0] = clamp8(t.samples[i*4+0])
		img.Pix[i*4+1] = clamp8(t.samples[i*4+1])
		img.Pix[i*4+2] = clamp8(t.samples[i*4+2])
		img.Pix[i*4+3] = clamp8(t.samples[i*4+3])
	}
	return img
}

// rgbaToTexture writes an image back into an RGBA texture.
func rgbaToTexture(img *image.RGBA, t *texture) {
	for i := 0; i < t.w*t.h; i++ {
		t.samples[i*4+0] = float32(img.Pix[i*4+0]) / 255
		t.samples[i*4+1] = float32(img.Pix[i*4+1]) / 255
		t.samples[i*4+2] = float32(img.Pix[i*4+2]) / 255
		t.samples[i*4+3] = float32(img.Pix[i*4+3]) / 255
	}
}

// flipVertical mirrors an image along the horizontal axis in place.
func flipVertical(img *image.RGBA) {
	b := img.Bounds()
	row := make([]byte, b.Dx()*4)
	for y := 0; y < b.Dy()/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+len(row)]
		bot := img.Pix[(b.Dy()-1-y)*img.Stride : (b.Dy()-1-y)*img.Stride+len(row)]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// flipHorizontal mirrors an image along the vertical axis in place.
func flipHorizontal(img *image.RGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx()/2; x++ {
			l := img.PixOffset(x, y)
			r := img.PixOffset(b.Dx()-1-x, y)
			for c := 0; c < 4; c++ {
				img.Pix[l+c], img.Pix[r+c] = img.Pix[r+c], img.Pix[l+c]
			}
		}
	}
}

// rotateRGBA rotates an image counter-clockwise by the given amount.
func rotateRGBA(img *image.RGBA, rot engine.Rotation) *image.RGBA {
	switch rot {
	case engine.Rotation90, engine.Rotation270:
		b := img.Bounds()
		out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				var dx, dy int
				if rot == engine.Rotation90 {
					dx, dy = y, b.Dx()-1-x
				} else {
					dx, dy = b.Dy()-1-y, x
				}
				copy(out.Pix[out.PixOffset(dx, dy):out.PixOffset(dx, dy)+4],
					img.Pix[img.PixOffset(x, y):img.PixOffset(x, y)+4])
			}
		}
		return out
	case engine.Rotation180:
		flipVertical(img)
		flipHorizontal(img)
		return img
	default:
		return img
	}
}

var _ engine.Renderer = (*Renderer)(nil)
