// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

// ColorPrimaries identifies the color primaries of a signal.
// The zero value means "unknown" and leaves inference to the engine.
type ColorPrimaries int

// Known color primaries.
const (
	PrimariesUnknown ColorPrimaries = iota
	PrimariesBT601_525
	PrimariesBT601_625
	PrimariesBT709
	PrimariesBT2020
	PrimariesDCIP3
	PrimariesDisplayP3
	PrimariesAdobeRGB
	PrimariesProPhoto
)

// ColorTransfer identifies the transfer function of a signal.
// The zero value means "unknown".
type ColorTransfer int

// Known transfer functions.
const (
	TransferUnknown ColorTransfer = iota
	TransferBT1886
	TransferSRGB
	TransferLinear
	TransferGamma22
	TransferGamma28
	TransferPQ
	TransferHLG
)

// ColorLight classifies the light level a transfer function encodes.
// The zero value requests re-inference from the other fields.
type ColorLight int

// Light level classifications.
const (
	LightUnknown ColorLight = iota
	LightDisplay
	LightSceneHLG
	LightScene709_1886
	LightSceneLinear
)

// ColorSpace describes the colorimetry of an image or render target.
// Zero-valued fields are treated as unset.
type ColorSpace struct {
	Primaries ColorPrimaries
	Transfer  ColorTransfer
	Light     ColorLight

	// SigAvg is the average signal level relative to the reference
	// white, used for tone mapping. Zero means unset.
	SigAvg float32

	// SigPeak is the peak signal level relative to the reference white.
	// Zero means unset.
	SigPeak float32
}

// IsHDR reports whether the color space uses an HDR transfer function.
func (c ColorSpace) IsHDR() bool {
	return c.Transfer == TransferPQ || c.Transfer == TransferHLG
}

// ColorSystem identifies the color model / matrix of a representation.
type ColorSystem int

// Known color systems.
const (
	SystemUnknown ColorSystem = iota
	SystemRGB
	SystemBT601
	SystemBT709
	SystemBT2020NC
	SystemBT2020C
	SystemXYZ
)

// IsYCbCr reports whether the system is a luma/chroma encoding.
func (s ColorSystem) IsYCbCr() bool {
	switch s {
	case SystemBT601, SystemBT709, SystemBT2020NC, SystemBT2020C:
		return true
	}
	return false
}

// ColorLevels describes the signal quantization range.
type ColorLevels int

// Quantization ranges.
const (
	LevelsUnknown ColorLevels = iota
	LevelsLimited
	LevelsFull
)

// AlphaMode describes how an alpha channel is encoded.
type AlphaMode int

// Alpha encodings.
const (
	AlphaUnknown AlphaMode = iota
	AlphaIndependent
	AlphaPremultiplied
)

// BitEncoding describes the bit layout of the color samples.
type BitEncoding struct {
	// SampleDepth is the size of a sample in bits.
	SampleDepth int
	// ColorDepth is the number of bits actually carrying color.
	ColorDepth int
	// BitShift is the left shift applied to the color value within the
	// sample (e.g. 6 for P010-style formats).
	BitShift int
}

// ColorRepr describes the numerical representation of an image.
type ColorRepr struct {
	System ColorSystem
	Levels ColorLevels
	Alpha  AlphaMode
	Bits   BitEncoding
}

// ChromaLocation describes the chroma siting convention of a
// subsampled YUV format. The zero value means the siting is unknown
// and no offset should be applied.
type ChromaLocation int

// Chroma siting conventions.
const (
	ChromaUnknown ChromaLocation = iota
	ChromaLeft
	ChromaCenter
	ChromaTopLeft
	ChromaTop
	ChromaBottomLeft
	ChromaBottom
)

// ChromaOffset returns the sub-pixel shift for a chroma plane sited at
// loc, expressed in chroma-pixel units relative to center siting.
func ChromaOffset(loc ChromaLocation) (shiftX, shiftY float32) {
	switch loc {
	case ChromaLeft:
		return -0.5, 0
	case ChromaCenter:
		return 0, 0
	case ChromaTopLeft:
		return -0.5, -0.5
	case ChromaTop:
		return 0, -0.5
	case ChromaBottomLeft:
		return -0.5, 0.5
	case ChromaBottom:
		return 0, 0.5
	}
	return 0, 0
}

// Rotation is a counter-clockwise display rotation in degrees.
type Rotation int

// Supported rotations.
const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// Plane describes one uploaded plane of a frame.
type Plane struct {
	// Texture holds the plane samples.
	Texture Tex

	// Components is the number of components in this plane.
	Components int

	// ComponentMap maps plane components to image channels
	// (0=R/Y, 1=G/Cb, 2=B/Cr, 3=A).
	ComponentMap [4]int

	// ShiftX and ShiftY are sub-pixel sampling offsets, used for
	// chroma siting compensation.
	ShiftX, ShiftY float32
}

// PlaneData describes raw plane pixels to be uploaded.
type PlaneData struct {
	// Width and Height are the plane dimensions in pixels.
	Width, Height int

	// Components is the number of interleaved components per pixel.
	Components int

	// ComponentSize holds the size of each component in bits.
	ComponentSize [4]int

	// BitShift is the left shift of the color value within each
	// sample (P010-style high-bit layouts).
	BitShift int

	// ComponentMap maps components to image channels, as in Plane.
	ComponentMap [4]int

	// PixelStride is the distance between adjacent pixels in bytes.
	PixelStride int

	// RowStride is the distance between adjacent rows in bytes.
	RowStride int

	// Pixels is the raw sample data, at least RowStride*Height bytes.
	Pixels []byte
}

// LUTType describes at which point of the color pipeline a lookup
// table applies.
type LUTType int

// LUT application points.
const (
	// LUTUnspecified lets the engine guess from the LUT itself.
	LUTUnspecified LUTType = iota
	// LUTNative applies the LUT in the image's native colorspace.
	LUTNative
	// LUTNormalized applies the LUT on linearized, normalized RGB.
	LUTNormalized
	// LUTConversion replaces the color conversion step entirely.
	LUTConversion
)

// CustomLUT is a parsed 3D color lookup table.
type CustomLUT struct {
	// Size is the edge length of the 3D table.
	Size int

	// DomainMin and DomainMax bound the input domain.
	DomainMin, DomainMax [3]float32

	// Table holds Size^3 RGB triplets in R-fastest order.
	Table []float32
}

// Hook is a compiled custom shader stage injected into the render
// pipeline.
type Hook struct {
	// Name is a diagnostic label, usually derived from the source.
	Name string

	// Source is the original shader text.
	Source []byte

	// SPIRV is the compiled shader module.
	SPIRV []uint32
}

// OverlayMode selects how an overlay is composited.
type OverlayMode int

// Overlay composition modes.
const (
	// OverlayNormal blends the overlay over the frame.
	OverlayNormal OverlayMode = iota
	// OverlayMonochrome treats the overlay plane as an alpha mask.
	OverlayMonochrome
)

// Overlay is one subtitle or graphic region composited onto the
// target.
type Overlay struct {
	// Plane holds the single uploaded plane of the overlay.
	Plane Plane

	// Rect is the target rectangle in framebuffer coordinates. A
	// negative extent flips the overlay along that axis.
	Rect Rect

	Mode  OverlayMode
	Color ColorSpace
	Repr  ColorRepr
}

// Frame is the source image descriptor for one render dispatch.
type Frame struct {
	// NumPlanes is the number of valid entries in Planes.
	NumPlanes int
	Planes    [MaxPlanes]Plane

	Color ColorSpace
	Repr  ColorRepr

	// Crop selects the visible source region. Swapped endpoints flip
	// the image along that axis.
	Crop RectF

	// Rotation is applied after cropping.
	Rotation Rotation

	// LUT optionally applies before color conversion.
	LUT     *CustomLUT
	LUTType LUTType
}

// Target is the render target descriptor for one render dispatch.
type Target struct {
	// FBO is the framebuffer to render into.
	FBO Tex

	// Crop is the destination rectangle. A negative extent flips the
	// output along that axis.
	Crop RectF

	Color ColorSpace
	Repr  ColorRepr

	// Overlays are composited over the rendered frame.
	Overlays []Overlay

	// LUT optionally applies after color conversion.
	LUT     *CustomLUT
	LUTType LUTType
}
