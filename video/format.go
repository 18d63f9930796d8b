// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import "fmt"

// PixelFormat is a fourcc pixel format code.
type PixelFormat uint32

// FourCC builds a PixelFormat from four characters.
func FourCC(a, b, c, d byte) PixelFormat {
	return PixelFormat(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

// String returns the fourcc spelling of the format.
func (f PixelFormat) String() string {
	if f == 0 {
		return "none"
	}
	buf := [4]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
	for _, c := range buf {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08x", uint32(f))
		}
	}
	return string(buf[:])
}

// Planar YUV formats.
var (
	FormatI420 = FourCC('I', '4', '2', '0')
	FormatI422 = FourCC('I', '4', '2', '2')
	FormatI444 = FourCC('I', '4', '4', '4')
	FormatYV12 = FourCC('Y', 'V', '1', '2')
	FormatNV12 = FourCC('N', 'V', '1', '2')
	FormatNV21 = FourCC('N', 'V', '2', '1')

	// 10-bit-in-16 planar 4:2:0 / 4:4:4.
	FormatI420_10L = FourCC('I', '0', 'A', 'L')
	FormatI444_10L = FourCC('I', '4', 'A', 'L')

	// 16-bit planar 4:2:0.
	FormatI420_16L = FourCC('I', '0', 'F', 'L')

	// 10-bit semi-planar with the samples in the high bits.
	FormatP010 = FourCC('P', '0', '1', '0')

	// 4:2:0 with an additional alpha plane.
	FormatYUVA = FourCC('Y', 'U', 'V', 'A')
)

// Packed RGB and grayscale formats.
var (
	FormatRGBA  = FourCC('R', 'G', 'B', 'A')
	FormatBGRA  = FourCC('B', 'G', 'R', 'A')
	FormatRGB24 = FourCC('R', 'V', '2', '4')
	FormatGrey  = FourCC('G', 'R', 'E', 'Y')
)

// planeLayout describes one plane of a pixel format.
type planeLayout struct {
	// wShift and hShift subsample the plane dimensions.
	wShift, hShift int

	// components is the number of interleaved components.
	components int

	// depth is the meaningful bits per component; sampleBits is the
	// storage size per component.
	depth, sampleBits int

	// bitShift is the left shift of the color value in the sample.
	bitShift int

	// channels maps plane components to image channels
	// (0=R/Y, 1=G/Cb, 2=B/Cr, 3=A).
	channels [4]int
}

// formatDesc describes a pixel format in the registry.
type formatDesc struct {
	planes []planeLayout
	yuv    bool
	alpha  bool

	// swapChroma reorders the chroma planes (YV12-style layouts).
	swapChroma bool
}

var formatRegistry = map[PixelFormat]formatDesc{
	FormatI420: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{1, 1, 1, 8, 8, 0, [4]int{1}},
			{1, 1, 1, 8, 8, 0, [4]int{2}},
		},
	},
	FormatYV12: {
		yuv:        true,
		swapChroma: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{1, 1, 1, 8, 8, 0, [4]int{2}},
			{1, 1, 1, 8, 8, 0, [4]int{1}},
		},
	},
	FormatI422: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{1, 0, 1, 8, 8, 0, [4]int{1}},
			{1, 0, 1, 8, 8, 0, [4]int{2}},
		},
	},
	FormatI444: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{0, 0, 1, 8, 8, 0, [4]int{1}},
			{0, 0, 1, 8, 8, 0, [4]int{2}},
		},
	},
	FormatNV12: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{1, 1, 2, 8, 8, 0, [4]int{1, 2}},
		},
	},
	FormatNV21: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{1, 1, 2, 8, 8, 0, [4]int{2, 1}},
		},
	},
	FormatI420_10L: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 10, 16, 0, [4]int{0}},
			{1, 1, 1, 10, 16, 0, [4]int{1}},
			{1, 1, 1, 10, 16, 0, [4]int{2}},
		},
	},
	FormatI444_10L: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 10, 16, 0, [4]int{0}},
			{0, 0, 1, 10, 16, 0, [4]int{1}},
			{0, 0, 1, 10, 16, 0, [4]int{2}},
		},
	},
	FormatI420_16L: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 16, 16, 0, [4]int{0}},
			{1, 1, 1, 16, 16, 0, [4]int{1}},
			{1, 1, 1, 16, 16, 0, [4]int{2}},
		},
	},
	FormatP010: {
		yuv: true,
		planes: []planeLayout{
			{0, 0, 1, 10, 16, 6, [4]int{0}},
			{1, 1, 2, 10, 16, 6, [4]int{1, 2}},
		},
	},
	FormatYUVA: {
		yuv:   true,
		alpha: true,
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
			{1, 1, 1, 8, 8, 0, [4]int{1}},
			{1, 1, 1, 8, 8, 0, [4]int{2}},
			{0, 0, 1, 8, 8, 0, [4]int{3}},
		},
	},
	FormatRGBA: {
		alpha: true,
		planes: []planeLayout{
			{0, 0, 4, 8, 8, 0, [4]int{0, 1, 2, 3}},
		},
	},
	FormatBGRA: {
		alpha: true,
		planes: []planeLayout{
			{0, 0, 4, 8, 8, 0, [4]int{2, 1, 0, 3}},
		},
	},
	FormatRGB24: {
		planes: []planeLayout{
			{0, 0, 3, 8, 8, 0, [4]int{0, 1, 2}},
		},
	},
	FormatGrey: {
		planes: []planeLayout{
			{0, 0, 1, 8, 8, 0, [4]int{0}},
		},
	},
}

// Registered reports whether f has a known plane layout.
func Registered(f PixelFormat) bool {
	_, ok := formatRegistry[f]
	return ok
}

// IsYUV reports whether f is a luma/chroma format.
func IsYUV(f PixelFormat) bool {
	return formatRegistry[f].yuv
}

// HasAlpha reports whether f carries an alpha channel.
func HasAlpha(f PixelFormat) bool {
	return formatRegistry[f].alpha
}

// PlaneCount returns the number of planes of f, or 0 when unknown.
func PlaneCount(f PixelFormat) int {
	return len(formatRegistry[f].planes)
}

// BitDepth returns the meaningful bits per component of the first
// plane, or 0 when the format is unknown.
func BitDepth(f PixelFormat) int {
	desc, ok := formatRegistry[f]
	if !ok {
		return 0
	}
	return desc.planes[0].depth
}

// fallbackChains lists substitution candidates per format, best first.
// Formats absent from the map fall back to nothing.
var fallbackChains = map[PixelFormat][]PixelFormat{
	FormatYV12:     {FormatI420, FormatNV12},
	FormatNV21:     {FormatNV12, FormatI420},
	FormatI420_16L: {FormatI420_10L, FormatP010, FormatI420},
	FormatP010:     {FormatI420_10L, FormatI420},
	FormatI420_10L: {FormatP010, FormatI420},
	FormatI444_10L: {FormatI444, FormatI420},
	FormatYUVA:     {FormatI420, FormatRGBA},
	FormatRGB24:    {FormatRGBA, FormatBGRA},
	FormatBGRA:     {FormatRGBA},
}

// Fallbacks returns the substitution candidates for f, best first.
// The returned slice is shared read-only storage.
func Fallbacks(f PixelFormat) []PixelFormat {
	return fallbackChains[f]
}
