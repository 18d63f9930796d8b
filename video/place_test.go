// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package video

import "testing"

func TestPlacePictureFill(t *testing.T) {
	tests := []struct {
		name string
		fmt  Format
		cfg  DisplayConfig
		want Place
	}{
		{
			"same aspect fills exactly",
			Format{Pixel: FormatI420, Width: 1280, Height: 720},
			DisplayConfig{Width: 1280, Height: 720, Fill: true},
			Place{0, 0, 1280, 720},
		},
		{
			"wide display pillarboxes centered",
			Format{Pixel: FormatI420, Width: 720, Height: 720},
			DisplayConfig{Width: 1440, Height: 720, Fill: true},
			Place{360, 0, 720, 720},
		},
		{
			"tall display letterboxes centered",
			Format{Pixel: FormatI420, Width: 1280, Height: 720},
			DisplayConfig{Width: 1280, Height: 1440, Fill: true},
			Place{0, 360, 1280, 720},
		},
		{
			"sample aspect ratio widens the picture",
			Format{Pixel: FormatI420, Width: 720, Height: 720, SARNum: 2, SARDen: 1},
			DisplayConfig{Width: 1440, Height: 720, Fill: true},
			Place{0, 0, 1440, 720},
		},
		{
			"top left alignment",
			Format{Pixel: FormatI420, Width: 720, Height: 720},
			DisplayConfig{Width: 1440, Height: 1440, Fill: true,
				AlignH: AlignStart, AlignV: AlignStart},
			Place{0, 0, 1440, 1440},
		},
		{
			"bottom right alignment",
			Format{Pixel: FormatI420, Width: 640, Height: 360},
			DisplayConfig{Width: 1280, Height: 1440, Fill: true, AlignV: AlignEnd},
			Place{0, 720, 1280, 720},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlacePicture(&tt.fmt, &tt.cfg)
			if got != tt.want {
				t.Errorf("PlacePicture() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlacePictureZoom(t *testing.T) {
	f := Format{Pixel: FormatI420, Width: 640, Height: 360}
	cfg := DisplayConfig{Width: 1920, Height: 1080, ZoomNum: 2, ZoomDen: 1}
	got := PlacePicture(&f, &cfg)
	want := Place{320, 180, 1280, 720}
	if got != want {
		t.Errorf("zoomed place = %+v, want %+v", got, want)
	}

	// Zero zoom means 1:1.
	cfg.ZoomNum, cfg.ZoomDen = 0, 0
	got = PlacePicture(&f, &cfg)
	want = Place{640, 360, 640, 360}
	if got != want {
		t.Errorf("unit place = %+v, want %+v", got, want)
	}
}

func TestPlacePictureDegenerate(t *testing.T) {
	f := Format{Pixel: FormatI420}
	cfg := DisplayConfig{Width: 1280, Height: 720, Fill: true}
	if got := PlacePicture(&f, &cfg); got != (Place{}) {
		t.Errorf("degenerate source placed at %+v, want zero", got)
	}
}

func TestVisibleAndSARDefaults(t *testing.T) {
	f := Format{Pixel: FormatI420, Width: 1920, Height: 1080}
	w, h := f.Visible()
	if w != 1920 || h != 1080 {
		t.Errorf("Visible() = %dx%d, want coded size", w, h)
	}

	f.VisibleWidth, f.VisibleHeight = 1918, 1078
	w, h = f.Visible()
	if w != 1918 || h != 1078 {
		t.Errorf("Visible() = %dx%d, want explicit size", w, h)
	}

	n, d := f.SAR()
	if n != 1 || d != 1 {
		t.Errorf("SAR() = %d:%d, want 1:1", n, d)
	}
}
