// Command voutdemo renders a synthetic test clip through the vout
// display pipeline and writes the presented frames as numbered PNGs.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/vout"
	"github.com/gogpu/vout/engine"
	"github.com/gogpu/vout/engine/swrender"
	"github.com/gogpu/vout/gpuctx"
	"github.com/gogpu/vout/video"
)

func main() {
	var (
		width    = flag.Int("width", 640, "display width")
		height   = flag.Int("height", 360, "display height")
		frames   = flag.Int("frames", 25, "number of frames to render")
		outdir   = flag.String("outdir", "frames", "output directory")
		optsFile = flag.String("options", "", "TOML options file")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		vout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := vout.DefaultOptions()
	if *optsFile != "" {
		var err error
		if opts, err = vout.LoadOptions(*optsFile); err != nil {
			log.Fatalf("Failed to load options: %v", err)
		}
	}

	eng := swrender.New()
	sc := swrender.NewSwapchain(eng, swrender.SwapchainOptions{
		Width:  *width,
		Height: *height,
	})
	ctx := gpuctx.NewLocal(eng, sc, func() (engine.Renderer, error) {
		return swrender.NewRenderer(eng), nil
	})

	format := video.Format{
		Pixel:  video.FormatI420,
		Width:  320,
		Height: 180,
	}
	cfg := video.DisplayConfig{Width: *width, Height: *height, Fill: true}

	d, err := vout.Open(ctx, &format, &cfg, opts)
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}
	defer d.Close()

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	pic, err := video.NewPicture(format)
	if err != nil {
		log.Fatalf("Failed to allocate picture: %v", err)
	}
	sub := makeSubtitle(format.Width)

	for i := 0; i < *frames; i++ {
		drawTestPattern(pic, i)

		pts := time.Duration(i) * time.Second / 25
		d.Prepare(pic, sub, pts)
		d.Display(pic)

		if err := savePNG(sc, filepath.Join(*outdir, fmt.Sprintf("frame-%03d.png", i))); err != nil {
			log.Fatalf("Failed to save frame %d: %v", i, err)
		}

		// Grow the display halfway through to exercise the resize path.
		if i == *frames/2 {
			cfg.Width, cfg.Height = *width+64, *height+64
			d.SetDisplayConfig(cfg)
			if err := d.Control(vout.QueryDisplaySize); err != nil {
				log.Fatalf("Resize failed: %v", err)
			}
		}
	}

	log.Printf("Wrote %d frames to %s\n", *frames, *outdir)
}

// drawTestPattern fills pic with vertical color bars over a scrolling
// luma gradient, animated by the frame counter.
func drawTestPattern(pic *video.Picture, frame int) {
	w, h := pic.Format.Width, pic.Format.Height

	y := pic.Planes[0]
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := (col*255/w + frame*4) % 256
			y.Pixels[row*y.Pitch+col] = byte(v)
		}
	}

	// Eight chroma bars cycling through the Cb/Cr plane corners.
	cb, cr := pic.Planes[1], pic.Planes[2]
	cw, ch := (w+1)/2, (h+1)/2
	for row := 0; row < ch; row++ {
		for col := 0; col < cw; col++ {
			bar := (col * 8 / cw) % 8
			cb.Pixels[row*cb.Pitch+col] = byte(bar * 255 / 7)
			cr.Pixels[row*cr.Pitch+col] = byte(255 - bar*255/7)
		}
	}
}

// makeSubtitle builds a single-region subpicture: a translucent banner
// along the bottom of the picture.
func makeSubtitle(picWidth int) *video.Subpicture {
	banner, err := video.NewPicture(video.Format{
		Pixel:  video.FormatRGBA,
		Width:  picWidth,
		Height: 24,
	})
	if err != nil {
		log.Fatalf("Failed to allocate subtitle: %v", err)
	}

	p := banner.Planes[0]
	for row := 0; row < p.Lines; row++ {
		for col := 0; col < picWidth; col++ {
			o := row*p.Pitch + col*4
			if col > 8 && col < picWidth-8 && row > 4 && row < 20 {
				p.Pixels[o+0] = 0xff
				p.Pixels[o+1] = 0xff
				p.Pixels[o+2] = 0xff
				p.Pixels[o+3] = 0xc0
			} else {
				p.Pixels[o+3] = 0x60
			}
		}
	}
	return &video.Subpicture{
		Regions: []*video.Region{{Picture: banner, Y: 150}},
	}
}

// savePNG writes the swapchain's presented frame to path.
func savePNG(sc *swrender.Swapchain, path string) error {
	front := sc.Frontbuffer()
	if front == nil {
		return fmt.Errorf("no frame presented")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, front)
}
