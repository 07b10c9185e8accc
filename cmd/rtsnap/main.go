//go:build !tinygo

// Command rtsnap renders the scene headlessly and saves the frame as PNG or
// WebP.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"duoray/app"
	"duoray/hal"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

func main() {
	var (
		outPath     = flag.String("out", "", "Output file (.png or .webp).")
		scale       = flag.Int("scale", 1, "Integer upscale factor (nearest neighbour).")
		progressive = flag.Bool("progressive", false, "Present while rendering (affects only the log).")
		overlay     = flag.Bool("overlay", false, "Stamp render time on the frame.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: rtsnap -out frame.png|frame.webp [-scale 2] [-overlay]")
	}
	if *scale < 1 || *scale > 16 {
		fatalf("scale out of range: %d", *scale)
	}

	cfg := app.DefaultConfig()
	cfg.Progressive = *progressive
	cfg.Overlay = *overlay

	h, err := hal.RunHeadlessHAL(context.Background(), hal.NewWithLogger(os.Stderr), func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}, hal.HeadlessConfig{Enabled: true, Hz: 1000})
	if err != nil {
		fatalf("render: %v", err)
	}

	img := scaleImage(frameImage(h.Display().Framebuffer()), *scale)
	if err := writeImage(*outPath, img); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
	fmt.Fprintf(os.Stderr, "rtsnap: wrote %s (%dx%d)\n", *outPath, img.Bounds().Dx(), img.Bounds().Dy())
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// frameImage converts a framebuffer to RGBA.
func frameImage(fb hal.Framebuffer) *image.RGBA {
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*stride + x*2
			if off+1 >= len(buf) {
				continue
			}
			r, g, b := hal.RGB888(fb.Format(), buf, off)
			j := img.PixOffset(x, y)
			img.Pix[j+0] = r
			img.Pix[j+1] = g
			img.Pix[j+2] = b
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}

func scaleImage(src *image.RGBA, n int) *image.RGBA {
	if n <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImage(f, filepath.Ext(path), img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeImage(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want .png or .webp)", ext)
	}
}
