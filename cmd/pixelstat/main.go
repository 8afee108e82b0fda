// Command pixelstat prints color statistics of an image using fastpixel.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/fastpixel"
	"github.com/gogpu/fastpixel/imageutil"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func main() {
	var (
		fallback = flag.Bool("fallback", false, "force the generic backend")
		verbose  = flag.Bool("v", false, "log backend selection")
		gray     = flag.String("gray", "", "write an average-grayscale PNG to this file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: pixelstat [-fallback] [-v] [-gray out.png] image")
	}
	if *verbose {
		fastpixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	var opts []fastpixel.Option
	if *fallback {
		opts = append(opts, fastpixel.WithFallback())
	}
	if err := report(os.Stdout, img, opts...); err != nil {
		log.Fatalf("Failed to analyze: %v", err)
	}

	if *gray != "" {
		if err := writeGray(*gray, img); err != nil {
			log.Fatalf("Failed to write grayscale: %v", err)
		}
		log.Printf("Grayscale saved to %s\n", *gray)
	}
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	return img, err
}

// report writes size, backend and color statistics of img to w.
func report(w io.Writer, img image.Image, opts ...fastpixel.Option) error {
	px := fastpixel.New(img, opts...)
	fmt.Fprintf(w, "size:     %dx%d\n", px.Width(), px.Height())
	fmt.Fprintf(w, "backend:  %v\n", px.Kind())
	fmt.Fprintf(w, "alpha:    %v\n", px.HasAlpha())

	lum := px.Luma1D()
	if len(lum) == 0 {
		return nil
	}
	sum := 0
	for _, l := range lum {
		sum += l
	}
	fmt.Fprintf(w, "luma:     %.2f\n", float64(sum)/float64(len(lum)))
	fmt.Fprintf(w, "dominant: %s\n", hex(imageutil.DominantColor(img)))
	fmt.Fprintf(w, "mean:     %s\n", hex(imageutil.MeanColor(img)))

	avg, err := imageutil.InterpolateColor(img)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "average:  %s\n", hex(avg))
	return nil
}

// grayscale returns a copy of img with every pixel set to its average gray.
func grayscale(img image.Image) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)

	px := fastpixel.New(dst)
	if err := px.SetAverageGrayscaleGrid(px.AverageGrayscaleGrid()); err != nil {
		return nil, err
	}
	return dst, nil
}

func writeGray(path string, img image.Image) error {
	dst, err := grayscale(img)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
