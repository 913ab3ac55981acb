// seehuhn.de/go/landmarks - face landmark overlays for video frames
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command landmark-overlay renders face landmark tensors into overlay
// images.
//
// The input is a stream of CBOR encoded tensor frames, as written by
// package [seehuhn.de/go/landmarks/tensor].  One image is written per
// frame; the file format is chosen by the extension of the output pattern
// (.png, .tif, .tiff or .bmp).
//
// Example:
//
//	landmark-overlay -size 640:480 -input 192:192 -in frames.cbor -out overlay%03d.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/landmarks"
	"seehuhn.de/go/landmarks/option"
	"seehuhn.de/go/landmarks/tensor"
	"seehuhn.de/go/landmarks/topology"
)

func main() {
	var opts option.Options
	flag.StringVar(&opts.Mode, "mode", "", "decoding mode, face_landmark or face_mesh")
	flag.StringVar(&opts.OutputSize, "size", "", "output video size, WIDTH:HEIGHT")
	flag.StringVar(&opts.InputSize, "input", "", "input video size, WIDTH:HEIGHT (default: from the first frame)")
	flag.StringVar(&opts.Threshold, "threshold", "", "minimum face presence probability")
	contours := flag.String("contours", "", "comma-separated contour names to draw (default: all)")
	in := flag.String("in", "-", "tensor file, - for standard input")
	out := flag.String("out", "overlay%03d.png", "output file pattern, with a verb for the frame number")
	scale := flag.Int("scale", 1, "integer magnification of the output images")
	smooth := flag.Bool("smooth", false, "interpolate when magnifying")
	verbose := flag.Bool("v", false, "log decoder details")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	landmarks.SetLogger(logger)

	if *scale < 1 {
		log.Fatalf("invalid -scale %d", *scale)
	}
	enc, err := encoderFor(*out)
	if err != nil {
		log.Fatal(err)
	}

	r := io.Reader(os.Stdin)
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}
	frames := tensor.NewReader(r)

	first, err := frames.Read()
	if errors.Is(err, io.EOF) {
		log.Fatal("no frames in input")
	} else if err != nil {
		log.Fatal(err)
	}
	if opts.InputSize == "" && first.InputWidth > 0 {
		opts.InputSize = fmt.Sprintf("%d:%d", first.InputWidth, first.InputHeight)
	}

	cfg, err := opts.Config()
	if err != nil {
		log.Fatal(err)
	}
	if *contours != "" {
		for _, name := range strings.Split(*contours, ",") {
			g, ok := topology.ByName(strings.TrimSpace(name))
			if !ok {
				log.Fatalf("unknown contour %q", name)
			}
			cfg.Groups = append(cfg.Groups, g)
		}
	}
	if err := landmarks.CheckTensorInfo(cfg.Mode, tensorInfo(first)); err != nil {
		log.Fatal(err)
	}
	dec, err := landmarks.NewDecoder(cfg)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("decoding", "mode", cfg.Mode.String(),
		"format", landmarks.OutputFormat(cfg, landmarks.Framerate{}).String())

	// The decoder draws straight into the pixels of frameImg.
	frameImg := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	buf := &landmarks.Buffer{}
	buf.AppendMemory(landmarks.WrapMemory(frameImg.Pix))

	n := 0
	for frame := first; ; n++ {
		if err := dec.Decode(frame.Tensors, buf); err != nil {
			log.Fatalf("frame %d: %v", n, err)
		}
		stats := dec.Stats()
		logger.Debug("frame decoded", "frame", n, "presence", stats.Presence,
			"drawn", stats.Drawn, "segments", stats.Segments, "points", stats.Points)

		img := magnify(frameImg, *scale, *smooth)
		fname := fmt.Sprintf(*out, n)
		if err := writeImage(fname, img, enc); err != nil {
			log.Fatalf("frame %d: %v", n, err)
		}

		frame, err = frames.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			log.Fatalf("frame %d: %v", n+1, err)
		}
	}
	logger.Info("done", "frames", n+1)
}

// tensorInfo describes the tensors of a frame.
func tensorInfo(f *tensor.Frame) []landmarks.TensorInfo {
	infos := make([]landmarks.TensorInfo, len(f.Tensors))
	for i, t := range f.Tensors {
		infos[i] = landmarks.TensorInfo{Type: "float32", Dims: []int{len(t)}}
	}
	return infos
}

func magnify(img *image.RGBA, scale int, smooth bool) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, scale*b.Dx(), scale*b.Dy()))

	var kernel draw.Interpolator = draw.NearestNeighbor
	if smooth {
		kernel = draw.CatmullRom
	}
	kernel.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(pattern string) (encodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(pattern)); ext {
	case ".png":
		return png.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

func writeImage(fname string, img image.Image, enc encodeFunc) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
