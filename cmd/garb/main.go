// Copyright 2025 Imazen, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// garb converts raw pixel buffers (and PNG/BMP images) between channel
// layouts, for poking at pipeline byte-order bugs from the shell.
//
// Raw input may give its dimensions, which are then checked against the
// input length; without them the whole input is converted:
//
//	garb -op rgb_to_bgra -width 1920 -height 1080 -in frame.rgb -out frame.bgra
//
// PNG and BMP inputs are decoded to RGBA first, so -op must take 4 bpp
// input and the dimensions come from the image:
//
//	garb -op rgba_to_bgr -in shot.png -out shot.bgr
//
// Output is always raw bytes in the destination layout.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/imazen/garb"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

type op struct {
	srcBpp int
	dstBpp int
	run    func(src, dst []byte) error
}

var ops = map[string]op{
	"rgba_to_bgra":       {4, 4, garb.RGBAToBGRA},
	"bgra_to_rgba":       {4, 4, garb.BGRAToRGBA},
	"rgb_to_bgr":         {3, 3, garb.RGBToBGR},
	"bgr_to_rgb":         {3, 3, garb.BGRToRGB},
	"rgb_to_rgba":        {3, 4, garb.RGBToRGBA},
	"rgb_to_bgra":        {3, 4, garb.RGBToBGRA},
	"bgr_to_rgba":        {3, 4, garb.BGRToRGBA},
	"bgr_to_bgra":        {3, 4, garb.BGRToBGRA},
	"rgba_to_rgb":        {4, 3, garb.RGBAToRGB},
	"rgba_to_bgr":        {4, 3, garb.RGBAToBGR},
	"bgra_to_rgb":        {4, 3, garb.BGRAToRGB},
	"bgra_to_bgr":        {4, 3, garb.BGRAToBGR},
	"gray_to_rgba":       {1, 4, garb.GrayToRGBA},
	"gray_alpha_to_rgba": {2, 4, garb.GrayAlphaToRGBA},
	"fill_alpha": {4, 4, func(src, dst []byte) error {
		copy(dst, src)
		return garb.FillAlphaRGBA(dst)
	}},
}

func opNames() string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	var (
		opName = flag.String("op", "", "conversion to apply; one of: "+opNames())
		inPath = flag.String("in", "", "input file (default stdin)")
		out    = flag.String("out", "", "output file (default stdout)")
		width  = flag.Int("width", 0, "raw input width in pixels")
		height = flag.Int("height", 0, "raw input height in pixels")
	)
	flag.Parse()

	if err := run(*opName, *inPath, *out, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "garb:", err)
		os.Exit(1)
	}
}

func run(opName, inPath, outPath string, width, height int) error {
	o, ok := ops[opName]
	if !ok {
		return errors.Errorf("unknown -op %q; valid ops: %s", opName, opNames())
	}

	src, err := readInput(inPath, &o, &width, &height)
	if err != nil {
		return err
	}
	if width > 0 && height > 0 && len(src) != width*height*o.srcBpp {
		return errors.Errorf("input is %d bytes, want %d for %dx%d at %d bpp",
			len(src), width*height*o.srcBpp, width, height, o.srcBpp)
	}
	if len(src)%o.srcBpp != 0 {
		return errors.Errorf("input length %d is not a multiple of %d", len(src), o.srcBpp)
	}

	dst := make([]byte, len(src)/o.srcBpp*o.dstBpp)
	if err := o.run(src, dst); err != nil {
		return err
	}
	return writeOutput(outPath, dst)
}

// readInput returns the source bytes in the op's input layout.  PNG and
// BMP files are decoded and flattened to RGBA.
func readInput(path string, o *op, width, height *int) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		var img image.Image
		if strings.EqualFold(filepath.Ext(path), ".bmp") {
			img, err = bmp.Decode(f)
		} else {
			img, err = png.Decode(f)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		if o.srcBpp != 4 {
			return nil, errors.Errorf("image input decodes to RGBA; -op wants %d bpp input", o.srcBpp)
		}
		b := img.Bounds()
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		*width, *height = b.Dx(), b.Dy()
		return rgba.Pix, nil
	case "":
		if path == "" {
			data, err := io.ReadAll(os.Stdin)
			return data, errors.Wrap(err, "read stdin")
		}
		fallthrough
	default:
		data, err := os.ReadFile(path)
		return data, errors.Wrapf(err, "read %s", path)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}
