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

// Command genpdf generates vector reference drawings of the test case
// overlays.  It creates PDFs from the test cases, with contours drawn as
// stroked paths and landmarks as filled squares, and renders them to PNGs
// using Ghostscript.
//
// Contours are drawn in gray and landmarks in white, on a black
// background.  Frames with a presence probability below the default
// threshold are left black.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/landmarks"
	"seehuhn.de/go/landmarks/testcases"
	"seehuhn.de/go/landmarks/topology"
)

const refDir = "testdata/reference"

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	cfg, err := landmarks.NewConfig(tc.Width, tc.Height, tc.InputWidth, tc.InputHeight)
	if err != nil {
		return err
	}
	mode, ok := landmarks.ModeByName(tc.Mode)
	if !ok {
		return fmt.Errorf("unknown mode %q", tc.Mode)
	}
	cfg.SetMode(mode)

	m := landmarks.NewMapper(cfg)

	// Page size in points (1 point = 1 pixel at 72 DPI)
	bounds := m.Bounds()
	paper := &pdf.Rectangle{
		URx: bounds.URx,
		URy: bounds.URy,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, bounds.URx, bounds.URy)
	page.Fill()

	if len(tc.Presence) == 1 && landmarks.Presence(tc.Presence[0]) < cfg.Threshold {
		return page.Close()
	}

	// PDF origin is bottom-left; frames have the origin at the top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, bounds.URy})

	// Pixel (x, y) covers the unit square with corner (x, y); lines join
	// pixel centres.
	centres := make([][2]float64, testcases.NumLandmarks)
	for i := range centres {
		p := m.Map(tc.Position(i))
		centres[i] = [2]float64{float64(p.X) + 0.5, float64(p.Y) + 0.5}
	}

	if _, ok := mode.(landmarks.FaceLandmark); ok {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(float64(2*cfg.LineHalfWidth + 1))
		page.SetLineCap(graphics.LineCapSquare)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.SetMiterLimit(10)

		for _, g := range topology.FaceLandmark {
			indices := g.Indices
			if g.Closed() {
				indices = indices[:len(indices)-1]
			}
			for i, idx := range indices {
				c := centres[idx]
				if i == 0 {
					page.MoveTo(c[0], c[1])
				} else {
					page.LineTo(c[0], c[1])
				}
			}
			if g.Closed() {
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	page.SetFillColor(color.DeviceGray(1))
	r := float64(cfg.PointRadius)
	for _, c := range centres {
		page.Rectangle(c[0]-0.5-r, c[1]-0.5-r, 2*r+1, 2*r+1)
	}
	page.Fill()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, to match the overlay pixels
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
