/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"portfolioshowcase/internal/domain"
	"portfolioshowcase/internal/view"
)

// PNGOptions controls the contact sheet geometry in pixels.
type PNGOptions struct {
	Columns    int
	CardWidth  int
	CardHeight int
	Gap        int
}

func (o PNGOptions) withDefaults() PNGOptions {
	if o.Columns <= 0 {
		o.Columns = 2
	}
	if o.CardWidth <= 0 {
		o.CardWidth = 340
	}
	if o.CardHeight <= 0 {
		o.CardHeight = 200
	}
	if o.Gap <= 0 {
		o.Gap = 16
	}
	return o
}

var (
	sheetBackground = color.RGBA{R: 0xFC, G: 0xFC, B: 0xF9, A: 0xFF}
	cardBackground  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	cardBorder      = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 0xFF}
	inkStrong       = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}
	inkAccent       = color.RGBA{R: 0x21, G: 0x80, B: 0x8D, A: 0xFF}
	inkBody         = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF}
)

const (
	sheetHeader = 40
	lineHeight  = 15 // basicfont.Face7x13 plus leading
	glyphWidth  = 7
)

// ContactSheet renders the snapshot's cards as a grid image.
func ContactSheet(snap Snapshot, opt PNGOptions) *image.RGBA {
	opt = opt.withDefaults()
	cols := min(opt.Columns, max(len(snap.Cards), 1))
	rows := (len(snap.Cards) + cols - 1) / cols
	w := opt.Gap + cols*(opt.CardWidth+opt.Gap)
	h := sheetHeader + opt.Gap + max(rows, 1)*(opt.CardHeight+opt.Gap)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: sheetBackground}, image.Point{}, draw.Src)
	drawText(img, opt.Gap, 24, "Design Portfolio - "+snap.Filter, inkAccent)

	if len(snap.Cards) == 0 {
		drawText(img, opt.Gap, sheetHeader+opt.Gap+lineHeight, "No projects in this category.", inkBody)
	}
	for i, c := range snap.Cards {
		x := opt.Gap + (i%cols)*(opt.CardWidth+opt.Gap)
		y := sheetHeader + opt.Gap + (i/cols)*(opt.CardHeight+opt.Gap)
		drawCard(img, image.Rect(x, y, x+opt.CardWidth, y+opt.CardHeight), c)
	}
	return img
}

func drawCard(img *image.RGBA, r image.Rectangle, c view.CardView) {
	fillRect(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1, cardBackground)
	strokeRect(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1, cardBorder)

	// color band across the top, one segment per palette entry
	band := 28
	if n := len(c.Colors); n > 0 {
		segW := (r.Dx() - 2) / n
		for i, hex := range c.Colors {
			col, err := domain.ParseHex(hex)
			if err != nil {
				continue
			}
			x0 := r.Min.X + 1 + i*segW
			x1 := x0 + segW - 1
			if i == n-1 {
				x1 = r.Max.X - 2
			}
			fillRect(img, x0, r.Min.Y+1, x1, r.Min.Y+band, color.RGBAModel.Convert(col).(color.RGBA))
		}
	}

	pad := 10
	maxChars := (r.Dx() - 2*pad) / glyphWidth
	y := r.Min.Y + band + pad + 10
	for _, line := range wrapText(c.Title, maxChars, 2) {
		drawText(img, r.Min.X+pad, y, line, inkStrong)
		y += lineHeight
	}
	drawText(img, r.Min.X+pad, y, clip(c.Category, maxChars), inkAccent)
	y += lineHeight + 4
	remaining := (r.Max.Y - pad - y) / lineHeight
	for _, line := range wrapText(c.Description, maxChars, max(remaining, 0)) {
		drawText(img, r.Min.X+pad, y, line, inkBody)
		y += lineHeight
	}
}

func drawText(img *image.RGBA, x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// wrapText breaks s into at most maxLines lines of width chars on spaces.
func wrapText(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	cur := ""
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= width:
			cur += " " + word
		default:
			lines = append(lines, clip(cur, width))
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, clip(cur, width))
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) > width-3 {
			last = last[:max(width-3, 0)]
		}
		lines[maxLines-1] = string(last) + "..."
	}
	return lines
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	draw.Draw(img, image.Rect(x0, y0, x1+1, y1+1), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// PNG encodes the contact sheet.
func PNG(w io.Writer, snap Snapshot, opt PNGOptions) error {
	if err := png.Encode(w, ContactSheet(snap, opt)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGFile writes the contact sheet to path.
func PNGFile(path string, snap Snapshot, opt PNGOptions) error {
	return writeFile(path, func(w io.Writer) error { return PNG(w, snap, opt) })
}
