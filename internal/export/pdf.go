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
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"portfolioshowcase/internal/domain"
	"portfolioshowcase/internal/version"
	"portfolioshowcase/internal/view"
)

// PDFOptions controls the brochure layout. Units are points.
type PDFOptions struct {
	// PageWidth and PageHeight default to A4 portrait.
	PageWidth  float64
	PageHeight float64
	Margin     float64
	// SkipDetails leaves out the per-project detail pages.
	SkipDetails bool
}

func (o PDFOptions) withDefaults() PDFOptions {
	if o.PageWidth <= 0 || o.PageHeight <= 0 {
		o.PageWidth, o.PageHeight = 595, 842
	}
	if o.Margin <= 0 {
		o.Margin = 42
	}
	return o
}

var (
	pdfAccent = domain.MustParseHex("#21808D")
	pdfMuted  = domain.MustParseHex("#6B7280")
	pdfBorder = domain.MustParseHex("#D1D5DB")
)

const (
	swatchPt   = 14.0
	bodyLineHt = 13.0
)

// PDF writes the snapshot as a brochure: one overview page listing the
// grid cards, then one page per project detail.
func PDF(w io.Writer, snap Snapshot, opt PDFOptions) error {
	opt = opt.withDefaults()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: opt.PageWidth, Ht: opt.PageHeight},
	})
	// core fonts are cp1252; the translator maps "•", "é" and friends
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Design Portfolio", true)
	pdf.SetAuthor("Portfolio Showcase", true)
	pdf.SetCreator("portfolioshowcase "+version.String(), true)
	pdf.SetMargins(opt.Margin, opt.Margin, opt.Margin)
	pdf.SetAutoPageBreak(true, opt.Margin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-opt.Margin + 12)
		pdf.SetFont("Helvetica", "", 8)
		setTextColor(pdf, pdfMuted)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	contentW := opt.PageWidth - 2*opt.Margin

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 22)
	setTextColor(pdf, pdfAccent)
	pdf.CellFormat(contentW, 28, tr("Design Portfolio"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	setTextColor(pdf, pdfMuted)
	pdf.CellFormat(contentW, 14, tr("Filter: "+snap.Filter+"   Categories: "+strings.Join(snap.Categories, ", ")), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	if len(snap.Cards) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(contentW, 16, tr("No projects in this category."), "", 1, "L", false, 0, "")
	}
	for _, c := range snap.Cards {
		top := pdf.GetY()
		if top+110 > opt.PageHeight-opt.Margin {
			pdf.AddPage()
			top = pdf.GetY()
		}
		drawSwatches(pdf, opt.Margin+8, top+8, c.Colors)
		pdf.SetXY(opt.Margin+8, top+8+swatchPt+6)
		pdf.SetFont("Helvetica", "B", 12)
		setTextColor(pdf, domain.MustParseHex("#111827"))
		pdf.MultiCell(contentW-16, 15, tr(c.Title), "", "L", false)
		pdf.SetX(opt.Margin + 8)
		pdf.SetFont("Helvetica", "", 9)
		setTextColor(pdf, pdfAccent)
		meta := c.Category
		if c.Dimensions != "" {
			meta += "  |  " + c.Dimensions
		}
		pdf.CellFormat(contentW-16, 12, tr(meta), "", 1, "L", false, 0, "")
		pdf.SetX(opt.Margin + 8)
		pdf.SetFont("Helvetica", "", 10)
		setTextColor(pdf, domain.MustParseHex("#374151"))
		pdf.MultiCell(contentW-16, bodyLineHt, tr(c.Description), "", "L", false)
		bottom := pdf.GetY() + 8
		setDrawColor(pdf, pdfBorder)
		pdf.SetLineWidth(0.8)
		pdf.Rect(opt.Margin, top, contentW, bottom-top, "D")
		pdf.SetY(bottom + 10)
	}

	if !opt.SkipDetails {
		for _, d := range snap.Details {
			detailPage(pdf, tr, d, opt, contentW)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func detailPage(pdf *gofpdf.Fpdf, tr func(string) string, d view.DetailView, opt PDFOptions, contentW float64) {
	pdf.AddPage()
	// image placeholder with the caption, as on the showcase modal
	setFillColor(pdf, domain.MustParseHex("#E6F2F3"))
	pdf.Rect(opt.Margin, opt.Margin, contentW, 120, "F")
	pdf.SetXY(opt.Margin, opt.Margin+52)
	pdf.SetFont("Helvetica", "I", 11)
	setTextColor(pdf, pdfAccent)
	pdf.CellFormat(contentW, 16, tr(d.Caption), "", 1, "C", false, 0, "")
	pdf.SetY(opt.Margin + 136)

	pdf.SetFont("Helvetica", "B", 18)
	setTextColor(pdf, domain.MustParseHex("#111827"))
	pdf.MultiCell(contentW, 22, tr(d.Title), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	setTextColor(pdf, pdfAccent)
	pdf.CellFormat(contentW, 14, tr(d.Heading), "", 1, "L", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	setTextColor(pdf, domain.MustParseHex("#374151"))
	pdf.MultiCell(contentW, 15, tr(d.Description), "", "L", false)

	heading := func(s string) {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 11)
		setTextColor(pdf, domain.MustParseHex("#111827"))
		pdf.CellFormat(contentW, 15, tr(s), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		setTextColor(pdf, domain.MustParseHex("#374151"))
	}
	list := func(items []string) {
		for _, it := range items {
			pdf.MultiCell(contentW, bodyLineHt, tr("• "+it), "", "L", false)
		}
	}

	heading("Dimensions")
	pdf.MultiCell(contentW, bodyLineHt, tr(d.Dimensions), "", "L", false)
	heading("Tools Used")
	list(d.Tools)
	heading("Target Audience")
	pdf.MultiCell(contentW, bodyLineHt, tr(d.TargetAudience), "", "L", false)
	heading("Style Keywords")
	pdf.MultiCell(contentW, bodyLineHt, tr(d.StyleKeywords), "", "L", false)
	heading("Key Features")
	list(d.KeyFeatures)
	heading("Color Palette")
	for _, c := range d.Colors {
		y := pdf.GetY()
		drawSwatches(pdf, opt.Margin, y, []string{c})
		pdf.SetXY(opt.Margin+swatchPt+6, y)
		pdf.CellFormat(contentW, swatchPt, c, "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}
}

func drawSwatches(pdf *gofpdf.Fpdf, x, y float64, colors []string) {
	setDrawColor(pdf, pdfBorder)
	pdf.SetLineWidth(0.5)
	for i, c := range colors {
		col, err := domain.ParseHex(c)
		if err != nil {
			continue
		}
		setFillColor(pdf, col)
		pdf.Rect(x+float64(i)*(swatchPt+4), y, swatchPt, swatchPt, "FD")
	}
}

func setDrawColor(pdf *gofpdf.Fpdf, c color.NRGBA) { pdf.SetDrawColor(int(c.R), int(c.G), int(c.B)) }

func setFillColor(pdf *gofpdf.Fpdf, c color.NRGBA) { pdf.SetFillColor(int(c.R), int(c.G), int(c.B)) }

func setTextColor(pdf *gofpdf.Fpdf, c color.NRGBA) { pdf.SetTextColor(int(c.R), int(c.G), int(c.B)) }

// writeFile creates path's directory and streams fn's output into it.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	// write next to the target and rename so a failed export never leaves a partial file
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// PDFFile writes the brochure to path.
func PDFFile(path string, snap Snapshot, opt PDFOptions) error {
	return writeFile(path, func(w io.Writer) error { return PDF(w, snap, opt) })
}
