// Package raster slices a single tall preview bitmap into discrete,
// physically-sized PDF pages.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/jung-kurt/gofpdf"
	xdraw "golang.org/x/image/draw"
)

// PageSize describes a physical page in PDF points and the CSS pixel size a
// preview surface renders it at (zoom 1).
type PageSize struct {
	Name     string
	WidthPt  float64
	HeightPt float64
	WidthPx  int
	HeightPx int
}

var (
	Letter = PageSize{Name: "Letter", WidthPt: 612, HeightPt: 792, WidthPx: 816, HeightPx: 1056}
	A4     = PageSize{Name: "A4", WidthPt: 595.28, HeightPt: 841.89, WidthPx: 794, HeightPx: 1123}
)

// PageSizeFor maps a theme page-size value to its geometry. Unknown values
// fall back to Letter.
func PageSizeFor(themePageSize string) PageSize {
	if themePageSize == "a4" {
		return A4
	}
	return Letter
}

// Slice is one horizontal band of the source bitmap, in source pixels.
type Slice struct {
	Y      int
	Height int
}

// PlanSlices computes the bands for a source of srcHeight pixels with
// sliceHeight pixels per page. The last band may be shorter; bands of
// height <= 0 (a rounding edge at the final boundary) are skipped.
func PlanSlices(srcHeight, sliceHeight int) []Slice {
	if srcHeight <= 0 || sliceHeight <= 0 {
		return nil
	}
	total := int(math.Ceil(float64(srcHeight) / float64(sliceHeight)))
	slices := make([]Slice, 0, total)
	for p := 0; p < total; p++ {
		y := p * sliceHeight
		h := sliceHeight
		if remaining := srcHeight - y; remaining < h {
			h = remaining
		}
		if h <= 0 {
			continue
		}
		slices = append(slices, Slice{Y: y, Height: h})
	}
	return slices
}

// SliceHeightPx returns the number of source pixels that map onto exactly
// one physical page, plus the pt-per-px scale factor, for a bitmap of the
// given pixel width.
func SliceHeightPx(page PageSize, bitmapWidthPx int) (int, float64) {
	if bitmapWidthPx <= 0 {
		return 0, 0
	}
	scale := page.WidthPt / float64(bitmapWidthPx)
	return int(math.Round(page.HeightPt / scale)), scale
}

// Result is a finished multi-page PDF.
type Result struct {
	PDF   []byte
	Pages int
}

// Paginate splits src into physical pages and assembles the PDF. Each band
// is copied into a fresh same-width canvas, PNG-encoded, and placed scaled
// to exactly fill the physical page width; the last page's image may be
// shorter than a full page. Content straddling a band boundary is cut.
// ctx is checked around each page's encode so a cancelled export stops
// promptly.
func Paginate(ctx context.Context, src image.Image, page PageSize) (Result, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return Result{}, fmt.Errorf("raster: empty source bitmap %dx%d", width, height)
	}

	sliceHeight, scale := SliceHeightPx(page, width)
	slices := PlanSlices(height, sliceHeight)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.WidthPt, Ht: page.HeightPt},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, band := range slices {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		canvas := image.NewRGBA(image.Rect(0, 0, width, band.Height))
		rect := image.Rect(bounds.Min.X, bounds.Min.Y+band.Y, bounds.Min.X+width, bounds.Min.Y+band.Y+band.Height)
		xdraw.Copy(canvas, image.Point{}, src, rect, xdraw.Src, nil)

		var buf bytes.Buffer
		if err := png.Encode(&buf, canvas); err != nil {
			return Result{}, fmt.Errorf("raster: encode page %d: %w", i+1, err)
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		name := fmt.Sprintf("page-%d", i+1)
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, page.WidthPt, float64(band.Height)*scale, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return Result{}, fmt.Errorf("raster: assemble pdf: %w", err)
	}
	return Result{PDF: out.Bytes(), Pages: len(slices)}, nil
}
