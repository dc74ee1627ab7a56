// Package export coordinates PDF generation for an editing session. It
// serializes exports (one at a time per coordinator), dispatches to the
// text backend for ATS mode or the capture-and-slice pipeline for visual
// mode, and owns the download filename convention.
package export

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"resume-studio/internal/export/raster"
	"resume-studio/internal/export/textpdf"
	"resume-studio/internal/resume"
	"resume-studio/internal/shared/metrics"
)

// Mode selects the export backend.
type Mode string

const (
	// ModeATS renders real text in a fixed reading order.
	ModeATS Mode = "ats"
	// ModeVisual rasterizes the on-screen preview and slices it into pages.
	ModeVisual Mode = "visual"
)

// ParseMode validates a wire-level mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeATS, ModeVisual:
		return Mode(s), nil
	case "":
		return ModeATS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// PreviewRenderer captures the visual preview of a document as a bitmap at
// double density. Implemented by the preview package's Chrome capturer.
type PreviewRenderer interface {
	Capture(ctx context.Context, doc resume.Document, theme resume.ThemeSettings) (image.Image, error)
}

// Artifact is a finished export ready for download.
type Artifact struct {
	FileName string
	PDF      []byte
	// Pages is the page count for visual exports; zero for ATS exports,
	// where pagination is left to the text layout engine.
	Pages int
}

// Coordinator runs exports one at a time. A second request while one is
// running fails fast with ErrInProgress instead of queueing.
type Coordinator struct {
	Preview PreviewRenderer

	busy atomic.Bool
}

// Export produces the PDF for the given mode. A cancelled context aborts
// the pipeline between stages and returns the context error; the busy flag
// clears on every path.
func (x *Coordinator) Export(ctx context.Context, mode Mode, doc resume.Document, theme resume.ThemeSettings) (Artifact, error) {
	if !x.busy.CompareAndSwap(false, true) {
		return Artifact{}, ErrInProgress
	}
	defer x.busy.Store(false)

	metrics.IncExportStarted()
	start := time.Now()
	art, err := x.run(ctx, mode, doc, theme)
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncExportFailed()
		return Artifact{}, err
	}
	metrics.IncExportCompleted()
	return art, nil
}

func (x *Coordinator) run(ctx context.Context, mode Mode, doc resume.Document, theme resume.ThemeSettings) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	switch mode {
	case ModeATS:
		pdf, err := textpdf.Render(doc, theme)
		if err != nil {
			return Artifact{}, fmt.Errorf("ats export: %w", err)
		}
		return Artifact{FileName: FileName(doc.Name, mode), PDF: pdf}, nil

	case ModeVisual:
		if x.Preview == nil {
			return Artifact{}, fmt.Errorf("visual export: no preview renderer configured")
		}
		src, err := x.Preview.Capture(ctx, doc, theme)
		if err != nil {
			return Artifact{}, fmt.Errorf("visual export: capture: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
		res, err := raster.Paginate(ctx, src, raster.PageSizeFor(theme.PageSize))
		if err != nil {
			return Artifact{}, fmt.Errorf("visual export: paginate: %w", err)
		}
		return Artifact{FileName: FileName(doc.Name, mode), PDF: res.PDF, Pages: res.Pages}, nil

	default:
		return Artifact{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
