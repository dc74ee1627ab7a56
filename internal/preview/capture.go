package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resume-studio/internal/export/raster"
	"resume-studio/internal/resume"
)

// captureScale doubles the capture density so downscaling to page width
// keeps text crisp.
const captureScale = 2.0

// Capturer renders preview HTML in headless Chrome and screenshots the full
// page. It implements the export coordinator's PreviewRenderer.
type Capturer struct {
	// ChromePath overrides browser discovery; empty means let chromedp
	// find an installed Chrome.
	ChromePath string
	// Timeout bounds a single capture, browser startup included.
	Timeout time.Duration
}

// NewCapturer reads the CHROME_PATH override from the environment.
func NewCapturer() *Capturer {
	return &Capturer{
		ChromePath: os.Getenv("CHROME_PATH"),
		Timeout:    60 * time.Second,
	}
}

// Capture renders the document and returns the full-page bitmap. The
// viewport is the unzoomed CSS page size; content longer than one page
// extends the capture below the viewport.
func (cp *Capturer) Capture(ctx context.Context, doc resume.Document, theme resume.ThemeSettings) (image.Image, error) {
	html, err := RenderHTML(doc, theme)
	if err != nil {
		return nil, err
	}

	pageSize := raster.PageSizeFor(theme.PageSize)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if cp.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cp.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := cp.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "preview-")
	if err != nil {
		return nil, fmt.Errorf("preview: temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("preview: write html: %w", err)
	}

	var shot []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(int64(pageSize.WidthPx), int64(pageSize.HeightPx),
			chromedp.EmulateScale(captureScale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			shot, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("preview: capture: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("preview: decode screenshot: %w", err)
	}
	return img, nil
}
