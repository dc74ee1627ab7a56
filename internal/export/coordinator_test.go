package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"resume-studio/internal/resume"
)

type stubPreview struct {
	started chan struct{}
	release chan struct{}
	err     error
}

func (s *stubPreview) Capture(ctx context.Context, doc resume.Document, theme resume.ThemeSettings) (image.Image, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 816, 1056))
	for y := 0; y < 1056; y++ {
		for x := 0; x < 816; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img, nil
}

func testDoc() resume.Document {
	doc := resume.NewDocument()
	doc.Name = "Test Person"
	return doc
}

func TestExportATS(t *testing.T) {
	var coord Coordinator
	art, err := coord.Export(context.Background(), ModeATS, testDoc(), resume.DefaultTheme())
	if err != nil {
		t.Fatalf("ats export: %v", err)
	}
	if art.FileName != "Test_Person_ATS.pdf" {
		t.Fatalf("filename = %q", art.FileName)
	}
	if !bytes.HasPrefix(art.PDF, []byte("%PDF")) {
		t.Fatal("ats export did not produce a pdf")
	}
}

func TestExportVisual(t *testing.T) {
	coord := Coordinator{Preview: &stubPreview{}}
	art, err := coord.Export(context.Background(), ModeVisual, testDoc(), resume.DefaultTheme())
	if err != nil {
		t.Fatalf("visual export: %v", err)
	}
	if art.FileName != "Test_Person_Visual.pdf" {
		t.Fatalf("filename = %q", art.FileName)
	}
	if art.Pages != 1 {
		t.Fatalf("pages = %d, want 1", art.Pages)
	}
	if !bytes.HasPrefix(art.PDF, []byte("%PDF")) {
		t.Fatal("visual export did not produce a pdf")
	}
}

func TestExportRejectsConcurrent(t *testing.T) {
	stub := &stubPreview{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	coord := Coordinator{Preview: stub}

	done := make(chan error, 1)
	go func() {
		_, err := coord.Export(context.Background(), ModeVisual, testDoc(), resume.DefaultTheme())
		done <- err
	}()

	<-stub.started
	if _, err := coord.Export(context.Background(), ModeATS, testDoc(), resume.DefaultTheme()); !errors.Is(err, ErrInProgress) {
		t.Fatalf("second export: got %v, want ErrInProgress", err)
	}

	close(stub.release)
	if err := <-done; err != nil {
		t.Fatalf("first export: %v", err)
	}

	// The guard clears once the first export finishes.
	if _, err := coord.Export(context.Background(), ModeATS, testDoc(), resume.DefaultTheme()); err != nil {
		t.Fatalf("export after completion: %v", err)
	}
}

func TestExportCancelled(t *testing.T) {
	stub := &stubPreview{release: make(chan struct{})}
	coord := Coordinator{Preview: stub}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := coord.Export(ctx, ModeVisual, testDoc(), resume.DefaultTheme())
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("cancelled export: got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled export did not return")
	}
}

func TestExportCaptureFailure(t *testing.T) {
	coord := Coordinator{Preview: &stubPreview{err: errors.New("chrome crashed")}}
	if _, err := coord.Export(context.Background(), ModeVisual, testDoc(), resume.DefaultTheme()); err == nil {
		t.Fatal("expected capture failure to surface")
	}
	// The flag must clear after a failure.
	if _, err := coord.Export(context.Background(), ModeATS, testDoc(), resume.DefaultTheme()); err != nil {
		t.Fatalf("export after failure: %v", err)
	}
}

func TestExportUnknownMode(t *testing.T) {
	var coord Coordinator
	if _, err := coord.Export(context.Background(), Mode("png"), testDoc(), resume.DefaultTheme()); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("got %v, want ErrUnknownMode", err)
	}
}
