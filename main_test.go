package main

import (
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/wordmark/layout"
	"github.com/ByLCY/wordmark/preset"
	canvasrenderer "github.com/ByLCY/wordmark/renderer/canvas"
)

type failingRenderer struct{}

func (failingRenderer) Render(layout.Style) (*image.NRGBA, error) {
	return nil, os.ErrInvalid
}

func TestRunWritesReferenceSizedPNG(t *testing.T) {
	style, err := preset.Default()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	// 机器上未必装有 Arial/DejaVu，固定使用内置粗体。
	style.Fonts = []layout.FontCandidate{{Src: "built-in:gobold", Size: style.FontSize}}

	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Logger:   log.New(io.Discard, "", 0),
		FontDirs: []string{},
	})
	out := filepath.Join(t.TempDir(), "watermark_text_only.png")
	if err := run(style, out, r); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 400 {
		t.Fatalf("expected 1920x400, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	style := layout.Style{Width: 10, Height: 10}
	if err := run(style, filepath.Join(t.TempDir(), "x.png"), nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := run(style, filepath.Join(t.TempDir(), "x.png"), failingRenderer{}); err == nil {
		t.Fatalf("expected render error to propagate")
	}

	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Logger:   log.New(io.Discard, "", 0),
		FontDirs: []string{},
	})
	bad := filepath.Join(t.TempDir(), "no-such-dir", "x.png")
	if err := run(style, bad, r); err == nil {
		t.Fatalf("expected error for unwritable output path")
	}
}
