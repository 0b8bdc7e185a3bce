package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ByLCY/wordmark/layout"
	"github.com/ByLCY/wordmark/preset"
	"github.com/ByLCY/wordmark/renderer"
	canvasrenderer "github.com/ByLCY/wordmark/renderer/canvas"
)

const outputPath = "watermark_text_only.png"

func main() {
	style, err := preset.Default()
	if err != nil {
		log.Fatalf("加载参考预设失败: %v", err)
	}

	var r renderer.Renderer = canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Logger: log.New(os.Stdout, "", 0),
	})
	if err := run(style, outputPath, r); err != nil {
		log.Fatalf("生成水印失败: %v", err)
	}

	fmt.Printf("Watermark generated: %s\n", outputPath)
	fmt.Printf("Text opacity: %d/255 (edit the fill alpha in preset/studio.wm to change)\n", style.TextColor.A)
	fmt.Println("Tip: Try values between 80 (very subtle) and 180 (more visible)")
}

// run 串联渲染与保存。
func run(style layout.Style, outputPath string, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	img, err := r.Render(style)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if err := renderer.Save(img, outputPath); err != nil {
		return err
	}
	return nil
}
