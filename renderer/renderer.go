package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ByLCY/wordmark/layout"
)

// Renderer 将水印样式绘制到一块全新的透明画布上。
type Renderer interface {
	Render(style layout.Style) (*image.NRGBA, error)
}

// NewCanvas 分配 width×height 的画布，所有像素为 (0,0,0,0)。
func NewCanvas(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Save writes the canvas to path as PNG, keeping the alpha channel.
func Save(canvas *image.NRGBA, path string) error {
	if canvas == nil {
		return fmt.Errorf("画布为空")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件 %s 失败: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, canvas); err != nil {
		f.Close()
		return fmt.Errorf("编码 PNG 失败: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return f.Close()
}
