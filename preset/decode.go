package preset

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/wordmark/layout"
)

// DefaultName 是内置参考预设的名称。
const DefaultName = "studio-patraldo"

//go:embed studio.wm
var studioPreset []byte

// Default 解析内置的参考预设。
func Default() (layout.Style, error) {
	file, err := Parse(bytes.NewReader(studioPreset))
	if err != nil {
		return layout.Style{}, fmt.Errorf("解析内置预设失败: %w", err)
	}
	p, err := Lookup(file, DefaultName)
	if err != nil {
		return layout.Style{}, err
	}
	return Decode(p)
}

// Decode 将预设 AST 转换为样式参数。同一设置出现多次时以最后一次为准。
func Decode(p *Preset) (layout.Style, error) {
	if p == nil {
		return layout.Style{}, fmt.Errorf("预设为空")
	}
	style := layout.Style{
		Name:      p.Name,
		TextColor: layout.Color{R: 255, G: 255, B: 255, A: 255},
	}

	var fonts []*FontEntry
	for _, entry := range p.Entries {
		switch entry.Kind() {
		case "canvas":
			w, err := parseInt(entry.Canvas.Width)
			if err != nil {
				return layout.Style{}, fmt.Errorf("%s: 画布宽度: %w", entry.Pos, err)
			}
			h, err := parseInt(entry.Canvas.Height)
			if err != nil {
				return layout.Style{}, fmt.Errorf("%s: 画布高度: %w", entry.Pos, err)
			}
			style.Width, style.Height = w, h
		case "text":
			style.Text = string(*entry.Text)
		case "font-size":
			size, err := strconv.ParseFloat(*entry.FontSize, 64)
			if err != nil {
				return layout.Style{}, fmt.Errorf("%s: 字号: %w", entry.Pos, err)
			}
			style.FontSize = size
		case "fill":
			c, err := decodePaint(entry.Fill)
			if err != nil {
				return layout.Style{}, fmt.Errorf("%s: fill: %w", entry.Pos, err)
			}
			style.TextColor = c
		case "outline":
			style.OutlineColor = nil
			if entry.Outline.Paint != nil {
				c, err := decodePaint(entry.Outline.Paint)
				if err != nil {
					return layout.Style{}, fmt.Errorf("%s: outline: %w", entry.Pos, err)
				}
				style.OutlineColor = &c
			}
			if entry.Outline.Width != nil {
				w, err := parseInt(*entry.Outline.Width)
				if err != nil {
					return layout.Style{}, fmt.Errorf("%s: 描边宽度: %w", entry.Pos, err)
				}
				style.OutlineWidth = w
			}
		case "font":
			fonts = append(fonts, entry.Font)
		default:
			return layout.Style{}, fmt.Errorf("%s: 未知设置", entry.Pos)
		}
	}

	// 字体字号默认跟随 font-size，因此放在最后处理。
	for _, f := range fonts {
		candidate := layout.FontCandidate{
			Src:       string(f.Src),
			Size:      style.FontSize,
			Platforms: f.Platforms,
		}
		if f.Label != nil {
			candidate.Label = string(*f.Label)
		}
		if f.Size != nil {
			size, err := strconv.ParseFloat(*f.Size, 64)
			if err != nil {
				return layout.Style{}, fmt.Errorf("%s: 字体字号: %w", f.Pos, err)
			}
			candidate.Size = size
		}
		style.Fonts = append(style.Fonts, candidate)
	}

	if err := style.Validate(); err != nil {
		return layout.Style{}, fmt.Errorf("预设 %s: %w", p.Name, err)
	}
	return style, nil
}

func decodePaint(p *Paint) (layout.Color, error) {
	rgba := canvas.Hex(p.Color)
	c := layout.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: 255}
	if p.Alpha != nil {
		a, err := parseInt(*p.Alpha)
		if err != nil {
			return layout.Color{}, err
		}
		if a > 255 {
			return layout.Color{}, fmt.Errorf("不透明度超出 0-255: %d", a)
		}
		c.A = uint8(a)
	}
	return c, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("需要整数，得到 %q", s)
	}
	return n, nil
}
