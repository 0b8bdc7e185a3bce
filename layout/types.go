package layout

import (
	"fmt"
	"slices"
)

// 该文件定义水印样式与度量结果，供预设解析、渲染与测试共用。

// DefaultFontSize 在候选字体列表为空时作为内置字体的像素字号。
const DefaultFontSize = 10.0

// Color 采用 0-255 的 RGBA 数值，A 为非预乘的不透明度。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// FontCandidate 描述一个字体来源。Src 可以是文件路径、system:<族名> 或 built-in:<名称>。
type FontCandidate struct {
	Src       string   `json:"src"`
	Size      float64  `json:"size"`  // 像素字号
	Label     string   `json:"label"` // 选中时输出的可读名称
	Platforms []string `json:"platforms,omitempty"`
}

// AppliesTo 判断候选字体是否适用于给定的 GOOS；Platforms 为空表示全部平台。
func (c FontCandidate) AppliesTo(goos string) bool {
	return len(c.Platforms) == 0 || slices.Contains(c.Platforms, goos)
}

// Name returns the label reported when the candidate wins, falling back to Src.
func (c FontCandidate) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Src
}

// Style 保存单次生成所需的全部参数，生成过程中不会被修改。
type Style struct {
	Name         string          `json:"name,omitempty"`
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	Text         string          `json:"text"`
	FontSize     float64         `json:"fontSize"`
	Fonts        []FontCandidate `json:"fonts"`
	TextColor    Color           `json:"textColor"`
	OutlineColor *Color          `json:"outlineColor,omitempty"` // 为空表示不描边
	OutlineWidth int             `json:"outlineWidth"`
}

// HasOutline reports whether the outline pass runs at all.
func (s Style) HasOutline() bool {
	return s.OutlineColor != nil && s.OutlineWidth > 0
}

// Validate 检查画布尺寸与描边宽度。
func (s Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("画布尺寸必须为正数: %dx%d", s.Width, s.Height)
	}
	if s.OutlineWidth < 0 {
		return fmt.Errorf("描边宽度不能为负数: %d", s.OutlineWidth)
	}
	return nil
}

// Box 是文本墨迹的紧致包围盒（像素，y 轴向下），原点为绘制起点。
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

func (b Box) Width() int  { return b.Right - b.Left }
func (b Box) Height() int { return b.Bottom - b.Top }

// Point 为画布上的绘制起点，允许为负（文本超出画布时被裁剪）。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
