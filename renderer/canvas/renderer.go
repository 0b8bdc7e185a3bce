package canvasrenderer

import (
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/wordmark/fonts"
	"github.com/ByLCY/wordmark/layout"
	"github.com/ByLCY/wordmark/renderer"
)

// DefaultLabel 是所有候选字体都失败时报告的名称。
const DefaultLabel = "Default Font"

// Renderer draws watermark text via github.com/tdewolff/canvas.
type Renderer struct {
	baseDir  string
	goos     string
	fontDirs []string
	logger   *log.Logger

	// injected resources
	fontBlobs map[string][]byte // by unique name

	fontMu         sync.Mutex
	fontFamilies   map[string]*canvas.FontFamily
	fallbackFamily *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	BaseDir  string              // 相对字体路径优先在此目录查找，默认当前目录
	GOOS     string              // 用于筛选候选字体的平台，默认 runtime.GOOS
	FontDirs []string            // 系统字体目录；nil 表示按平台取默认值
	Logger   *log.Logger         // 输出所选字体，默认写到 stdout
	Fonts    map[string]Resource // built-in fonts accessible via built-in:<name>
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// Font 是字体解析的结果：固定像素字号的字体面及其来源说明。
type Font struct {
	Label  string
	Source string
	Size   float64

	face *canvas.FontFace
}

// NewRenderer creates a renderer with platform defaults.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected resources and overrides.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		baseDir:      opts.BaseDir,
		goos:         opts.GOOS,
		fontDirs:     opts.FontDirs,
		logger:       opts.Logger,
		fontBlobs:    map[string][]byte{},
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	if r.goos == "" {
		r.goos = runtime.GOOS
	}
	if r.fontDirs == nil {
		r.fontDirs = systemFontDirs(r.goos)
	}
	if r.logger == nil {
		r.logger = log.New(os.Stdout, "", 0)
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			r.fontBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, _ := os.ReadFile(res.Path) // ignore error here; will be caught when actually used
			if len(data) > 0 {
				r.fontBlobs[name] = data
			}
		}
	}
	return r
}

// Render 串联字体解析、测量、居中与绘制，返回新的画布。
func (r *Renderer) Render(style layout.Style) (*image.NRGBA, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	candidates := make([]layout.FontCandidate, len(style.Fonts))
	copy(candidates, style.Fonts)
	for i := range candidates {
		if candidates[i].Size <= 0 {
			candidates[i].Size = style.FontSize
		}
	}

	font := r.ResolveFont(candidates)
	box, err := r.Measure(style.Text, font)
	if err != nil {
		return nil, err
	}
	at := layout.Center(style.Width, style.Height, box)

	dst := renderer.NewCanvas(style.Width, style.Height)
	if err := r.Draw(dst, style.Text, at, font, style); err != nil {
		return nil, err
	}
	return dst, nil
}

// ResolveFont 依次尝试候选字体，返回第一个加载成功的；全部失败时退回内置字体。
// 该方法不会失败。
func (r *Renderer) ResolveFont(candidates []layout.FontCandidate) *Font {
	for _, c := range candidates {
		if !c.AppliesTo(r.goos) {
			continue
		}
		family, err := r.ensureFontFamily(c.Src)
		if err != nil {
			continue
		}
		return r.announce(newFont(family, c.Name(), c.Src, c.Size))
	}

	size := layout.DefaultFontSize
	if len(candidates) > 0 && candidates[0].Size > 0 {
		size = candidates[0].Size
	}
	return r.announce(newFont(r.fallback(), DefaultLabel, "built-in:"+fonts.Default, size))
}

func (r *Renderer) announce(font *Font) *Font {
	r.logger.Printf("Using font: %s", font.Label)
	return font
}

func newFont(family *canvas.FontFamily, label, src string, size float64) *Font {
	if size <= 0 {
		size = layout.DefaultFontSize
	}
	// 画布单位即像素，字体面需要 pt。
	face := family.Face(layout.PxToPt(size), canvas.Black, canvas.FontRegular, canvas.FontNormal)
	return &Font{Label: label, Source: src, Size: size, face: face}
}

// Measure 返回文本墨迹的紧致包围盒，原点为绘制起点（左侧起笔点、上升线）。
func (r *Renderer) Measure(text string, font *Font) (layout.Box, error) {
	path, err := glyphPath(text, font)
	if err != nil {
		return layout.Box{}, err
	}
	if path.Empty() {
		return layout.Box{}, nil
	}
	// 字形路径 y 轴向上、基线为 0；转换为 y 轴向下、以上升线为 0。
	bounds := path.Bounds()
	ascent := font.face.Metrics().Ascent
	return layout.Box{
		Left:   int(math.Floor(bounds.X0)),
		Top:    int(math.Floor(ascent - bounds.Y1)),
		Right:  int(math.Ceil(bounds.X1)),
		Bottom: int(math.Ceil(ascent - bounds.Y0)),
	}, nil
}

// Draw 在 at 处绘制文本：先按描边宽度铺满方形偏移的描边，再绘制主体文字。
// 直接修改 dst。
func (r *Renderer) Draw(dst *image.NRGBA, text string, at layout.Point, font *Font, style layout.Style) error {
	if dst == nil {
		return fmt.Errorf("画布为空")
	}
	pad := 0
	if style.HasOutline() {
		pad = style.OutlineWidth
	}
	mask, err := glyphMask(text, font, at, dst.Bounds().Size(), pad)
	if err != nil {
		return err
	}

	if style.HasOutline() {
		t := style.OutlineWidth
		for dy := -t; dy <= t; dy++ {
			for dx := -t; dx <= t; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				composite(dst, mask, image.Pt(pad-dx, pad-dy), *style.OutlineColor)
			}
		}
	}
	composite(dst, mask, image.Pt(pad, pad), style.TextColor)
	return nil
}

func glyphPath(text string, font *Font) (*canvas.Path, error) {
	if font == nil || font.face == nil {
		return nil, fmt.Errorf("字体未解析")
	}
	path, _, err := font.face.ToPath(norm.NFC.String(text))
	if err != nil {
		return nil, fmt.Errorf("生成字形路径失败（%s）: %w", font.Label, err)
	}
	return path, nil
}

// glyphMask 将文本栅格化为覆盖率遮罩。遮罩四周各多出 pad 像素，
// 平移绘制描边时靠近画布边缘的字形不会被提前裁掉。
func glyphMask(text string, font *Font, at layout.Point, size image.Point, pad int) (*image.RGBA, error) {
	path, err := glyphPath(text, font)
	if err != nil {
		return nil, err
	}
	w := float64(size.X + 2*pad)
	h := float64(size.Y + 2*pad)

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.Black)
	// canvas 默认坐标系 y 轴向上，基线需从画布底部量起。
	baseline := at.Y + float64(pad) + font.face.Metrics().Ascent
	ctx.DrawPath(at.X+float64(pad), h-baseline, path)
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

func (r *Renderer) ensureFontFamily(src string) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[src]; ok {
		return family, nil
	}

	family := canvas.NewFontFamily(src)
	if name, ok := strings.CutPrefix(src, "system:"); ok {
		if err := family.LoadSystemFont(name, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("加载系统字体 %s 失败: %w", name, err)
		}
	} else {
		data, err := r.loadFontBytes(src)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("解析字体 %s 失败: %w", src, err)
		}
	}
	r.fontFamilies[src] = family
	return family, nil
}

func (r *Renderer) loadFontBytes(src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("字体来源为空")
	}
	if strings.HasPrefix(src, "built-in:") || strings.HasPrefix(src, "builtin:") {
		name := strings.TrimPrefix(strings.TrimPrefix(src, "built-in:"), "builtin:")
		if blob, ok := r.fontBlobs[name]; ok {
			return blob, nil
		}
		return fonts.Load(name)
	}
	path, err := r.findFontFile(src)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// findFontFile 查找字体文件：绝对路径直接使用；相对路径先在 baseDir 下找，
// 再按文件名在系统字体目录中递归查找。
func (r *Renderer) findFontFile(src string) (string, error) {
	if filepath.IsAbs(src) {
		return src, nil
	}
	local := src
	if r.baseDir != "" {
		local = filepath.Join(r.baseDir, src)
	}
	if fileExists(local) {
		return local, nil
	}
	for _, dir := range r.fontDirs {
		if path, ok := searchFontDir(dir, filepath.Base(src)); ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("找不到字体文件 %s: %w", src, os.ErrNotExist)
}

func (r *Renderer) fallback() *canvas.FontFamily {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.fallbackFamily != nil {
		return r.fallbackFamily
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		panic(fmt.Sprintf("内置字体缺失: %v", err))
	}
	family := canvas.NewFontFamily("wordmark-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		panic(fmt.Sprintf("内置字体无法解析: %v", err))
	}
	r.fallbackFamily = family
	return family
}
