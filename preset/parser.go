package preset

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	presetLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[,;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(presetLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// File is the root AST node of a preset file.
type File struct {
	Presets []*Preset `parser:"@@*"`
}

// Preset 描述一个命名的水印预设。
type Preset struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"'preset' @Ident"`
	Entries []*Entry       `parser:"'{' ( @@ ';'? )* '}'"`
}

// Entry 是预设块中的一条设置。
type Entry struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Canvas   *CanvasEntry   `parser:"  @@"`
	Text     *StringLiteral `parser:"| 'text' @String"`
	FontSize *string        `parser:"| 'font-size' @Number"`
	Fill     *Paint         `parser:"| 'fill' @@"`
	Outline  *OutlineEntry  `parser:"| @@"`
	Font     *FontEntry     `parser:"| @@"`
}

// Kind returns the human-readable entry type.
func (e *Entry) Kind() string {
	switch {
	case e == nil:
		return "unknown"
	case e.Canvas != nil:
		return "canvas"
	case e.Text != nil:
		return "text"
	case e.FontSize != nil:
		return "font-size"
	case e.Fill != nil:
		return "fill"
	case e.Outline != nil:
		return "outline"
	case e.Font != nil:
		return "font"
	default:
		return "unknown"
	}
}

// CanvasEntry 形如 `canvas 1920 x 400`。
type CanvasEntry struct {
	Width  string `parser:"'canvas' @Number"`
	Height string `parser:"'x' @Number"`
}

// Paint 是颜色加可选的不透明度（0-255）。
type Paint struct {
	Color string  `parser:"@Color"`
	Alpha *string `parser:"( 'alpha' @Number )?"`
}

// OutlineEntry 形如 `outline #000000 alpha 60 width 2` 或 `outline none`。
type OutlineEntry struct {
	Paint *Paint  `parser:"'outline' ( 'none' | @@ )"`
	Width *string `parser:"( 'width' @Number )?"`
}

// FontEntry 声明一个字体候选，按出现顺序尝试。
type FontEntry struct {
	Pos       lexer.Position `parser:"" json:"-"`
	Src       StringLiteral  `parser:"'font' @String"`
	Label     *StringLiteral `parser:"( 'label' @String )?"`
	Size      *string        `parser:"( 'size' @Number )?"`
	Platforms []string       `parser:"( 'on' @Ident ( ',' @Ident )* )?"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses preset content from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// ParseString parses preset content from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}

// Lookup 按名称查找预设。
func Lookup(file *File, name string) (*Preset, error) {
	if file == nil {
		return nil, fmt.Errorf("预设文件为空")
	}
	for _, p := range file.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("找不到预设 %s", name)
}
