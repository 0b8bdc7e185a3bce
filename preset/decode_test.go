package preset

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/wordmark/layout"
)

func TestDefaultMatchesReferenceConfiguration(t *testing.T) {
	style, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	want := layout.Style{
		Name:         DefaultName,
		Width:        1920,
		Height:       400,
		Text:         "Studio Patraldo",
		FontSize:     300,
		TextColor:    layout.Color{R: 255, G: 255, B: 255, A: 120},
		OutlineColor: &layout.Color{R: 0, G: 0, B: 0, A: 60},
		OutlineWidth: 2,
		Fonts: []layout.FontCandidate{
			{Src: "arialbd.ttf", Size: 300, Label: "arialbd.ttf (Arial Bold)"},
			{Src: "arial.ttf", Size: 300, Label: "arial.ttf (Arial Regular)"},
			{Src: "/System/Library/Fonts/Supplemental/Arial.ttf", Size: 300, Label: "System Arial (macOS)", Platforms: []string{"darwin"}},
			{Src: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", Size: 300, Label: "DejaVu Sans Bold (Linux)", Platforms: []string{"linux"}},
		},
	}
	if diff := cmp.Diff(want, style); diff != "" {
		t.Fatalf("reference preset mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOutlineNoneAndFontSizeDefaults(t *testing.T) {
	file, err := ParseString(`preset p {
  font "built-in:gobold"
  font "arial.ttf" size 40
  canvas 300 x 100
  font-size 64
  outline #111 alpha 10 width 4
  outline none
}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	style, err := Decode(file.Presets[0])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if style.OutlineColor != nil {
		t.Fatalf("later `outline none` must clear the colour, got %+v", style.OutlineColor)
	}
	if style.OutlineWidth != 4 {
		t.Fatalf("width from the earlier outline entry should survive, got %d", style.OutlineWidth)
	}
	if style.HasOutline() {
		t.Fatalf("outline should be disabled")
	}
	// font-size 在字体之后声明也应生效。
	if style.Fonts[0].Size != 64 || style.Fonts[1].Size != 40 {
		t.Fatalf("unexpected font sizes: %+v", style.Fonts)
	}
	// 未指定 fill 时默认不透明白色。
	if style.TextColor != (layout.Color{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected default fill: %+v", style.TextColor)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"alpha out of range": `preset p { canvas 10 x 10 fill #FFFFFF alpha 300 }`,
		"fractional canvas":  `preset p { canvas 10.5 x 10 }`,
		"missing canvas":     `preset p { text "x" }`,
		"zero height":        `preset p { canvas 10 x 0 }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			file, err := ParseString(src)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, err := Decode(file.Presets[0]); err == nil {
				t.Fatalf("expected decode error")
			}
		})
	}
}
