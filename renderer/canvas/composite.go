package canvasrenderer

import (
	"image"

	"github.com/ByLCY/wordmark/layout"
)

// composite 按遮罩把颜色贴到画布上，逐通道、非预乘：
// out = dst + (c - dst) * m / 255。遮罩完全覆盖处像素恰好等于 c。
// mp 为 dst 左上角对应的遮罩坐标。
func composite(dst *image.NRGBA, mask *image.RGBA, mp image.Point, c layout.Color) {
	b := dst.Bounds()
	mb := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		my := mb.Min.Y + mp.Y + (y - b.Min.Y)
		if my < mb.Min.Y || my >= mb.Max.Y {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			mx := mb.Min.X + mp.X + (x - b.Min.X)
			if mx < mb.Min.X || mx >= mb.Max.X {
				continue
			}
			m := uint32(mask.Pix[mask.PixOffset(mx, my)+3])
			if m == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			p := dst.Pix[i : i+4 : i+4]
			p[0] = blend(p[0], c.R, m)
			p[1] = blend(p[1], c.G, m)
			p[2] = blend(p[2], c.B, m)
			p[3] = blend(p[3], c.A, m)
		}
	}
}

func blend(d, s uint8, m uint32) uint8 {
	return uint8((uint32(d)*(255-m) + uint32(s)*m + 127) / 255)
}
