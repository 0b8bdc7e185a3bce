package layout

// 渲染器以 1 单位 = 1mm 构建画布，并按每毫米 1 个像素光栅化，
// 因此画布单位与像素一一对应；字号需要从像素换算为 pt 才能创建字体面。

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// PxToPt 将像素字号转换为 pt。
func PxToPt(px float64) float64 { return px * MmToPt }

// PtToPx 将 pt 转换回像素。
func PtToPx(pt float64) float64 { return pt * PtToMm }
