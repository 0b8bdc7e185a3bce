package layout

// Center 计算使包围盒在画布中居中的绘制起点。
// 使用包围盒的宽高而非字号，以抵消不同字体上升部/下降部的留白。
// 文本大于画布时结果为负，调用方不应修正。
func Center(width, height int, box Box) Point {
	return Point{
		X: float64(width-box.Width()) / 2,
		Y: float64(height-box.Height()) / 2,
	}
}
