package geotifflib

// 由栅格尺寸和两个角点计算GDAL六参数仿射变换 [xOrigin, pixelWidth, 0, yOrigin, 0, pixelHeight]。
// 角点llc、urc为最外侧像元中心的地面坐标，故变换原点（像元(0,0)左上角）需向外偏移半个像元；
// 北在上，pixelHeight为负，行号增大即向南
func BuildGeoTransform(rows, cols int, llc, urc Point) (gt [6]float64, err error) {
	if rows < 1 || cols < 1 || urc.X <= llc.X || urc.Y <= llc.Y {
		err = ErrInvalidExtent
		return
	}
	pw := (urc.X - llc.X) / float64(cols)
	ph := -(urc.Y - llc.Y) / float64(rows)
	gt = [6]float64{llc.X - pw/2, pw, 0, urc.Y - ph/2, 0, ph}
	return
}

// 像素坐标（列，行）转地面坐标，像元中心位于(col+0.5, row+0.5)
func ApplyGeoTransform(gt [6]float64, col, row float64) (x, y float64) {
	x = gt[0] + col*gt[1] + row*gt[2]
	y = gt[3] + col*gt[4] + row*gt[5]
	return
}
