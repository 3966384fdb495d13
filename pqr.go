package geotifflib

import "math"

// CS002LBA相位中心（ETRS89，m）与PQR→ETRS旋转矩阵，取自LOFAR天线数据库
var (
	cs002Center = [3]float64{3826577.462, 461022.624, 5064892.526}
	pqrToEtrs   = [3][3]float64{
		{-0.11959511, -0.79195445, 0.598753},
		{0.99282275, -0.09541868, 0.072099},
		{0.0000331, 0.60307829, 0.797682},
	}
)

const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
)

func normalizedEarthRadius(latRad float64) float64 {
	s, c := math.Sincos(latRad)
	return 1 / math.Sqrt(c*c+(1-wgs84F)*(1-wgs84F)*s*s)
}

// ETRS89地心坐标转经纬度（deg）与WGS84椭球高（m），纬度迭代求解
func geographicFromXYZ(x, y, z float64) (lon, lat, height float64) {
	e2 := wgs84F * (2 - wgs84F)
	lonRad := math.Atan2(y, x)
	r := math.Hypot(x, y)
	phi := math.Atan2(z, r)
	phiPrev := phi + 1
	for math.Abs(phi-phiPrev) > 1.6e-12 {
		phiPrev = phi
		phi = math.Atan2(z+e2*wgs84A*normalizedEarthRadius(phi)*math.Sin(phi), r)
	}
	sinPhi := math.Sin(phi)
	height = r*math.Cos(phi) + z*sinPhi - wgs84A*math.Sqrt(1-e2*sinPhi*sinPhi)
	lon = lonRad * 180 / math.Pi
	lat = phi * 180 / math.Pi
	return
}

// LOFAR台站局部PQR坐标（m）转WGS84经纬度（deg）与高程（m），台站固定为CS002LBA
func PQRToLonLatHeight(p, q, r float64) (lon, lat, height float64) {
	pqr := [3]float64{p, q, r}
	var etrs [3]float64
	for i := 0; i < 3; i++ {
		etrs[i] = cs002Center[i]
		for j := 0; j < 3; j++ {
			etrs[i] += pqrToEtrs[i][j] * pqr[j]
		}
	}
	return geographicFromXYZ(etrs[0], etrs[1], etrs[2])
}
