package geotifflib

import (
	gdal "github.com/airbusgeo/godal"
)

// 二维像素网格，按行存储，第0行对应栅格北侧
type PixelGrid = [][]float64

// 平面坐标点
type Point struct {
	X float64
	Y float64
}

// 待写入的元数据键值对
type MetadataItem struct {
	Key   string
	Value string
}

// GeoTIFF输出可选项，零值即默认值
type GeoTIFFOptions struct {
	SRID          int               // EPSG坐标系ID，0表示局部平面坐标（不写入坐标系）
	Obsdate       Obsdate           // 观测时间，缺省则不写时间元数据
	Tags          map[string]string // 自定义元数据标签
	DataType      gdal.DataType     // 波段数据类型，缺省为Float64
	CornersArePQR bool              // 角点为LOFAR台站局部PQR坐标（m），写入前转为WGS84经纬度
}
