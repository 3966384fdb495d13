package geotifflib

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wgdzlh/geotifflib/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// 将二维数组写为单波段GeoTIFF，llc/urc为左下、右上角像元中心的地面坐标。
// opts可为nil。所有校验在写盘前完成；先写入同目录临时文件再改名，失败时不留下半成品文件
func (g *GdalToolbox) WriteGeoTIFF(grid PixelGrid, out string, llc, urc Point, opts *GeoTIFFOptions) (err error) {
	if opts == nil {
		opts = &GeoTIFFOptions{}
	}
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	for _, row := range grid {
		if len(row) != cols {
			err = ErrInvalidGrid
			return
		}
	}
	srid := opts.SRID
	if opts.CornersArePQR {
		llc.X, llc.Y, _ = PQRToLonLatHeight(llc.X, llc.Y, 0)
		urc.X, urc.Y, _ = PQRToLonLatHeight(urc.X, urc.Y, 0)
		srid = UNIVERSAL_SRID
	}
	gt, err := BuildGeoTransform(rows, cols, llc, urc)
	if err != nil {
		return
	}
	meta := AssembleMetadata(opts.Obsdate, opts.Tags)
	var wkt string
	if srid != LOCAL_SRID {
		if wkt, err = g.getSridWkt(srid); err != nil {
			return
		}
	}
	dt := opts.DataType
	if dt == gdal.Unknown {
		dt = gdal.Float64
	}
	registerOnce.Do(gdal.RegisterInternalDrivers)
	dir := g.tmpDir
	if dir == "" {
		dir = filepath.Dir(out)
	}
	tmp := filepath.Join(dir, fmt.Sprintf(TMP_TIF, uuid.NewString()))
	log.Info(g.logTag+"start write tif", zap.String("out", out),
		zap.Int("width", cols), zap.Int("height", rows), zap.Int("srid", srid))
	ds, err := gdal.Create(gdal.GTiff, tmp, 1, dt, cols, rows, gdal.CreationOption(TIF_CREATION_OPT))
	if err != nil {
		log.Error(g.logTag+"create tif failed", zap.String("tmp", tmp), zap.Error(err))
		err = ErrGdalDriverCreate
		return
	}
	if err = fillDataset(ds, grid, gt, wkt, meta); err == nil {
		err = ds.Close() // Close落盘，其错误同样视为写入失败
	} else {
		ds.Close()
	}
	if err == nil {
		err = os.Rename(tmp, out)
	}
	if err != nil {
		log.Error(g.logTag+"write tif failed", zap.String("out", out), zap.Error(err))
		os.Remove(tmp)
		err = ErrTifWriteFailed
		return
	}
	log.Info(g.logTag+"tif written", zap.String("out", out))
	return
}

func fillDataset(ds *gdal.Dataset, grid PixelGrid, gt [6]float64, wkt string, meta []MetadataItem) (err error) {
	if err = ds.SetGeoTransform(gt); err != nil {
		return
	}
	if wkt != "" {
		var sr *gdal.SpatialRef
		if sr, err = gdal.NewSpatialRefFromWKT(wkt); err != nil {
			return
		}
		err = ds.SetSpatialRef(sr)
		sr.Close()
		if err != nil {
			return
		}
	}
	for _, it := range meta {
		if err = ds.SetMetadata(it.Key, it.Value); err != nil {
			return
		}
	}
	rows, cols := len(grid), len(grid[0])
	buf := make([]float64, rows*cols)
	for i, row := range grid {
		copy(buf[i*cols:], row)
	}
	return ds.Bands()[0].IO(gdal.IOWrite, 0, 0, buf, cols, rows)
}
