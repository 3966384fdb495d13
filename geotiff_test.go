package geotifflib

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gdal "github.com/airbusgeo/godal"
)

func testGrid(rows, cols int) PixelGrid {
	grid := make(PixelGrid, rows)
	for i := range grid {
		row := make([]float64, cols)
		for j := range row {
			row[j] = float64(i*cols + j)
		}
		grid[i] = row
	}
	return grid
}

func TestWriteGeoTIFFRoundTrip(t *testing.T) {
	g := NewGdalToolbox()
	out := filepath.Join(t.TempDir(), "test.tif")
	err := g.WriteGeoTIFF(testGrid(400, 400), out, Point{-200, -200}, Point{200, 200}, &GeoTIFFOptions{
		SRID:    UNIVERSAL_SRID,
		Obsdate: ObsdateFromTime(time.Date(2016, 2, 12, 8, 0, 0, 0, time.UTC)),
		Tags:    map[string]string{"Author": "X", "Project": "Y"},
	})
	if err != nil {
		t.Fatal(err)
	}

	ds, err := gdal.Open(out, gdal.RasterOnly())
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	gt, err := ds.GeoTransform()
	if err != nil {
		t.Fatal(err)
	}
	want := [6]float64{-200.5, 1, 0, 200.5, 0, -1}
	for i := range gt {
		if math.Abs(gt[i]-want[i]) > geoEps {
			t.Fatalf("gt[%d]: expected %v, got %v", i, want[i], gt[i])
		}
	}

	for k, v := range map[string]string{
		DATETIME_KEY: "2016-02-12 08:00:00",
		OBSDATE_KEY:  "2016-02-12 08:00:00",
		"Author":     "X",
		"Project":    "Y",
	} {
		if got := ds.Metadata(k); got != v {
			t.Errorf("metadata %s: expected %q, got %q", k, v, got)
		}
	}

	sr := ds.SpatialRef()
	if sr == nil {
		t.Fatal("expected a spatial ref")
	}
	defer sr.Close()
	wkt, err := sr.WKT()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(wkt, "4326") {
		t.Errorf("expected EPSG:4326 in wkt, got %q", wkt)
	}

	buf := make([]float64, 400*400)
	if err = ds.Bands()[0].IO(gdal.IORead, 0, 0, buf, 400, 400); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 399, 400 * 399, 400*400 - 1} {
		if buf[i] != float64(i) {
			t.Fatalf("pixel %d: expected %v, got %v", i, float64(i), buf[i])
		}
	}
}

func TestWriteGeoTIFFNoObsdate(t *testing.T) {
	g := NewGdalToolbox()
	out := filepath.Join(t.TempDir(), "plain.tif")
	err := g.WriteGeoTIFF(testGrid(2, 3), out, Point{0, 0}, Point{3, 2}, nil)
	if err != nil {
		t.Fatal(err)
	}

	ds, err := gdal.Open(out, gdal.RasterOnly())
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()
	if got := ds.Metadata(OBSDATE_KEY); got != "" {
		t.Fatalf("expected no obsdate metadata, got %q", got)
	}
	if got := ds.Metadata(DATETIME_KEY); got != "" {
		t.Fatalf("expected no datetime metadata, got %q", got)
	}
}

func TestWriteGeoTIFFInvalidExtent(t *testing.T) {
	g := NewGdalToolbox()
	out := filepath.Join(t.TempDir(), "bad.tif")
	err := g.WriteGeoTIFF(testGrid(1, 1), out, Point{5, 5}, Point{5, 5}, nil)
	if err != ErrInvalidExtent {
		t.Fatalf("expected ErrInvalidExtent, got %v", err)
	}
	if _, err = os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("no file should remain after a failed write")
	}
}

func TestWriteGeoTIFFRaggedGrid(t *testing.T) {
	g := NewGdalToolbox()
	out := filepath.Join(t.TempDir(), "ragged.tif")
	grid := PixelGrid{{1, 2, 3}, {4, 5}}
	if err := g.WriteGeoTIFF(grid, out, Point{0, 0}, Point{3, 2}, nil); err != ErrInvalidGrid {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestWriteGeoTIFFBadObsdateText(t *testing.T) {
	if _, err := ParseObsdate("not a date"); err != ErrBadTimestamp {
		t.Fatalf("expected ErrBadTimestamp, got %v", err)
	}
}

func TestWriteGeoTIFFPQRCorners(t *testing.T) {
	g := NewGdalToolbox()
	out := filepath.Join(t.TempDir(), "pqr.tif")
	err := g.WriteGeoTIFF(testGrid(400, 400), out, Point{-200, -200}, Point{200, 200}, &GeoTIFFOptions{
		CornersArePQR: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	ds, err := gdal.Open(out, gdal.RasterOnly())
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()
	gt, err := ds.GeoTransform()
	if err != nil {
		t.Fatal(err)
	}
	// 400m范围折算为经纬度后，像元尺寸应在1e-5度量级
	if gt[1] <= 0 || gt[1] > 1e-3 || gt[5] >= 0 {
		t.Fatalf("unexpected pixel size (%v, %v)", gt[1], gt[5])
	}
	if math.Abs(gt[0]-6.87) > 0.02 || math.Abs(gt[3]-52.92) > 0.02 {
		t.Fatalf("unexpected origin (%v, %v)", gt[0], gt[3])
	}
}
