package geotifflib

import "errors"

var (
	ErrInvalidExtent    = errors.New("invalid raster extent")
	ErrInvalidGrid      = errors.New("ragged pixel grid")
	ErrBadTimestamp     = errors.New("unrecognized obsdate format")
	ErrUnknownSrid      = errors.New("gdal unknown srid")
	ErrGdalDriverCreate = errors.New("gdal driver create err")
	ErrTifWriteFailed   = errors.New("tif write failed")
)
