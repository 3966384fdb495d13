package geotifflib

const (
	UNIVERSAL_SRID = 4326
	LOCAL_SRID     = 0

	TIF_CREATION_OPT = "COMPRESS=LZW"
	TMP_TIF          = "tmp_%s.tif"

	// 规范化观测时间格式，下游工具按固定位置解析
	OBSDATE_LAYOUT = "2006-01-02 15:04:05"

	OBSDATE_KEY  = "obsdate"
	DATETIME_KEY = "TIFFTAG_DATETIME"
)
