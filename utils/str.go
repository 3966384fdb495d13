package utils

import "strings"

// 剔除NUL并去除非法UTF-8字节，GDAL元数据只接受合法的C字符串
func PurifyForUtf8(s string) string {
	return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "")
}
