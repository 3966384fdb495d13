package geotifflib

import (
	"sort"
	"time"

	"github.com/wgdzlh/geotifflib/utils"
)

// 观测时间，写入前统一规整为 OBSDATE_LAYOUT 文本
type Obsdate struct {
	t   time.Time
	set bool
}

var obsdateLayouts = []string{
	OBSDATE_LAYOUT,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006:01:02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func ObsdateFromTime(t time.Time) Obsdate {
	return Obsdate{t: t, set: true}
}

// 解析文本格式的观测时间，支持obsdateLayouts中列出的格式
func ParseObsdate(s string) (o Obsdate, err error) {
	for _, layout := range obsdateLayouts {
		if t, e := time.Parse(layout, s); e == nil {
			o = Obsdate{t: t, set: true}
			return
		}
	}
	err = ErrBadTimestamp
	return
}

func (o Obsdate) IsZero() bool {
	return !o.set
}

func (o Obsdate) String() string {
	if !o.set {
		return ""
	}
	return o.t.Format(OBSDATE_LAYOUT)
}

// 组装元数据键值对：观测时间（若有）在前，标签按键名排序，保证同一输入输出一致
func AssembleMetadata(obsdate Obsdate, tags map[string]string) (items []MetadataItem) {
	items = make([]MetadataItem, 0, len(tags)+2)
	if !obsdate.IsZero() {
		ds := obsdate.String()
		items = append(items,
			MetadataItem{Key: DATETIME_KEY, Value: ds},
			MetadataItem{Key: OBSDATE_KEY, Value: ds},
		)
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		items = append(items, MetadataItem{
			Key:   utils.PurifyForUtf8(k),
			Value: utils.PurifyForUtf8(tags[k]),
		})
	}
	return
}
