package xerrfile

import (
	"strconv"
	"strings"

	"github.com/omeyang/xerrlog/pkg/util/xid"
)

// IDFunc 标识符生成函数，每次写入调用一次。
type IDFunc func() string

// 配置键，同时接受驼峰与下划线写法，驼峰优先。
var (
	folderKeys = []string{"outputFolder", "output_folder"}
	idFnKeys   = []string{"idFn", "id_fn"}
)

// DefaultOutputFolder 默认输出目录
const DefaultOutputFolder = "."

// normalizeFolder 空字符串重置为 "."，去除末尾 "/"，全部由 "/" 组成时保留 "/"。
func normalizeFolder(folder string) string {
	if folder == "" {
		return DefaultOutputFolder
	}
	trimmed := strings.TrimRight(folder, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// filePath 拼接文件路径。目录为 "/" 时不重复分隔符。
func filePath(folder, name, id, ext string) string {
	file := name + "_" + id + ext
	if folder == "/" {
		return folder + file
	}
	return folder + "/" + file
}

// configUpdate 已校验的配置变更，nil 字段表示未设置。
type configUpdate struct {
	folder *string
	idFn   IDFunc
}

// parseConfig 校验未类型化配置。
// 值为 nil 的键视为未设置（YAML 中只写键名不写值）。
func parseConfig(cfg map[string]any) (configUpdate, error) {
	var u configUpdate
	if key, v, ok := lookup(cfg, folderKeys); ok {
		s, isString := v.(string)
		if !isString {
			return configUpdate{}, newPathError(key, v)
		}
		folder := normalizeFolder(s)
		u.folder = &folder
	}
	if key, v, ok := lookup(cfg, idFnKeys); ok {
		fn, err := resolveIDFunc(key, v)
		if err != nil {
			return configUpdate{}, err
		}
		u.idFn = fn
	}
	return u, nil
}

func lookup(cfg map[string]any, keys []string) (string, any, bool) {
	for _, key := range keys {
		if v, ok := cfg[key]; ok && v != nil {
			return key, v, true
		}
	}
	return "", nil, false
}

// resolveIDFunc 接受生成函数或 xid 注册名称。
func resolveIDFunc(key string, v any) (IDFunc, error) {
	var fn IDFunc
	switch f := v.(type) {
	case IDFunc:
		fn = f
	case func() string:
		fn = f
	case func() int64:
		if f != nil {
			fn = func() string { return strconv.FormatInt(f(), 10) }
		}
	case func() int:
		if f != nil {
			fn = func() string { return strconv.Itoa(f()) }
		}
	case func() uint64:
		if f != nil {
			fn = func() string { return strconv.FormatUint(f(), 10) }
		}
	case string:
		if named, ok := xid.Lookup(f); ok {
			fn = named
		}
	}
	if fn == nil {
		return nil, newIDFnError(key, v)
	}
	return fn, nil
}
