package xid

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 已注册的生成函数名称。
const (
	NameMillis    = "millis"
	NameUUID      = "uuid"
	NameUUIDv7    = "uuidv7"
	NameSonyflake = "sonyflake"
)

// nowFunc 当前时间来源，测试中可替换。
var nowFunc = time.Now

// Millis 返回当前 Unix 毫秒时间戳的十进制字符串。
func Millis() string {
	return strconv.FormatInt(nowFunc().UnixMilli(), 10)
}

// UUID 返回随机 UUID v4 字符串。
func UUID() string {
	return uuid.NewString()
}

// UUIDv7 返回 UUID v7 字符串，生成失败时退化为 v4。
func UUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

var registry = map[string]func() string{
	NameMillis:    Millis,
	NameUUID:      UUID,
	NameUUIDv7:    UUIDv7,
	NameSonyflake: Sonyflake,
}

// Lookup 按名称查找生成函数，名称大小写不敏感。
func Lookup(name string) (func() string, bool) {
	fn, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// Names 返回所有已注册名称（已排序）。
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
