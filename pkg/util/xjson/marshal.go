package xjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
)

// ErrMarshal 序列化失败。
var ErrMarshal = errors.New("xjson: marshal failed")

const (
	defaultIndent = "  "
	defaultWidth  = 80
)

type options struct {
	indent string
	width  int
}

// Option PrettyE 配置选项
type Option func(*options)

// WithIndent 设置每层缩进字符串，默认两个空格。
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithWidth 设置短数组单行输出的最大宽度，默认 80。
// 非正值视为默认值。
func WithWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

// PrettyE 将任意值序列化为格式化的 JSON 字符串。
// 结果不以换行结尾。
func PrettyE(v any, opts ...Option) (string, error) {
	o := &options{indent: defaultIndent, width: defaultWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	out := pretty.PrettyOptions(data, &pretty.Options{
		Width:  o.width,
		Indent: o.indent,
	})
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Pretty 将任意值序列化为格式化的 JSON 字符串。
// 用于日志和调试输出。序列化失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	data, err := json.MarshalIndent(v, "", defaultIndent)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(data)
}
