package xxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyRoot 根元素名称为空。
	ErrEmptyRoot = errors.New("xxml: root element name is required")

	// ErrMarshal 序列化失败。
	ErrMarshal = errors.New("xxml: marshal failed")
)

const defaultIndent = "    "

type options struct {
	indent string
}

// Option Render 配置选项
type Option func(*options)

// WithIndent 设置每层缩进字符串，默认四个空格；空字符串表示紧凑输出。
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// Render 将 v 渲染为以 root 为根元素的 XML 文档。
func Render(root string, v any, opts ...Option) (string, error) {
	if root == "" {
		return "", ErrEmptyRoot
	}
	o := &options{indent: defaultIndent}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	var b strings.Builder
	b.WriteString(xml.Header)

	enc := xml.NewEncoder(&b)
	enc.Indent("", o.indent)
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: root}}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return b.String(), nil
}
