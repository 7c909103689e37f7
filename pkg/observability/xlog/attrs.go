package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyErrorName = "error_name"
	KeyPath      = "path"
	KeyFormat    = "format"
	KeyDuration  = "duration"
	KeyComponent = "component"
	KeyTraceID   = "trace_id"
	KeySpanID    = "span_id"
)

// Err 创建错误属性，err 为 nil 时返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorName 创建错误名称属性
func ErrorName(name string) slog.Attr {
	return slog.String(KeyErrorName, name)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Format 创建输出格式属性
func Format(f string) slog.Attr {
	return slog.String(KeyFormat, f)
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}
