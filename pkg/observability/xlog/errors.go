package xlog

import "errors"

var (
	// ErrUnknownLevel 无法识别的日志级别
	ErrUnknownLevel = errors.New("xlog: unknown level")

	// ErrUnknownFormat 无法识别的输出格式
	ErrUnknownFormat = errors.New("xlog: unknown format")

	// ErrEmptyFilename 日志文件路径为空
	ErrEmptyFilename = errors.New("xlog: empty filename")

	// ErrInvalidRotation 轮转参数无效
	ErrInvalidRotation = errors.New("xlog: invalid rotation")

	// ErrNilHandler 被装饰的 handler 为 nil
	ErrNilHandler = errors.New("xlog: base handler is nil")
)
