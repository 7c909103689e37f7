package xlog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 7
	DefaultMaxAgeDays = 30
	DefaultCompress   = true
)

type rotation struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
	localTime  bool
}

// RotationOption 文件轮转选项
type RotationOption func(*rotation)

// WithMaxSize 设置单个日志文件最大大小（MB），必须 > 0。
func WithMaxSize(mb int) RotationOption {
	return func(r *rotation) {
		r.maxSizeMB = mb
	}
}

// WithMaxBackups 设置保留的备份文件数量，0 表示不限制。
func WithMaxBackups(n int) RotationOption {
	return func(r *rotation) {
		r.maxBackups = n
	}
}

// WithMaxAge 设置保留备份的天数，0 表示不按天数清理。
func WithMaxAge(days int) RotationOption {
	return func(r *rotation) {
		r.maxAgeDays = days
	}
}

// WithCompress 设置是否 gzip 压缩备份文件
func WithCompress(compress bool) RotationOption {
	return func(r *rotation) {
		r.compress = compress
	}
}

// WithLocalTime 设置备份文件名是否使用本地时间（默认 UTC）
func WithLocalTime(local bool) RotationOption {
	return func(r *rotation) {
		r.localTime = local
	}
}

// newRotator 创建 lumberjack 轮转写入器，父目录不存在时以 0750 创建。
func newRotator(filename string, opts ...RotationOption) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	r := rotation{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
		compress:   DefaultCompress,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	switch {
	case r.maxSizeMB <= 0:
		return nil, fmt.Errorf("%w: max size %d MB", ErrInvalidRotation, r.maxSizeMB)
	case r.maxBackups < 0:
		return nil, fmt.Errorf("%w: max backups %d", ErrInvalidRotation, r.maxBackups)
	case r.maxAgeDays < 0:
		return nil, fmt.Errorf("%w: max age %d days", ErrInvalidRotation, r.maxAgeDays)
	}

	clean := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(clean), 0o750); err != nil {
		return nil, fmt.Errorf("xlog: create log dir: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   clean,
		MaxSize:    r.maxSizeMB,
		MaxBackups: r.maxBackups,
		MaxAge:     r.maxAgeDays,
		Compress:   r.compress,
		LocalTime:  r.localTime,
	}, nil
}
