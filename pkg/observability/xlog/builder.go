package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReplaceAttrFunc 属性替换函数，返回空 Key 的 Attr 时该属性被移除。
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 日志配置构建器
//
// 配置错误在 Build 时统一返回，链式调用中途不中断。
type Builder struct {
	output      io.Writer
	closer      io.Closer
	levelVar    *slog.LevelVar
	format      string
	addSource   bool
	traceAttrs  bool
	attrs       []slog.Attr
	replaceAttr ReplaceAttrFunc
	onError     func(error)
	err         error
}

// New 创建配置构建器：stderr，Info 级别，text 格式，注入 trace 字段。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:     os.Stderr,
		levelVar:   levelVar,
		format:     FormatText,
		traceAttrs: true,
	}
}

// SetOutput 设置日志输出目标
func (b *Builder) SetOutput(w io.Writer) *Builder {
	b.output = w
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值使用 text。
func (b *Builder) SetFormat(format string) *Builder {
	switch normalized := strings.ToLower(strings.TrimSpace(format)); normalized {
	case "":
		b.format = FormatText
	case FormatText, FormatJSON:
		b.format = normalized
	default:
		b.err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetTraceAttrs 是否从 context 注入 trace_id/span_id，默认启用。
func (b *Builder) SetTraceAttrs(enable bool) *Builder {
	b.traceAttrs = enable
	return b
}

// SetRotation 将日志写入带 lumberjack 轮转的文件，覆盖 SetOutput。
// cleanup 函数负责关闭文件。
func (b *Builder) SetRotation(filename string, opts ...RotationOption) *Builder {
	rotator, err := newRotator(filename, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.output = rotator
	b.closer = rotator
	return b
}

// SetAttrs 设置附加到每条日志的固定属性（如 component）。
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// SetReplaceAttr 设置属性替换函数（字段重命名、脱敏、过滤）
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	b.replaceAttr = fn
	return b
}

// SetOnError 设置内部错误回调，Handler.Handle 失败时同步调用。
// 回调应保持轻量，panic 会被隔离。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// Build 构建 Logger 实例
//
// 返回值：
//   - LoggerWithLevel: 日志实例
//   - func() error: 清理函数（幂等），关闭 SetRotation 打开的文件
//   - error: 配置错误
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		if b.closer != nil {
			_ = b.closer.Close() //nolint:errcheck // 配置错误优先返回
		}
		return nil, nil, b.err
	}
	if b.output == nil {
		b.output = io.Discard
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}
	if b.replaceAttr != nil {
		opts.ReplaceAttr = b.replaceAttr
	}

	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}
	if b.traceAttrs {
		handler = &traceHandler{base: handler}
	}
	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	logger := &xlogger{
		handler:        handler,
		levelVar:       b.levelVar,
		onError:        b.onError,
		errorCount:     new(atomic.Uint64),
		addSource:      b.addSource,
		inErrorHandler: new(atomic.Bool),
	}
	return logger, b.createCleanup(), nil
}

func (b *Builder) createCleanup() func() error {
	var once sync.Once
	closer := b.closer
	return func() error {
		var err error
		once.Do(func() {
			if closer != nil {
				err = closer.Close()
			}
		})
		return err
	}
}
