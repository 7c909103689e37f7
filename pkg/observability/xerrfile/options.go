package xerrfile

import (
	"os"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xerrlog/pkg/observability/xlog"
	"github.com/omeyang/xerrlog/pkg/util/xfile"
	"github.com/omeyang/xerrlog/pkg/util/xid"
)

type options struct {
	outputFolder   string
	idFn           IDFunc
	dirPerm        os.FileMode
	filePerm       os.FileMode
	logger         xlog.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider

	// err 记录第一个选项错误，New 时返回。
	err error
}

func defaultOptions() *options {
	return &options{
		outputFolder: DefaultOutputFolder,
		idFn:         xid.Millis,
		dirPerm:      xfile.DefaultDirPerm,
		filePerm:     xfile.DefaultFilePerm,
		logger:       xlog.Discard(),
	}
}

func (o *options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Option Logger 配置选项
type Option func(*options)

// WithOutputFolder 设置输出目录（规范化规则见包文档）。
func WithOutputFolder(folder string) Option {
	return func(o *options) {
		o.outputFolder = normalizeFolder(folder)
	}
}

// WithIDFunc 设置标识符生成函数，nil 时 New 返回 ErrIDFnNotAFunction。
func WithIDFunc(fn IDFunc) Option {
	return func(o *options) {
		if fn == nil {
			o.fail(newIDFnError("idFn", nil))
			return
		}
		o.idFn = fn
	}
}

// WithConfig 从未类型化配置（如配置文件解码结果）设置 outputFolder 与 idFn。
//
// 支持的键：outputFolder/output_folder（string），idFn/id_fn（生成函数或
// xid 注册名称 millis/uuid/uuidv7/sonyflake）。nil map 等价于空配置。
func WithConfig(cfg map[string]any) Option {
	return func(o *options) {
		u, err := parseConfig(cfg)
		if err != nil {
			o.fail(err)
			return
		}
		if u.folder != nil {
			o.outputFolder = *u.folder
		}
		if u.idFn != nil {
			o.idFn = u.idFn
		}
	}
}

// WithDirPerm 设置目录权限，必须包含所有者执行位。默认 xfile.DefaultDirPerm。
func WithDirPerm(perm os.FileMode) Option {
	return func(o *options) {
		if err := xfile.ValidatePerm(perm); err != nil {
			o.fail(err)
			return
		}
		o.dirPerm = perm
	}
}

// WithFilePerm 设置错误文件权限。默认 xfile.DefaultFilePerm。
func WithFilePerm(perm os.FileMode) Option {
	return func(o *options) {
		o.filePerm = perm
	}
}

// WithLogger 设置诊断日志，nil 被忽略。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeterProvider 设置 MeterProvider，nil 被忽略。
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithTracerProvider 设置 TracerProvider，nil 被忽略。
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}
