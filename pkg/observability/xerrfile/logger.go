package xerrfile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/omeyang/xerrlog/pkg/observability/xlog"
	"github.com/omeyang/xerrlog/pkg/util/xerror"
	"github.com/omeyang/xerrlog/pkg/util/xfile"
	"github.com/omeyang/xerrlog/pkg/util/xjson"
	"github.com/omeyang/xerrlog/pkg/util/xxml"
)

// Format 错误文件格式。
type Format string

// 支持的格式。
const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// xmlRoot XML 文件的根元素名。
const xmlRoot = "error"

// renderIndent JSON 与 XML 文件的缩进。
const renderIndent = "    "

func (f Format) ext() string {
	return "." + string(f)
}

func (f Format) spanSuffix() string {
	if f == FormatXML {
		return "XML"
	}
	return "JSON"
}

// ParseFormat 解析格式名称（json/xml），返回 false 表示不支持。
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatJSON, FormatXML:
		return Format(s), true
	default:
		return "", false
	}
}

func (f Format) render(rec *xerror.Record) ([]byte, error) {
	var (
		out string
		err error
	)
	if f == FormatXML {
		out, err = xxml.Render(xmlRoot, rec, xxml.WithIndent(renderIndent))
	} else {
		out, err = xjson.PrettyE(rec, xjson.WithIndent(renderIndent))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return []byte(out), nil
}

//go:generate mockgen -source=logger.go -destination=filesystem_mock_test.go -package=xerrfile

// FileSystem 错误文件落盘需要的文件系统能力。
//
// 目录已存在时 Mkdir 返回的错误应满足 errors.Is(err, fs.ErrExist)。
type FileSystem interface {
	Mkdir(name string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Logger 将错误写入文件。方法并发安全。
type Logger struct {
	fsys     FileSystem
	dirPerm  os.FileMode
	filePerm os.FileMode
	log      xlog.Logger
	obs      *observer

	mu           sync.RWMutex
	outputFolder string
	idFn         IDFunc
}

// New 创建 Logger。选项校验先于任何文件系统访问。
func New(fsys FileSystem, opts ...Option) (*Logger, error) {
	if fsys == nil {
		return nil, ErrNilFileSystem
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	obs, err := newObserver(o.tracerProvider, o.meterProvider)
	if err != nil {
		return nil, err
	}
	return &Logger{
		fsys:         fsys,
		dirPerm:      o.dirPerm,
		filePerm:     o.filePerm,
		log:          o.logger,
		obs:          obs,
		outputFolder: o.outputFolder,
		idFn:         o.idFn,
	}, nil
}

// NewOS 创建写入真实文件系统的 Logger。
func NewOS(opts ...Option) (*Logger, error) {
	return New(xfile.OS(), opts...)
}

// SetOutputFolder 设置输出目录，空字符串重置为 "."。
func (l *Logger) SetOutputFolder(folder string) {
	normalized := normalizeFolder(folder)
	l.mu.Lock()
	l.outputFolder = normalized
	l.mu.Unlock()
}

// OutputFolder 返回当前输出目录。
func (l *Logger) OutputFolder() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.outputFolder
}

// SetIDFunc 设置标识符生成函数。fn 为 nil 时返回 ErrIDFnNotAFunction，原函数不变。
func (l *Logger) SetIDFunc(fn IDFunc) error {
	if fn == nil {
		return newIDFnError("idFn", nil)
	}
	l.mu.Lock()
	l.idFn = fn
	l.mu.Unlock()
	return nil
}

// IDFunc 返回当前标识符生成函数。
func (l *Logger) IDFunc() IDFunc {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.idFn
}

// Apply 以未类型化配置更新 outputFolder 与 idFn（键同 WithConfig）。
// 任一值校验失败时不修改任何字段。
func (l *Logger) Apply(cfg map[string]any) error {
	u, err := parseConfig(cfg)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if u.folder != nil {
		l.outputFolder = *u.folder
	}
	if u.idFn != nil {
		l.idFn = u.idFn
	}
	return nil
}

func (l *Logger) snapshot() (string, IDFunc) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.outputFolder, l.idFn
}

// LogJSON 将 err 以 JSON 写入 {outputFolder}/{name}_{id}.json，返回文件路径。
func (l *Logger) LogJSON(ctx context.Context, err error) (string, error) {
	return l.Log(ctx, FormatJSON, err)
}

// LogXML 将 err 以 XML 写入 {outputFolder}/{name}_{id}.xml，返回文件路径。
func (l *Logger) LogXML(ctx context.Context, err error) (string, error) {
	return l.Log(ctx, FormatXML, err)
}

// Log 以指定格式写入 err。未知格式按 JSON 处理。
func (l *Logger) Log(ctx context.Context, format Format, err error) (path string, retErr error) {
	if err == nil {
		return "", ErrNilError
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if format != FormatXML {
		format = FormatJSON
	}

	folder, idFn := l.snapshot()

	var name string
	ctx, w := l.obs.start(ctx, format)
	defer func() {
		w.end(path, retErr)
		l.report(ctx, format, name, path, retErr)
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec := xerror.Serialize(err)
	name = rec.Name
	data, rerr := format.render(rec)
	if rerr != nil {
		return "", rerr
	}
	path = filePath(folder, name, idFn(), format.ext())

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := xfile.EnsureDir(l.fsys, folder, l.dirPerm); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := l.fsys.WriteFile(path, data, l.filePerm); err != nil {
		return "", err
	}
	return path, nil
}

func (l *Logger) report(ctx context.Context, format Format, name, path string, err error) {
	if err != nil {
		l.log.Warn(ctx, "error file write failed",
			xlog.Format(string(format)), xlog.ErrorName(name), xlog.Err(err))
		return
	}
	l.log.Debug(ctx, "error file written",
		xlog.Path(path), xlog.Format(string(format)), xlog.ErrorName(name))
}
