package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File 已加载的配置。
type File struct {
	mu     sync.RWMutex
	k      *koanf.Koanf
	path   string
	format Format
	opts   *Options

	// reloadMu 序列化 Reload，防止慢的旧读取覆盖新配置。
	reloadMu sync.Mutex
}

// Load 从文件路径加载配置，根据扩展名检测格式。
// 空文件得到空配置。
func Load(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	o := applyOptions(opts)
	k, err := parse(data, format, o.Delim)
	if err != nil {
		return nil, err
	}
	return &File{k: k, path: path, format: format, opts: o}, nil
}

// Parse 从字节数据解析配置，需要显式指定格式。
// 返回的 File 不支持 Reload 和 Watch。
func Parse(data []byte, format Format, opts ...Option) (*File, error) {
	if !isValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	o := applyOptions(opts)
	k, err := parse(data, format, o.Delim)
	if err != nil {
		return nil, err
	}
	return &File{k: k, format: format, opts: o}, nil
}

func (f *File) client() *koanf.Koanf {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.k
}

// Section 返回 key 下的原始配置树（副本），key 为空时返回整个配置。
// key 不存在或不是对象时返回空 map。
func (f *File) Section(key string) map[string]any {
	k := f.client()
	if key == "" {
		return k.Raw()
	}
	return k.Cut(key).Raw()
}

// Exists 报告 key 是否存在。
func (f *File) Exists(key string) bool {
	return f.client().Exists(key)
}

// Unmarshal 将 path 下的配置反序列化到 target，path 为空时反序列化整个配置。
func (f *File) Unmarshal(path string, target any) error {
	if err := f.client().UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: f.opts.Tag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Reload 重新读取配置文件。失败时保留旧配置。
func (f *File) Reload() error {
	if f.path == "" {
		return ErrNotReloadable
	}

	f.reloadMu.Lock()
	defer f.reloadMu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k, err := parse(data, f.format, f.opts.Delim)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.k = k
	f.mu.Unlock()
	return nil
}

// Path 返回配置文件路径，Parse 创建的 File 返回空字符串。
func (f *File) Path() string {
	return f.path
}

// Format 返回配置格式。
func (f *File) Format() Format {
	return f.format
}

// =============================================================================
// 内部辅助函数
// =============================================================================

func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

func isValidFormat(format Format) bool {
	return format == FormatYAML || format == FormatJSON
}

func parse(data []byte, format Format, delim string) (*koanf.Koanf, error) {
	k := koanf.New(delim)
	if len(data) == 0 {
		return k, nil
	}

	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, ErrUnsupportedFormat
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return k, nil
}
