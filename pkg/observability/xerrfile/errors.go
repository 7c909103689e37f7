package xerrfile

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotAString outputFolder 配置值不是字符串。
	ErrPathNotAString = errors.New("xerrfile: output folder is not a string")

	// ErrIDFnNotAFunction idFn 配置值不是可用的生成函数。
	ErrIDFnNotAFunction = errors.New("xerrfile: id function is not a function")

	// ErrNilFileSystem 文件系统能力为 nil。
	ErrNilFileSystem = errors.New("xerrfile: nil file system")

	// ErrNilError 待记录的错误为 nil。
	ErrNilError = errors.New("xerrfile: nil error")

	// ErrRender 错误序列化或渲染失败。
	ErrRender = errors.New("xerrfile: render failed")
)

// 配置错误名称，与 ConfigError.Name 返回值一致。
const (
	NamePathNotAString   = "PathNotAString"
	NameIDFnNotAFunction = "IdFnNotAFunction"
)

const docURL = "https://pkg.go.dev/github.com/omeyang/xerrlog/pkg/observability/xerrfile"

// ConfigError 配置值校验失败，携带出错字段与原始值。
type ConfigError struct {
	// Kind 为 ErrPathNotAString 或 ErrIDFnNotAFunction。
	Kind  error
	Field string
	Value any
}

// newPathError 构造 outputFolder 类型错误。
func newPathError(field string, value any) *ConfigError {
	return &ConfigError{Kind: ErrPathNotAString, Field: field, Value: value}
}

// newIDFnError 构造 idFn 类型错误。
func newIDFnError(field string, value any) *ConfigError {
	return &ConfigError{Kind: ErrIDFnNotAFunction, Field: field, Value: value}
}

func (e *ConfigError) Error() string {
	var want, anchor string
	if errors.Is(e.Kind, ErrIDFnNotAFunction) {
		want, anchor = "a function", "ErrIDFnNotAFunction"
	} else {
		want, anchor = "a string", "ErrPathNotAString"
	}
	return fmt.Sprintf("xerrfile: '%s': %v must be %s! See %s#%s for more info on errors.",
		e.Field, e.Value, want, docURL, anchor)
}

// Name 返回错误名称，写入错误文件时作为文件名前缀。
func (e *ConfigError) Name() string {
	if errors.Is(e.Kind, ErrIDFnNotAFunction) {
		return NameIDFnNotAFunction
	}
	return NamePathNotAString
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}
