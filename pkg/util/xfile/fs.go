package xfile

import (
	"os"

	"github.com/spf13/afero"
)

// DefaultFilePerm 错误文件默认权限
//
// 0640：所有者读写，组只读，其他无权限。
const DefaultFilePerm = 0640

// FS 文件系统能力
//
// 只包含错误文件落盘需要的两个操作，便于 mock 和替换。
// 实现必须是并发安全的（afero 的 OsFs 与 MemMapFs 均满足）。
type FS interface {
	// Mkdir 创建单层目录，父目录不存在时返回错误。
	// 目录已存在时返回的错误应满足 errors.Is(err, fs.ErrExist)。
	Mkdir(name string, perm os.FileMode) error

	// WriteFile 将 data 完整写入 name（截断已有内容）。
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// aferoFS 基于 afero.Fs 的 FS 实现。
type aferoFS struct {
	fs afero.Fs
}

// 编译时接口检查
var _ FS = (*aferoFS)(nil)

// NewFS 用 afero.Fs 构造 FS。
func NewFS(fs afero.Fs) (FS, error) {
	if fs == nil {
		return nil, ErrNilFs
	}
	return &aferoFS{fs: fs}, nil
}

// OS 返回绑定真实文件系统的 FS。
func OS() FS {
	return &aferoFS{fs: afero.NewOsFs()}
}

// Mem 返回新的内存文件系统 FS 以及底层 afero.Fs（用于读回断言）。
func Mem() (FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return &aferoFS{fs: mem}, mem
}

func (a *aferoFS) Mkdir(name string, perm os.FileMode) error {
	return a.fs.Mkdir(name, perm)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}
