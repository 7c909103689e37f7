package xfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// EnsureDir 单元测试
// =============================================================================

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		dir     string
		wantErr error
	}{
		{name: "创建单层目录", dir: filepath.Join(tmpDir, "errors")},
		{name: "目录已存在", dir: tmpDir},
		{name: "当前目录", dir: "."},
		{name: "根目录", dir: "/"},
		{name: "空路径", dir: "", wantErr: ErrEmptyPath},
		{name: "空字节", dir: "bad\x00dir", wantErr: ErrNullByte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureDir(OS(), tt.dir, DefaultDirPerm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			info, err := os.Stat(tt.dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "errors")

	require.NoError(t, EnsureDir(OS(), dir, DefaultDirPerm))
	// 第二次调用（目录已存在）不报错
	require.NoError(t, EnsureDir(OS(), dir, DefaultDirPerm))
}

func TestEnsureDir_NoParent(t *testing.T) {
	// 只创建一层目录，父目录缺失时返回底层错误
	dir := filepath.Join(t.TempDir(), "missing", "errors")

	err := EnsureDir(OS(), dir, DefaultDirPerm)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEnsureDir_InvalidPerm(t *testing.T) {
	fsys, mem := Mem()

	err := EnsureDir(fsys, "errors", 0600)
	require.ErrorIs(t, err, ErrInvalidPerm)

	// 校验失败时不应触碰文件系统
	exists, err := afero.DirExists(mem, "errors")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEnsureDir_Mem(t *testing.T) {
	fsys, mem := Mem()

	require.NoError(t, EnsureDir(fsys, "errors", DefaultDirPerm))
	require.NoError(t, EnsureDir(fsys, "errors", DefaultDirPerm))

	exists, err := afero.DirExists(mem, "errors")
	require.NoError(t, err)
	assert.True(t, exists)
}

// mkdirErrFS Mkdir 总是失败的 FS。
type mkdirErrFS struct {
	err error
}

func (m mkdirErrFS) Mkdir(string, os.FileMode) error { return m.err }

func (m mkdirErrFS) WriteFile(string, []byte, os.FileMode) error { return nil }

func TestEnsureDir_PropagatesError(t *testing.T) {
	boom := errors.New("disk on fire")

	err := EnsureDir(mkdirErrFS{err: boom}, "errors", DefaultDirPerm)
	assert.ErrorIs(t, err, boom)

	// fs.ErrExist 被视为成功
	err = EnsureDir(mkdirErrFS{err: &fs.PathError{Op: "mkdir", Path: "errors", Err: fs.ErrExist}}, "errors", DefaultDirPerm)
	assert.NoError(t, err)
}

func TestValidatePerm(t *testing.T) {
	tests := []struct {
		perm    os.FileMode
		wantErr bool
	}{
		{0750, false},
		{0700, false},
		{0100, false},
		{0600, true},
		{0077, true},
	}
	for _, tt := range tests {
		err := ValidatePerm(tt.perm)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPerm, "perm %04o", tt.perm)
		} else {
			assert.NoError(t, err, "perm %04o", tt.perm)
		}
	}
}
