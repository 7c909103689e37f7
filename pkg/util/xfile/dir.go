package xfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultDirPerm 默认目录权限
//
// 0750 权限说明：
//   - 所有者：读写执行 (7)
//   - 组：读执行 (5)
//   - 其他：无权限 (0)
//
// 符合 gosec G301 安全建议
const DefaultDirPerm = 0750

// containsNullByte 检测路径是否包含空字节。
func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// EnsureDir 确保目录 dir 存在
//
// 参数：
//   - fsys: 文件系统能力
//   - dir: 目录路径（不是文件路径），不能为空，不能包含空字节
//   - perm: 目录权限，必须包含所有者执行位（0100），否则目录无法遍历
//
// 只创建一层目录，不创建中间父目录。目录已存在时返回 nil，
// 且不会修改其权限。"." 与 "/" 视为总是存在。
//
// 设计决策: 直接调用 Mkdir 并忽略 fs.ErrExist，而不是先 Stat 再 Mkdir，
// 使并发调用方之间不存在检查与创建的竞态窗口。
func EnsureDir(fsys FS, dir string, perm os.FileMode) error {
	if dir == "" {
		return fmt.Errorf("directory is required: %w", ErrEmptyPath)
	}
	if containsNullByte(dir) {
		return fmt.Errorf("directory contains null byte: %w", ErrNullByte)
	}
	if err := ValidatePerm(perm); err != nil {
		return err
	}
	if dir == "." || dir == "/" {
		return nil
	}
	err := fsys.Mkdir(dir, perm)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return nil
}

// ValidatePerm 校验目录权限是否包含所有者执行位（0100），否则目录无法进入和遍历。
func ValidatePerm(perm os.FileMode) error {
	if perm&0100 == 0 {
		return fmt.Errorf("directory permission %04o missing owner execute bit: %w", perm, ErrInvalidPerm)
	}
	return nil
}
