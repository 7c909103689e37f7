// Package xfile 提供错误文件落盘所需的文件系统能力。
//
// 本包把"创建目录"和"写入整个文件"两个操作抽象为 [FS] 接口，
// 默认实现基于 [github.com/spf13/afero]：
//
//   - [OS]: 绑定进程真实文件系统，仅应在程序最外层入口使用
//   - [Mem]: 内存文件系统，用于测试和演示
//   - [NewFS]: 包装任意 afero.Fs（如只读层、BasePathFs）
//
// # 目录创建
//
// [EnsureDir] 只创建一层目录，并把"已存在"视为成功。
// 与"先检查再创建"相比，并发调用方不会因为彼此的创建动作而失败：
//
//	if err := xfile.EnsureDir(fsys, "./errors", xfile.DefaultDirPerm); err != nil {
//	    return err
//	}
//
// 父目录不存在时 EnsureDir 返回底层错误，不会递归创建。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	err := xfile.EnsureDir(fsys, "bad\x00dir", xfile.DefaultDirPerm)
//	if errors.Is(err, xfile.ErrNullByte) {
//	    // 处理非法路径
//	}
//
// 文件系统自身返回的错误（权限不足、磁盘满等）原样透传。
package xfile
