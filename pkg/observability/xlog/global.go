package xlog

import "sync/atomic"

// globalLogger 进程级默认 Logger，未设置时为 Discard。
var globalLogger atomic.Pointer[LoggerWithLevel]

// Default 返回进程级默认 Logger。
//
// 定位：命令行工具在 main 中 SetDefault 一次，库代码仍通过选项显式注入。
func Default() LoggerWithLevel {
	if l := globalLogger.Load(); l != nil {
		return *l
	}
	return Discard()
}

// SetDefault 替换进程级默认 Logger，nil 被忽略。
func SetDefault(l LoggerWithLevel) {
	if l == nil {
		return
	}
	globalLogger.Store(&l)
}
