package xlog

import (
	"log/slog"
	"sync/atomic"
)

// Discard 返回丢弃所有输出的 Logger，Enabled 对任何级别返回 false。
// 库代码在调用方未注入 logger 时使用它。
func Discard() LoggerWithLevel {
	return &xlogger{
		handler:        slog.DiscardHandler,
		levelVar:       new(slog.LevelVar),
		errorCount:     new(atomic.Uint64),
		inErrorHandler: new(atomic.Bool),
	}
}
