// Package xlog 提供基于 log/slog 的结构化日志。
//
// 特性：
//   - 强制 context 传递，自动注入 OpenTelemetry trace_id/span_id
//   - 动态级别控制，派生 logger 共享级别
//   - 可选 lumberjack 文件轮转，Build() 返回 cleanup 函数
//   - [Discard] 提供零开销的静默 logger，作为库的默认值
//
// 基本用法：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "error file written", xlog.Path(path))
//
// 文件轮转：
//
//	logger, cleanup, err := xlog.New().
//		SetRotation("/var/log/xerrlog.log", xlog.WithMaxSize(100)).
//		Build()
//
// # WithGroup 与注入字段
//
// 对 logger 调用 WithGroup 后，trace_id、span_id 会被归入 group 下
// （slog handler 架构的固有限制）。
package xlog
