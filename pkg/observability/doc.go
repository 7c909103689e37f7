// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持 lumberjack 文件轮转
//   - xerrfile: 错误文件记录，将错误以 JSON/XML 写入独立文件
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 自动从 context 中提取追踪信息注入日志
//   - 库代码默认静默，由调用方注入 Logger、MeterProvider、TracerProvider
package observability
