// Package xerrfile 将捕获的错误序列化为 JSON 或 XML 文件落盘。
//
// 文件路径：{outputFolder}/{name}_{idFn()}.json（或 .xml）。
//   - name 取自错误本身（见 [xerror.Name]）：Name() 方法、导出的动态类型名或 "Error"
//   - idFn 每次写入调用一次，返回值原样嵌入文件名，不做任何清洗
//
// 基本用法：
//
//	logger, err := xerrfile.NewOS(xerrfile.WithOutputFolder("./errors"))
//	if err != nil {
//		return err
//	}
//	path, err := logger.LogJSON(ctx, caught)
//
// # 配置
//
// outputFolder 默认为 "."，idFn 默认为 [xid.Millis]。所有设置路径
// （构造选项、Set*、Apply）使用同一规范化规则：空字符串重置为 "."，
// 去除末尾的 "/"，仅由 "/" 组成的路径保持为 "/"。
//
// 来自配置文件的未类型化值通过 [WithConfig] 或 [Logger.Apply] 传入，
// 类型不符时返回 [*ConfigError]（可用 errors.Is 匹配 [ErrPathNotAString] 或
// [ErrIDFnNotAFunction]）。校验先于任何文件系统访问。
//
// # 写入
//
// 每次写入先在读锁下快照 outputFolder 与 idFn，之后的 Set* 不影响进行中的调用。
// 随后创建单层目录（已存在视为成功），再写入文件。目录创建或写入失败时原样返回
// 文件系统错误，不重试；重试策略属于调用方。
//
// 不做去重、限流、轮转或 fsync。两个调用生成相同文件名时，文件内容的竞争由调用方承担。
//
// # 可观测性
//
// 默认不输出任何诊断日志，通过 [WithLogger] 注入。指标与追踪默认使用 otel 全局 Provider：
//   - xerrfile.write.total: 写入次数（format, result）
//   - xerrfile.write.duration: 写入耗时（秒）
//   - span xerrfile.LogJSON / xerrfile.LogXML
package xerrfile
