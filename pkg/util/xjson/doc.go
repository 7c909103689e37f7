// Package xjson 提供 JSON 序列化工具函数。
//
// # 功能概览
//
//   - [PrettyE]: 将任意值序列化为格式化的 JSON 字符串，返回 (string, error)。
//     失败时返回空字符串和 [ErrMarshal] 包装的错误。
//     布局由 [github.com/tidwall/pretty] 完成：对象逐键换行缩进，
//     短数组在宽度限制内保持单行（如 ["a", "b"]）。
//   - [Pretty]: 便捷版本，用于日志和调试输出。失败时返回
//     "<marshal error: ...>" 标记字符串（非合法 JSON），便于在日志中识别序列化问题。
//
// 默认缩进两个空格、单行宽度 80，可通过 [WithIndent]、[WithWidth] 调整：
//
//	s, err := xjson.PrettyE(record, xjson.WithIndent("    "))
//
// 键顺序保持 encoding/json 的输出顺序（结构体字段声明顺序或 json.Marshaler 自定义顺序）。
//
// # 注意事项
//
// 遵循 [encoding/json] 默认行为，HTML 特殊字符（<, >, &）会被转义为
// Unicode 形式（\u003c, \u003e, \u0026）。
package xjson
