// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 文件系统能力，基于 afero，目录创建与权限校验
//   - xjson: JSON 序列化工具，紧凑优先的 Pretty 格式化输出
//   - xxml: XML 渲染，缩进与根元素控制
//   - xerror: 错误序列化，名称、堆栈、属性与 cause 链
//   - xid: 标识符生成，毫秒时间戳、UUID、Sonyflake
//
// 设计原则：
//   - 小而独立，只依赖标准库与少量成熟三方库
//   - 错误以包级哨兵值暴露，支持 errors.Is
package util
