// Package xxml 提供 XML 文档渲染工具函数。
//
// [Render] 将任意可被 [encoding/xml] 编码的值包裹在指定名称的根元素下，
// 输出带 XML 声明的完整文档：
//
//	s, err := xxml.Render("error", record)
//	// <?xml version="1.0" encoding="UTF-8"?>
//	// <error>
//	//     <name>TypeError</name>
//	//     ...
//	// </error>
//
// 根元素名称优先于值自身的 XMLName。值实现 [xml.Marshaler] 时，
// 传入的起始元素即为根元素，由实现自行决定子元素顺序。
//
// 失败时返回空字符串和 [ErrMarshal] 包装的错误（如 map 等 encoding/xml 不支持的类型）。
package xxml
