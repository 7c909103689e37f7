// Package xerror 将 error 序列化为有序的结构化记录。
//
// [Serialize] 对一个 error 做内省，生成 [Record]：
//
//   - name: 错误名称，见 [Name]
//   - message: err.Error()
//   - stack: 错误携带 github.com/pkg/errors 堆栈时输出 "名称: 消息" 加调用帧；
//     实现 Stack() string 的错误直接使用其返回值
//   - props: 实现 Props() []Prop 时使用其返回值，否则为错误结构体的导出字段
//     （按声明顺序，跳过 error/func/chan 类型字段）
//   - cause: 单个 Unwrap() error 链
//   - errors: Unwrap() []error（如 errors.Join）的每个子错误
//
// 嵌套深度受 [MaxDepth] 限制，超出部分被截断。
//
// # 错误名称
//
// [Name] 的规则依次为：
//
//  1. 实现 Name() string 且返回非空值时使用该值
//  2. 动态类型（去掉指针）为导出类型时使用类型名，如 "PathError"、"SyntaxError"
//  3. 其余情况（errors.New、fmt.Errorf 等未导出类型）返回 [DefaultName] "Error"
//
// # 编码
//
// Record 同时实现 [json.Marshaler] 与 [xml.Marshaler]，两种格式的字段顺序一致，
// 可直接交给 xjson / xxml 渲染。
//
// XML 中 props 的每一项以键为元素名，如 <Tenant>acme</Tenant>；键不是合法 XML 名称
// （含空格、以数字开头、为空等）时写为 <prop key="a b">1</prop>。
package xerror
