// Package xconf 提供配置文件的加载、解析和热重载，基于 koanf 实现。
//
// xconf 定位为最小化配置加载器，不负责必选字段校验和默认值注入，
// 这些由使用方（如 cmd/xerrlog）按需完成。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 用法
//
//	f, err := xconf.Load("xerrlog.yaml")
//	if err != nil {
//		return err
//	}
//	// 原始 map，交给 xerrfile.Logger.Apply 做类型校验
//	section := f.Section("errfile")
//
//	var cfg struct {
//		Formats []string `koanf:"formats"`
//	}
//	err = f.Unmarshal("", &cfg)
//
// Section 返回未经类型转换的值，配置中的非字符串路径等错误会原样传给下游校验。
// Unmarshal 使用 mapstructure 弱类型转换（字符串 "8080" 可转为 int）。
//
// # 并发安全
//
// 所有方法都是并发安全的。Reload 解析成功后才替换内部 koanf 实例，
// 解析失败时保留旧配置。
//
// # 配置监视
//
// [Watch] 基于 fsnotify 监视配置文件所在目录（兼容 vim/emacs 原子写入），
// 内置防抖。Stop() 返回后不会再触发新的回调。从字节数据创建的 File 不支持监视。
package xconf
