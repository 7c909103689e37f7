package xerror

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultName 无法从类型推断名称时使用的错误名称。
	DefaultName = "Error"

	// MaxDepth cause/errors 的最大嵌套层数。
	MaxDepth = 16
)

// namer 自带名称的错误。
type namer interface {
	Name() string
}

// stackTracer github.com/pkg/errors 创建的错误携带的堆栈。
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stacker 自带已格式化堆栈的错误（如从外部输入还原的错误）。
type stacker interface {
	Stack() string
}

// propser 自行提供属性的错误，优先于结构体字段反射。
type propser interface {
	Props() []Prop
}

var errorType = reflect.TypeFor[error]()

// Serialize 将 err 序列化为 Record。err 为 nil 时返回 nil。
func Serialize(err error) *Record {
	return serialize(err, 0)
}

func serialize(err error, depth int) *Record {
	if err == nil {
		return nil
	}
	r := &Record{
		Name:    Name(err),
		Message: err.Error(),
		Props:   props(err),
	}
	switch st := err.(type) {
	case stackTracer:
		r.Stack = fmt.Sprintf("%s: %s%+v", r.Name, r.Message, st.StackTrace())
	case stacker:
		r.Stack = st.Stack()
	}
	if depth >= MaxDepth {
		return r
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if c := serialize(e, depth+1); c != nil {
				r.Errors = append(r.Errors, c)
			}
		}
	case interface{ Unwrap() error }:
		r.Cause = serialize(u.Unwrap(), depth+1)
	}
	return r
}

// Name 返回 err 的名称，规则见包文档。err 为 nil 时返回空字符串。
func Name(err error) string {
	if err == nil {
		return ""
	}
	if n, ok := err.(namer); ok {
		if s := n.Name(); s != "" {
			return s
		}
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	// 泛型实例化类型名形如 "Wrapped[int]"，只取基础名称
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" || !token.IsExported(name) {
		return DefaultName
	}
	return name
}

// props 提取错误属性：Props() 方法，或错误结构体的导出字段。
func props(err error) []Prop {
	if p, ok := err.(propser); ok {
		return p.Props()
	}
	v := reflect.ValueOf(err)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var out []Prop
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous || skipType(f.Type) {
			continue
		}
		out = append(out, Prop{Key: f.Name, Value: v.Field(i).Interface()})
	}
	return out
}

// skipType 不作为 props 输出的字段类型：error（由 cause 表示）以及无法序列化的类型。
func skipType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return t.Implements(errorType)
}
