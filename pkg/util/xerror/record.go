package xerror

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Prop 错误的一个导出字段。
type Prop struct {
	Key   string
	Value any
}

// Record 序列化后的错误记录。
type Record struct {
	Name    string
	Message string
	Stack   string
	Props   []Prop
	Cause   *Record
	Errors  []*Record
}

// 编译时接口检查
var (
	_ json.Marshaler = Record{}
	_ xml.Marshaler  = Record{}
)

// MarshalJSON 按固定顺序输出字段，空的 stack/props/cause/errors 省略。
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key) //nolint:errcheck // string 编码不会失败
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(data)
		return nil
	}

	if err := write("name", r.Name); err != nil {
		return nil, err
	}
	if err := write("message", r.Message); err != nil {
		return nil, err
	}
	if r.Stack != "" {
		if err := write("stack", r.Stack); err != nil {
			return nil, err
		}
	}
	if len(r.Props) > 0 {
		if err := write("props", propsJSON(r.Props)); err != nil {
			return nil, err
		}
	}
	if r.Cause != nil {
		if err := write("cause", r.Cause); err != nil {
			return nil, err
		}
	}
	if len(r.Errors) > 0 {
		if err := write("errors", r.Errors); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// propsJSON 有序 props 对象。
type propsJSON []Prop

func (p propsJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(prop.Key) //nolint:errcheck // string 编码不会失败
		buf.Write(k)
		buf.WriteByte(':')
		data, err := json.Marshal(prop.Value)
		if err != nil {
			// 无法编码的值（如 NaN）退化为字符串形式
			data, _ = json.Marshal(fmt.Sprint(prop.Value)) //nolint:errcheck // string 编码不会失败
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalXML 以 start 为根元素，按与 JSON 相同的顺序输出子元素。
// start 为空时使用 "error"。
func (r Record) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if start.Name.Local == "" {
		start.Name.Local = "error"
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeText(e, "name", r.Name); err != nil {
		return err
	}
	if err := encodeText(e, "message", r.Message); err != nil {
		return err
	}
	if r.Stack != "" {
		if err := encodeText(e, "stack", r.Stack); err != nil {
			return err
		}
	}
	if len(r.Props) > 0 {
		if err := encodeProps(e, r.Props); err != nil {
			return err
		}
	}
	if r.Cause != nil {
		if err := e.EncodeElement(*r.Cause, element("cause")); err != nil {
			return err
		}
	}
	if len(r.Errors) > 0 {
		if err := encodeErrors(e, r.Errors); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

func element(name string) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}}
}

func encodeText(e *xml.Encoder, name, text string) error {
	return e.EncodeElement(text, element(name))
}

func encodeProps(e *xml.Encoder, props []Prop) error {
	start := element("props")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range props {
		el := element(p.Key)
		if !isXMLName(p.Key) {
			el = element(propElement)
			el.Attr = []xml.Attr{{Name: xml.Name{Local: "key"}, Value: p.Key}}
		}
		if err := e.EncodeElement(propText(p.Value), el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// propElement 键不是合法 XML 名称时使用的元素名，键写入 key 属性。
const propElement = "prop"

// isXMLName 报告 s 能否直接作为元素名：字母或 "_" 开头，其后为字母、数字、"_"、"-"、"."，
// 且不以保留前缀 "xml" 开头。冒号（命名空间）不接受。
func isXMLName(s string) bool {
	if s == "" || strings.HasPrefix(strings.ToLower(s), "xml") {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}

func encodeErrors(e *xml.Encoder, errs []*Record) error {
	start := element("errors")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, r := range errs {
		if r == nil {
			continue
		}
		if err := e.EncodeElement(*r, element("error")); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// propText 将 prop 值转换为 XML 文本：标量直接格式化，复合值使用 JSON。
func propText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprint(v)
	}
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprint(v)
}
