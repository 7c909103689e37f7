package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/omeyang/xerrlog/pkg/util/xerror"
)

// errEmptyName 输入行缺少 name。
var errEmptyName = errors.New("name is required")

// inputRecord pipe 命令读取的一行 NDJSON。
type inputRecord struct {
	Name    string         `json:"name"`
	Message string         `json:"message"`
	Stack   string         `json:"stack"`
	Props   map[string]any `json:"props"`
	Cause   *inputRecord   `json:"cause"`
}

// inputError 由命令行参数或 NDJSON 还原的错误，名称、堆栈与属性按原样序列化。
type inputError struct {
	name    string
	message string
	stack   string
	props   []xerror.Prop
	cause   error
}

func (e *inputError) Error() string        { return e.message }
func (e *inputError) Name() string         { return e.name }
func (e *inputError) Stack() string        { return e.stack }
func (e *inputError) Props() []xerror.Prop { return e.props }
func (e *inputError) Unwrap() error        { return e.cause }

// newInputError 创建 log 命令使用的错误，堆栈为 "name: message"。
func newInputError(name, message string) *inputError {
	return &inputError{
		name:    name,
		message: message,
		stack:   name + ": " + message,
	}
}

// parseLine 解析一行 NDJSON。
func parseLine(line []byte) (*inputError, error) {
	var rec inputRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return rec.toError(0)
}

func (r *inputRecord) toError(depth int) (*inputError, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, errEmptyName
	}
	e := &inputError{
		name:    name,
		message: r.Message,
		stack:   r.Stack,
		props:   sortedProps(r.Props),
	}
	if r.Cause != nil && depth < xerror.MaxDepth {
		cause, err := r.Cause.toError(depth + 1)
		if err != nil {
			return nil, fmt.Errorf("cause: %w", err)
		}
		e.cause = cause
	}
	return e, nil
}

// sortedProps 将属性按键排序，保证输出稳定。
func sortedProps(m map[string]any) []xerror.Prop {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	props := make([]xerror.Prop, 0, len(keys))
	for _, k := range keys {
		props = append(props, xerror.Prop{Key: k, Value: m[k]})
	}
	return props
}
