package xerror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// namedError 自带名称的错误。
type namedError struct {
	name string
	msg  string
}

func (e *namedError) Error() string { return e.msg }
func (e *namedError) Name() string  { return e.name }

// QuotaError 带导出字段的错误。
type QuotaError struct {
	Tenant  string
	Limit   int
	Tags    []string
	Handler func()
	Err     error
	secret  string
}

func (e *QuotaError) Error() string { return "quota exceeded for " + e.Tenant }
func (e *QuotaError) Unwrap() error { return e.Err }

// GenericError 泛型错误类型。
type GenericError[T any] struct {
	Value T
}

func (e GenericError[T]) Error() string { return fmt.Sprint(e.Value) }

func TestName(t *testing.T) {
	syntaxErr := json.Unmarshal([]byte("{"), new(any))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "errors.New", err: errors.New("boom"), want: DefaultName},
		{name: "fmt.Errorf", err: fmt.Errorf("wrap: %w", errors.New("boom")), want: DefaultName},
		{name: "errors.Join", err: errors.Join(errors.New("a"), errors.New("b")), want: DefaultName},
		{name: "pkg/errors", err: pkgerrors.New("boom"), want: DefaultName},
		{name: "PathError", err: &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, want: "PathError"},
		{name: "SyntaxError", err: syntaxErr, want: "SyntaxError"},
		{name: "Name方法", err: &namedError{name: "TypeError", msg: "x"}, want: "TypeError"},
		{name: "Name方法返回空", err: &namedError{msg: "x"}, want: DefaultName},
		{name: "值类型泛型", err: GenericError[int]{Value: 1}, want: "GenericError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.err))
		})
	}
}

func TestSerialize_Nil(t *testing.T) {
	assert.Nil(t, Serialize(nil))
}

func TestSerialize_Plain(t *testing.T) {
	r := Serialize(errors.New("boom"))
	require.NotNil(t, r)

	assert.Equal(t, DefaultName, r.Name)
	assert.Equal(t, "boom", r.Message)
	assert.Empty(t, r.Stack)
	assert.Empty(t, r.Props)
	assert.Nil(t, r.Cause)
	assert.Empty(t, r.Errors)
}

func TestSerialize_Props(t *testing.T) {
	root := errors.New("root")
	r := Serialize(&QuotaError{
		Tenant:  "acme",
		Limit:   3,
		Tags:    []string{"a"},
		Handler: func() {},
		Err:     root,
		secret:  "hidden",
	})
	require.NotNil(t, r)

	assert.Equal(t, "QuotaError", r.Name)
	// 只包含可序列化的导出字段，按声明顺序
	require.Len(t, r.Props, 3)
	assert.Equal(t, Prop{Key: "Tenant", Value: "acme"}, r.Props[0])
	assert.Equal(t, Prop{Key: "Limit", Value: 3}, r.Props[1])
	assert.Equal(t, "Tags", r.Props[2].Key)

	// error 字段通过 cause 表示
	require.NotNil(t, r.Cause)
	assert.Equal(t, "root", r.Cause.Message)
}

func TestSerialize_Chain(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/nope", Err: fs.ErrNotExist}
	r := Serialize(fmt.Errorf("load config: %w", pathErr))
	require.NotNil(t, r)

	assert.Equal(t, DefaultName, r.Name)
	require.NotNil(t, r.Cause)
	assert.Equal(t, "PathError", r.Cause.Name)
	assert.Equal(t, []Prop{{Key: "Op", Value: "open"}, {Key: "Path", Value: "/nope"}}, r.Cause.Props)
	require.NotNil(t, r.Cause.Cause)
	assert.Equal(t, fs.ErrNotExist.Error(), r.Cause.Cause.Message)
}

func TestSerialize_Join(t *testing.T) {
	r := Serialize(errors.Join(errors.New("a"), nil, errors.New("b")))
	require.NotNil(t, r)
	require.Len(t, r.Errors, 2)
	assert.Equal(t, "a", r.Errors[0].Message)
	assert.Equal(t, "b", r.Errors[1].Message)
	assert.Nil(t, r.Cause)
}

func TestSerialize_Stack(t *testing.T) {
	r := Serialize(pkgerrors.New("boom"))
	require.NotNil(t, r)

	assert.True(t, strings.HasPrefix(r.Stack, "Error: boom\n"), "stack: %q", r.Stack)
	assert.Contains(t, r.Stack, "TestSerialize_Stack")
}

func TestSerialize_MaxDepth(t *testing.T) {
	err := errors.New("root")
	for i := range MaxDepth + 5 {
		err = fmt.Errorf("layer %d: %w", i, err)
	}

	r := Serialize(err)
	depth := 0
	for c := r; c.Cause != nil; c = c.Cause {
		depth++
	}
	assert.Equal(t, MaxDepth, depth)
}

// restoredError 自带属性与堆栈的错误。
type restoredError struct {
	msg   string
	stack string
	props []Prop
}

func (e *restoredError) Error() string { return e.msg }
func (e *restoredError) Stack() string { return e.stack }
func (e *restoredError) Props() []Prop { return e.props }
func (e *restoredError) Name() string  { return "RemoteError" }

func TestSerialize_Hooks(t *testing.T) {
	err := &restoredError{
		msg:   "upstream failed",
		stack: "RemoteError: upstream failed\n    at handler (app.js:1:1)",
		props: []Prop{{Key: "code", Value: 502}},
	}
	r := Serialize(err)
	require.NotNil(t, r)
	assert.Equal(t, "RemoteError", r.Name)
	assert.Equal(t, err.stack, r.Stack)
	assert.Equal(t, []Prop{{Key: "code", Value: 502}}, r.Props)
}
