package xjson

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testUser 用于测试的用户结构体，避免在多个测试函数中重复定义。
type testUser struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestPrettyE(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		contains string // 用于子串匹配（exact 为空时生效）
		exact    string // 精确匹配
		wantErr  bool
	}{
		{
			name:     "struct",
			input:    testUser{Name: "Alice", Age: 30},
			contains: `"name": "Alice"`,
		},
		{
			name:     "map",
			input:    map[string]int{"a": 1},
			contains: `"a": 1`,
		},
		{
			name:  "nil",
			input: nil,
			exact: "null",
		},
		{
			name:  "short_slice_single_line",
			input: []int{1, 2, 3},
			exact: "[1, 2, 3]",
		},
		{
			name:  "empty_struct",
			input: struct{}{},
			exact: "{}",
		},
		{
			name:  "empty_string",
			input: "",
			exact: `""`,
		},
		{
			name:    "error_NaN",
			input:   math.NaN(),
			wantErr: true,
		},
		{
			name:    "error_channel",
			input:   make(chan int),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrettyE(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				assert.True(t, errors.Is(err, ErrMarshal), "error should wrap ErrMarshal")
				return
			}
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(got)), "output should be valid JSON: %s", got)
			if tt.exact != "" {
				assert.Equal(t, tt.exact, got)
			} else {
				assert.Contains(t, got, tt.contains)
			}
		})
	}
}

func TestPrettyE_Indent(t *testing.T) {
	got, err := PrettyE(testUser{Name: "Alice", Age: 30}, WithIndent("    "))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"name\": \"Alice\",\n    \"age\": 30\n}", got)
}

func TestPrettyE_Width(t *testing.T) {
	long := make([]string, 20)
	for i := range long {
		long[i] = strings.Repeat("x", 10)
	}

	// 超出宽度的数组展开为多行
	got, err := PrettyE(long)
	require.NoError(t, err)
	assert.Greater(t, strings.Count(got, "\n"), 1)

	// 放宽宽度后保持单行
	got, err = PrettyE(long, WithWidth(1000))
	require.NoError(t, err)
	assert.NotContains(t, got, "\n")

	// 非正宽度回退为默认值
	got, err = PrettyE(long, WithWidth(-1), nil)
	require.NoError(t, err)
	assert.Greater(t, strings.Count(got, "\n"), 1)
}

func TestPrettyE_KeepsKeyOrder(t *testing.T) {
	type ordered struct {
		Z string `json:"z"`
		A string `json:"a"`
	}
	got, err := PrettyE(ordered{Z: "1", A: "2"})
	require.NoError(t, err)
	assert.Less(t, strings.Index(got, `"z"`), strings.Index(got, `"a"`))
}

func TestPretty(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		contains string // 用于子串匹配（exact 为空时生效）
		exact    string // 精确匹配
	}{
		{
			name:     "struct",
			input:    testUser{Name: "Alice", Age: 30},
			contains: `"name": "Alice"`,
		},
		{
			name:  "nil",
			input: nil,
			exact: "null",
		},
		{
			name:  "slice",
			input: []int{1, 2, 3},
			exact: "[\n  1,\n  2,\n  3\n]",
		},
		{
			name:     "error_NaN",
			input:    math.NaN(),
			contains: "<marshal error:",
		},
		{
			name:     "error_channel",
			input:    make(chan int),
			contains: "<marshal error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pretty(tt.input)
			if tt.exact != "" {
				assert.Equal(t, tt.exact, got)
			} else {
				assert.Contains(t, got, tt.contains)
			}
		})
	}
}
