package xid

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sony/sonyflake/v2"
)

var (
	// ErrInvalidConfig 配置参数无效。
	// sonyflake.New 初始化失败（如机器 ID 获取失败、CheckMachineID 验证不通过）时包裹为此错误。
	ErrInvalidConfig = errors.New("xid: invalid config")

	// ErrOverTimeLimit 时间分量溢出，生成器无法继续生成 ID。
	ErrOverTimeLimit = errors.New("xid: time component overflow")

	// ErrNilGenerator 生成器实例为 nil 或未通过 NewGenerator 创建。
	ErrNilGenerator = errors.New("xid: nil generator (use NewGenerator to create)")
)

type options struct {
	machineID      func() (uint16, error)
	checkMachineID func(uint16) bool
	startTime      time.Time
}

// Option Generator 配置选项
type Option func(*options)

// WithMachineID 设置自定义机器 ID 生成函数，默认 [DefaultMachineID]。
func WithMachineID(fn func() (uint16, error)) Option {
	return func(o *options) {
		o.machineID = fn
	}
}

// WithCheckMachineID 设置机器 ID 验证函数，返回 false 时 NewGenerator 失败。
func WithCheckMachineID(fn func(uint16) bool) Option {
	return func(o *options) {
		o.checkMachineID = fn
	}
}

// WithStartTime 设置 Sonyflake 纪元起点，零值使用 sonyflake 默认值。
func WithStartTime(t time.Time) Option {
	return func(o *options) {
		o.startTime = t
	}
}

// Generator Sonyflake ID 生成器，方法并发安全。
type Generator struct {
	// generateID 生成下一个 ID。默认为 sf.NextID，测试中可替换。
	generateID func() (int64, error)
}

// NewGenerator 创建独立的 Sonyflake 生成器。
func NewGenerator(opts ...Option) (*Generator, error) {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	machineIDFn := o.machineID
	if machineIDFn == nil {
		machineIDFn = DefaultMachineID
	}
	settings := sonyflake.Settings{
		StartTime: o.startTime,
		MachineID: func() (int, error) {
			id, err := machineIDFn()
			return int(id), err
		},
	}
	if o.checkMachineID != nil {
		settings.CheckMachineID = func(id int) bool {
			return o.checkMachineID(uint16(id))
		}
	}

	sf, err := sonyflake.New(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Generator{generateID: sf.NextID}, nil
}

// New 生成新的 ID（int64 格式）。
func (g *Generator) New() (int64, error) {
	if g == nil || g.generateID == nil {
		return 0, ErrNilGenerator
	}
	id, err := g.generateID()
	if err != nil {
		if errors.Is(err, sonyflake.ErrOverTimeLimit) {
			return 0, fmt.Errorf("%w: %w", ErrOverTimeLimit, err)
		}
		return 0, err
	}
	return id, nil
}

// NewString 生成新的 ID（base36 字符串，12-13 个字符）。
func (g *Generator) NewString() (string, error) {
	id, err := g.New()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 36), nil
}

// IDFunc 返回基于该生成器的无参生成函数，生成失败时退化为 [UUIDv7]。
func (g *Generator) IDFunc() func() string {
	return func() string {
		s, err := g.NewString()
		if err != nil {
			return UUIDv7()
		}
		return s
	}
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// defaultGenerator 惰性创建包级默认生成器，失败时返回 nil。
func defaultGenerator() *Generator {
	defaultOnce.Do(func() {
		gen, err := NewGenerator()
		if err == nil {
			defaultGen = gen
		}
	})
	return defaultGen
}

// Sonyflake 使用默认生成器返回 base36 Sonyflake ID。
// 默认生成器不可用时退化为 [UUIDv7]。
func Sonyflake() string {
	gen := defaultGenerator()
	if gen == nil {
		return UUIDv7()
	}
	return gen.IDFunc()()
}
