package xid

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sony/sonyflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillis(t *testing.T) {
	orig := nowFunc
	t.Cleanup(func() { nowFunc = orig })
	nowFunc = func() time.Time { return time.UnixMilli(1700000000123) }

	assert.Equal(t, "1700000000123", Millis())
}

func TestMillis_Realtime(t *testing.T) {
	before := time.Now().UnixMilli()
	got, err := strconv.ParseInt(Millis(), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got, before)
}

func TestUUID(t *testing.T) {
	id, err := uuid.Parse(UUID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestUUIDv7(t *testing.T) {
	id, err := uuid.Parse(UUIDv7())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, UUIDv7(), UUIDv7())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"millis", "millis", true},
		{"uuid", "uuid", true},
		{"uuidv7 大写", "UUIDv7", true},
		{"sonyflake 带空白", "  sonyflake ", true},
		{"未知名称", "snowflake", false},
		{"空名称", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := Lookup(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, fn)
				assert.NotEmpty(t, fn())
			} else {
				assert.Nil(t, fn)
			}
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{NameMillis, NameSonyflake, NameUUID, NameUUIDv7}, Names())
}

func fixedMachineID(id uint16) Option {
	return WithMachineID(func() (uint16, error) { return id, nil })
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator(fixedMachineID(7))
	require.NoError(t, err)

	a, err := gen.NewString()
	require.NoError(t, err)
	b, err := gen.NewString()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	ia, err := strconv.ParseInt(a, 36, 64)
	require.NoError(t, err)
	ib, err := strconv.ParseInt(b, 36, 64)
	require.NoError(t, err)
	assert.Less(t, ia, ib)
}

func TestNewGenerator_MachineIDError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewGenerator(WithMachineID(func() (uint16, error) { return 0, boom }))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, boom)
}

func TestNewGenerator_CheckMachineID(t *testing.T) {
	_, err := NewGenerator(fixedMachineID(3), WithCheckMachineID(func(id uint16) bool { return id != 3 }))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewGenerator_NilOption(t *testing.T) {
	gen, err := NewGenerator(nil, fixedMachineID(1), WithStartTime(time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	_, err = gen.New()
	assert.NoError(t, err)
}

func TestGenerator_Nil(t *testing.T) {
	var gen *Generator
	_, err := gen.New()
	require.ErrorIs(t, err, ErrNilGenerator)

	_, err = (&Generator{}).NewString()
	assert.ErrorIs(t, err, ErrNilGenerator)
}

func TestGenerator_OverTimeLimit(t *testing.T) {
	gen := &Generator{generateID: func() (int64, error) { return 0, sonyflake.ErrOverTimeLimit }}
	_, err := gen.New()
	require.ErrorIs(t, err, ErrOverTimeLimit)
	assert.ErrorIs(t, err, sonyflake.ErrOverTimeLimit)
}

func TestGenerator_IDFunc_Fallback(t *testing.T) {
	gen := &Generator{generateID: func() (int64, error) { return 0, errors.New("broken") }}
	id, err := uuid.Parse(gen.IDFunc()())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSonyflake(t *testing.T) {
	t.Setenv(EnvMachineID, "42")
	assert.NotEmpty(t, Sonyflake())
}

func TestGenerator_Concurrent(t *testing.T) {
	gen, err := NewGenerator(fixedMachineID(9))
	require.NoError(t, err)
	fn := gen.IDFunc()

	const workers, perWorker = 8, 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := fn()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}
