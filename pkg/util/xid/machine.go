package xid

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
)

const (
	// EnvMachineID 直接指定机器 ID 的环境变量（0-65535）
	EnvMachineID = "XID_MACHINE_ID"

	// EnvPodName K8s Pod 名称环境变量（通过 Downward API 注入）
	EnvPodName = "POD_NAME"

	// EnvHostname 主机名环境变量
	EnvHostname = "HOSTNAME"
)

// ErrNoMachineID 所有机器 ID 获取策略均失败。
var ErrNoMachineID = errors.New("xid: no machine id available")

// 测试注入点
var osHostname = os.Hostname

// DefaultMachineID 获取机器 ID，优先级见包文档。
func DefaultMachineID() (uint16, error) {
	if s := os.Getenv(EnvMachineID); s != "" {
		id, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("xid: invalid %s value %q: %w", EnvMachineID, s, err)
		}
		return uint16(id), nil
	}

	for _, env := range []string{EnvPodName, EnvHostname} {
		if v := os.Getenv(env); v != "" {
			return hashToMachineID(v), nil
		}
	}

	hostname, err := osHostname()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoMachineID, err)
	}
	if hostname == "" {
		return 0, fmt.Errorf("%w: empty hostname", ErrNoMachineID)
	}
	return hashToMachineID(hostname), nil
}

// hashToMachineID 将字符串哈希为 16 位机器 ID。
// FNV-1a 32 位哈希的高低 16 位异或折叠，比直接截断分布更均匀。
func hashToMachineID(s string) uint16 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s)) // hash.Hash.Write never returns error
	b := h.Sum(nil)
	hi := uint16(b[0])<<8 | uint16(b[1])
	lo := uint16(b[2])<<8 | uint16(b[3])
	return hi ^ lo
}
