// Package xid 提供错误文件名使用的标识符生成函数。
//
// 每个生成函数都是无参函数，返回可直接嵌入文件名的字符串：
//
//   - [Millis]: 当前 Unix 毫秒时间戳（十进制），默认生成函数
//   - [UUID]: 随机 UUID v4
//   - [UUIDv7]: 时间有序的 UUID v7
//   - [Sonyflake]: Sonyflake ID（base36，12-13 字符，可排序）
//
// 按名称查找（用于配置文件）：
//
//	fn, ok := xid.Lookup("uuidv7")
//
// # 唯一性
//
// Millis 在同一毫秒内会重复。调用方的写入频率可能超过每毫秒一次时，
// 应选择 UUID 系列或 Sonyflake，避免错误文件相互覆盖。
//
// # Sonyflake
//
// [Generator] 是对 sony/sonyflake/v2 的薄封装。[NewGenerator] 创建独立实例，
// 包级 [Sonyflake] 使用惰性初始化的默认实例。
//
// 机器 ID 按以下顺序获取（见 [DefaultMachineID]）：
//
//  1. XID_MACHINE_ID 环境变量（直接指定数字 0-65535）
//  2. POD_NAME 环境变量的哈希值（K8s Downward API）
//  3. HOSTNAME 环境变量的哈希值
//  4. os.Hostname() 的哈希值
//
// 哈希方式存在碰撞风险，多实例写入同一目录时建议显式配置 XID_MACHINE_ID。
//
// 生成函数签名不返回错误。Sonyflake 生成失败（时间分量溢出、默认实例初始化失败）
// 时退化为 [UUIDv7]，保证文件名总能生成。
//
// # 线程安全
//
// 所有公开函数都可以被多个 goroutine 并发调用。
package xid
