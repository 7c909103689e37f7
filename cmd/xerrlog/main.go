// xerrlog 将错误写入 JSON/XML 错误文件。
//
// 用法:
//
//	xerrlog [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件路径（.yaml/.yml/.json）
//	-d, --dir         错误文件输出目录（覆盖配置文件 errfile.output_folder）
//	    --id          文件名标识符生成函数: millis/uuid/uuidv7/sonyflake
//	    --log-level   诊断日志级别: debug/info/warn/error
//	    --log-format  诊断日志格式: text/json
//	    --log-file    诊断日志文件（按大小轮转），为空时输出到 stderr
//
// 命令:
//
//	log     写入一条错误
//	pipe    从 stdin 逐行读取 NDJSON 错误并写入
//
// 配置文件:
//
//	errfile:
//	  output_folder: ./errors
//	  id_fn: millis
//	formats: [json, xml]
//	log:
//	  level: info
//	  format: text
//	  file: ""
//
// 退出码:
//
//	0: 成功
//	1: 写入失败（文件系统错误、配置文件读取失败、pipe 中有失败的行）
//	2: 参数错误（未知 flag、无效格式、配置值类型错误等）
//
// 示例:
//
//	xerrlog -d ./errors log --name DBError --message "connection refused"
//	xerrlog -c xerrlog.yaml log --format both --retries 3
//	tail -f app-errors.ndjson | xerrlog -c xerrlog.yaml pipe --watch
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
