package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"
)

// 退出码
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError 参数错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// createApp 创建 CLI 应用。
func createApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xerrlog",
		Usage:     "将错误写入 JSON/XML 错误文件",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
				Sources: cli.EnvVars("XERRLOG_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "错误文件输出目录",
				Sources: cli.EnvVars("XERRLOG_DIR"),
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "文件名标识符生成函数: millis/uuid/uuidv7/sonyflake",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "诊断日志级别: debug/info/warn/error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "诊断日志格式: text/json",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "诊断日志文件，为空时输出到 stderr",
			},
		},
		Commands: []*cli.Command{
			createLogCommand(),
			createPipeCommand(),
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, _ error) {},
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := createApp(stdin, stdout, stderr)
	err := app.Run(ctx, args)
	if err == nil {
		return exitOK
	}

	var ue *usageError
	switch {
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return exitUsage
	case isCLIUsageError(err):
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return exitFailure
	}
}

// cliUsageMessages urfave/cli 与 flag 包产生的参数错误消息片段。
var cliUsageMessages = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
	"invalid boolean",
	"Required flag",
	"No help topic",
}

func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, m := range cliUsageMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
