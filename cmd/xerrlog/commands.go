package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xerrlog/pkg/config/xconf"
	"github.com/omeyang/xerrlog/pkg/observability/xerrfile"
	"github.com/omeyang/xerrlog/pkg/observability/xlog"
	"github.com/omeyang/xerrlog/pkg/util/xjson"
)

// retryDelay 写入重试的初始间隔。
var retryDelay = 100 * time.Millisecond

// maxLineSize pipe 命令单行输入上限。
const maxLineSize = 1 << 20

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "输出格式: json/xml/both（默认取配置文件 formats，否则 json）",
	}
}

func retriesFlag() *cli.UintFlag {
	return &cli.UintFlag{
		Name:  "retries",
		Usage: "写入失败后的重试次数",
	}
}

func createLogCommand() *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "写入一条错误并输出文件路径",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "错误名称，决定文件名前缀",
				Value:   "Error",
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "错误消息",
			},
			formatFlag(),
			retriesFlag(),
		},
		Action: cmdLog,
	}
}

func createPipeCommand() *cli.Command {
	return &cli.Command{
		Name:  "pipe",
		Usage: "从 stdin 逐行读取 NDJSON 错误并写入",
		Description: `每行一个 JSON 对象:
  {"name": "DBError", "message": "...", "stack": "...", "props": {...}, "cause": {...}}
空行忽略；无法解析的行记录警告并计入失败数，存在失败时退出码为 1。`,
		Flags: []cli.Flag{
			formatFlag(),
			retriesFlag(),
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "监视配置文件，变更时更新输出目录与标识符生成函数（需要 --config）",
			},
		},
		Action: cmdPipe,
	}
}

func cmdLog(ctx context.Context, cmd *cli.Command) (retErr error) {
	name := cmd.String("name")
	if name == "" {
		return usagef("--name 不能为空")
	}
	e, err := setup(ctx, cmd, cmd.String("format"))
	if err != nil {
		return err
	}
	defer func() { retErr = errors.Join(retErr, e.close()) }()

	paths, err := writeAll(ctx, e, newInputError(name, cmd.String("message")), cmd.Uint("retries"))
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.Root().Writer, p)
	}
	return nil
}

func cmdPipe(ctx context.Context, cmd *cli.Command) (retErr error) {
	watch := cmd.Bool("watch")
	if watch && cmd.String("config") == "" {
		return usagef("--watch 需要 --config")
	}
	e, err := setup(ctx, cmd, cmd.String("format"))
	if err != nil {
		return err
	}
	defer func() { retErr = errors.Join(retErr, e.close()) }()

	if watch {
		w, err := watchConfig(ctx, cmd, e)
		if err != nil {
			return err
		}
		defer func() { retErr = errors.Join(retErr, w.Stop()) }()
	}

	retries := cmd.Uint("retries")
	scanner := bufio.NewScanner(cmd.Root().Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lineNo, total, failed int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		total++

		in, err := parseLine(line)
		if err != nil {
			failed++
			e.log.Warn(ctx, "skip malformed line", slog.Int("line", lineNo), xlog.Err(err))
			continue
		}
		paths, err := writeAll(ctx, e, in, retries)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			failed++
			e.log.Error(ctx, "write error file failed", slog.Int("line", lineNo), xlog.ErrorName(in.name), xlog.Err(err))
			continue
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.Root().Writer, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	e.log.Info(ctx, "pipe finished", slog.Int("lines", total), slog.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, total)
	}
	return nil
}

// watchConfig 配置文件变更时以 errfile 段（叠加 flag）更新 e.errfile。
// 重载或校验失败时保留当前配置。
func watchConfig(ctx context.Context, cmd *cli.Command, e *env) (*xconf.Watcher, error) {
	w, err := xconf.Watch(e.file, func(f *xconf.File, err error) {
		if err != nil {
			e.log.Warn(ctx, "config reload failed", xlog.Path(e.file.Path()), xlog.Err(err))
			return
		}
		cfg := errfileConfig(f, cmd)
		e.log.Debug(ctx, "errfile config resolved", slog.String("config", xjson.Pretty(cfg)))
		if err := e.errfile.Apply(cfg); err != nil {
			e.log.Warn(ctx, "config rejected", xlog.Path(f.Path()), xlog.Err(err))
			return
		}
		e.log.Info(ctx, "config applied", xlog.Path(f.Path()), slog.String("output_folder", e.errfile.OutputFolder()))
	})
	if err != nil {
		return nil, err
	}
	w.StartAsync()
	return w, nil
}

// writeAll 以 e.formats 中的每种格式并发写入 target，返回与格式顺序一致的路径。
// 每种格式独立重试 retries 次，nil 错误与 context 取消不重试。
func writeAll(ctx context.Context, e *env, target error, retries uint) ([]string, error) {
	paths := make([]string, len(e.formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range e.formats {
		g.Go(func() error {
			p, err := retry.NewWithData[string](
				retry.Attempts(retries+1),
				retry.Delay(retryDelay),
				retry.Context(gctx),
				retry.LastErrorOnly(true),
				retry.RetryIf(retryable),
				retry.OnRetry(func(n uint, err error) {
					e.log.Warn(gctx, "retry error file write",
						slog.Uint64("attempt", uint64(n)+1),
						xlog.Format(string(format)),
						xlog.Err(err))
				}),
			).Do(func() (string, error) {
				return e.errfile.Log(gctx, format, target)
			})
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func retryable(err error) bool {
	return !errors.Is(err, xerrfile.ErrNilError) &&
		!errors.Is(err, xerrfile.ErrRender) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
