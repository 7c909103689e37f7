package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xerrlog/pkg/config/xconf"
	"github.com/omeyang/xerrlog/pkg/observability/xerrfile"
	"github.com/omeyang/xerrlog/pkg/observability/xlog"
	"github.com/omeyang/xerrlog/pkg/util/xjson"
)

// errfileSection 配置文件中 xerrfile 配置所在的键。
const errfileSection = "errfile"

// formatBoth 同时写入 JSON 与 XML。
const formatBoth = "both"

// fileSettings 配置文件中除 errfile 外的部分。
type fileSettings struct {
	Formats []string    `koanf:"formats"`
	Log     logSettings `koanf:"log"`
}

type logSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// env 一次命令执行所需的运行时对象。
type env struct {
	file    *xconf.File // 未指定 --config 时为 nil
	formats []xerrfile.Format
	log     xlog.LoggerWithLevel
	errfile *xerrfile.Logger
	cleanup func() error
}

func (e *env) close() error {
	if e.cleanup == nil {
		return nil
	}
	return e.cleanup()
}

// setup 读取配置文件，合并全局 flag，构建诊断日志与 xerrfile.Logger。
// formatFlag 为子命令的 --format 值，空字符串表示使用配置文件中的 formats。
func setup(ctx context.Context, cmd *cli.Command, formatFlag string) (*env, error) {
	var (
		file *xconf.File
		fs   fileSettings
	)
	if path := cmd.String("config"); path != "" {
		f, err := xconf.Load(path)
		if err != nil {
			if errors.Is(err, xconf.ErrUnsupportedFormat) {
				return nil, &usageError{err: err}
			}
			return nil, err
		}
		if err := f.Unmarshal("", &fs); err != nil {
			return nil, usagef("配置文件 %s: %w", path, err)
		}
		file = f
	}

	formatValues := fs.Formats
	if formatFlag != "" {
		formatValues = []string{formatFlag}
	}
	formats, err := parseFormats(formatValues)
	if err != nil {
		return nil, err
	}

	overrideLog(&fs.Log, cmd)
	logger, cleanup, err := buildLogger(fs.Log, cmd.Root().ErrWriter)
	if err != nil {
		return nil, err
	}
	xlog.SetDefault(logger)

	cfg := errfileConfig(file, cmd)
	logger.Debug(ctx, "errfile config resolved", slog.String("config", xjson.Pretty(cfg)))
	el, err := xerrfile.NewOS(
		xerrfile.WithConfig(cfg),
		xerrfile.WithLogger(logger.With(xlog.Component("xerrfile"))),
	)
	if err != nil {
		_ = cleanup()
		return nil, configErr(err)
	}
	return &env{
		file:    file,
		formats: formats,
		log:     logger,
		errfile: el,
		cleanup: cleanup,
	}, nil
}

// errfileConfig 返回配置文件 errfile 段与 --dir/--id 合并后的配置。
// 热更新时也用它重新计算，保证 flag 始终优先。
func errfileConfig(file *xconf.File, cmd *cli.Command) map[string]any {
	cfg := map[string]any{}
	if file != nil {
		cfg = file.Section(errfileSection)
	}
	if cmd.IsSet("dir") {
		delete(cfg, "output_folder")
		cfg["outputFolder"] = cmd.String("dir")
	}
	if cmd.IsSet("id") {
		delete(cfg, "id_fn")
		cfg["idFn"] = cmd.String("id")
	}
	return cfg
}

func overrideLog(s *logSettings, cmd *cli.Command) {
	if cmd.IsSet("log-level") {
		s.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		s.File = cmd.String("log-file")
	}
}

func buildLogger(s logSettings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Level).
		SetFormat(s.Format).
		SetAttrs(xlog.Component("xerrlog"))
	if s.File != "" {
		b = b.SetRotation(s.File)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		if errors.Is(err, xlog.ErrUnknownLevel) || errors.Is(err, xlog.ErrUnknownFormat) {
			return nil, nil, &usageError{err: err}
		}
		return nil, nil, err
	}
	return logger, cleanup, nil
}

// parseFormats 解析格式列表，"both" 展开为 json 与 xml，重复项去除。
// 列表为空时返回 [json]。
func parseFormats(values []string) ([]xerrfile.Format, error) {
	var out []xerrfile.Format
	seen := make(map[xerrfile.Format]bool, 2)
	add := func(f xerrfile.Format) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == formatBoth {
			add(xerrfile.FormatJSON)
			add(xerrfile.FormatXML)
			continue
		}
		f, ok := xerrfile.ParseFormat(v)
		if !ok {
			return nil, usagef("不支持的格式 %q（可选 json/xml/both）", v)
		}
		add(f)
	}
	if len(out) == 0 {
		out = []xerrfile.Format{xerrfile.FormatJSON}
	}
	return out, nil
}

// configErr 将 xerrfile 配置校验错误映射为参数错误。
func configErr(err error) error {
	var ce *xerrfile.ConfigError
	if errors.As(err, &ce) {
		return &usageError{err: err}
	}
	return err
}
