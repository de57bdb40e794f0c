package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260824-go-pkg-envsub/internal/config"
	"github.com/lwmacct/260824-go-pkg-envsub/pkg/envsub"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	delimiter, err := cfg.Render.DelimiterRune()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if cfg.Render.Input != "" {
		f, err := os.Open(cfg.Render.Input)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	} else {
		fmt.Fprintln(os.Stderr, "No input file specified, falling back to stdin")
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if cfg.Render.Output != "" {
		outFile, err = os.Create(cfg.Render.Output)
		if err != nil {
			return err
		}
		out = outFile
	} else {
		fmt.Fprintln(os.Stderr, "No output file specified, falling back to stdout")
	}

	opts := []envsub.Option{envsub.WithDelimiter(delimiter)}
	if cfg.Render.Fail {
		opts = append(opts, envsub.WithFailOnMissing())
	}

	if err := envsub.New(in, out, opts...).Process(); err != nil {
		if outFile != nil {
			_ = outFile.Close()
		}

		return err
	}

	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("close output file: %w", err)
		}
	}

	return nil
}
