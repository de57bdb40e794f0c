package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260824-go-pkg-envsub/internal/command/render"
	"github.com/lwmacct/260824-go-pkg-envsub/pkg/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "流式环境变量模板渲染工具",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			render.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
