// Package version 提供应用版本信息与 version 子命令。
package version

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称。
const AppRawName = "envsub"

// Version 构建时通过 ldflags 注入:
//
//	-ldflags "-X github.com/lwmacct/260824-go-pkg-envsub/pkg/version.Version=v1.0.0"
var Version = ""

// GetVersion 返回版本字符串。
//
// 优先使用 ldflags 注入的值, 否则回退到模块构建信息。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

// Command version 子命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "打印版本信息",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		fmt.Println(AppRawName, GetVersion())

		return nil
	},
}
