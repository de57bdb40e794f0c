// Package render 提供模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260824-go-pkg-envsub/internal/command"
	"github.com/lwmacct/260824-go-pkg-envsub/pkg/version"
)

// Command 渲染命令
var Command = NewCommand()

// NewCommand 构造渲染命令。
//
// cli.Command 解析 flags 后带状态, 需要多次 Run 时每次取新实例。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:     "render",
		Usage:    "渲染模板, 替换其中的环境变量引用",
		Action:   action,
		Commands: []*cli.Command{version.Command},
		Flags:    flags(),
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "render-input",
			Aliases: []string{"i"},
			Value:   command.Defaults.Render.Input,
			Usage:   "输入文件路径, 为空时读取 stdin",
		},
		&cli.StringFlag{
			Name:    "render-output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Render.Output,
			Usage:   "输出文件路径, 为空时写入 stdout",
		},
		&cli.StringFlag{
			Name:    "render-delimiter",
			Aliases: []string{"d"},
			Value:   command.Defaults.Render.Delimiter,
			Usage:   "变量引用的前导字符",
		},
		&cli.BoolFlag{
			Name:    "render-fail",
			Aliases: []string{"f"},
			Value:   command.Defaults.Render.Fail,
			Usage:   "变量未定义时报错退出",
		},
	}
}
