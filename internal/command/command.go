// Package command 提供各子命令共享的命令行功能。
package command

import "github.com/lwmacct/260824-go-pkg-envsub/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
