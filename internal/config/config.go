// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - .envsub.yaml 等默认搜索路径 (见 [DefaultPaths])
//  3. 环境变量 - ENVSUB_ 前缀
//  4. CLI flags - 仅用户显式设置时覆盖
//
// 注意: 配置文件本身不做模板展开。本工具的引擎会把裸 "$" 视为
// 变量引用, 对自身配置展开会破坏 delimiter: "$" 这类字面值。
package config

import (
	"fmt"
	"unicode/utf8"
)

// Config 应用配置。
type Config struct {
	Render RenderConfig `json:"render" desc:"渲染配置"`
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	Input     string `json:"input" desc:"输入文件路径, 为空时读取 stdin"`
	Output    string `json:"output" desc:"输出文件路径, 为空时写入 stdout"`
	Delimiter string `json:"delimiter" desc:"变量引用的前导字符"`
	Fail      bool   `json:"fail" desc:"变量未定义时报错退出"`
}

// DelimiterRune 校验并返回前导字符。
//
// 前导字符必须恰好为一个字符 (允许多字节字符, 如 emoji)。
func (c RenderConfig) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be exactly one character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)

	return r, nil
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Delimiter: "$",
		},
	}
}
