package envsub

import (
	"errors"
	"fmt"
)

// ErrNotFound 表示 Provider 中不存在该变量。
var ErrNotFound = errors.New("variable not found")

// ErrInvalidUTF8 表示输入流包含非法 UTF-8 字节序列。
//
// 与读写失败一样立即终止会话, 绝不把替换字符写入输出。
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// SyntaxError 模板语法错误。
//
// 包括: 重复的前导字符、重复的 "{"、未配对的 "}"、
// 花括号内的空白或非法字符、流结束时未闭合的花括号。
type SyntaxError struct {
	Line int    // 出错行号 (从 1 开始)
	Name string // 出错时已累积的变量名, 可能为空
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("failed to parse a variable on line %d: %s", e.Line, e.Msg)
}

// UnresolvedError 引用了未定义的变量且启用了严格模式。
type UnresolvedError struct {
	Name string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("the variable %s is not set", e.Name)
}
