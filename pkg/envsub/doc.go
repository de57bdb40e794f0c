// Package envsub 提供流式的环境变量模板替换。
//
// 逐行扫描输入, 识别 $NAME 与 ${NAME} 两种引用形式并替换为对应的值,
// 结果增量写入输出, 不会把整个输入缓冲到内存。
//
// # 语法说明
//
//  1. $NAME - 由空白、非变量名字符或行尾终结, 终结字符本身原样输出
//  2. ${NAME} - 仅由 '}' 终结, 必须在流结束前闭合且内部不允许空白
//  3. 变量名仅接受 ASCII 字母与下划线
//  4. 语法非法的引用 (如 "$$"、"${A B}") 返回带行号的错误, 不会原样放过
//
// # 替换语义
//
// 变量值来自注入的 [Provider] (默认为进程环境变量)。
// 未定义的变量默认替换为空字符串; 启用 [WithFailOnMissing] 后视为错误。
// 不支持递归展开, 也不支持 ${VAR:-default} 一类的 Shell 操作符。
//
// # 快速开始
//
// 作为过滤器处理 stdin 到 stdout:
//
//	p := envsub.New(os.Stdin, os.Stdout)
//	if err := p.Process(); err != nil {
//	    // 输出已写到出错字符之前的位置, 不会回滚
//	}
//
// 使用自定义变量来源与严格模式:
//
//	p := envsub.New(in, out,
//	    envsub.WithProvider(envsub.Map{"HOST": "localhost"}),
//	    envsub.WithFailOnMissing(),
//	)
//
// 详见 [Parser] 与 [Provider] 文档。
package envsub
