package envsub

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultDelimiter 为变量引用的默认前导字符。
const DefaultDelimiter = '$'

const (
	braceOpen  = '{'
	braceClose = '}'
)

// state 解析器状态。
type state int

const (
	stateText     state = iota // 普通文本, 字符原样输出
	stateVariable              // 已读到前导字符, 收集未加花括号的变量名
	stateBraces                // 已读到 "{", 收集花括号内的变量名
)

// Parser 流式变量替换器。
//
// 逐行读取输入, 识别变量引用并替换为 [Provider] 返回的值,
// 结果增量写入输出。单次 [Parser.Process] 会话内状态独占,
// 不支持并发使用, 也不支持复用。
type Parser struct {
	in  *bufio.Reader
	out *bufio.Writer

	delimiter     rune
	failOnMissing bool
	env           Provider

	state state
	name  []rune
	buf   []byte
	line  int
}

// New 创建 Parser。
//
// 默认前导字符为 '$', 变量来源为进程环境变量,
// 未定义的变量替换为空字符串。
func New(r io.Reader, w io.Writer, opts ...Option) *Parser {
	p := &Parser{
		in:        bufio.NewReader(r),
		out:       bufio.NewWriter(w),
		delimiter: DefaultDelimiter,
		env:       Environ{},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process 消费整个输入流并写出替换结果。
//
// 返回遇到的第一个错误; 无论成功与否, 结束时都会 flush 输出,
// 因此失败后输出中恰好包含出错字符之前的全部内容, 不做回滚。
func (p *Parser) Process() error {
	err := p.run()
	if ferr := p.out.Flush(); err == nil {
		err = ferr
	}

	return err
}

func (p *Parser) run() error {
	for {
		line, err := p.readLine()
		if len(line) > 0 {
			p.line++
			for i := 0; i < len(line); {
				ch, size := utf8.DecodeRune(line[i:])
				if ch == utf8.RuneError && size == 1 {
					return ErrInvalidUTF8
				}
				if perr := p.parseChar(ch); perr != nil {
					return perr
				}
				i += size
			}
			// 行尾隐式终结未加花括号的引用; 花括号内不终结,
			// 留到 '}' 或流结束时处理
			if p.state == stateVariable {
				if perr := p.resolveVariable(); perr != nil {
					return perr
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}

	if p.state != stateText {
		return &SyntaxError{
			Line: p.line,
			Name: string(p.name),
			Msg:  fmt.Sprintf("missing a '}' after '%s'", string(p.name)),
		}
	}

	return nil
}

// readLine 读取一行到复用缓冲, 行尾符保留在内容里。
//
// 超过底层缓冲的长行会分段追加; 返回的切片在下次调用前有效。
func (p *Parser) readLine() ([]byte, error) {
	p.buf = p.buf[:0]
	for {
		chunk, err := p.in.ReadSlice('\n')
		p.buf = append(p.buf, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		return p.buf, err
	}
}

// parseChar 对 (状态, 字符类别) 做穷举转移。
func (p *Parser) parseChar(ch rune) error {
	switch p.state {
	case stateText:
		if ch == p.delimiter {
			p.state = stateVariable

			return nil
		}

		return p.writeRune(ch)

	case stateVariable:
		switch {
		case ch == p.delimiter:
			return p.syntaxErrorf("a variable is already being parsed")
		case ch == braceOpen:
			p.state = stateBraces

			return nil
		case ch == braceClose:
			return p.syntaxErrorf("closing braces without opening")
		case isNameRune(ch):
			p.name = append(p.name, ch)

			return nil
		default:
			// 空白或其他任意字符终结引用, 字符本身原样输出
			if err := p.resolveVariable(); err != nil {
				return err
			}

			return p.writeRune(ch)
		}

	case stateBraces:
		switch {
		case ch == braceClose:
			return p.resolveVariable()
		case isNameRune(ch):
			p.name = append(p.name, ch)

			return nil
		case ch == braceOpen:
			return p.syntaxErrorf("double open braces")
		case isASCIISpace(ch):
			return p.syntaxErrorf("braces not closed")
		default:
			// 前导字符在花括号内同样非法
			return p.syntaxErrorf("extra character %q after '%s'", ch, string(p.name))
		}
	}

	return nil
}

// resolveVariable 查询累积的变量名并写出其值。
//
// 空名称 (如 "${}") 照常查询, 由 Provider 报告未定义。
// 成功路径会清空状态与名称缓冲; 失败路径整个会话随即终止。
func (p *Parser) resolveVariable() error {
	name := string(p.name)

	value, err := p.env.Lookup(name)
	switch {
	case errors.Is(err, ErrNotFound):
		if p.failOnMissing {
			return &UnresolvedError{Name: name}
		}
		value = ""
	case err != nil:
		return fmt.Errorf("failed to read contents of variable %s: %w", name, err)
	}

	if _, werr := p.out.WriteString(value); werr != nil {
		return werr
	}
	p.reset()

	return nil
}

func (p *Parser) reset() {
	p.state = stateText
	p.name = p.name[:0]
}

func (p *Parser) writeRune(ch rune) error {
	_, err := p.out.WriteRune(ch)

	return err
}

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{
		Line: p.line,
		Name: string(p.name),
		Msg:  fmt.Sprintf(format, args...),
	}
}

func isNameRune(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

// isASCIISpace 判断 ASCII 空白字符 (对齐 POSIX isspace)。
func isASCIISpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
