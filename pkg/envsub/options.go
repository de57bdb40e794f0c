package envsub

// Option Parser 构造选项。
type Option func(*Parser)

// WithDelimiter 设置变量引用的前导字符 (默认 '$')。
func WithDelimiter(delimiter rune) Option {
	return func(p *Parser) {
		p.delimiter = delimiter
	}
}

// WithFailOnMissing 将未定义变量视为错误 (默认替换为空字符串)。
func WithFailOnMissing() Option {
	return func(p *Parser) {
		p.failOnMissing = true
	}
}

// WithProvider 设置变量来源 (默认 [Environ])。
func WithProvider(env Provider) Option {
	return func(p *Parser) {
		if env != nil {
			p.env = env
		}
	}
}
