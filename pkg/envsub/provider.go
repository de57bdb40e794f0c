package envsub

import "os"

// Provider 变量查询接口。
//
// Lookup 对未定义的变量返回 [ErrNotFound] (可包装);
// 其他错误视为查询自身失败, 会终止整个会话。
type Provider interface {
	Lookup(name string) (string, error)
}

// Environ 以进程环境变量作为变量来源, 为默认 Provider。
type Environ struct{}

// Lookup 查询进程环境变量。
func (Environ) Lookup(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

// Map 以内存映射作为变量来源, 便于测试与嵌入式使用。
type Map map[string]string

// Lookup 查询映射中的变量。
func (m Map) Lookup(name string) (string, error) {
	value, ok := m[name]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}
