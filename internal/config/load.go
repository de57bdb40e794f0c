package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"
)

// EnvPrefix 环境变量前缀。
const EnvPrefix = "ENVSUB_"

// envBindings 环境变量与配置 key 的映射。
//
// 命名规则与 CLI flag 一致: key 中的 "." 转为 "_" 并大写, 加前缀。
var envBindings = map[string]string{
	EnvPrefix + "RENDER_INPUT":     "render.input",
	EnvPrefix + "RENDER_OUTPUT":    "render.output",
	EnvPrefix + "RENDER_DELIMITER": "render.delimiter",
	EnvPrefix + "RENDER_FAIL":      "render.fail",
}

// flagKeys CLI flag 对应的配置 key (flag 名为 key 中 "." 替换为 "-")。
var flagKeys = []string{
	"render.input",
	"render.output",
	"render.delimiter",
	"render.fail",
}

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.envsub.yaml - 当前目录应用配置
//  2. ~/.envsub.yaml - 用户主目录配置
//  3. /etc/envsub/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths() []string {
	paths := []string{".envsub.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".envsub.yaml"))
	}
	paths = append(paths, "/etc/envsub/config.yaml", "config.yaml", "config/config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - [DefaultConfig]
//  2. 配置文件 - 按顺序查找, 命中首个文件即停止 (.json 按 JSON 解析, 其余按 YAML)
//  3. 环境变量 - ENVSUB_ 前缀 (见 envBindings)
//  4. CLI flags - 仅当用户明确指定时
//
// cmd 可为 nil (跳过 CLI flags 层); paths 为空时使用 [DefaultPaths]。
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load(cmd *cli.Command, paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	configMap, err := defaultMap()
	if err != nil {
		return nil, err
	}

	// 2️⃣ 加载配置文件 (按顺序搜索，找到第一个即停止)
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)

		slog.Debug("Loaded config from file", "path", path)

		break
	}

	// 3️⃣ 环境变量
	for envKey, configPath := range envBindings {
		if val := os.Getenv(envKey); val != "" {
			setByPath(configMap, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}

	// 4️⃣ 加载 CLI flags (最高优先级，仅当用户明确指定时)
	if cmd != nil {
		applyCLIFlags(cmd, configMap)
	}

	// 解析到结构体
	var cfg Config
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// defaultMap 把默认配置按 json tag 转成嵌套 map, 作为合并基底。
func defaultMap() (map[string]any, error) {
	buf, err := json.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}

	out := map[string]any{}
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("unmarshal default config: %w", err)
	}

	return out, nil
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// 映射示例 (配置 key → CLI flag)：
//   - render.input → --render-input
//   - render.fail → --render-fail
func applyCLIFlags(cmd *cli.Command, configMap map[string]any) {
	for _, key := range flagKeys {
		flag := strings.ReplaceAll(key, ".", "-")
		if !cmd.IsSet(flag) {
			continue
		}

		switch key {
		case "render.fail":
			setByPath(configMap, key, cmd.Bool(flag))
		default:
			setByPath(configMap, key, cmd.String(flag))
		}
	}
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if isJSONPath(path) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)

				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
