package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260824-go-pkg-envsub/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	// 路径不存在时回退到默认值
	cfg, err := config.Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Render.Delimiter)
	assert.False(t, cfg.Render.Fail)
	assert.Empty(t, cfg.Render.Input)
	assert.Empty(t, cfg.Render.Output)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "render:\n  delimiter: '%'\n  fail: true\n")

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "%", cfg.Render.Delimiter)
	assert.True(t, cfg.Render.Fail)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"render": {"delimiter": "#", "input": "in.txt"}}`)

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "#", cfg.Render.Delimiter)
	assert.Equal(t, "in.txt", cfg.Render.Input)
	// 未覆盖的 key 保持默认
	assert.False(t, cfg.Render.Fail)
}

func TestLoad_FirstFileWins(t *testing.T) {
	first := writeFile(t, "first.yaml", "render:\n  delimiter: '%'\n")
	second := writeFile(t, "second.yaml", "render:\n  delimiter: '#'\n")

	cfg, err := config.Load(nil, first, second)
	require.NoError(t, err)

	assert.Equal(t, "%", cfg.Render.Delimiter)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "render: [broken")

	_, err := config.Load(nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "render:\n  delimiter: '%'\n")
	t.Setenv("ENVSUB_RENDER_DELIMITER", "#")
	t.Setenv("ENVSUB_RENDER_FAIL", "true")

	cfg, err := config.Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, "#", cfg.Render.Delimiter)
	// 弱类型解码: 环境变量字符串 "true" 转为 bool
	assert.True(t, cfg.Render.Fail)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	path := writeFile(t, "config.yaml", "render:\n  delimiter: '%'\n")
	t.Setenv("ENVSUB_RENDER_DELIMITER", "#")

	var cfg *config.Config
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "render-delimiter"},
			&cli.StringFlag{Name: "render-output"},
			&cli.BoolFlag{Name: "render-fail"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loaded, err := config.Load(cmd, path)
			cfg = loaded

			return err
		},
	}

	err := cmd.Run(context.Background(), []string{
		"test", "--render-delimiter", "@", "--render-fail",
	})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "@", cfg.Render.Delimiter)
	assert.True(t, cfg.Render.Fail)
	// 未显式设置的 flag 不覆盖下层配置
	assert.Empty(t, cfg.Render.Output)
}

func TestRenderConfig_DelimiterRune(t *testing.T) {
	tests := []struct {
		name      string
		delimiter string
		want      rune
		wantErr   bool
	}{
		{name: "dollar", delimiter: "$", want: '$'},
		{name: "multi-byte rune", delimiter: "👻", want: '👻'},
		{name: "empty", delimiter: "", wantErr: true},
		{name: "two characters", delimiter: "$$", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.RenderConfig{Delimiter: tt.delimiter}
			got, err := c.DelimiterRune()
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
