package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSaveHintHeight_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, SaveHintHeight(configPath, 12))

	assert.Equal(t, "editor:\n  hint_height: 12\n", readFile(t, configPath))
}

func TestSaveHintHeight_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my settings
theme:
  preset: dracula # favourite
editor:
  tab_width: 2
  hint_height: 8 # rows
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o644))

	require.NoError(t, SaveHintHeight(configPath, 14))

	content := readFile(t, configPath)
	assert.Contains(t, content, "# my settings")
	assert.Contains(t, content, "preset: dracula # favourite")
	assert.Contains(t, content, "tab_width: 2")
	assert.Contains(t, content, "hint_height: 14 # rows")
	assert.NotContains(t, content, "hint_height: 8")
}

func TestSaveHintHeight_Roundtrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	require.NoError(t, SaveHintHeight(configPath, 20))
	require.NoError(t, SaveThemePreset(configPath, "light"))

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	cfg := Defaults()
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, 20, cfg.Editor.HintHeight)
	assert.Equal(t, "light", cfg.Theme.Preset)
	assert.Equal(t, 4, cfg.Editor.TabWidth)
	assert.NoError(t, Validate(cfg))
}

func TestSetValue_CreatesNestedMappings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("highlight:\n  enabled: false\n"), 0o644))

	value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
	require.NoError(t, SetValue(configPath, []string{"hints", "markdown_descriptions"}, value))

	content := readFile(t, configPath)
	assert.True(t, strings.HasPrefix(content, "highlight:\n  enabled: false\n"))
	assert.Contains(t, content, "hints:\n  markdown_descriptions: true\n")
}

func TestSetValue_Errors(t *testing.T) {
	dir := t.TempDir()
	value := &yaml.Node{Kind: yaml.ScalarNode, Value: "x"}

	err := SetValue(filepath.Join(dir, "a.yaml"), nil, value)
	require.ErrorContains(t, err, "empty path")

	scalarRoot := filepath.Join(dir, "scalar.yaml")
	require.NoError(t, os.WriteFile(scalarRoot, []byte("just a string\n"), 0o644))
	err = SetValue(scalarRoot, []string{"editor"}, value)
	require.ErrorContains(t, err, "not a mapping")

	notMapping := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(notMapping, []byte("editor: 3\n"), 0o644))
	err = SetValue(notMapping, []string{"editor", "hint_height"}, value)
	require.ErrorContains(t, err, `config key "editor" is not a mapping`)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("editor: [\n"), 0o644))
	err = SetValue(broken, []string{"editor"}, value)
	require.ErrorContains(t, err, "parsing config")
}

func TestSetValue_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveThemePreset(configPath, "dracula"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodeDocument_WriteError(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("editor:\n  hint_height: 8\n"), &doc))

	err := encodeDocument(failingWriter{}, &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshaling config")
}

func TestEncodeDocument_Indent(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("editor:\n    hint_height: 8\n"), &doc))

	var b strings.Builder
	require.NoError(t, encodeDocument(&b, &doc))
	assert.Equal(t, "editor:\n  hint_height: 8\n", b.String())
}
