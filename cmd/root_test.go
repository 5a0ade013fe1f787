package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/codehint/internal/config"
	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/keywords"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func builtinTable() *keywords.Table {
	return keywords.NewTable(keywords.Builtin(), hint.MatchExactFirst)
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	c, err := loadConfig(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), c)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `theme:
  preset: dracula
editor:
  tab_width: 2
keywords:
  match: first-prefix
`)

	c, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "dracula", c.Theme.Preset)
	require.Equal(t, 2, c.Editor.TabWidth)
	require.Equal(t, "first-prefix", c.Keywords.Match)

	// Untouched keys keep their defaults
	require.True(t, c.Editor.ShowLineNumbers)
	require.Equal(t, 8, c.Editor.HintHeight)
	require.True(t, c.Keywords.Builtin)
}

func TestLoadConfig_DefaultTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))

	c, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), c)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "keywords:\n  match: fuzzy\n")

	_, err := loadConfig(viper.New(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
	require.Contains(t, err.Error(), "keywords.match")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestFindConfigFile_Explicit(t *testing.T) {
	path, err := findConfigFile("/some/where.yaml")
	require.NoError(t, err)
	require.Equal(t, "/some/where.yaml", path)
}

func TestFindConfigFile_Local(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, localConfigPath), "editor:\n  tab_width: 2\n")
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	path, err := findConfigFile("")
	require.NoError(t, err)
	require.Equal(t, localConfigPath, path)
}

func TestFindConfigFile_CreatesUserConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := findConfigFile("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "codehint", "config.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
}

func TestBuildResources(t *testing.T) {
	res, err := buildResources(config.Defaults())
	require.NoError(t, err)
	require.NotNil(t, res.theme)
	require.Equal(t, len(keywords.Builtin()), res.table.Len())
	require.Equal(t, hint.MatchExactFirst, res.table.Policy())
	require.Empty(t, res.keywordsPath)
}

func TestBuildResources_KeywordFileFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kw.yaml")
	writeFile(t, path, `- [greet, "greet(name)", ["name: string"], "Greets someone."]`+"\n")

	c := config.Defaults()
	c.Keywords.File = path
	c.Keywords.Match = "first-prefix"

	res, err := buildResources(c)
	require.NoError(t, err)
	require.Equal(t, "greet", res.table.Entries()[0].Name)
	require.Equal(t, path, res.keywordsPath)
	require.Equal(t, hint.MatchFirstPrefix, res.table.Policy())
}

func TestBuildResources_BadKeywordFile(t *testing.T) {
	c := config.Defaults()
	c.Keywords.File = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := buildResources(c)
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading keywords")
}

func TestWriteHint_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHint(&buf, builtinTable(), hint.FormatOptions{}, "map(x, ", -1, false))

	out := buf.String()
	assert.Contains(t, out, "map(callback, **thisArg**)")
	assert.Contains(t, out, "argument: 1")
	assert.Contains(t, out, "Creates a new array")
	assert.Contains(t, out, "> thisArg?: any")
	assert.Contains(t, out, "  callback: (value, index, array) => U")
}

func TestWriteHint_OutsideCall(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHint(&buf, builtinTable(), hint.FormatOptions{}, "parseInt", -1, false))

	out := buf.String()
	assert.Contains(t, out, "parseInt(string, radix)")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "argument:")
	assert.NotContains(t, out, "> ")
}

func TestWriteHint_NotFound(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown keyword", "frobnicate(", "No keyword matches \"frobnicate\"\n"},
		{"no identifier", "   ", "No identifier at caret\n"},
		{"empty text", "", "No identifier at caret\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeHint(&buf, builtinTable(), hint.FormatOptions{}, tt.text, -1, false))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteHint_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHint(&buf, builtinTable(), hint.FormatOptions{}, "map(x, ", -1, true))

	var out hintOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.True(t, out.Found)
	require.Equal(t, "map", out.Identifier)
	require.Equal(t, "map", out.Name)
	require.True(t, out.InCallArguments)
	require.Equal(t, 1, out.ArgumentIndex)
	require.Equal(t, 1, out.ActiveParameter)
	require.Equal(t, "map(callback, thisArg)", out.Signature)
	require.Equal(t, "map(callback, **thisArg**)", out.Markdown)
	require.Len(t, out.Parameters, 2)
}

func TestWriteHint_JSONNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHint(&buf, builtinTable(), hint.FormatOptions{}, "nothing(", -1, true))

	var out hintOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.False(t, out.Found)
	require.Equal(t, "nothing", out.Identifier)
	require.Equal(t, -1, out.ActiveParameter)
	require.Empty(t, out.Signature)
}

func TestWriteHint_Offset(t *testing.T) {
	text := "map(a, b)\nfilter(x, "

	out := buildHintOutput(builtinTable(), hint.FormatOptions{}, text, 4)
	require.True(t, out.Found)
	require.Equal(t, "map", out.Name)
	require.Equal(t, 0, out.ArgumentIndex)

	out = buildHintOutput(builtinTable(), hint.FormatOptions{}, text, -1)
	require.Equal(t, "filter", out.Name)
	require.Equal(t, 1, out.ArgumentIndex)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.js")
	writeFile(t, path, "from file")
	stdin := strings.NewReader("from stdin")

	got, err := readInput(stdin, path, []string{"from arg"})
	require.NoError(t, err)
	require.Equal(t, "from arg", got)

	got, err = readInput(stdin, path, nil)
	require.NoError(t, err)
	require.Equal(t, "from file", got)

	got, err = readInput(stdin, "", nil)
	require.NoError(t, err)
	require.Equal(t, "from stdin", got)

	_, err = readInput(stdin, filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
}

func TestWriteHighlighted(t *testing.T) {
	theme := styles.MustTheme(styles.DefaultPresetName)
	text := "let x = 1 // one"

	var buf bytes.Buffer
	require.NoError(t, writeHighlighted(&buf, theme, text, true))
	require.Equal(t,
		`<span class="keyword">let</span> x = <span class="number">1</span> <span class="comment">// one</span>`,
		buf.String())

	buf.Reset()
	require.NoError(t, writeHighlighted(&buf, theme, text, false))
	require.Contains(t, buf.String(), "\x1b[")
	require.Equal(t, text, ansi.Strip(buf.String()))
}

func TestWriteKeywordTable(t *testing.T) {
	theme := styles.MustTheme(styles.DefaultPresetName)
	entries := []hint.KeywordEntry{
		{Name: "greet", Signature: "greet(name)"},
		{Name: "Math.max", Signature: "Math.max(...values)"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeKeywordTable(&buf, theme, entries))

	lines := strings.Split(ansi.Strip(buf.String()), "\n")
	require.Equal(t, "NAME      SIGNATURE", lines[0])
	require.Equal(t, "greet     greet(name)", lines[1])
	require.Equal(t, "Math.max  Math.max(...values)", lines[2])
	require.Contains(t, buf.String(), "2 keywords")
}

func TestCommands_Registered(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	require.Subset(t, names, []string{"hint", "highlight", "keywords"})

	for _, flag := range []string{"config", "debug", "keywords", "theme", "match"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestExecute_HintCommand(t *testing.T) {
	t.Setenv("CODEHINT_DEBUG", "")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(cfgPath))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("Math.max("))
	rootCmd.SetArgs([]string{"--config", cfgPath, "hint"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "Math.max(**...values**)")
	require.Contains(t, out.String(), "Returns the largest of the given numbers.")
}
