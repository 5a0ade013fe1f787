package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/codehint/internal/app"
	"github.com/zjrosen/codehint/internal/config"
	"github.com/zjrosen/codehint/internal/keywords"
	"github.com/zjrosen/codehint/internal/log"
	"github.com/zjrosen/codehint/internal/ui/modal"
	"github.com/zjrosen/codehint/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the editor.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config.
const localConfigPath = ".codehint/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	debugFlag  bool
	cfg        config.Config
	configPath string
	configErr  error
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "codehint [file]",
	Short: "A terminal code editor with inline signature hints",
	Long: `codehint edits a file in the terminal and shows a signature hint for the
keyword under the caret: the keyword's signature with the current argument
highlighted, its description and its parameters.

Keywords come from a built-in JavaScript table and/or a YAML or JSON keyword
file. The file is reloaded when it changes.`,
	Example: `  # Edit a file
  codehint main.js

  # Use a custom keyword table
  codehint --keywords api.yaml main.js

  # Edit in a dialog and print the result
  codehint --modal > snippet.js`,
	Version:            version,
	Args:               cobra.MaximumNArgs(1),
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: teardownLogging,
	RunE:               runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .codehint/config.yaml, then ~/.config/codehint/config.yaml)")
	pf.BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log to $CODEHINT_LOG or debug.log (also CODEHINT_DEBUG=1, level via CODEHINT_LOG_LEVEL)")
	pf.StringP("keywords", "k", "", "keyword table file (YAML or JSON)")
	pf.String("theme", "", "theme preset: "+fmt.Sprint(styles.PresetNames()))
	pf.String("match", "", "keyword match policy: exact-first or first-prefix")

	rootCmd.Flags().Bool("no-line-numbers", false, "hide the line-number gutter")
	rootCmd.Flags().Bool("modal", false, "edit in a dialog and print the saved text to stdout")
	rootCmd.Flags().String("title", modal.DefaultTitle, "dialog title for --modal")

	// Bind flags to viper
	_ = viper.BindPFlag("keywords.file", pf.Lookup("keywords"))
	_ = viper.BindPFlag("theme.preset", pf.Lookup("theme"))
	_ = viper.BindPFlag("keywords.match", pf.Lookup("match"))
}

func initConfig() {
	configPath, configErr = findConfigFile(cfgFile)
	if configErr != nil {
		return
	}
	cfg, configErr = loadConfig(viper.GetViper(), configPath)
}

// findConfigFile resolves the config file to use.
// Lookup order:
// 1. --config flag
// 2. .codehint/config.yaml (current directory)
// 3. ~/.config/codehint/config.yaml (user config), created with defaults
// when missing
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath, nil
	}

	userPath := config.DefaultConfigPath()
	if userPath == "" {
		return "", nil
	}
	_, err := os.Stat(userPath)
	switch {
	case err == nil:
		return userPath, nil
	case errors.Is(err, fs.ErrNotExist):
		if writeErr := config.WriteDefaultConfig(userPath); writeErr != nil {
			// Continue with defaults and no config file
			log.Warn(log.CatConfig, "could not create default config", "path", userPath, "error", writeErr)
			return "", nil
		}
		return userPath, nil
	default:
		return "", fmt.Errorf("checking config file: %w", err)
	}
}

// setDefaults registers every config key so bound flags that were not set
// fall back to the defaults rather than to the flag's zero value.
func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("editor.show_line_numbers", d.Editor.ShowLineNumbers)
	v.SetDefault("editor.tab_width", d.Editor.TabWidth)
	v.SetDefault("editor.placeholder", d.Editor.Placeholder)
	v.SetDefault("editor.auto_focus", d.Editor.AutoFocus)
	v.SetDefault("editor.hint_height", d.Editor.HintHeight)
	v.SetDefault("keywords.file", d.Keywords.File)
	v.SetDefault("keywords.builtin", d.Keywords.Builtin)
	v.SetDefault("keywords.match", d.Keywords.Match)
	v.SetDefault("keywords.watch", d.Keywords.Watch)
	v.SetDefault("hints.signature_split", d.Hints.SignatureSplit)
	v.SetDefault("hints.markdown_descriptions", d.Hints.MarkdownDescriptions)
	v.SetDefault("highlight.enabled", d.Highlight.Enabled)
}

// loadConfig reads path (when set) into v and returns the validated config.
func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c := config.Defaults()
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(c); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func setupLogging(_ *cobra.Command, _ []string) error {
	if !debugFlag && os.Getenv("CODEHINT_DEBUG") == "" {
		return nil
	}
	logPath := os.Getenv("CODEHINT_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.InitWithTeaLog(logPath, "codehint")
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup
	if level := os.Getenv("CODEHINT_LOG_LEVEL"); level != "" {
		log.SetMinLevel(log.ParseLevel(level))
	}

	log.Info(log.CatConfig, "codehint starting", "version", version, "config", configPath)
	return nil
}

func teardownLogging(_ *cobra.Command, _ []string) error {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return nil
}

// resources are the pieces every command builds from the config.
type resources struct {
	theme        *styles.Theme
	table        *keywords.Table
	keywordsPath string
}

func buildResources(c config.Config) (resources, error) {
	theme, err := styles.NewTheme(c.Theme.StyleConfig())
	if err != nil {
		return resources{}, fmt.Errorf("building theme: %w", err)
	}

	entries, err := keywords.Load(c.Keywords.File, c.Keywords.Builtin)
	if err != nil {
		return resources{}, fmt.Errorf("loading keywords: %w", err)
	}
	policy, err := c.Keywords.MatchPolicy()
	if err != nil {
		return resources{}, err
	}

	return resources{
		theme:        theme,
		table:        keywords.NewTable(entries, policy),
		keywordsPath: c.Keywords.File,
	}, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	if noLineNumbers, _ := cmd.Flags().GetBool("no-line-numbers"); noLineNumbers {
		cfg.Editor.ShowLineNumbers = false
	}

	res, err := buildResources(cfg)
	if err != nil {
		return err
	}

	var filePath, content string
	if len(args) == 1 {
		filePath = args[0]
		if content, err = app.LoadFile(filePath); err != nil {
			return err
		}
	}

	zone.NewGlobal()

	if useModal, _ := cmd.Flags().GetBool("modal"); useModal {
		title, _ := cmd.Flags().GetString("title")
		return runModal(cmd, res, title, content)
	}

	model := app.New(app.Options{
		Config:       cfg,
		ConfigPath:   configPath,
		FilePath:     filePath,
		Content:      content,
		Theme:        res.theme,
		Keywords:     res.table,
		KeywordsPath: res.keywordsPath,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// runModal shows the editor dialog on stderr so stdout only carries the
// saved text.
func runModal(cmd *cobra.Command, res resources, title, content string) error {
	m := app.NewModal(modal.Config{
		Title:         title,
		Value:         content,
		Theme:         res.theme,
		EditorOptions: app.EditorOptions(cfg, res.theme, res.table),
	})
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running modal: %w", err)
	}

	if value, saved := final.(app.ModalModel).Result(); saved {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), value)
	}
	return nil
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
