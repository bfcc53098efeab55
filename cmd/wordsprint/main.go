// Package main provides the CLI entrypoint for wordsprint.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/verte-zerg/wordsprint/internal/config"
	"github.com/verte-zerg/wordsprint/internal/generator"
	"github.com/verte-zerg/wordsprint/internal/headless"
	"github.com/verte-zerg/wordsprint/internal/model"
	"github.com/verte-zerg/wordsprint/internal/session"
	"github.com/verte-zerg/wordsprint/internal/stats"
	"github.com/verte-zerg/wordsprint/internal/tui"
	"github.com/verte-zerg/wordsprint/internal/wordlist"
)

const (
	defaultWords = 0
	defaultTheme = config.ThemeLight
	defaultSeed  = 0
)

var (
	practiceWords   int
	practiceTheme   string
	practiceSeed    int64
	practicePlain   bool
	practiceVerbose bool

	logger *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordsprint",
		Short: "Typing speed test",
		Long: `wordsprint shows 11 to 21 random words and measures how fast and how
accurately you type them. The clock starts on the first keystroke; a space
submits the current word.

When stdin is not a terminal the text read from it is replayed as keystrokes.`,
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: initLogger,
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runPracticeCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&practiceVerbose, "verbose", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&practiceWords, "words", defaultWords, "words per test (0 = random 11-21)")
	rootCmd.PersistentFlags().Int64Var(&practiceSeed, "seed", defaultSeed, "random seed (0 = time based)")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", defaultTheme, "color theme (light or dark)")
	rootCmd.Flags().BoolVar(&practicePlain, "plain", false, "read the transcript from stdin instead of the TUI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSampleCmd())

	return rootCmd
}

func initLogger(_ *cobra.Command, _ []string) error {
	l, err := newLogger(config.DefaultLogPath(), practiceVerbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

// newLogger writes JSON logs to path; the TUI owns the terminal.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if cfg.Plain || !interactive(in) {
		logger.Debug("running headless", zap.Bool("plain_flag", cfg.Plain))
		if _, _, err := headless.New(engine, logger).Run(in, cmd.OutOrStdout(), cfg.Words); err != nil {
			return err
		}
		return nil
	}

	m := tui.NewModel(cfg, engine, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	results := m.Results()
	if fm, ok := final.(*tui.Model); ok {
		results = fm.Results()
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print one sampled word list",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	words := engine.Begin(cfg.Words).Words()
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, session.Separator)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// resolveConfig merges the config file under flags that were not set
// explicitly, then validates the result.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.Practice.Theme)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)

	cfg := model.Config{
		Words: practiceWords,
		Theme: practiceTheme,
		Seed:  practiceSeed,
		Plain: practicePlain,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newEngine(cfg model.Config) (*session.Engine, error) {
	dict, err := wordlist.Default()
	if err != nil {
		return nil, err
	}
	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewWithSeed(cfg.Seed)
	}
	engine, err := session.NewEngine(dict,
		session.WithGenerator(gen),
		session.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if cfg.Words > engine.DictionarySize() {
		return nil, fmt.Errorf("--words must be <= %d", engine.DictionarySize())
	}
	return engine, nil
}

func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordsprint configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d              # Words per test (0 = random %d-%d)
# theme = %q          # Color theme: "dark" or "light"
# seed = %d               # Random seed (0 = time based)
`,
		defaultWords,
		generator.MinWords,
		generator.MaxWords,
		defaultTheme,
		defaultSeed,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words < 0 {
		return fmt.Errorf("--words must be >= 0")
	}
	if !config.ValidTheme(cfg.Theme) {
		return fmt.Errorf("--theme must be %q or %q", config.ThemeDark, config.ThemeLight)
	}
	return nil
}
