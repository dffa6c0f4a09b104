package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/chatterm/config"
	"github.com/lixenwraith/chatterm/terminal"
)

var (
	configPath string
	logFile    string
	verbose    bool
	demo       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chatterm",
	Short: "Multi-tab chat client terminal front end",
	Long: `chatterm draws a tabbed chat interface in the terminal.

There is no network connection: lines typed into a channel or private tab are
echoed back as messages from your own nick, and a small set of slash commands
(/join, /msg, /me, /nick, /topic, /close, /quit) drive the tabs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logFile, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", filepath.Join(os.TempDir(), "chatterm.log"), "Log file, empty disables logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "Seed tabs with sample traffic")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "chatterm.yaml"
	}
	return filepath.Join(dir, "chatterm", "config.yaml")
}

// newLogger writes JSON logs to path; the terminal itself is never a log sink
func newLogger(path string, debugLevel bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debugLevel {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func runInteractive() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	scr, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}

	// Runs after the deferred Fini below, so the trace lands on a restored terminal
	defer func() {
		if r := recover(); r != nil {
			logger.Error("crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCHATTERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer scr.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	w, h := scr.Size()
	a, err := newApp(cfg, logger, w, h)
	if err != nil {
		return err
	}
	defer a.close()

	a.openServers()
	if demo {
		a.seedDemo()
	}

	logger.Info("started", zap.String("config", configPath), zap.Int("width", w), zap.Int("height", h))
	return a.run(ctx, scr, configPath)
}
