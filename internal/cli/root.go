package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/yildizm/datagov/internal/config"
	"github.com/yildizm/datagov/internal/emoji"
	"github.com/yildizm/datagov/internal/logger"
	"github.com/yildizm/datagov/internal/ui"
)

var (
	cfgFile     string
	verbose     bool
	noColor     bool
	noEmoji     bool
	themeName   string
	catalogPath string
	watch       bool
	metricsAddr string
	startView   string

	globalConfig *config.Config
)

// NewRootCommand creates the root command. Running it without a
// subcommand opens the dashboard.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datagov",
		Short: "Data Governance Hub",
		Long: `datagov is a terminal dashboard for data stewards. It browses the
Canonical Data Model registry, business domains, governance policies and
council proposals, and asks an AI assistant about an object's health.

Run without arguments to open the interactive dashboard. The list, show and
ask subcommands print to stdout for scripting.`,
		SilenceUsage:      true,
		PersistentPreRunE:  setupGlobals,
		PersistentPostRunE: flushLogs,
		RunE:               runDashboard,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog YAML file (default: built-in fixtures)")

	// Dashboard flags
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme (default, high-contrast, minimal)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the dashboard when the catalog file changes")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9090")
	rootCmd.Flags().StringVar(&startView, "view", "", "view to open first (dashboard, search, cdm-list, domains-list, council, admin)")

	// Add subcommands
	rootCmd.AddCommand(newVersionCommand(version, commit, date))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCdmCommand())
	rootCmd.AddCommand(newDomainsCommand())
	rootCmd.AddCommand(newPoliciesCommand())
	rootCmd.AddCommand(newAskCommand())

	return rootCmd
}

// setupGlobals loads the configuration and applies flag overrides. The
// config subcommands load their own file and skip it.
func setupGlobals(cmd *cobra.Command, args []string) error {
	// Auto-disable emojis on Windows if not explicitly set
	if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
		noEmoji = true
	}
	emoji.SetEmojiDisabled(noEmoji)

	if isConfigCommand(cmd) {
		return nil
	}

	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	globalConfig = cfg

	if noColor || cfg.Output.ColorMode == "never" {
		// lipgloss, glamour and the theme all honour NO_COLOR
		_ = os.Setenv("NO_COLOR", "1")
	}
	if cfg.UI.Theme != "" && !ui.SetThemeByName(cfg.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", cfg.UI.Theme)
	}

	// The dashboard logs to a file; everything else logs to stderr
	if cmd.Root() == cmd {
		return nil
	}
	return setupLogging(cfg, "")
}

// applyFlagOverrides puts explicitly set flags on top of the loaded config
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if flagChanged(cmd, "catalog") {
		cfg.Catalog.Path = catalogPath
	}
	if flagChanged(cmd, "theme") {
		cfg.UI.Theme = themeName
	}
	if flagChanged(cmd, "watch") {
		cfg.Catalog.Watch = watch
	}
	if flagChanged(cmd, "metrics-addr") {
		cfg.Metrics.Addr = metricsAddr
	}
	if flagChanged(cmd, "view") {
		cfg.UI.StartView = startView
	}
	if flagChanged(cmd, "no-color") && noColor {
		cfg.Output.ColorMode = "never"
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.Parent() != nil && c.Parent().Parent() == nil {
			return true
		}
	}
	return false
}

// setupLogging points the process logger at file, or stderr when file is empty
func setupLogging(cfg *config.Config, file string) error {
	FlushLogs()
	flush, err := setupLogger(logger.Options{
		File:    file,
		Level:   cfg.Logging.Level,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logFlush = flush
	return nil
}

var (
	setupLogger = logger.Setup

	// logFlush syncs the logger built by setupLogging
	logFlush func() error
)

// FlushLogs syncs the logger set up for the last command. Commands that
// succeed are flushed by the root's post-run; main calls it again so a
// failed command is flushed too. Later calls are no-ops.
func FlushLogs() {
	if logFlush == nil {
		return
	}
	// syncing stderr fails with EINVAL on some platforms; nothing to report
	_ = logFlush()
	logFlush = nil
}

func flushLogs(cmd *cobra.Command, args []string) error {
	FlushLogs()
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "datagov %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the configuration loaded for the running command
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		globalConfig = config.DefaultConfig()
	}
	return globalConfig
}

