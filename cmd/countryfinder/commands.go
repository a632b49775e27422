package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/countryfinder/internal/config"
	"github.com/muurk/countryfinder/internal/directory"
	"github.com/muurk/countryfinder/internal/logging"
	"github.com/muurk/countryfinder/internal/store"
	"github.com/muurk/countryfinder/internal/tui"
	"github.com/muurk/countryfinder/internal/ui"
)

// errReported marks failures that have already been shown to the user.
var errReported = errors.New("already reported")

// Global flags
var (
	configPath  string
	endpoint    string
	httpTimeout time.Duration
	logLevel    string
)

// list command flags
var (
	listQuery    string
	outputFormat string
)

var forceInit bool

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default is the per-user config directory)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Country directory URL")
	rootCmd.PersistentFlags().DurationVar(&httpTimeout, "timeout", 0, "HTTP timeout such as 10s (0 waits indefinitely)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides "+logging.LogLevelEnvVar+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// loadSettings reads the settings file and applies any flags the user set.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if configPath != "" {
		settings, err = config.LoadFile(configPath)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		settings.Endpoint = endpoint
	}
	if flags.Changed("timeout") {
		settings.HTTPTimeout = httpTimeout
	}
	if flags.Changed("log-level") {
		settings.LogLevel = logLevel
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// settingsPath returns the file the config commands operate on.
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

func newStore(settings *config.Settings) *store.Store {
	client := directory.NewClient(settings.Endpoint)
	client.SetTimeout(settings.HTTPTimeout)
	return store.New(client)
}

// signalContext is cancelled on the first interrupt so fetches in flight are
// abandoned.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runBrowser(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The browser owns the terminal, so logs go to a file.
	logPath := settings.LogFile
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return err
		}
	}
	if settings.LogLevel != "" || os.Getenv(logging.LogLevelEnvVar) != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	if err := logging.Initialize(settings.LogLevel, logPath); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, cancel := signalContext(cmd)
	defer cancel()

	s := newStore(settings)
	defer s.Close()

	logging.Info("Starting country browser", zap.String("endpoint", settings.Endpoint))
	return tui.Run(ctx, s)
}

// listCmd fetches the list once and prints it
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the list of countries",
	Long: `Fetch the country list once and print it.

With --query only countries whose name contains the query (ignoring case)
are printed. The command exits non-zero if the list could not be fetched.`,
	Example: `  # Every country, one per line
  countryfinder list --format compact

  # Countries containing "land"
  countryfinder list --query land

  # JSON for scripting
  countryfinder list --format json

  # Use a local mirror with a 5 second timeout
  countryfinder list --endpoint http://localhost:8080/countries --timeout 5s`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only show countries whose name contains this text")
	listCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	switch outputFormat {
	case "detailed", "compact", "json":
	default:
		return fmt.Errorf("unknown format %q (expected detailed, compact or json)", outputFormat)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if err := logging.Initialize(settings.LogLevel, "stderr"); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, cancel := signalContext(cmd)
	defer cancel()

	s := newStore(settings)
	defer s.Close()

	s.SetQuery(listQuery)
	<-s.Refresh(ctx)
	snap := s.Snapshot()

	out := cmd.OutOrStdout()
	errOut := ui.NewPrinter(cmd.ErrOrStderr())

	if snap.Status == store.Failed {
		errOut.PrintError("Could not load countries", errors.New(directory.UserMessage), []string{
			"Check your network connection",
			"Verify the endpoint: " + settings.Endpoint,
			"Run with --log-level debug for details",
		})
		return errReported
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(snap.Visible, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil

	case "compact":
		if msg := tui.EmptyMessage(snap); msg != "" {
			errOut.PrintWarning(msg)
			return nil
		}
		fmt.Fprint(out, directory.FormatCompact(snap.Visible))
		return nil
	}

	printer := ui.NewPrinter(out)
	params := []ui.Param{{Key: "Endpoint", Value: settings.Endpoint}}
	if snap.Query != "" {
		params = append(params, ui.Param{Key: "Query", Value: snap.Query})
	}
	params = append(params, ui.Param{Key: "Matches", Value: directory.Summary(snap.Visible)})
	printer.PrintHeader(tui.ListTitle, params...)

	if msg := tui.EmptyMessage(snap); msg != "" {
		printer.PrintWarning(msg)
		return nil
	}
	printer.Print(directory.FormatDetailed(snap.Visible, printer.Width()))
	return nil
}

// configCmd groups the settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Long: `Print the settings countryfinder would run with: the settings file,
or defaults if there is none, with command-line flags applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Long: `Write a settings file with default values, plus any of --endpoint,
--timeout and --log-level given on the command line.

An existing file is left alone unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		settings := config.NewSettings()
		flags := cmd.Flags()
		if flags.Changed("endpoint") {
			settings.Endpoint = endpoint
		}
		if flags.Changed("timeout") {
			settings.HTTPTimeout = httpTimeout
		}
		if flags.Changed("log-level") {
			settings.LogLevel = logLevel
		}

		if configPath == "" {
			err = settings.Save()
		} else {
			err = settings.SaveFile(path)
		}
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Wrote " + path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the settings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
