package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/readme-agent/internal/catalog"
	"github.com/muurk/readme-agent/internal/clipboard"
	"github.com/muurk/readme-agent/internal/config"
	"github.com/muurk/readme-agent/internal/generate"
	"github.com/muurk/readme-agent/internal/logging"
	"github.com/muurk/readme-agent/internal/tui"
	"github.com/muurk/readme-agent/internal/ui"
)

// Command flags
var (
	configPath   string
	logLevel     string
	category     string
	delay        time.Duration
	outputFormat string
	copyDoc      bool
	force        bool
)

// clipboardWriter is swapped out in tests
var clipboardWriter = clipboard.Default

// cfg is loaded once before any command runs
var cfg *config.Config

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/readme-agent/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")

	rootCmd.Flags().StringVar(&category, "category", "", "Documentation type selected at startup")
	rootCmd.Flags().DurationVar(&delay, "delay", 0, "Simulated generation time (default from config, 3s)")

	showCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format (text, json)")
	showCmd.Flags().BoolVar(&copyDoc, "copy", false, "Also copy the document to the clipboard")
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config and starts logging. The interactive preview owns
// the terminal, so it logs to a file; other commands log to stderr.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		// config commands must work on a broken file
		if cmd.Parent() != configCmd {
			return err
		}
		loaded = config.NewConfig()
	}
	cfg = loaded

	level := logLevel
	if level == "" {
		level = cfg.Preferences.LogLevel
	}

	opts := logging.Options{Level: level}
	if !cmd.HasParent() {
		path, err := cfg.LogFilePath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		opts.OutputPath = path
	}

	return logging.InitializeWithOptions(opts)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if cfg.Preferences.UnknownCategory() {
		logging.Warn("Unknown default_category in config, using default",
			zap.String("default_category", cfg.Preferences.DefaultCategory),
			zap.String("fallback", catalog.DefaultCategory),
		)
	}
	if !clipboard.Available() {
		logging.Warn("No clipboard utility found, copying through the terminal (OSC 52)")
	}

	start := cfg.Preferences.StartCategory()
	if category != "" {
		if !catalog.IsKnown(category) {
			return fmt.Errorf("unknown category %q (valid: %v)", category, catalog.IDs())
		}
		start = category
	}

	genDelay := cfg.Preferences.GenerateDelay
	if delay > 0 {
		genDelay = delay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Starting preview",
		zap.String("category", start),
		zap.Duration("delay", genDelay),
		zap.Bool("system_clipboard", clipboard.Available()),
	)

	app := tui.NewApp(tui.Options{
		Context:             ctx,
		Active:              start,
		Generator:           generate.NewMockGenerator(genDelay),
		Clipboard:           clipboardWriter(),
		NotificationTimeout: cfg.Preferences.NotificationTimeout,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("preview error: %w", err)
	}

	return nil
}

// listCmd prints the documentation types
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documentation types",
	Long: `List the documentation types available in the preview, in sidebar order.

The configured default type is marked.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader(tui.AppName, tui.AppTagline, map[string]string{
		"Default": cfg.Preferences.StartCategory(),
	})
	printer.PrintCategories(catalog.Categories(), cfg.Preferences.StartCategory())
	return nil
}

// showCmd prints one sample document
var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Print the sample document for a documentation type",
	Long: `Print the sample document for a documentation type.

An unknown type prints the placeholder text shown when nothing is selected.`,
	Example: `  # Print the README sample
  readme-agent show readme

  # JSON output for scripting
  readme-agent show api --format json

  # Print and copy to the clipboard
  readme-agent show guide --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// documentOutput is the JSON form of a document
type documentOutput struct {
	ID      string `json:"id"`
	Known   bool   `json:"known"`
	Name    string `json:"name,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]
	c, known := catalog.Lookup(id)

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(documentOutput{
			ID:      id,
			Known:   known,
			Name:    c.Name,
			Title:   catalog.Title(id),
			Content: catalog.ContentOrFallback(id),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

	case "text":
		printer := ui.NewPrinter(cmd.OutOrStdout())
		if known {
			printer.PrintHeader(catalog.Title(id), c.Description, nil)
			printer.Newline()
		}
		printer.PrintDocument(catalog.ContentOrFallback(id))

	default:
		return fmt.Errorf("unknown format %q (valid: text, json)", outputFormat)
	}

	if copyDoc {
		return copyDocument(cmd, id)
	}
	return nil
}

// copyDocument copies the document and confirms on stderr, keeping
// stdout clean for pipes.
func copyDocument(cmd *cobra.Command, id string) error {
	text := catalog.ContentOrFallback(id)
	err := clipboardWriter().WriteAll(text)
	logging.LogClipboard(id, len(text), err)
	if err != nil {
		return fmt.Errorf("failed to copy document: %w", err)
	}

	ui.NewPrinter(cmd.ErrOrStderr()).PrintNotification(ui.CopiedNotification())
	return nil
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(configPath, force)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.GetConfigPath()
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
