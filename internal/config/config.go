package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/filingtools/secrename/internal/filing"
)

const (
	// Mode constants
	ModeCLI   = "cli"
	ModeStdio = "stdio"

	// Default values
	DefaultMaxPages    = 5
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// Config holds all configuration for the filing renamer.
type Config struct {
	// Mode selects the surface: "cli" renames a folder of filings,
	// "stdio" serves the planner over MCP standard I/O.
	Mode string

	// Folder is the directory of PDF filings to process.
	Folder string

	// DryRun prints the rename plan without touching the file system.
	DryRun bool

	// MaxPages bounds how many leading pages of each PDF are read for
	// extraction. Filing metadata lives on the cover pages.
	MaxPages int

	// PercentPriority is the evaluation order for ownership-percentage
	// rules, most authoritative first.
	PercentPriority []string

	// ShortNames omits the percent suffix from names unless it is needed
	// to break a collision.
	ShortNames bool

	// Application configuration
	Version     string
	LogLevel    string
	MaxFileSize int64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:            ModeCLI,
		DryRun:          false,
		MaxPages:        DefaultMaxPages,
		PercentPriority: filing.DefaultPercentPriority,
		ShortNames:      false,
		Version:         "1.0.0",
		LogLevel:        DefaultLogLevel,
		MaxFileSize:     DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// The folder may be given positionally or via --dir; positional wins.
	if pflag.NArg() > 0 {
		cfg.Folder = pflag.Arg(0)
	}

	if cfg.Folder != "" {
		if expandedPath, err := filepath.Abs(cfg.Folder); err == nil {
			cfg.Folder = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("SECRENAME")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("dir", cfg.Folder)
	viper.SetDefault("dry-run", cfg.DryRun)
	viper.SetDefault("pages", cfg.MaxPages)
	viper.SetDefault("pct-priority", cfg.PercentPriority)
	viper.SetDefault("short-names", cfg.ShortNames)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'cli' to process a folder, 'stdio' for MCP standard I/O")
	pflag.String("dir", cfg.Folder, "Directory containing filing PDFs (or pass it as the first argument)")
	pflag.BoolP("dry-run", "n", cfg.DryRun, "Print the rename plan without renaming anything")
	pflag.Int("pages", cfg.MaxPages, "Number of leading pages to read from each PDF")
	pflag.StringSlice("pct-priority", cfg.PercentPriority, "Priority order for ownership-percentage rules")
	pflag.Bool("short-names", cfg.ShortNames, "Omit the percent suffix unless needed to break a collision")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("dry-run", pflag.Lookup("dry-run"))
	_ = viper.BindPFlag("pages", pflag.Lookup("pages"))
	_ = viper.BindPFlag("pct-priority", pflag.Lookup("pct-priority"))
	_ = viper.BindPFlag("short-names", pflag.Lookup("short-names"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nsecrename - rename SEC filing PDFs from their extracted metadata\n\n")
		fmt.Fprintf(os.Stderr, "  %s [flags] <folder>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s /path/to/filings              # rename the PDFs in a folder\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dry-run /path/to/filings    # preview without renaming\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio                  # serve the planner over MCP\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  SECRENAME_MODE         Run mode\n")
		fmt.Fprintf(os.Stderr, "  SECRENAME_DIR          Filing directory\n")
		fmt.Fprintf(os.Stderr, "  SECRENAME_PAGES        Leading pages to read\n")
		fmt.Fprintf(os.Stderr, "  SECRENAME_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  SECRENAME_MAXFILESIZE  Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Folder = viper.GetString("dir")
	cfg.DryRun = viper.GetBool("dry-run")
	cfg.MaxPages = viper.GetInt("pages")
	cfg.PercentPriority = viper.GetStringSlice("pct-priority")
	cfg.ShortNames = viper.GetBool("short-names")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeCLI && c.Mode != ModeStdio {
		return errors.New("mode must be either 'cli' or 'stdio'")
	}

	// CLI mode needs a folder up front; stdio mode takes directories per
	// tool call.
	if c.Mode == ModeCLI {
		if c.Folder == "" {
			return errors.New("filing folder cannot be empty")
		}
		info, err := os.Stat(c.Folder)
		if os.IsNotExist(err) {
			return fmt.Errorf("filing folder does not exist: %s", c.Folder)
		}
		if err != nil {
			return fmt.Errorf("cannot access filing folder %s: %w", c.Folder, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("filing folder is not a directory: %s", c.Folder)
		}
	}

	if c.MaxPages < 1 {
		return errors.New("pages must be at least 1")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsStdioMode returns true when serving over MCP standard I/O.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Folder: %s, DryRun: %t, MaxPages: %d, PctPriority: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Folder, c.DryRun, c.MaxPages, strings.Join(c.PercentPriority, ","), c.LogLevel, c.MaxFileSize)
}
