package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/filingtools/secrename/internal/config"
	"github.com/filingtools/secrename/internal/mcp"
	"github.com/filingtools/secrename/internal/pdf"
	"github.com/filingtools/secrename/internal/pipeline"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode.
func setupLogging(cfg *config.Config) {
	// Diagnostics go to stderr in both modes: in stdio mode stdout carries
	// the MCP protocol, in cli mode it carries the rename report.
	log.SetOutput(os.Stderr)
	if cfg.IsStdioMode() && !cfg.IsDebug() {
		log.SetOutput(io.Discard)
	}
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

// runCLIMode processes the configured folder once and exits. Skipped
// documents are reported, not treated as failures: the exit status is zero
// whenever the run completes.
func runCLIMode(ctx context.Context, cfg *config.Config, pdfService *pdf.Service) {
	runner := pipeline.NewRunner(cfg, pdfService)
	if _, err := runner.Run(ctx); err != nil {
		log.Printf("Run failed: %v", err)
		os.Exit(1)
	}
}

// runStdioMode serves the planner over MCP standard I/O until the parent
// process closes the stream.
func runStdioMode(ctx context.Context, cfg *config.Config, pdfService *pdf.Service) {
	server, err := mcp.NewServer(cfg, pdfService)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	pdfService := pdf.NewService(cfg.MaxFileSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stop between documents on interrupt; a partial run still reports.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		cancel()
	}()

	if cfg.IsStdioMode() {
		runStdioMode(ctx, cfg, pdfService)
		return
	}
	runCLIMode(ctx, cfg, pdfService)
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("secrename %s\n", version)
	fmt.Printf("Build time: %s\n", buildTime)
	fmt.Printf("Git commit: %s\n", gitCommit)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
