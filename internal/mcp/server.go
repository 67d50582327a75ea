// Package mcp exposes the rename planner over the Model Context Protocol,
// so an MCP client can extract filing metadata, preview a rename plan, or
// execute it without shelling out to the CLI.
package mcp

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/filingtools/secrename/internal/config"
	"github.com/filingtools/secrename/internal/filing"
	"github.com/filingtools/secrename/internal/pdf"
	"github.com/filingtools/secrename/internal/pipeline"
)

// Server wraps the filing pipeline behind MCP tools.
type Server struct {
	config     *config.Config
	pdfService *pdf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		"secrename",
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:     cfg,
		pdfService: pdfService,
		mcpServer:  mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	filingExtractTool := mcp.NewTool(
		"filing_extract",
		mcp.WithDescription("Extract filing metadata (type, date, ticker, filer, ownership percent) from a single SEC filing PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(filingExtractTool, s.handleFilingExtract)

	filingPreviewTool := mcp.NewTool(
		"filing_preview",
		mcp.WithDescription("Preview the rename plan for a folder of SEC filing PDFs without touching the file system"),
		mcp.WithString("directory",
			mcp.Description("Directory of filing PDFs (uses configured folder if empty)"),
		),
	)
	s.mcpServer.AddTool(filingPreviewTool, s.handleFilingPreview)

	filingRenameTool := mcp.NewTool(
		"filing_rename",
		mcp.WithDescription("Rename the SEC filing PDFs in a folder according to their extracted metadata"),
		mcp.WithString("directory",
			mcp.Description("Directory of filing PDFs (uses configured folder if empty)"),
		),
	)
	s.mcpServer.AddTool(filingRenameTool, s.handleFilingRename)
}

// Handler functions

func (s *Server) handleFilingExtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.pdfService.ExtractText(pdf.TextRequest{
		Path:     path,
		MaxPages: s.config.MaxPages,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	extractor := filing.NewExtractorWithPriority(s.config.PercentPriority)
	fields := extractor.Extract(result.Text)

	return mcp.NewToolResultText(s.formatFields(path, fields)), nil
}

func (s *Server) handleFilingPreview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runFolder(ctx, request, true)
}

func (s *Server) handleFilingRename(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runFolder(ctx, request, false)
}

// runFolder executes one pipeline run for a tool call, capturing the run
// report as the tool result.
func (s *Server) runFolder(ctx context.Context, request mcp.CallToolRequest, dryRun bool) (*mcp.CallToolResult, error) {
	directory := s.config.Folder
	if dir, ok := request.GetArguments()["directory"].(string); ok && dir != "" {
		directory = dir
	}
	if directory == "" {
		return mcp.NewToolResultError("no directory given and no folder configured"), nil
	}

	var report bytes.Buffer
	runner := pipeline.NewRunner(s.config, s.pdfService)
	runner.SetOutput(&report)

	if _, err := runner.RunFolder(ctx, directory, dryRun); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(report.String()), nil
}

// formatFields renders an extraction result for a tool response.
func (s *Server) formatFields(path string, fields filing.FieldSet) string {
	text := "Filing metadata\n"
	text += fmt.Sprintf("File: %s\n", path)

	appendField := func(label, value string) {
		if value == "" {
			value = "(not found)"
		}
		text += fmt.Sprintf("%s: %s\n", label, value)
	}

	appendField("Filing type", fields.FilingType)
	if fields.FilingDate.IsZero() {
		appendField("Filing date", "")
	} else {
		appendField("Filing date", fields.FilingDate.Format("2006-01-02"))
	}
	appendField("Ticker", fields.Ticker)
	appendField("Filer", fields.FilerName)
	appendField("Ownership percent", fields.OwnershipPercent)
	if fields.PercentAmbiguous {
		text += "Note: ambiguous percentage rows; first match used\n"
	}

	return text
}

// Run starts the MCP server over standard I/O.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting secrename MCP server in stdio mode")
		log.Printf("Filing folder: %s", s.config.Folder)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
