// Package pipeline orchestrates one run: discover the PDFs in a folder,
// extract text and plan a new name for each, execute or print the plan, and
// report a summary. Documents are processed sequentially in sorted path
// order so that collision ordinals come out the same on every run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/filingtools/secrename/internal/config"
	"github.com/filingtools/secrename/internal/filing"
	"github.com/filingtools/secrename/internal/naming"
	"github.com/filingtools/secrename/internal/pdf"
	"github.com/filingtools/secrename/internal/planner"
)

// Runner drives one batch run over a folder of filing PDFs.
type Runner struct {
	cfg        *config.Config
	pdfService *pdf.Service
	out        io.Writer
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, pdfService *pdf.Service) *Runner {
	return &Runner{
		cfg:        cfg,
		pdfService: pdfService,
		out:        os.Stdout,
	}
}

// SetOutput redirects the runner's plan and summary output. Used by tests
// and by the MCP surface, which captures the report instead of printing it.
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// Run processes every PDF in the configured folder and returns aggregate
// stats. Failures are per-document: a malformed filing becomes a skip entry
// and processing continues. The only errors returned are ones that prevent
// the run from starting at all.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	return r.RunFolder(ctx, r.cfg.Folder, r.cfg.DryRun)
}

// RunFolder is Run with an explicit folder and dry-run setting, for callers
// (the MCP tools) that decide these per invocation. Each call is an
// independent run with its own claimed-name state.
func (r *Runner) RunFolder(ctx context.Context, folder string, dryRun bool) (RunStats, error) {
	var stats RunStats

	files, err := r.pdfService.FindPDFsInDirectory(folder)
	if err != nil {
		return stats, fmt.Errorf("file discovery failed: %w", err)
	}

	stats.Total = len(files)
	if len(files) == 0 {
		fmt.Fprintf(r.out, "No PDF files found in %s\n", folder)
		return stats, nil
	}

	fmt.Fprintf(r.out, "Found %d PDF file(s)\n", len(files))
	if dryRun {
		fmt.Fprintln(r.out, "DRY RUN - no files will be renamed")
	}
	fmt.Fprintln(r.out)

	extractor := filing.NewExtractorWithPriority(r.cfg.PercentPriority)
	builder := naming.NewBuilderWithOptions(!r.cfg.ShortNames)
	pln := planner.New(extractor, naming.NewResolver(builder))

	for _, file := range files {
		if ctx.Err() != nil {
			log.Printf("interrupted after %d of %d files", len(stats.Entries), stats.Total)
			break
		}

		entry := r.processFile(pln, folder, file, dryRun)
		stats.record(entry)
	}

	r.printSummary(&stats, dryRun)
	return stats, nil
}

// processFile handles one PDF: validate, extract text, plan, execute.
func (r *Runner) processFile(pln *planner.Planner, folder string, file pdf.FileInfo, dryRun bool) planner.PlanEntry {
	fmt.Fprintf(r.out, "Processing: %s\n", file.Name)

	doc := planner.Document{Path: file.Path}

	if result, err := r.pdfService.ValidateFile(pdf.ValidateRequest{Path: file.Path}); err != nil {
		doc.ReadErr = err
	} else if !result.Valid {
		doc.ReadErr = errors.New(result.Message)
	}

	if doc.ReadErr == nil {
		result, err := r.pdfService.ExtractText(pdf.TextRequest{
			Path:     file.Path,
			MaxPages: r.cfg.MaxPages,
		})
		if err != nil {
			doc.ReadErr = err
		} else {
			doc.Text = result.Text
		}
	}

	entry := pln.Plan(doc)

	if entry.Status == planner.StatusRenamed {
		entry = r.execute(folder, entry, dryRun)
	}

	r.printEntry(entry, dryRun)
	return entry
}

// execute carries out a rename decision. A destination that already exists
// on disk and is not the source itself belongs to something outside this
// run and is never overwritten.
func (r *Runner) execute(folder string, entry planner.PlanEntry, dryRun bool) planner.PlanEntry {
	destPath := filepath.Join(folder, entry.Destination)

	if destPath != entry.Source {
		if _, err := os.Stat(destPath); err == nil {
			entry.Status = planner.StatusSkipped
			entry.Reason = planner.ReasonDestinationExists
			return entry
		}
	}

	if dryRun || destPath == entry.Source {
		return entry
	}

	if err := os.Rename(entry.Source, destPath); err != nil {
		log.Printf("rename failed for %s: %v", entry.Source, err)
		entry.Status = planner.StatusSkipped
		entry.Reason = planner.ReasonRenameFailed
		entry.Note = err.Error()
	}
	return entry
}

// printEntry writes one plan line.
func (r *Runner) printEntry(entry planner.PlanEntry, dryRun bool) {
	switch {
	case entry.Status == planner.StatusRenamed && dryRun:
		fmt.Fprintf(r.out, "  would rename to: %s\n", entry.Destination)
	case entry.Status == planner.StatusRenamed:
		fmt.Fprintf(r.out, "  renamed to: %s\n", entry.Destination)
	default:
		fmt.Fprintf(r.out, "  %s\n", entry.StatusString())
		if entry.Reason == planner.ReasonMissingRequiredField {
			r.printFoundFields(entry)
		}
	}

	if entry.Note != "" {
		fmt.Fprintf(r.out, "  note: %s\n", entry.Note)
	}
	fmt.Fprintln(r.out)
}

// printFoundFields reports which fields extraction did find on a document
// skipped for missing required fields.
func (r *Runner) printFoundFields(entry planner.PlanEntry) {
	found := []string{}
	if entry.Fields.FilingType != "" {
		found = append(found, "type="+entry.Fields.FilingType)
	}
	if !entry.Fields.FilingDate.IsZero() {
		found = append(found, "date="+entry.Fields.FilingDate.Format("2006-01-02"))
	}
	if entry.Fields.Ticker != "" {
		found = append(found, "ticker="+entry.Fields.Ticker)
	}
	if entry.Fields.FilerName != "" {
		found = append(found, "filer="+entry.Fields.FilerName)
	}
	if entry.Fields.OwnershipPercent != "" {
		found = append(found, "pct="+entry.Fields.OwnershipPercent)
	}

	if len(found) == 0 {
		fmt.Fprintln(r.out, "  no fields found")
		return
	}
	fmt.Fprint(r.out, "  found:")
	for _, f := range found {
		fmt.Fprintf(r.out, " %s", f)
	}
	fmt.Fprintln(r.out)
}

// printSummary writes the end-of-run summary.
func (r *Runner) printSummary(stats *RunStats, dryRun bool) {
	if dryRun {
		fmt.Fprintln(r.out, "DRY RUN Summary:")
	} else {
		fmt.Fprintln(r.out, "Summary:")
	}
	fmt.Fprintf(r.out, "  Renamed: %d\n", stats.Renamed)
	fmt.Fprintf(r.out, "  Skipped: %d\n", stats.Skipped)
	if stats.MissingRequired > 0 {
		fmt.Fprintf(r.out, "    missing-required-field: %d\n", stats.MissingRequired)
	}
	if stats.DestinationExists > 0 {
		fmt.Fprintf(r.out, "    destination-exists: %d\n", stats.DestinationExists)
	}
	if stats.Unreadable > 0 {
		fmt.Fprintf(r.out, "    unreadable-document: %d\n", stats.Unreadable)
	}
}
