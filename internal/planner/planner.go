// Package planner turns one document's extracted text into a rename
// decision. It is a pure pipeline stage: extraction, naming, and collision
// resolution happen here, but the file system is never touched; the plan
// is handed to the executing layer to carry out or merely print.
package planner

import (
	"path/filepath"
	"strings"

	"github.com/filingtools/secrename/internal/filing"
	"github.com/filingtools/secrename/internal/naming"
)

// Planner orchestrates extraction and naming for a sequence of documents.
// It owns a per-run collision resolver, so one Planner serves exactly one
// run; building a fresh Planner resets the claimed-name state.
type Planner struct {
	extractor *filing.Extractor
	resolver  *naming.Resolver
}

// New creates a planner around the given extractor and resolver.
func New(extractor *filing.Extractor, resolver *naming.Resolver) *Planner {
	return &Planner{
		extractor: extractor,
		resolver:  resolver,
	}
}

// Plan produces the PlanEntry for one document. It never returns an error:
// every failure mode maps to a skip status on the entry, keeping failures
// local to the document.
func (p *Planner) Plan(doc Document) PlanEntry {
	entry := PlanEntry{Source: doc.Path}

	if doc.ReadErr != nil || strings.TrimSpace(doc.Text) == "" {
		entry.Status = StatusSkipped
		entry.Reason = ReasonUnreadableDocument
		if doc.ReadErr != nil {
			entry.Note = doc.ReadErr.Error()
		}
		return entry
	}

	entry.Fields = p.extractor.Extract(doc.Text)

	if !entry.Fields.HasRequired() {
		entry.Status = StatusSkipped
		entry.Reason = ReasonMissingRequiredField
		return entry
	}

	finalName := p.resolver.Resolve(doc.Path, entry.Fields)

	entry.Status = StatusRenamed
	entry.Destination = finalName + strings.ToLower(filepath.Ext(doc.Path))
	if entry.Fields.PercentAmbiguous {
		entry.Note = "ambiguous percentage rows; first match used"
	}
	return entry
}
