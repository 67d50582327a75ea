package planner

import (
	"github.com/filingtools/secrename/internal/filing"
)

// Status describes the per-document planning decision.
type Status int

const (
	StatusRenamed Status = iota
	StatusSkipped
)

// SkipReason classifies why a document was skipped. Every reason is local
// to one document; no reason aborts the run.
type SkipReason string

const (
	// ReasonMissingRequiredField means the filing type and/or date could
	// not be extracted, so no usable name exists for the document.
	ReasonMissingRequiredField SkipReason = "missing-required-field"

	// ReasonDestinationExists means a file outside this run already holds
	// the proposed name on disk. Set by the executing layer, never by the
	// planner itself.
	ReasonDestinationExists SkipReason = "destination-exists"

	// ReasonUnreadableDocument means the input collaborator produced no
	// text at all, so extraction was never attempted.
	ReasonUnreadableDocument SkipReason = "unreadable-document"

	// ReasonRenameFailed means the file system rejected the rename itself.
	ReasonRenameFailed SkipReason = "rename-failed"
)

// Document is one input to the planner: the source path plus the text the
// PDF collaborator extracted from it. ReadErr carries the collaborator's
// failure when no text could be produced.
type Document struct {
	Path    string
	Text    string
	ReadErr error
}

// PlanEntry is the planning decision for one document: rename source to
// destination, or skip with a reason. The extracted fields ride along so
// reporting can show what was found even for skipped documents.
type PlanEntry struct {
	Source      string
	Destination string
	Status      Status
	Reason      SkipReason
	Fields      filing.FieldSet

	// Note carries non-fatal diagnostics, e.g. an ambiguous percentage
	// that was resolved deterministically.
	Note string
}

// StatusString renders the entry's status in reporting form:
// "renamed" or "skipped: <reason>".
func (e PlanEntry) StatusString() string {
	if e.Status == StatusRenamed {
		return "renamed"
	}
	return "skipped: " + string(e.Reason)
}
