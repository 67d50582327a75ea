package pipeline

import "github.com/filingtools/secrename/internal/planner"

// RunStats aggregates the outcome of one run over a folder of filings.
type RunStats struct {
	Total   int
	Renamed int
	Skipped int

	// Skip counts by reason.
	MissingRequired   int
	DestinationExists int
	Unreadable        int

	// Entries holds every plan entry in processing order, for reporting
	// and for the MCP surface.
	Entries []planner.PlanEntry
}

// record folds one plan entry into the stats.
func (s *RunStats) record(entry planner.PlanEntry) {
	s.Entries = append(s.Entries, entry)

	if entry.Status == planner.StatusRenamed {
		s.Renamed++
		return
	}

	s.Skipped++
	switch entry.Reason {
	case planner.ReasonMissingRequiredField:
		s.MissingRequired++
	case planner.ReasonDestinationExists:
		s.DestinationExists++
	case planner.ReasonUnreadableDocument:
		s.Unreadable++
	}
}
