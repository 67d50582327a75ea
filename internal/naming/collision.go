package naming

import (
	"fmt"

	"github.com/filingtools/secrename/internal/filing"
)

// claim records which source document owns a final name, along with the
// percent value of its fields for the re-render disambiguation path.
type claim struct {
	source  string
	percent string
}

// Resolver maps every canonical name produced in one run to a unique final
// name. State is owned by the resolver instance and lives for a single run:
// construct a fresh Resolver per run and independent runs never interfere.
//
// Collisions resolve in two stages. If the builder omitted the percent
// suffix for brevity and the colliding documents differ in ownership
// percent, the name is re-rendered with the suffix. Otherwise an ordinal
// ("-2", "-3", ...) is appended in processing order. Ordinal assignment
// therefore depends on the order documents are handed to Resolve; that is a
// documented property of the run, not an accident.
type Resolver struct {
	builder *Builder
	owners  map[string]claim
}

// NewResolver creates an empty resolver around the given builder.
func NewResolver(builder *Builder) *Resolver {
	return &Resolver{
		builder: builder,
		owners:  make(map[string]claim),
	}
}

// Resolve builds the canonical name for fields and returns a final name
// guaranteed unique among all names this resolver has handed out. The
// result is recorded against source before returning.
func (r *Resolver) Resolve(source string, fields filing.FieldSet) string {
	name := r.builder.Build(fields)

	owner, taken := r.owners[name]
	if !taken || owner.source == source {
		r.owners[name] = claim{source: source, percent: fields.OwnershipPercent}
		return name
	}

	// The shorter form collided but the documents disclose different
	// percentages; the percent suffix is enough to tell them apart.
	if !r.builder.IncludesPercent() &&
		fields.OwnershipPercent != "" &&
		owner.percent != fields.OwnershipPercent {
		withPct := r.builder.BuildWithPercent(fields)
		if _, pctTaken := r.owners[withPct]; !pctTaken {
			r.owners[withPct] = claim{source: source, percent: fields.OwnershipPercent}
			return withPct
		}
	}

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", name, n)
		if _, candidateTaken := r.owners[candidate]; !candidateTaken {
			r.owners[candidate] = claim{source: source, percent: fields.OwnershipPercent}
			return candidate
		}
	}
}

// Claimed reports whether name has already been handed out in this run.
func (r *Resolver) Claimed(name string) bool {
	_, ok := r.owners[name]
	return ok
}

// Owner returns the source document that claimed name, if any.
func (r *Resolver) Owner(name string) (string, bool) {
	c, ok := r.owners[name]
	return c.source, ok
}
