package pipeline

import "regtables/internal"

const (
	ReasonAccepted        = "accepted"
	ReasonMissingTarget   = "missing_target"
	ReasonExcludedColumn  = "excluded_column"
	ReasonMissingRequired = "missing_required"
)

type FilterResult struct {
	Accept bool
	Reason string
}

// Classify decides whether a mapped table with the given columns belongs to spec.
func Classify(columns internal.ColumnSet, spec internal.ExtractionSpec) FilterResult {
	if !spec.Targets.SubsetOf(columns) {
		return FilterResult{Reason: ReasonMissingTarget}
	}
	if len(spec.Exclude) > 0 && spec.Exclude.Intersects(columns) {
		return FilterResult{Reason: ReasonExcludedColumn}
	}
	if len(spec.Require) > 0 && !spec.Require.SubsetOf(columns) {
		return FilterResult{Reason: ReasonMissingRequired}
	}
	return FilterResult{Accept: true, Reason: ReasonAccepted}
}
