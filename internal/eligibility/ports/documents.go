package ports

import "context"

// DocumentAnalysis inspects uploaded evidence and returns advisory findings.
// The analysis is best-effort: failures produce no findings and no error is
// surfaced to the caller, so the verdict never depends on this collaborator
// being up.
type DocumentAnalysis interface {
	Analyze(ctx context.Context, caseDescription string, documentRefs []string) (*AnalysisReport, error)
}

// AnalysisReport carries advisory notes about submitted documents.
type AnalysisReport struct {
	Findings []string `json:"findings"`
}
