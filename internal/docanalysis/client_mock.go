package docanalysis

import (
	"context"
	"strings"
	"time"

	"aeroclaim/internal/eligibility/ports"
)

// MockClient produces deterministic findings from the description text.
// Used in dev mode and tests.
type MockClient struct {
	Latency time.Duration
}

func (c MockClient) Analyze(_ context.Context, caseDescription string, documentRefs []string) (*ports.AnalysisReport, error) {
	time.Sleep(c.Latency)

	var findings []string
	if len(documentRefs) > 0 {
		findings = append(findings, "Submitted documents received and queued for review")
	}
	lower := strings.ToLower(caseDescription)
	if strings.Contains(lower, "boarding pass") {
		findings = append(findings, "Description references a boarding pass")
	}
	if strings.Contains(lower, "receipt") {
		findings = append(findings, "Description references a ticket receipt")
	}
	return &ports.AnalysisReport{Findings: findings}, nil
}
