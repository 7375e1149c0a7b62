// Package docanalysis provides advisory document analysis for submitted
// claims. Results only ever enrich a verdict's details; the eligibility rules
// never depend on this service being reachable.
package docanalysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"aeroclaim/internal/eligibility/ports"
	dErrors "aeroclaim/pkg/domain-errors"
)

const defaultTimeout = 2 * time.Second

// Client calls the document analysis service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a document analysis client.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "document analysis base URL is required")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type analyzeRequest struct {
	Description  string   `json:"description"`
	DocumentRefs []string `json:"document_refs,omitempty"`
}

func (c *Client) Analyze(ctx context.Context, caseDescription string, documentRefs []string) (*ports.AnalysisReport, error) {
	payload, err := json.Marshal(analyzeRequest{
		Description:  caseDescription,
		DocumentRefs: documentRefs,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "encode analysis request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build analysis request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document analysis unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("document analysis returned status %d", resp.StatusCode))
	}

	var report ports.AnalysisReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "decode analysis response")
	}
	return &report, nil
}
