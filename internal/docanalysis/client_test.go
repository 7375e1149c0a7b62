package docanalysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"aeroclaim/internal/eligibility/ports"
	dErrors "aeroclaim/pkg/domain-errors"
)

// =============================================================================
// Document Analysis Client Test Suite
// =============================================================================

type ClientSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) TestAnalyze() {
	s.Run("returns findings from the service", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.Equal("/analyze", r.URL.Path)
			var req analyzeRequest
			s.NoError(json.NewDecoder(r.Body).Decode(&req))
			s.Equal("delayed four hours", req.Description)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(ports.AnalysisReport{
				Findings: []string{"Boarding pass matches flight SV246"},
			})
		}))
		defer server.Close()

		client, err := NewClient(server.URL)
		s.Require().NoError(err)

		report, err := client.Analyze(context.Background(), "delayed four hours", []string{"doc-1"})
		s.NoError(err)
		s.Equal([]string{"Boarding pass matches flight SV246"}, report.Findings)
	})

	s.Run("non-200 maps to unavailable", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client, err := NewClient(server.URL)
		s.Require().NoError(err)

		_, err = client.Analyze(context.Background(), "x", nil)
		s.Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *ClientSuite) TestMockClient() {
	mock := MockClient{}

	report, err := mock.Analyze(context.Background(), "I still have my boarding pass and receipt", []string{"doc-1"})
	s.NoError(err)
	s.Equal([]string{
		"Submitted documents received and queued for review",
		"Description references a boarding pass",
		"Description references a ticket receipt",
	}, report.Findings)
}
