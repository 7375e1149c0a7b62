package handler_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"aeroclaim/internal/cases"
	"aeroclaim/internal/cases/handler"
	"aeroclaim/internal/cases/store/memory"
	"aeroclaim/internal/eligibility"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/domain"
	"aeroclaim/pkg/testutil"
)

// =============================================================================
// Case Handler Test Suite
// =============================================================================

type stubChecker struct {
	verdict eligibility.Verdict
}

func (c *stubChecker) Check(_ context.Context, _ intake.CaseRecord) (eligibility.Verdict, error) {
	return c.verdict, nil
}

type HandlerSuite struct {
	suite.Suite
	router  chi.Router
	checker *stubChecker
	now     time.Time
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.checker = &stubChecker{verdict: eligibility.Verdict{
		Status:  eligibility.StatusEligible,
		Message: "Your dispute is eligible for processing under GACA regulations",
	}}

	service, err := cases.New(intake.New(), s.checker, memory.New())
	s.Require().NoError(err)

	h := handler.New(service, slog.New(slog.DiscardHandler))
	s.router = chi.NewRouter()
	h.Register(s.router)
	h.RegisterProtected(s.router)

	s.now = time.Date(2025, time.September, 15, 10, 30, 0, 0, time.UTC)
}

func (s *HandlerSuite) validForm() map[string]any {
	return map[string]any{
		"consumer_name":     "Fatimah Al-Zahrani",
		"national_id":       "1098765432",
		"phone":             "+966501234567",
		"email":             "fatimah@example.com",
		"booking_reference": "abc123",
		"flight_number":     "sv246",
		"flight_date":       "2025-08-16",
		"origin":            "jed",
		"destination":       "ruh",
		"dispute_category":  "Flight Delay (> 3 hours)",
		"description":       "Flight delayed over four hours without assistance at the gate.",
		"has_documents":     true,
	}
}

func (s *HandlerSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, testutil.WithEvaluationTime(req, s.now))
	return rr
}

// =============================================================================
// Submit Endpoint
// =============================================================================

func (s *HandlerSuite) TestSubmit() {
	s.Run("valid submission creates a case", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", s.validForm())
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)

		var resp handler.SubmitResponse
		testutil.UnmarshalResponse(s.T(), rr, &resp)
		s.True(resp.Accepted)
		s.Require().NotNil(resp.Case)
		s.Equal("open", resp.Case.Status)
		s.Equal("eligible", resp.Case.Verdict.Status)
		s.NotEmpty(resp.Case.CaseID)
	})

	s.Run("lowercase identifiers are normalized before validation", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", s.validForm())
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	})

	s.Run("invalid form returns 422 with the violations", func() {
		form := s.validForm()
		form["email"] = "not-an-email"
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", form)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)

		var resp handler.SubmitResponse
		testutil.UnmarshalResponse(s.T(), rr, &resp)
		s.False(resp.Accepted)
		s.Require().NotNil(resp.Validation)
		s.Contains(resp.Validation.Errors, "Please enter a valid email address")
	})

	s.Run("malformed flight date is a request error", func() {
		form := s.validForm()
		form["flight_date"] = "16/08/2025"
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", form)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
		testutil.AssertErrorCode(s.T(), rr, "validation_error")
	})

	s.Run("unknown body fields are rejected", func() {
		form := s.validForm()
		form["frequent_flyer"] = "gold"
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", form)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

// =============================================================================
// Validate Endpoint
// =============================================================================

func (s *HandlerSuite) TestValidate() {
	s.Run("single step returns only that step's violations", func() {
		body := map[string]any{
			"step": "flight_details",
			"form": map[string]any{"booking_reference": "ABC12"},
		}
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/validate", body)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)

		var resp handler.ValidationResponse
		testutil.UnmarshalResponse(s.T(), rr, &resp)
		s.False(resp.IsValid)
		s.Contains(resp.Errors, "Booking reference must be exactly 6 alphanumeric characters")
		s.NotContains(resp.Errors, "Full name is required")
	})

	s.Run("omitted step validates the whole form", func() {
		body := map[string]any{"form": map[string]any{}}
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/validate", body)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)

		var resp handler.ValidationResponse
		testutil.UnmarshalResponse(s.T(), rr, &resp)
		s.False(resp.IsValid)
		s.Len(resp.Errors, 11)
	})

	s.Run("unknown step is a request error", func() {
		body := map[string]any{
			"step": "payment_details",
			"form": map[string]any{},
		}
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases/validate", body)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
		testutil.AssertErrorCode(s.T(), rr, "validation_error")
	})
}

// =============================================================================
// Get Endpoint
// =============================================================================

func (s *HandlerSuite) TestGet() {
	s.Run("returns a submitted case", func() {
		submit := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", s.validForm())
		rr := s.serve(submit)
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)

		var created handler.SubmitResponse
		testutil.UnmarshalResponse(s.T(), rr, &created)

		get := httptest.NewRequest(http.MethodGet, "/cases/"+created.Case.CaseID, nil)
		rr = s.serve(get)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONContains(s.T(), rr, "case_id", created.Case.CaseID)
	})

	s.Run("unknown case returns 404", func() {
		req := httptest.NewRequest(http.MethodGet, "/cases/"+domain.NewCaseID().String(), nil)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	})

	s.Run("malformed case id returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, "/cases/not-a-uuid", nil)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

// =============================================================================
// List Endpoint
// =============================================================================

func (s *HandlerSuite) TestList() {
	s.Run("returns cases filed against a booking", func() {
		submit := testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", s.validForm())
		testutil.AssertStatus(s.T(), s.serve(submit), http.StatusCreated)
		submit = testutil.NewJSONRequest(s.T(), http.MethodPost, "/cases", s.validForm())
		testutil.AssertStatus(s.T(), s.serve(submit), http.StatusCreated)

		req := httptest.NewRequest(http.MethodGet, "/cases?booking_reference=abc123", nil)
		rr := s.serve(req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)

		var listed handler.ListResponse
		testutil.UnmarshalResponse(s.T(), rr, &listed)
		s.Len(listed.Cases, 2)
		s.Equal("open", listed.Cases[0].Status)
	})

	s.Run("unmatched booking returns an empty list", func() {
		req := httptest.NewRequest(http.MethodGet, "/cases?booking_reference=DEF456", nil)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)

		var listed handler.ListResponse
		testutil.UnmarshalResponse(s.T(), rr, &listed)
		s.NotNil(listed.Cases)
		s.Empty(listed.Cases)
	})

	s.Run("malformed booking reference returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, "/cases?booking_reference=ABC12", nil)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("missing booking reference returns 400", func() {
		req := httptest.NewRequest(http.MethodGet, "/cases", nil)
		rr := s.serve(req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}
