package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"aeroclaim/internal/cases"
	"aeroclaim/internal/eligibility"
	"aeroclaim/internal/intake"
	"aeroclaim/pkg/domain"
	"aeroclaim/pkg/platform/sentinel"
)

// =============================================================================
// Memory Case Store Test Suite
// =============================================================================

type MemoryStoreSuite struct {
	suite.Suite
	store *Store
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = New()
}

func (s *MemoryStoreSuite) newCase(bookingRef string) cases.Case {
	return cases.Case{
		ID: domain.NewCaseID(),
		Record: intake.CaseRecord{
			ConsumerName:     "Fatimah Al-Zahrani",
			BookingReference: bookingRef,
			FlightNumber:     "SV246",
		},
		Status: cases.StatusOpen,
		Verdict: eligibility.Verdict{
			Status:  eligibility.StatusEligible,
			Message: "Your dispute is eligible for processing under GACA regulations",
		},
		SubmittedAt: time.Now(),
	}
}

func (s *MemoryStoreSuite) TestSaveAndFind() {
	ctx := context.Background()
	c := s.newCase("ABC123")

	s.Require().NoError(s.store.Save(ctx, c))

	found, err := s.store.FindByID(ctx, c.ID.String())
	s.NoError(err)
	s.Equal(c.ID, found.ID)
	s.Equal(cases.StatusOpen, found.Status)
	s.Equal(c.Verdict.Message, found.Verdict.Message)
}

func (s *MemoryStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), domain.NewCaseID().String())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestListByBookingReference() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, s.newCase("ABC123")))
	s.Require().NoError(s.store.Save(ctx, s.newCase("ABC123")))
	s.Require().NoError(s.store.Save(ctx, s.newCase("DEF456")))

	list, err := s.store.ListByBookingReference(ctx, "ABC123")
	s.NoError(err)
	s.Len(list, 2)

	list, err = s.store.ListByBookingReference(ctx, "ZZZ999")
	s.NoError(err)
	s.Empty(list)
}
