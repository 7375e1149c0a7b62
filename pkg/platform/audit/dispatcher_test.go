package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"aeroclaim/pkg/platform/audit"
	"aeroclaim/pkg/platform/audit/store/memory"
)

// =============================================================================
// Audit Dispatcher Test Suite
// =============================================================================

type DispatcherSuite struct {
	suite.Suite
	store *memory.Store
	inbox chan audit.Event
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) SetupTest() {
	s.store = memory.New()
	s.inbox = make(chan audit.Event, 4)
}

func (s *DispatcherSuite) TestEmit() {
	ctx := context.Background()
	d := audit.NewDispatcher(s.store, s.inbox)

	s.Run("compliance events append synchronously", func() {
		err := d.Emit(ctx, audit.Event{Action: audit.ActionCaseSubmitted, CaseID: "c-1"})
		s.NoError(err)

		events := s.store.Events()
		s.Require().Len(events, 1)
		s.Equal(audit.CategoryCompliance, events[0].Category)
		s.False(events[0].Timestamp.IsZero())
		s.Empty(s.inbox)
	})

	s.Run("operations events go to the worker inbox", func() {
		err := d.Emit(ctx, audit.Event{Action: audit.ActionValidationRejected})
		s.NoError(err)

		s.Require().Len(s.inbox, 1)
		event := <-s.inbox
		s.Equal(audit.CategoryOperations, event.Category)
	})

	s.Run("full inbox drops operations events without failing", func() {
		for i := 0; i < cap(s.inbox); i++ {
			s.inbox <- audit.Event{}
		}
		err := d.Emit(ctx, audit.Event{Action: audit.ActionBookingLookupError})
		s.NoError(err)
	})
}

func (s *DispatcherSuite) TestEmitWithoutInbox() {
	d := audit.NewDispatcher(s.store, nil)

	err := d.Emit(context.Background(), audit.Event{Action: audit.ActionValidationRejected})
	s.NoError(err)
	s.Len(s.store.Events(), 1)
}
