package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "aeroclaim/pkg/domain-errors"
)

func TestParseCaseID(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCaseID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseCaseID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseCaseID(uuid.Nil.String())
		require.Error(t, err)
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		want := uuid.New()
		id, err := ParseCaseID(want.String())
		require.NoError(t, err)
		assert.Equal(t, CaseID(want), id)
	})
}

func TestParseBookingReference(t *testing.T) {
	t.Run("accepts six uppercase alphanumerics", func(t *testing.T) {
		ref, err := ParseBookingReference("ABC123")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", ref.String())
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		_, err := ParseBookingReference("abc123")
		require.Error(t, err)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		for _, in := range []string{"", "ABC12", "ABC1234"} {
			_, err := ParseBookingReference(in)
			assert.Error(t, err, in)
		}
	})
}

func TestParseAirportCode(t *testing.T) {
	_, err := ParseAirportCode("RUH")
	require.NoError(t, err)

	for _, in := range []string{"", "ruh", "RU", "RUHX", "R1H"} {
		_, err := ParseAirportCode(in)
		assert.Error(t, err, in)
	}
}

func TestSubjectHash(t *testing.T) {
	a := SubjectHash("AB1234567")
	b := SubjectHash(" AB1234567 ")
	assert.Equal(t, a, b, "hash ignores surrounding whitespace")
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, SubjectHash("AB1234568"))
}
