package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition_AllowedPairs(t *testing.T) {
	allowed := []struct {
		from ReportStatus
		to   ReportStatus
	}{
		{StatusPending, StatusInAnalysis},
		{StatusPending, StatusArchived},
		{StatusInAnalysis, StatusPending},
		{StatusInAnalysis, StatusResolvedProvisional},
		{StatusInAnalysis, StatusArchived},
		{StatusResolvedProvisional, StatusInAnalysis},
		{StatusResolvedProvisional, StatusResolvedConfirmed},
		{StatusResolvedConfirmed, StatusArchived},
	}

	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
		assert.NoError(t, ValidateTransition(tc.from, tc.to))
	}
}

func TestValidateTransition_ForbiddenPairs(t *testing.T) {
	// Every pair not in the table, including self-transitions, is rejected.
	allowed := map[ReportStatus][]ReportStatus{
		StatusPending:             {StatusInAnalysis, StatusArchived},
		StatusInAnalysis:          {StatusPending, StatusResolvedProvisional, StatusArchived},
		StatusResolvedProvisional: {StatusInAnalysis, StatusResolvedConfirmed},
		StatusResolvedConfirmed:   {StatusArchived},
		StatusArchived:            {},
	}

	isAllowed := func(from, to ReportStatus) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			if isAllowed(from, to) {
				continue
			}
			assert.False(t, CanTransition(from, to), "%s -> %s should be forbidden", from, to)

			err := ValidateTransition(from, to)
			require.Error(t, err)

			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, from, invalid.From)
			assert.Equal(t, to, invalid.To)
		}
	}
}

func TestValidateTransition_SelfTransitionRejected(t *testing.T) {
	for _, status := range AllStatuses {
		assert.False(t, CanTransition(status, status), "%s -> %s should be rejected", status, status)
	}
}

func TestValidateTransition_ArchivedIsTerminal(t *testing.T) {
	for _, to := range AllStatuses {
		assert.False(t, CanTransition(StatusArchived, to))
	}
}

func TestInvalidTransitionError_NamesBothStates(t *testing.T) {
	err := ValidateTransition(StatusPending, StatusResolvedConfirmed)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid status transition: PENDING -> RESOLVED_CONFIRMED")
}

func TestParseReportStatus(t *testing.T) {
	for _, status := range AllStatuses {
		parsed, err := ParseReportStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseReportStatus("RESOLVED")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report status")
}
