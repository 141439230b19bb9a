package models

import "fmt"

// ReportStatus is the lifecycle stage of a report.
type ReportStatus string

const (
	StatusPending             ReportStatus = "PENDING"
	StatusInAnalysis          ReportStatus = "IN_ANALYSIS"
	StatusResolvedProvisional ReportStatus = "RESOLVED_PROVISIONAL"
	StatusResolvedConfirmed   ReportStatus = "RESOLVED_CONFIRMED"
	StatusArchived            ReportStatus = "ARCHIVED"
)

// AllStatuses lists every valid report status.
var AllStatuses = []ReportStatus{
	StatusPending,
	StatusInAnalysis,
	StatusResolvedProvisional,
	StatusResolvedConfirmed,
	StatusArchived,
}

// allowedTransitions maps a current status to the set of statuses it may
// move to. ARCHIVED is terminal. Self-transitions are never allowed.
var allowedTransitions = map[ReportStatus][]ReportStatus{
	StatusPending:             {StatusInAnalysis, StatusArchived},
	StatusInAnalysis:          {StatusPending, StatusResolvedProvisional, StatusArchived},
	StatusResolvedProvisional: {StatusInAnalysis, StatusResolvedConfirmed},
	StatusResolvedConfirmed:   {StatusArchived},
	StatusArchived:            {},
}

// ParseReportStatus converts a raw string into a ReportStatus.
func ParseReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown report status %q", s)
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to ReportStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an InvalidTransitionError if the requested
// status change is not in the transition table. Pure, no storage involved.
func ValidateTransition(from, to ReportStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}
