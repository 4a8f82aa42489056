package domain

import (
	"fmt"
	"time"
)

// ReportStatus distinguishes lost from found reports. It never changes
// after creation.
type ReportStatus string

const (
	ReportLost  ReportStatus = "lost"
	ReportFound ReportStatus = "found"
)

// ParseReportStatus validates a wire value.
func ParseReportStatus(s string) (ReportStatus, error) {
	switch st := ReportStatus(s); st {
	case ReportLost, ReportFound:
		return st, nil
	}
	return "", fmt.Errorf("%w: status must be one of lost, found", ErrValidation)
}

// Report is a lost-and-found listing.
type Report struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	Date        time.Time    `json:"date"`
	Finder      string       `json:"finder,omitempty"`
	Loser       string       `json:"loser,omitempty"`
}

// NewReport attributes the report to the reporter according to its status.
func NewReport(title, description string, status ReportStatus, actingName string, now time.Time) *Report {
	r := &Report{
		Title:       title,
		Description: description,
		Status:      status,
		Date:        now,
	}
	if status == ReportFound {
		r.Finder = actingName
	} else {
		r.Loser = actingName
	}
	return r
}

// IsParty reports whether name is the finder or loser on the report.
func (r *Report) IsParty(name string) bool {
	return name != "" && (r.Finder == name || r.Loser == name)
}
