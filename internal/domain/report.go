package domain

import (
	"strings"
	"time"
)

type ReportStatus string

const (
	ReportDraft     ReportStatus = "draft"
	ReportPublished ReportStatus = "published"
)

// Report is a periodic performance snapshot tied to a project.
// Invariant: PublishedAt is non-nil iff Status == ReportPublished.
type Report struct {
	ID          string
	ProjectID   string
	Period      string // "YYYY-MM"; the format sorts lexically == chronologically
	Summary     string
	Status      ReportStatus
	PublishedAt *time.Time

	// KPIs, all optional.
	Spend   *float64
	Revenue *float64
	Leads   *int64
	CPA     *float64
	ROAS    *float64

	// Narrative bullet lists.
	WhatWasDone []string
	NextPlan    []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReportDetail is a report joined with its project and client, the shape most
// read paths return.
type ReportDetail struct {
	Report
	Project Project
	Client  Client
}

// KPIRow is the projection of a report's numeric fields used by summary
// aggregation.
type KPIRow struct {
	Spend   *float64
	Revenue *float64
	Leads   *int64
	CPA     *float64
	ROAS    *float64
}

// ReportSummary is the KPI aggregation over a set of reports. The averages
// are nil when no report in the set carried that KPI.
type ReportSummary struct {
	TotalSpend   float64
	TotalRevenue float64
	TotalLeads   int64
	AvgCPA       *float64
	AvgROAS      *float64
	CountReports int
}

// JoinBullets flattens a bullet list into newline-joined storage form.
// Blank lines are dropped so the round trip is lossless for non-empty items.
func JoinBullets(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n")
}

// SplitBullets is the inverse of JoinBullets.
func SplitBullets(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if l := strings.TrimSpace(line); l != "" {
			items = append(items, l)
		}
	}
	return items
}
