package http

import (
	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
)

// Mapping from domain types to the wire types shared with agencysdk. The
// handlers own this translation so the services never see JSON concerns.

func renderUser(u domain.User) agencysdk.User {
	return agencysdk.User{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		AgencyID: u.AgencyID,
		ClientID: u.ClientID,
	}
}

func renderAgency(a domain.Agency) agencysdk.Agency {
	return agencysdk.Agency{
		ID:           a.ID,
		Name:         a.Name,
		Slug:         a.Slug,
		PrimaryEmail: a.PrimaryEmail,
		CreatedAt:    a.CreatedAt,
	}
}

func renderClient(c domain.Client) agencysdk.Client {
	return agencysdk.Client{
		ID:           c.ID,
		AgencyID:     c.AgencyID,
		Name:         c.Name,
		Company:      c.Company,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func renderProject(d domain.ProjectDetail) agencysdk.Project {
	client := renderClient(d.Client)
	return agencysdk.Project{
		ID:        d.ID,
		ClientID:  d.Project.ClientID,
		Name:      d.Project.Name,
		Status:    string(d.Status),
		Notes:     d.Notes,
		CreatedAt: d.Project.CreatedAt,
		UpdatedAt: d.Project.UpdatedAt,
		Client:    &client,
	}
}

func renderReport(d domain.ReportDetail) agencysdk.Report {
	client := renderClient(d.Client)
	project := agencysdk.Project{
		ID:        d.Project.ID,
		ClientID:  d.Project.ClientID,
		Name:      d.Project.Name,
		Status:    string(d.Project.Status),
		Notes:     d.Project.Notes,
		CreatedAt: d.Project.CreatedAt,
		UpdatedAt: d.Project.UpdatedAt,
	}
	return agencysdk.Report{
		ID:          d.ID,
		ProjectID:   d.Report.ProjectID,
		Period:      d.Period,
		Summary:     d.Summary,
		Status:      string(d.Report.Status),
		PublishedAt: d.PublishedAt,
		Spend:       d.Spend,
		Revenue:     d.Revenue,
		Leads:       d.Leads,
		CPA:         d.CPA,
		ROAS:        d.ROAS,
		WhatWasDone: d.WhatWasDone,
		NextPlan:    d.NextPlan,
		CreatedAt:   d.Report.CreatedAt,
		UpdatedAt:   d.Report.UpdatedAt,
		Project:     &project,
		Client:      &client,
	}
}

func renderReportPage(page service.ReportPage) agencysdk.ReportListResponse {
	items := make([]agencysdk.Report, 0, len(page.Items))
	for _, d := range page.Items {
		items = append(items, renderReport(d))
	}
	return agencysdk.ReportListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func renderSummary(s domain.ReportSummary) agencysdk.SummaryResponse {
	return agencysdk.SummaryResponse{
		TotalSpend:   s.TotalSpend,
		TotalRevenue: s.TotalRevenue,
		TotalLeads:   s.TotalLeads,
		AvgCPA:       s.AvgCPA,
		AvgROAS:      s.AvgROAS,
		CountReports: s.CountReports,
	}
}

func renderSession(s service.Session) agencysdk.SessionResponse {
	return agencysdk.SessionResponse{
		Token:  s.Token,
		User:   renderUser(s.User),
		Agency: renderAgency(s.Agency),
	}
}

func renderPublicReport(v service.PublicReportView) agencysdk.PublicReportResponse {
	d := v.Report
	return agencysdk.PublicReportResponse{
		AgencyName:  v.AgencyName,
		ClientName:  d.Client.Name,
		ProjectName: d.Project.Name,
		Period:      d.Period,
		Summary:     d.Summary,
		PublishedAt: d.PublishedAt,
		Spend:       d.Spend,
		Revenue:     d.Revenue,
		Leads:       d.Leads,
		CPA:         d.CPA,
		ROAS:        d.ROAS,
		WhatWasDone: d.WhatWasDone,
		NextPlan:    d.NextPlan,
	}
}
