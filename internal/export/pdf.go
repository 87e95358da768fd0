package export

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays the report out on A4 using the built-in Helvetica core
// font, so no font files need to exist on disk.
func RenderPDF(doc ReportDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.title(), true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, doc.ClientName, "", "L", false)

	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, doc.ProjectName+" / "+doc.Period, "", "L", false)
	if doc.PublishedAt != nil {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Published "+doc.PublishedAt.Format(time.DateOnly), "", "L", false)
	}
	pdf.Ln(4)

	writeSection(pdf, "Summary", []string{doc.Summary})

	if kpis := doc.kpiLines(); len(kpis) > 0 {
		writeSection(pdf, "KPIs", kpis)
	}
	if len(doc.WhatWasDone) > 0 {
		writeSection(pdf, "What was done", bulleted(doc.WhatWasDone))
	}
	if len(doc.NextPlan) > 0 {
		writeSection(pdf, "Next plan", bulleted(doc.NextPlan))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, heading string, lines []string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, heading, "", "L", false)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
	pdf.Ln(3)
}

func bulleted(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}
