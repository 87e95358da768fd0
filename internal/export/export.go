// Package export renders report snapshots as downloadable documents. The PDF
// path uses fpdf's built-in core fonts so rendering never touches the
// filesystem; the DOCX path assembles a minimal WordprocessingML package
// in-memory.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReportDocument is the flattened input both renderers consume.
type ReportDocument struct {
	ClientName  string
	ProjectName string
	Period      string
	Summary     string

	Spend   *float64
	Revenue *float64
	Leads   *int64
	CPA     *float64
	ROAS    *float64

	WhatWasDone []string
	NextPlan    []string

	PublishedAt *time.Time
}

// kpiLines renders the present KPIs as "label: value" rows; absent metrics
// are omitted rather than shown as zero.
func (d ReportDocument) kpiLines() []string {
	var lines []string
	if d.Spend != nil {
		lines = append(lines, fmt.Sprintf("Spend: %s", formatMoney(*d.Spend)))
	}
	if d.Revenue != nil {
		lines = append(lines, fmt.Sprintf("Revenue: %s", formatMoney(*d.Revenue)))
	}
	if d.Leads != nil {
		lines = append(lines, fmt.Sprintf("Leads: %d", *d.Leads))
	}
	if d.CPA != nil {
		lines = append(lines, fmt.Sprintf("CPA: %s", formatMoney(*d.CPA)))
	}
	if d.ROAS != nil {
		lines = append(lines, fmt.Sprintf("ROAS: %s", strconv.FormatFloat(*d.ROAS, 'f', 2, 64)))
	}
	return lines
}

func (d ReportDocument) title() string {
	return fmt.Sprintf("%s — %s (%s)", d.ClientName, d.ProjectName, d.Period)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// maxFilenameLen bounds the sanitised base name handed to Content-Disposition.
const maxFilenameLen = 80

// Filename sanitises an arbitrary string into a safe download base name:
// lowercased, runs of non-alphanumerics collapsed into single hyphens,
// trimmed, and capped at 80 characters.
func Filename(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > maxFilenameLen {
		out = strings.Trim(out[:maxFilenameLen], "-")
	}
	if out == "" {
		out = "report"
	}
	return out
}
