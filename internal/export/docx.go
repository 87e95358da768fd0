package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDOCX assembles the smallest WordprocessingML package a word
// processor will open: content types, the package relationship and a single
// document part.
func RenderDOCX(doc ReportDocument) ([]byte, error) {
	var body strings.Builder
	writePara(&body, doc.ClientName, true)
	writePara(&body, doc.ProjectName+" / "+doc.Period, false)

	writePara(&body, "Summary", true)
	writePara(&body, doc.Summary, false)

	if kpis := doc.kpiLines(); len(kpis) > 0 {
		writePara(&body, "KPIs", true)
		for _, line := range kpis {
			writePara(&body, line, false)
		}
	}
	if len(doc.WhatWasDone) > 0 {
		writePara(&body, "What was done", true)
		for _, line := range bulleted(doc.WhatWasDone) {
			writePara(&body, line, false)
		}
	}
	if len(doc.NextPlan) > 0 {
		writePara(&body, "Next plan", true)
		for _, line := range bulleted(doc.NextPlan) {
			writePara(&body, line, false)
		}
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body.String() + `</w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name, data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writePara appends one paragraph; bold paragraphs double as headings.
func writePara(b *strings.Builder, text string, bold bool) {
	b.WriteString("<w:p><w:r>")
	if bold {
		b.WriteString("<w:rPr><w:b/></w:rPr>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(b, []byte(text))
	b.WriteString("</w:t></w:r></w:p>")
}
