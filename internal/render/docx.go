// Package render turns an optimized ResumeProfile back into downloadable
// artifacts. The DOCX output is a minimal WordprocessingML package built
// from scratch, section order fixed: personal info, summary, skills,
// experience, education.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"

	"resume-optimizer/internal/profile"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// RenderDocx produces a DOCX byte slice for the given profile.
func RenderDocx(p *profile.ResumeProfile) ([]byte, error) {
	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`)

	writeHeading(&doc, "Optimized Resume")
	writePersonalInfo(&doc, p.PersonalInfo)

	if strings.TrimSpace(p.Summary) != "" {
		writeHeading(&doc, "Professional Summary")
		writeParagraph(&doc, p.Summary, false)
	}

	if len(p.Skills) > 0 {
		writeHeading(&doc, "Skills")
		writeParagraph(&doc, strings.Join(p.Skills, ", "), false)
	}

	if len(p.Experience) > 0 {
		writeHeading(&doc, "Experience")
		for _, job := range p.Experience {
			title := job.Title
			if job.Company != "" {
				title += " - " + job.Company
			}
			writeBoldParagraph(&doc, title)
			if len(job.Dates) > 0 {
				writeParagraph(&doc, strings.Join(job.Dates, " | "), false)
			}
			for _, bullet := range job.Description {
				writeParagraph(&doc, bullet, true)
			}
		}
	}

	if len(p.Education) > 0 {
		writeHeading(&doc, "Education")
		for _, edu := range p.Education {
			line := edu.Degree
			if edu.Institution != "" {
				line += " - " + edu.Institution
			}
			writeBoldParagraph(&doc, line)
			if len(edu.Dates) > 0 {
				writeParagraph(&doc, strings.Join(edu.Dates, " | "), false)
			}
			for _, detail := range edu.Details {
				writeParagraph(&doc, detail, true)
			}
		}
	}

	doc.WriteString(`</w:body></w:document>`)

	return packDocx(doc.String())
}

func writePersonalInfo(doc *strings.Builder, info profile.PersonalInfo) {
	if info.Name != "" {
		writeBoldParagraph(doc, info.Name)
	}
	contact := make([]string, 0, 2)
	if info.Email != "" {
		contact = append(contact, info.Email)
	}
	if info.Phone != "" {
		contact = append(contact, info.Phone)
	}
	if len(contact) > 0 {
		writeParagraph(doc, strings.Join(contact, " | "), false)
	}
}

func writeHeading(doc *strings.Builder, text string) {
	doc.WriteString(`<w:p><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr>`)
	doc.WriteString(`<w:r><w:rPr><w:b/><w:sz w:val="28"/></w:rPr><w:t xml:space="preserve">`)
	writeEscaped(doc, text)
	doc.WriteString(`</w:t></w:r></w:p>`)
}

func writeBoldParagraph(doc *strings.Builder, text string) {
	doc.WriteString(`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">`)
	writeEscaped(doc, text)
	doc.WriteString(`</w:t></w:r></w:p>`)
}

func writeParagraph(doc *strings.Builder, text string, bullet bool) {
	doc.WriteString(`<w:p>`)
	if bullet {
		doc.WriteString(`<w:pPr><w:ind w:left="360"/></w:pPr>`)
		text = "• " + text
	}
	doc.WriteString(`<w:r><w:t xml:space="preserve">`)
	writeEscaped(doc, text)
	doc.WriteString(`</w:t></w:r></w:p>`)
}

func writeEscaped(doc *strings.Builder, text string) {
	// strings.Builder writes cannot fail.
	_ = xml.EscapeText(doc, []byte(text))
}

func packDocx(documentXML string) ([]byte, error) {
	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	files := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, f := range files {
		dst, err := writer.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Write([]byte(f.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
