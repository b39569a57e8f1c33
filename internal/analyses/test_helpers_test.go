package analyses

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

// docxFixture builds a minimal DOCX with one paragraph per line.
func docxFixture(t *testing.T, lines []string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		body.WriteString(`<w:p><w:r><w:t>` + line + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`</Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": body.String(),
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// sampleResumeLines is a small but complete resume, enough to exercise every
// pipeline stage.
func sampleResumeLines() []string {
	return []string{
		"Jane Doe",
		"jane.doe@example.com",
		"555-123-4567",
		"Professional Summary",
		"Backend engineer focused on reliable data services.",
		"Experience",
		"Senior Engineer at Initech",
		"Jan 2020 - Present",
		"- responsible for managing a team of five people",
		"- developed APIs that reduced costs by 30%",
		"Education",
		"Bachelor of Science in Computer Science",
		"State University, 2012 - 2016",
		"Skills",
		"Python, AWS, Docker, SQL",
	}
}
