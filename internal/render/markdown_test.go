package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `# Collaboration Guide

## Getting Started

Use the ` + "`crmgen`" + ` tool to build the dataset.

## Data Dictionary

| Table | Rows |
|-------|------|
| members | 10000 |
| products | 50 |

## Queries

` + "```sql\nSELECT COUNT(*) FROM members;\n```" + `
`

func TestCompile(t *testing.T) {
	page, err := Compile([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)

	if !strings.Contains(html, "<title>Collaboration Guide</title>") {
		t.Error("page title not taken from the first heading")
	}

	// GFM table
	if !strings.Contains(html, "<table>") || !strings.Contains(html, "<td>10000</td>") {
		t.Error("markdown table not rendered")
	}

	// Fenced code block
	if !strings.Contains(html, "SELECT COUNT(*) FROM members;") {
		t.Error("fenced code block not rendered")
	}

	// Headings carry stable anchors and the ToC links to them
	if !strings.Contains(html, `id="data-dictionary"`) {
		t.Error("heading anchor missing")
	}
	if !strings.Contains(html, `href="#data-dictionary"`) {
		t.Error("table of contents link missing")
	}

	if !strings.Contains(html, "bootstrap") {
		t.Error("page is missing the stylesheet link")
	}
}

func TestCompileUntitled(t *testing.T) {
	page, err := Compile([]byte("plain paragraph, no headings"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "<title>Document</title>") {
		t.Error("expected fallback title for a document without headings")
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "guide.md")
	output := filepath.Join(dir, "guide.html")

	if err := os.WriteFile(input, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := File(input, output); err != nil {
		t.Fatal(err)
	}

	page, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "<h2") {
		t.Error("output file does not look like the rendered document")
	}
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.html")

	err := File(filepath.Join(dir, "nope.md"), output)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output file should not be created when the input is missing")
	}
}
