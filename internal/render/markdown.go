//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package render compiles markdown documents into standalone styled HTML
// pages. Tables and fenced code blocks are supported, headings get stable
// anchors, and a table of contents is inserted before the body.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"

	"github.com/synthcrm/crmgen/internal/logging"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="zh-TW">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f8f9fa; color: #333; padding: 20px; }
        .container { max-width: 900px; background: white; padding: 40px; border-radius: 10px; box-shadow: 0 4px 20px rgba(0,0,0,0.05); }
        h1, h2, h3 { color: #2c3e50; margin-top: 1.5em; }
        h1 { border-bottom: 3px solid #3498db; padding-bottom: 15px; margin-top: 0; }
        h2 { border-left: 5px solid #3498db; padding-left: 15px; background: #f1f8fe; padding-top: 10px; padding-bottom: 10px; border-radius: 0 5px 5px 0; }
        code { background-color: #f1f2f6; padding: 2px 5px; border-radius: 3px; color: #e74c3c; font-family: 'Consolas', monospace; }
        pre { background-color: #2d3436; color: #dfe6e9; padding: 15px; border-radius: 5px; }
        pre code { background: none; color: inherit; padding: 0; }
        blockquote { border-left: 4px solid #f1c40f; background: #fffcf0; padding: 15px; margin: 20px 0; border-radius: 3px; }
        table { width: 100%; margin-bottom: 1rem; color: #212529; border-collapse: collapse; }
        th, td { padding: 0.75rem; vertical-align: top; border-top: 1px solid #dee2e6; }
        th { background-color: #2c3e50; color: white; }
    </style>
</head>
<body>
    <div class="container">
        {{.Body}}
    </div>
</body>
</html>
`))

type pageData struct {
	Title string
	Body  template.HTML
}

// Compile converts markdown source into a complete HTML page. The document
// title defaults to the first top-level heading.
func Compile(source []byte) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	doc := md.Parser().Parse(text.NewReader(source))

	tree, err := toc.Inspect(doc, source)
	if err != nil {
		return nil, fmt.Errorf("build table of contents: %w", err)
	}
	if list := toc.RenderList(tree); list != nil {
		doc.InsertBefore(doc, doc.FirstChild(), list)
	}

	var body bytes.Buffer
	if err := md.Renderer().Render(&body, source, doc); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var page bytes.Buffer
	data := pageData{
		Title: documentTitle(doc, source),
		Body:  template.HTML(body.String()),
	}
	if err := pageTemplate.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return page.Bytes(), nil
}

// File compiles the markdown document at inputPath and writes the HTML page
// to outputPath. A missing input fails before anything is written.
func File(inputPath, outputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	page, err := Compile(source)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, page, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logging.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("bytes", len(page)).
		Msg("Document compiled")
	return nil
}

func documentTitle(doc ast.Node, source []byte) string {
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return string(h.Text(source))
		}
	}
	return "Document"
}
