package render

import (
	"fmt"
	"html/template"
	"io"
)

// pageTemplate is a deliberately plain, dependency-free HTML page:
// one table, one row per tag, links only when present.
var pageTemplate = template.Must(template.New("catalog").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Tag documentation: {{.Namespace}}{{end}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
code { background: #f6f6f6; padding: 0 0.2rem; }
.badge { font-size: 0.8em; color: #666; }
</style>
</head>
<body>
<h1>{{if .Title}}{{.Title}}{{else}}Tag documentation: {{.Namespace}}{{end}}</h1>
<p class="badge">namespace {{.Namespace}} &middot; catalog {{.CatalogID}} &middot; {{len .Tags}} tags</p>
<table>
<tr><th>Key</th><th>Validation</th><th>Values</th><th>Links</th><th>Definition</th></tr>
{{range .Tags}}<tr>
<td><code>{{.Key}}</code>{{if .Localized}} <span class="badge">localized</span>{{end}}{{if .Synthetic}} <span class="badge">synthetic</span>{{end}}</td>
<td>{{.Validation}}</td>
<td>{{range $i, $v := .Values}}{{if $i}}, {{end}}<code>{{$v}}</code>{{end}}</td>
<td>{{if .WikiLink}}<a href="{{.WikiLink}}">wiki</a>{{end}}{{if .TaginfoLink}} <a href="{{.TaginfoLink}}">taginfo</a>{{end}}</td>
<td><code>{{.Definition}}</code></td>
</tr>
{{end}}</table>
</body>
</html>
`))

// HTML renders the catalog as a standalone HTML page. An empty title
// falls back to a namespace-derived heading.
func HTML(w io.Writer, c Catalog, title string) error {
	doc, err := collect(c, title)
	if err != nil {
		return err
	}
	if err := pageTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("executing catalog template: %w", err)
	}
	return nil
}
