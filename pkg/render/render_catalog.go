package render

import (
	"html/template"
	"io"

	"github.com/equinelab/coatgen/logger"
)

// LocusRow is one catalog locus prepared for rendering.
type LocusRow struct {
	Name    string
	Symbol  string
	Alleles []string
}

// CatalogPageData describes the gene catalog for the overview page.
type CatalogPageData struct {
	Version string
	Loci    []LocusRow
}

var catalog_page_template *template.Template

// init initializes the templates used for rendering the HTML page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
	    <title>Coat Color Catalog</title>
	    <style>
        table {
            border-collapse: collapse;
        }
        th, td {
            border: 1px solid #999;
            padding: 4px 10px;
            text-align: left;
        }
   		</style>
	</head>
	<body>
		<h1>Coat Color Genetics</h1>
		<p>Version {{ .Version }}. Alleles are listed from most to least dominant.</p>
		<table>
			<tr><th>Locus</th><th>Symbol</th><th>Alleles</th></tr>
			{{ range .Loci }}
			<tr>
				<td>{{ .Name }}</td>
				<td>{{ .Symbol }}</td>
				<td>{{ range $i, $a := .Alleles }}{{ if $i }}, {{ end }}{{ $a }}{{ end }}</td>
			</tr>
			{{ end }}
		</table>
	</body>
	</html>`

	catalog_page_template = template.Must(template.New("catalog_page").Parse(mainTmpl))
}

// Function to render an HTML page with the locus table
func RenderCatalogPage(w io.Writer, data CatalogPageData) error {
	logger.Debug("Rendering catalog page")
	return catalog_page_template.Execute(w, data)
}
