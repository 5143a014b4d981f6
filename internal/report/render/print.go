package render

import (
	"bytes"
	"html/template"

	dErrors "vetgate/pkg/domain-errors"
)

// printTemplate is the self-contained print document. All styling is inline
// in the document head because the print context does not share the parent
// page's style scope; the trailing script triggers the native print dialog
// once content has loaded.
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - {{.InquiryID}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 40px; }
  h1 { font-size: 22px; margin-bottom: 4px; }
  h2 { font-size: 16px; border-bottom: 1px solid #ccc; padding-bottom: 4px; margin-top: 24px; }
  .meta { color: #666; font-size: 12px; margin-bottom: 16px; }
  .field { margin: 4px 0; font-size: 13px; }
  .field .label { font-weight: bold; }
  .badge { display: inline-block; padding: 2px 8px; border-radius: 3px; font-size: 12px; font-weight: bold; }
  .badge.ok { background: #e6f4ea; color: #137333; }
  .badge.bad { background: #fce8e6; color: #c5221f; }
  ul.records { font-size: 13px; }
  ul.records li { margin-bottom: 6px; }
  .summary-grid { font-size: 13px; }
  .footer { margin-top: 32px; color: #666; font-size: 11px; border-top: 1px solid #ccc; padding-top: 8px; }
  @media print { body { margin: 10mm; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">Inquiry {{.InquiryID}} &middot; Generated {{.GeneratedAtText}}</div>

<h2>Overview</h2>
{{range .Header}}<div class="field"><span class="label">{{.Label}}:</span> {{.Value}}</div>
{{end}}

<h2>Requested Services</h2>
<ul>
{{range .Services}}<li>{{.}}</li>
{{end}}</ul>

{{if .AdditionalInfo}}<h2>Additional Information</h2>
{{range .AdditionalInfo}}<div class="field"><span class="label">{{.Label}}:</span> {{.Value}}</div>
{{end}}{{end}}

{{if .Summary}}<h2>Summary</h2>
<div class="summary-grid">
<div class="field"><span class="label">Overall Status:</span> {{.Summary.OverallStatus}}</div>
<div class="field"><span class="label">Total Checks:</span> {{.Summary.TotalChecks}}</div>
<div class="field"><span class="label">Passed:</span> {{.Summary.PassedChecks}}</div>
<div class="field"><span class="label">Failed:</span> {{.Summary.FailedChecks}}</div>
<div class="field"><span class="label">Pending:</span> {{.Summary.PendingChecks}}</div>
</div>{{end}}

{{range .Details}}<h2>{{.Title}}</h2>
<div class="field"><span class="badge {{if .Verified}}ok{{else}}bad{{end}}">{{if .Verified}}Verified{{else}}Not Verified{{end}}</span></div>
{{range .Fields}}<div class="field"><span class="label">{{.Label}}:</span> {{.Value}}</div>
{{end}}{{if .Records}}<ul class="records">
{{range .Records}}<li>{{.Offense}}{{if .Date}} ({{.Date}}){{end}} &mdash; {{.Disposition}}, {{.Jurisdiction}}</li>
{{end}}</ul>{{end}}
{{end}}

<div class="footer">Generated {{.GeneratedAtText}} by vetgate{{if .ShareURL}} &middot; {{.ShareURL}}{{end}}</div>
<script>window.addEventListener('load', function () { window.print(); });</script>
</body>
</html>
`))

type printData struct {
	*Projection
	GeneratedAtText string
}

// Print renders the projection as a standalone print-ready HTML document.
// On failure it returns render_error and no partial output.
func Print(p *Projection) ([]byte, error) {
	var buf bytes.Buffer
	data := printData{Projection: p, GeneratedAtText: FormatDateTime(p.GeneratedAt)}
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderError, "could not generate print document")
	}
	return buf.Bytes(), nil
}
