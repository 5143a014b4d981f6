package render

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	dErrors "vetgate/pkg/domain-errors"
)

// A4 layout constants, in millimeters. Content never crosses the printable
// bottom band; a new page starts instead so no line is clipped mid-text.
const (
	pdfPageHeight   = 297.0
	pdfBottomMargin = 80.0
	pdfMaxY         = pdfPageHeight - pdfBottomMargin
	pdfTopMargin    = 15.0
	pdfLeftMargin   = 15.0
	pdfContentWidth = 180.0
	pdfLineHeight   = 6.0
	pdfHeadingGap   = 4.0
	pdfFooterHeight = 14.0
)

// FileName returns the download name for a generated PDF artifact.
func FileName(inquiryID string) string {
	return "trustii-report-" + inquiryID + ".pdf"
}

// pdfCursor drives sequential block placement with an explicit vertical
// offset, inserting page breaks before any line that would cross pdfMaxY.
type pdfCursor struct {
	doc *fpdf.Fpdf
	y   float64
}

func (c *pdfCursor) ensureRoom(height float64) {
	if c.y+height > pdfMaxY {
		c.doc.AddPage()
		c.y = pdfTopMargin
	}
}

func (c *pdfCursor) heading(text string) {
	// Keep a heading and at least one content line together.
	c.ensureRoom(pdfHeadingGap + 2*pdfLineHeight)
	c.y += pdfHeadingGap
	c.doc.SetFont("Helvetica", "B", 13)
	c.doc.SetXY(pdfLeftMargin, c.y)
	c.doc.CellFormat(pdfContentWidth, pdfLineHeight, text, "", 0, "L", false, 0, "")
	c.y += pdfLineHeight + 1
	c.doc.SetLineWidth(0.2)
	c.doc.Line(pdfLeftMargin, c.y, pdfLeftMargin+pdfContentWidth, c.y)
	c.y += 2
}

func (c *pdfCursor) line(text string, style string, size float64) {
	c.doc.SetFont("Helvetica", style, size)
	for _, segment := range c.doc.SplitText(text, pdfContentWidth) {
		c.ensureRoom(pdfLineHeight)
		c.doc.SetXY(pdfLeftMargin, c.y)
		c.doc.CellFormat(pdfContentWidth, pdfLineHeight, segment, "", 0, "L", false, 0, "")
		c.y += pdfLineHeight
	}
}

func (c *pdfCursor) field(f Field) {
	c.line(f.Label+": "+f.Value, "", 11)
}

// buildPDF lays out the full document. Callers must check doc.Err before
// using the result.
func buildPDF(p *Projection) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	cursor := &pdfCursor{doc: doc, y: pdfTopMargin}

	// Header band, first page only.
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(pdfLeftMargin, cursor.y)
	doc.CellFormat(pdfContentWidth, 9, p.Title, "", 0, "L", false, 0, "")
	cursor.y += 10
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.SetXY(pdfLeftMargin, cursor.y)
	doc.CellFormat(pdfContentWidth, 5, "Inquiry "+p.InquiryID+"  -  Generated "+FormatDateTime(p.GeneratedAt), "", 0, "L", false, 0, "")
	doc.SetTextColor(26, 26, 26)
	cursor.y += 8

	cursor.heading("Overview")
	for _, f := range p.Header {
		cursor.field(f)
	}

	cursor.heading("Requested Services")
	for _, svc := range p.Services {
		cursor.line("- "+svc, "", 11)
	}

	if len(p.AdditionalInfo) > 0 {
		cursor.heading("Additional Information")
		for _, f := range p.AdditionalInfo {
			cursor.field(f)
		}
	}

	if s := p.Summary; s != nil {
		cursor.heading("Summary")
		cursor.line("Overall Status: "+s.OverallStatus, "B", 11)
		cursor.line("Total Checks: "+strconv.Itoa(s.TotalChecks), "", 11)
		cursor.line("Passed: "+strconv.Itoa(s.PassedChecks), "", 11)
		cursor.line("Failed: "+strconv.Itoa(s.FailedChecks), "", 11)
		cursor.line("Pending: "+strconv.Itoa(s.PendingChecks), "", 11)
	}

	for _, block := range p.Details {
		cursor.heading(block.Title)
		cursor.line(verifiedBadge(block.Verified), "B", 11)
		for _, f := range block.Fields {
			cursor.field(f)
		}
		for _, rec := range block.Records {
			item := rec.Offense
			if rec.Date != "" {
				item += " (" + rec.Date + ")"
			}
			item += " - " + rec.Disposition + ", " + rec.Jurisdiction
			cursor.line("- "+item, "", 10)
		}
	}

	// Footer goes after the last content block, on a fresh page when the
	// remaining room is inside the bottom band.
	cursor.ensureRoom(pdfFooterHeight)
	cursor.y += pdfHeadingGap
	doc.SetLineWidth(0.2)
	doc.Line(pdfLeftMargin, cursor.y, pdfLeftMargin+pdfContentWidth, cursor.y)
	cursor.y += 3
	doc.SetTextColor(100, 100, 100)
	cursor.line("Generated "+FormatDateTime(p.GeneratedAt)+" by vetgate", "", 9)
	if p.ShareURL != "" {
		cursor.line(p.ShareURL, "", 9)
	}

	return doc
}

// PDF renders the projection as a paginated A4 document. A library error
// surfaces as render_error with no partial bytes emitted.
func PDF(p *Projection) ([]byte, error) {
	doc := buildPDF(p)
	if doc.Err() {
		return nil, dErrors.Wrap(doc.Error(), dErrors.CodeRenderError, "could not generate report PDF")
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderError, "could not generate report PDF")
	}
	return buf.Bytes(), nil
}

// PageCount reports how many pages the generated artifact contains, using
// the same layout pass as PDF. Exposed for pagination assertions.
func PageCount(p *Projection) (int, error) {
	doc := buildPDF(p)
	if doc.Err() {
		return 0, dErrors.Wrap(doc.Error(), dErrors.CodeRenderError, "could not measure report PDF")
	}
	return doc.PageCount(), nil
}
