// Package pdf turns a rendered plan document into a single-page A4 file.
// Two paths exist: drawing the document natively, and embedding an already
// rasterized bitmap the way the original export pipeline did.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"nakram/coach-builder/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait, width-locked; heights are derived from content.
const pageWidthMM = 210.0

// ErrEmptyImage is returned when rasterization produced no image data. The
// export must fail loudly here rather than write a corrupt file.
var ErrEmptyImage = errors.New("rasterized image is empty")

// Section is a free-text block of the printable document (meal sections,
// notes).
type Section struct {
	Title string
	Body  string
}

// Document is the fully rendered plan subtree handed to the exporter.
type Document struct {
	Title      string
	ClientName string
	CoachLine  string
	DetailLine string // gender/age/height/weight summary
	CourseName string
	Exercises  []domain.ExerciseDetail
	Sections   []Section
}

// Filename derives the download name from the client's name.
func Filename(clientName string) string {
	base := strings.TrimSpace(clientName)
	if base == "" {
		base = "workout"
	}
	return strings.ReplaceAll(base, " ", "-") + ".pdf"
}

// Render draws the document onto a single A4 page and returns the PDF bytes.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	title := doc.Title
	if title == "" {
		title = "Workout Plan"
	}
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Client: "+doc.ClientName, "", 1, "L", false, 0, "")
	if doc.DetailLine != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, doc.DetailLine, "", 1, "L", false, 0, "")
	}
	if doc.CourseName != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, doc.CourseName, "", 1, "L", false, 0, "")
	}
	if doc.CoachLine != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, doc.CoachLine, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for i, ex := range doc.Exercises {
		sets, reps := ex.Sets, ex.Reps
		if sets == 0 {
			sets = 3
		}
		if reps == 0 {
			reps = 10
		}
		line := fmt.Sprintf("%d. %s", i+1, ex.Name)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(120, 7, line, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("%d sets x %d reps", sets, reps), "", 1, "R", false, 0, "")
		if ex.MuscleGroup != "" {
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(120, 120, 120)
			pdf.CellFormat(0, 4, ex.MuscleGroup, "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
	}

	for _, sec := range doc.Sections {
		if strings.TrimSpace(sec.Body) == "" {
			continue
		}
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, sec.Title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, sec.Body, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EmbedImage builds a single-page PDF around a pre-rasterized PNG: the image
// is locked to the page width and the drawn height follows the bitmap's
// aspect ratio.
func EmbedImage(png []byte) ([]byte, error) {
	if len(png) == 0 {
		return nil, ErrEmptyImage
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := pdf.RegisterImageOptionsReader("plan", opts, bytes.NewReader(png))
	if pdf.Err() {
		return nil, pdf.Error()
	}
	if info == nil || info.Width() <= 0 || info.Height() <= 0 {
		return nil, ErrEmptyImage
	}

	height := info.Height() * pageWidthMM / info.Width()
	pdf.ImageOptions("plan", 0, 0, pageWidthMM, height, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
