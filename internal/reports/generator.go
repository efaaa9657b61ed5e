// Package reports renders the fixed-layout PDF documents: treatment
// register, movement log, WHP clearance, sale draft, inventory, and
// weight summary. Reports query the repositories directly; they never
// mutate the store.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/example/stockbook/internal/ports/secondary"
)

// maxReportEvents caps how much event history a report pulls in one
// fetch; date filtering happens on the capped set.
const maxReportEvents = 1000

const dateLayout = "02/01/2006"

// Generator renders the report PDFs.
type Generator struct {
	animalRepo   secondary.AnimalRepository
	mobRepo      secondary.MobRepository
	paddockRepo  secondary.PaddockRepository
	productRepo  secondary.ProductRepository
	eventRepo    secondary.EventRepository
	settingsRepo secondary.SettingsRepository
	log          zerolog.Logger
}

// NewGenerator creates a report generator over the given repositories.
func NewGenerator(
	animalRepo secondary.AnimalRepository,
	mobRepo secondary.MobRepository,
	paddockRepo secondary.PaddockRepository,
	productRepo secondary.ProductRepository,
	eventRepo secondary.EventRepository,
	settingsRepo secondary.SettingsRepository,
	log zerolog.Logger,
) *Generator {
	return &Generator{
		animalRepo:   animalRepo,
		mobRepo:      mobRepo,
		paddockRepo:  paddockRepo,
		productRepo:  productRepo,
		eventRepo:    eventRepo,
		settingsRepo: settingsRepo,
		log:          log,
	}
}

// document wraps an fpdf page with the shared table layout.
type document struct {
	pdf    *fpdf.Fpdf
	widths []float64
}

// newDocument builds a landscape A4 page with the property header, the
// report title/subtitle, and the generation-timestamp footer.
func (g *Generator) newDocument(ctx context.Context, title, subtitle string) (*document, error) {
	settings, err := g.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load property settings: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		footer := fmt.Sprintf("Generated: %s", time.Now().Format(dateLayout))
		pdf.CellFormat(0, 10, footer, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	if settings != nil && settings.PropertyName != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 6, settings.PropertyName, "", 1, "L", false, 0, "")
		if settings.PIC != "" {
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, 5, fmt.Sprintf("PIC: %s", settings.PIC), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, subtitle, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	return &document{pdf: pdf}, nil
}

// tableHeader sets the column layout and draws the heading row. It is
// redrawn automatically after a page break.
func (d *document) tableHeader(widths []float64, headings []string) {
	d.widths = widths
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.SetFillColor(230, 230, 230)
	for i, h := range headings {
		d.pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Helvetica", "", 9)
}

// tableRow draws one data row, breaking the page when needed.
func (d *document) tableRow(cells []string) {
	_, pageH := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	if d.pdf.GetY() > pageH-bottom-20 {
		d.pdf.AddPage()
		d.pdf.SetFont("Helvetica", "", 9)
	}
	for i, c := range cells {
		d.pdf.CellFormat(d.widths[i], 6, c, "1", 0, "L", false, 0, "")
	}
	d.pdf.Ln(-1)
}

// emptyNote prints the placeholder line for a report with no rows.
func (d *document) emptyNote(text string) {
	d.pdf.SetFont("Helvetica", "I", 10)
	d.pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
}

// save writes the document to path.
func (g *Generator) save(d *document, path, report string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write %s report: %w", report, err)
	}
	g.log.Info().Str("report", report).Str("path", path).Msg("report written")
	return nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func rangeSubtitle(from, to time.Time) string {
	return fmt.Sprintf("%s to %s", formatDate(from), formatDate(to))
}
