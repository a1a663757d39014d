package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cardiovital/server/internal/recommend"
	"github.com/cardiovital/server/internal/storage"
	"github.com/jung-kurt/gofpdf"
)

// Generator renders medication adherence reports as PDF.
type Generator struct {
	profiles    storage.Storage
	medications storage.MedicationsStorage
}

// NewGenerator creates a new report generator.
func NewGenerator(profiles storage.Storage, medications storage.MedicationsStorage) *Generator {
	return &Generator{profiles: profiles, medications: medications}
}

// adherenceRow is one medication's adherence over the report period.
type adherenceRow struct {
	Name      string
	Dosage    string
	Scheduled int
	Taken     int
	Percent   int
}

// Generate renders the adherence PDF for an owner over [from, to].
func (g *Generator) Generate(ctx context.Context, ownerUserID, from, to string) ([]byte, error) {
	profile, ok, err := g.profiles.GetProfile(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return nil, ErrProfileRequired
	}

	medications, err := g.medications.ListMedications(ctx, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	days, err := inclusiveDays(from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]adherenceRow, 0, len(medications))
	for _, med := range medications {
		records, err := g.medications.ListTakenRecords(ctx, ownerUserID, med.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to list taken records: %w", err)
		}

		scheduled := days * len(med.Times)
		percent := 0
		if scheduled > 0 {
			percent = len(records) * 100 / scheduled
			if percent > 100 {
				percent = 100
			}
		}

		rows = append(rows, adherenceRow{
			Name:      med.Name,
			Dosage:    med.Dosage,
			Scheduled: scheduled,
			Taken:     len(records),
			Percent:   percent,
		})
	}

	return g.renderPDF(profile, rows, from, to)
}

func (g *Generator) renderPDF(profile storage.Profile, rows []adherenceRow, from, to string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "CardioVital Adherence Report")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", from, to))
	pdf.Ln(12)

	// Profile summary
	bmi := recommend.BMI(profile.WeightKg, profile.HeightCm)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Profile")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Age: %d years", profile.Age))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Weight: %.1f kg, Height: %.0f cm", profile.WeightKg, profile.HeightCm))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("BMI: %.1f (%s)", bmi, recommend.BMIStatus(bmi)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated daily need: %d kcal", recommend.DailyCalories(profile.WeightKg, profile.HeightCm, profile.Age)))
	pdf.Ln(12)

	// Adherence table
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Medication adherence")
	pdf.Ln(8)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, "No medications registered for this period.")
		pdf.Ln(6)
	} else {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 7, "Medication", "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, "Dosage", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "Scheduled", "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, "Taken", "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, "Adherence", "1", 0, "R", false, 0, "")
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			pdf.CellFormat(60, 7, tr(row.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, tr(row.Dosage), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d", row.Scheduled), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d", row.Taken), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 7, fmt.Sprintf("%d%%", row.Percent), "1", 0, "R", false, 0, "")
			pdf.Ln(7)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().UTC().Format("2006-01-02 15:04 UTC")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// inclusiveDays counts calendar days in [from, to].
func inclusiveDays(from, to string) (int, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0, ErrInvalidDate
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0, ErrInvalidDate
	}
	if fromDate.After(toDate) {
		return 0, ErrInvalidDateRange
	}

	return int(toDate.Sub(fromDate).Hours()/24) + 1, nil
}
