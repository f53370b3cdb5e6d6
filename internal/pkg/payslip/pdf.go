package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/mera-studio/studio-backend-go/internal/domain/payroll"
)

// Generate renders the monthly payslip ("Slip Gaji Bulanan") for one crew
// member as a PDF.
func Generate(period payroll.Period, row payroll.Row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Mera Studio")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Slip Gaji Bulanan")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.Cell(60, 7, label)
		pdf.CellFormat(0, 7, value, "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	line("Nama Crew", row.Name)
	line("Posisi", row.Position)
	line("Periode", fmt.Sprintf("%s - %s", period.Start.Format("02 Jan 2006"), period.End.Format("02 Jan 2006")))
	line("Total Hari Kerja", fmt.Sprintf("%d Hari", row.WorkDays))
	pdf.Ln(4)

	line("Gaji Pokok", FormatRupiah(row.TotalBase))
	line("Bonus Harian", FormatRupiah(row.TotalBonus))
	line("Bonus Manual", FormatRupiah(row.ManualBonus))
	line("Denda", "- "+FormatRupiah(row.TotalDeduction))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	line("Total Diterima", FormatRupiah(row.Total))

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Tanggal Gajian: %s", period.PayDate().Format("02 Jan 2006")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatRupiah renders a whole-rupiah amount with dot thousand separators,
// e.g. 75000 -> "Rp 75.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if negative {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}
