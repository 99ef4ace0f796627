package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	usecase "github.com/salao-m2a/salon-scheduler/internal/usecase/schedule"
)

// ======================================================
// PDF DE GANHOS
// ======================================================

// Render monta o PDF do relatório de ganhos: cabeçalho com o período,
// uma linha por funcionário e o total geral no rodapé.
func Render(r *usecase.EarningsReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatorio de Ganhos", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Relatorio de Ganhos", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	period := fmt.Sprintf(
		"Periodo: %s a %s",
		r.Start.Format("02/01/2006"),
		r.End.Format("02/01/2006"),
	)
	pdf.CellFormat(0, 8, period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// cabeçalho da tabela
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Funcionario", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Atendimentos", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, "Receita (R$)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range r.PerStaff {
		pdf.CellFormat(90, 8, line.StaffName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%d", line.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, line.Revenue.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d", r.TotalCount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, r.TotalRevenue.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gerar pdf: %w", err)
	}
	return buf.Bytes(), nil
}
