package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dindinapp/dindin-backend/internal/domain"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Generator renders the per-person statement for a date range. The service
// layer depends on this narrow interface so rendering can be swapped in tests.
type Generator interface {
	GeneratePorPessoa(inicio, fim time.Time, rows []*domain.PessoaEstatistica) ([]byte, error)
}

// PDFGenerator renders statements as PDF documents
type PDFGenerator struct{}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

// GeneratePorPessoa renders one table row per (pessoa, tipo) aggregate and a
// receita/despesa summary footer. Output is regenerated on every call.
func (g *PDFGenerator) GeneratePorPessoa(inicio, fim time.Time, rows []*domain.PessoaEstatistica) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lancamentos por pessoa", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Lancamentos por pessoa", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	periodo := fmt.Sprintf("Periodo: %s a %s", inicio.Format("02/01/2006"), fim.Format("02/01/2006"))
	pdf.CellFormat(0, 8, periodo, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Pessoa", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Tipo", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Total", "1", 1, "R", true, 0, "")

	totalReceitas := decimal.Zero
	totalDespesas := decimal.Zero

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(90, 7, row.Pessoa, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, string(row.Tipo), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, row.Total.StringFixed(2), "1", 1, "R", false, 0, "")

		switch row.Tipo {
		case domain.TipoReceita:
			totalReceitas = totalReceitas.Add(row.Total)
		case domain.TipoDespesa:
			totalDespesas = totalDespesas.Add(row.Total)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(135, 7, "Total de receitas", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, totalReceitas.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(135, 7, "Total de despesas", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, totalDespesas.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(135, 7, "Saldo", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, totalReceitas.Sub(totalDespesas).StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}
