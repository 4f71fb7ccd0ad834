package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"cobranza/internal/domain/models"
	"cobranza/internal/repositories"
	"cobranza/internal/utils"
)

// StatementService renders the estado de cuenta PDF of one remision.
type StatementService struct {
	RemisionRepo repositories.RemisionRepository
	PagoRepo     repositories.PagoRepository
	RequestID    string
	Loader       func(int64) (statementData, error)
}

type statementData struct {
	Remision models.Remision
	Pagos    []models.Pago
}

func (s StatementService) Generate(remisionID int64) ([]byte, string, error) {
	data, err := s.loadStatementData(remisionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "statement", "generate", fmt.Sprintf("remision_id=%d", remisionID))
	return buildStatementPDF(data)
}

func (s StatementService) loadStatementData(remisionID int64) (statementData, error) {
	if s.Loader != nil {
		return s.Loader(remisionID)
	}
	rem, err := s.RemisionRepo.GetByID(remisionID)
	if err != nil {
		return statementData{}, err
	}
	pagos, err := s.PagoRepo.ListByRemision(remisionID)
	if err != nil {
		return statementData{}, err
	}
	return statementData{Remision: rem, Pagos: pagos}, nil
}

func buildStatementPDF(d statementData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Estado de Cuenta", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ESTADO DE CUENTA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Remision      : %s", safe(d.Remision.Folio, "-")),
		fmt.Sprintf("Nota de Venta : %s", safe(d.Remision.NotaVenta, "-")),
		fmt.Sprintf("Factura       : %s", safe(d.Remision.Factura, "-")),
		fmt.Sprintf("Fecha         : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Pagos:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Pagos) == 0 {
		pdf.Cell(0, 6, "Sin pagos registrados.")
		pdf.Ln(8)
	}
	for i, p := range d.Pagos {
		line := fmt.Sprintf("%d) %s  $%s  %s  Recibo %s",
			i+1,
			safe(p.Fecha, "-"),
			safe(p.Monto, "0"),
			safe(p.MetodoPago, "-"),
			safe(p.Recibo, "-"),
		)
		pdf.MultiCell(0, 6, line, "", "", false)
		pdf.Ln(1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: $"+safe(d.Remision.Total, "0"))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Saldo: $"+safe(d.Remision.Saldo, "0"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Documento informativo generado por el sistema de cobranza.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ESTADO_%s.pdf", safeFilenamePart(d.Remision.Folio))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
