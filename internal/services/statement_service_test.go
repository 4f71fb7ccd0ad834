package services

import (
	"testing"

	"cobranza/internal/domain/models"
)

func TestStatementServiceGenerate(t *testing.T) {
	loader := func(id int64) (statementData, error) {
		return statementData{
			Remision: models.Remision{
				ID:        id,
				Folio:     "1024",
				NotaVenta: "NV-88",
				Factura:   "FAC-1",
				Total:     "500",
				Saldo:     "350.00",
			},
			Pagos: []models.Pago{
				{ID: 1, Monto: "100", MetodoPago: "Efectivo", Fecha: "01/01/2026 10:00", Recibo: "R-1"},
				{ID: 2, Monto: "50", MetodoPago: "Transferencia", Fecha: "02/01/2026 11:00"},
			},
		}, nil
	}

	svc := StatementService{Loader: loader}

	pdf, filename, err := svc.Generate(1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("Generate returned empty data")
	}
	if filename != "ESTADO_1024.pdf" {
		t.Fatalf("filename mismatch: %s", filename)
	}
}

func TestStatementServiceGenerateNoPagos(t *testing.T) {
	loader := func(id int64) (statementData, error) {
		return statementData{
			Remision: models.Remision{ID: id, Folio: "7", Total: "100", Saldo: "100.00"},
		}, nil
	}

	svc := StatementService{Loader: loader}
	pdf, _, err := svc.Generate(2)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("Generate returned empty data")
	}
}
