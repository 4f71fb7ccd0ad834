package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
)

func TestPagoUpdateLeavesFechaAlone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// The SET list must not mention fecha; the creation date survives edits.
	mock.ExpectExec(`UPDATE\s+pagos\s+SET monto=\?, recibo=\?, reporte=\?, metodo_pago=\?\s+WHERE id=\?`).
		WithArgs("150", "R-1", "", "Efectivo", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := PagoRepository{DB: db}
	err = repo.Update(models.Pago{
		ID:         7,
		Monto:      "150",
		Recibo:     "R-1",
		MetodoPago: "Efectivo",
		Fecha:      "01/01/2026 10:00",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPagoListByRemisionAttachesEvidencias(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pagos").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "remision_id", "monto", "recibo", "reporte", "metodo_pago", "fecha"}).
			AddRow(1, 3, "100", "", "", "Efectivo", "01/01/2026 10:00").
			AddRow(2, 3, "50", "", "", "Transferencia", "02/01/2026 11:00"))
	mock.ExpectQuery("FROM pago_evidencias").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"pago_id", "ruta"}).
			AddRow(2, "evidence/pago-2-a.jpg").
			AddRow(2, "evidence/pago-2-b.jpg"))

	repo := PagoRepository{DB: db}
	pagos, err := repo.ListByRemision(3)
	if err != nil {
		t.Fatalf("ListByRemision error: %v", err)
	}
	if len(pagos) != 2 {
		t.Fatalf("expected 2 pagos, got %d", len(pagos))
	}
	if len(pagos[0].Evidencias) != 0 {
		t.Fatalf("pago 1 should have no evidencias: %+v", pagos[0].Evidencias)
	}
	if len(pagos[1].Evidencias) != 2 {
		t.Fatalf("pago 2 should have 2 evidencias: %+v", pagos[1].Evidencias)
	}
}

func TestPagoRemoveEvidenciaNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM pago_evidencias").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := PagoRepository{DB: db}
	if err := repo.RemoveEvidencia(9, "evidence/no-existe.jpg"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
