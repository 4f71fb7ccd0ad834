package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
	"cobranza/internal/realtime"
	"cobranza/internal/repositories"
)

func newRemisionService(t *testing.T) (RemisionService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := RemisionService{
		RemisionRepo: repositories.RemisionRepository{DB: db},
		PagoRepo:     repositories.PagoRepository{DB: db},
		Hub:          realtime.NewHub(),
	}
	return svc, mock, func() { db.Close() }
}

func TestSaveRequiresFolio(t *testing.T) {
	svc, _, closeDB := newRemisionService(t)
	defer closeDB()

	_, err := svc.Save(models.Remision{Folio: "   "})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRoutesPagosOnID(t *testing.T) {
	svc, mock, closeDB := newRemisionService(t)
	defer closeDB()

	signals, cancel := svc.Hub.Subscribe(realtime.TopicRemisiones)
	defer cancel()

	// Existing remision.
	mock.ExpectQuery("FROM remisiones").
		WillReturnRows(sqlmock.NewRows([]string{"id", "folio", "nota_venta", "factura", "total", "saldo"}).
			AddRow(1, "1001", "", "", "500", "500.00"))
	mock.ExpectExec("UPDATE remisiones").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Pago with id updates in place; the SET list never touches fecha.
	mock.ExpectExec(`UPDATE\s+pagos\s+SET monto=\?, recibo=\?, reporte=\?, metodo_pago=\?`).
		WithArgs("100", "R-1", "", "Efectivo", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Pago without id inserts with a fresh fecha.
	mock.ExpectExec("INSERT INTO pagos").
		WithArgs(int64(1), "50", "", "", "Transferencia", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(8, 1))

	// Saldo recomputes from what is actually stored.
	mock.ExpectQuery("FROM pagos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "remision_id", "monto", "recibo", "reporte", "metodo_pago", "fecha"}).
			AddRow(7, 1, "100", "R-1", "", "Efectivo", "01/01/2026 10:00").
			AddRow(8, 1, "50", "", "", "Transferencia", "02/01/2026 11:00"))
	mock.ExpectQuery("FROM pago_evidencias").
		WillReturnRows(sqlmock.NewRows([]string{"pago_id", "ruta"}))
	mock.ExpectExec("UPDATE remisiones SET saldo").
		WithArgs("350.00", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := svc.Save(models.Remision{
		ID:    1,
		Folio: "1001",
		Total: "500",
		Pagos: []models.Pago{
			{ID: 7, Monto: "100", Recibo: "R-1", MetodoPago: "Efectivo"},
			{Monto: "50", MetodoPago: "Transferencia"},
			{Monto: "   "}, // empty monto is skipped without complaint
		},
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.Saldo != "350.00" {
		t.Fatalf("saldo mismatch: got %s want 350.00", saved.Saldo)
	}
	if len(saved.Pagos) != 2 {
		t.Fatalf("expected the stored pagos back, got %d", len(saved.Pagos))
	}

	select {
	case <-signals:
	case <-time.After(time.Second):
		t.Fatalf("save should signal the registry watchers")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveCreatesRemisionWithoutID(t *testing.T) {
	svc, mock, closeDB := newRemisionService(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO remisiones").
		WithArgs("2000", "NV-1", "", "300", "300.00").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectQuery("FROM pagos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "remision_id", "monto", "recibo", "reporte", "metodo_pago", "fecha"}))
	mock.ExpectExec("UPDATE remisiones SET saldo").
		WithArgs("300.00", int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := svc.Save(models.Remision{Folio: "2000", NotaVenta: "NV-1", Total: "300"})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.ID != 12 {
		t.Fatalf("new remision id mismatch: got %d", saved.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	svc, mock, closeDB := newRemisionService(t)
	defer closeDB()

	mock.ExpectQuery("FROM remisiones").
		WillReturnRows(sqlmock.NewRows([]string{"id", "folio", "nota_venta", "factura", "total", "saldo"}).
			AddRow(1, "7", "NV-a", "", "100", "100.00").
			AddRow(2, "100", "NV-b", "", "100", "100.00").
			AddRow(3, "42", "otra", "", "100", "100.00"))

	list, err := svc.List("nv")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("filter mismatch: got %d remisiones", len(list))
	}
	if list[0].Folio != "100" || list[1].Folio != "7" {
		t.Fatalf("order mismatch: %s, %s", list[0].Folio, list[1].Folio)
	}
}
