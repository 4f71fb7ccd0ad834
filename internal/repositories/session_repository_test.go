package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cobranza/internal/domain"
)

func TestSessionCompleteExactlyOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE evidence_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE evidence_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := SessionRepository{DB: db}

	ok, err := repo.Complete("s1", "evidence/x.jpg")
	if err != nil {
		t.Fatalf("first complete error: %v", err)
	}
	if !ok {
		t.Fatalf("first complete should transition the session")
	}

	ok, err = repo.Complete("s1", "evidence/y.jpg")
	if err != nil {
		t.Fatalf("second complete error: %v", err)
	}
	if ok {
		t.Fatalf("second complete should be a no-op")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, token, target, status").
		WillReturnRows(sqlmock.NewRows([]string{"id", "token", "target", "status", "image_path", "created_at", "completed_at"}))

	repo := SessionRepository{DB: db}
	if _, err := repo.GetByID("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSessionDeleteStale(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM evidence_sessions").
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := SessionRepository{DB: db}
	n, err := repo.DeleteStale(time.Now().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("DeleteStale error: %v", err)
	}
	if n != 3 {
		t.Fatalf("purged count mismatch: got %d want 3", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
