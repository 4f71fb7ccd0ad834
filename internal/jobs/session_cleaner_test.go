package jobs

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cobranza/internal/repositories"
)

func TestSessionCleanerRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM evidence_sessions").
		WillReturnResult(sqlmock.NewResult(0, 2))

	cleaner := SessionCleaner{
		Repo: repositories.SessionRepository{DB: db},
		TTL:  24 * time.Hour,
	}
	cleaner.Run()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
