package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "cobranza/internal/config"
	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
)

type SessionRepository struct {
	DB *sql.DB
}

func (r SessionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SessionRepository) Create(s models.EvidenceSession) error {
	_, err := r.db().Exec(`
		INSERT INTO evidence_sessions (id, token, target, status, image_path, created_at)
		VALUES (?, ?, ?, ?, '', ?)`,
		s.ID, s.Token, s.Target, s.Status, s.CreatedAt)
	return err
}

func (r SessionRepository) GetByID(id string) (models.EvidenceSession, error) {
	var (
		s           models.EvidenceSession
		completedAt sql.NullTime
	)
	err := r.db().QueryRow(`
		SELECT id, token, target, status, COALESCE(image_path,''), created_at, completed_at
		FROM evidence_sessions
		WHERE id=? LIMIT 1`, id).
		Scan(&s.ID, &s.Token, &s.Target, &s.Status, &s.ImagePath, &s.CreatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EvidenceSession{}, domain.NotFoundError{Resource: "sesión", Err: err}
		}
		return models.EvidenceSession{}, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		s.CompletedAt = &t
	}
	return s, nil
}

// Complete flips the session to COMPLETED and records the evidence path.
// The status guard in the WHERE clause makes the transition exactly-once:
// a second completion matches zero rows and reports false.
func (r SessionRepository) Complete(id, imagePath string) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE evidence_sessions
		SET status=?, image_path=?, completed_at=?
		WHERE id=? AND status=?`,
		models.SessionCompleted, imagePath, time.Now(), id, models.SessionPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// DeleteStale purges PENDING sessions older than the cutoff. Completed
// sessions are kept; they double as an upload audit trail.
func (r SessionRepository) DeleteStale(cutoff time.Time) (int64, error) {
	res, err := r.db().Exec(`
		DELETE FROM evidence_sessions
		WHERE status=? AND created_at < ?`,
		models.SessionPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
