package repositories

import (
	"database/sql"
	"errors"

	intconfig "cobranza/internal/config"
	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
)

type RemisionRepository struct {
	DB *sql.DB
}

func (r RemisionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListAll returns every remision without its pagos; the dashboard filters
// and sorts the list in memory the same way the original live query did.
func (r RemisionRepository) ListAll() ([]models.Remision, error) {
	rows, err := r.db().Query(`
		SELECT id,
		       COALESCE(folio,''),
		       COALESCE(nota_venta,''),
		       COALESCE(factura,''),
		       COALESCE(total,'0'),
		       COALESCE(saldo,'0')
		FROM remisiones
		ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Remision{}
	for rows.Next() {
		var rem models.Remision
		if err := rows.Scan(&rem.ID, &rem.Folio, &rem.NotaVenta, &rem.Factura, &rem.Total, &rem.Saldo); err != nil {
			return nil, err
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}

func (r RemisionRepository) GetByID(id int64) (models.Remision, error) {
	var rem models.Remision
	err := r.db().QueryRow(`
		SELECT id,
		       COALESCE(folio,''),
		       COALESCE(nota_venta,''),
		       COALESCE(factura,''),
		       COALESCE(total,'0'),
		       COALESCE(saldo,'0')
		FROM remisiones
		WHERE id=? LIMIT 1`, id).
		Scan(&rem.ID, &rem.Folio, &rem.NotaVenta, &rem.Factura, &rem.Total, &rem.Saldo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Remision{}, domain.NotFoundError{Resource: "remision", Err: err}
		}
		return models.Remision{}, err
	}
	return rem, nil
}

func (r RemisionRepository) Create(rem models.Remision) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO remisiones (folio, nota_venta, factura, total, saldo)
		VALUES (?, ?, ?, ?, ?)`,
		rem.Folio, rem.NotaVenta, rem.Factura, rem.Total, rem.Saldo)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RemisionRepository) Update(rem models.Remision) error {
	_, err := r.db().Exec(`
		UPDATE remisiones
		SET folio=?, nota_venta=?, factura=?, total=?, saldo=?
		WHERE id=?`,
		rem.Folio, rem.NotaVenta, rem.Factura, rem.Total, rem.Saldo, rem.ID)
	return err
}

func (r RemisionRepository) UpdateSaldo(id int64, saldo string) error {
	_, err := r.db().Exec(`UPDATE remisiones SET saldo=? WHERE id=?`, saldo, id)
	return err
}

// Delete removes the remision with its pagos and evidence rows in one
// transaction; the FKs would cascade anyway, the explicit deletes keep the
// behavior visible and engine-independent.
func (r RemisionRepository) Delete(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec(`DELETE FROM pago_evidencias WHERE pago_id IN (SELECT id FROM pagos WHERE remision_id=?)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM pagos WHERE remision_id=?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM remisiones WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "remision"}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
