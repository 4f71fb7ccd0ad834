package repositories

import (
	"database/sql"
	"errors"

	intconfig "cobranza/internal/config"
	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
)

type PagoRepository struct {
	DB *sql.DB
}

func (r PagoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByRemision returns the pagos of one remision in creation order, with
// their evidence paths attached.
func (r PagoRepository) ListByRemision(remisionID int64) ([]models.Pago, error) {
	rows, err := r.db().Query(`
		SELECT id,
		       remision_id,
		       COALESCE(monto,''),
		       COALESCE(recibo,''),
		       COALESCE(reporte,''),
		       COALESCE(metodo_pago,''),
		       COALESCE(fecha,'')
		FROM pagos
		WHERE remision_id=?
		ORDER BY id ASC`, remisionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Pago{}
	index := map[int64]int{}
	for rows.Next() {
		var p models.Pago
		if err := rows.Scan(&p.ID, &p.RemisionID, &p.Monto, &p.Recibo, &p.Reporte, &p.MetodoPago, &p.Fecha); err != nil {
			return nil, err
		}
		index[p.ID] = len(list)
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	evRows, err := r.db().Query(`
		SELECT e.pago_id, e.ruta
		FROM pago_evidencias e
		JOIN pagos p ON p.id = e.pago_id
		WHERE p.remision_id=?
		ORDER BY e.id ASC`, remisionID)
	if err != nil {
		return nil, err
	}
	defer evRows.Close()

	for evRows.Next() {
		var pagoID int64
		var ruta string
		if err := evRows.Scan(&pagoID, &ruta); err != nil {
			return nil, err
		}
		if i, ok := index[pagoID]; ok {
			list[i].Evidencias = append(list[i].Evidencias, ruta)
		}
	}
	return list, evRows.Err()
}

func (r PagoRepository) GetByID(id int64) (models.Pago, error) {
	var p models.Pago
	err := r.db().QueryRow(`
		SELECT id,
		       remision_id,
		       COALESCE(monto,''),
		       COALESCE(recibo,''),
		       COALESCE(reporte,''),
		       COALESCE(metodo_pago,''),
		       COALESCE(fecha,'')
		FROM pagos
		WHERE id=? LIMIT 1`, id).
		Scan(&p.ID, &p.RemisionID, &p.Monto, &p.Recibo, &p.Reporte, &p.MetodoPago, &p.Fecha)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pago{}, domain.NotFoundError{Resource: "pago", Err: err}
		}
		return models.Pago{}, err
	}

	evidencias, err := r.ListEvidencias(id)
	if err != nil {
		return models.Pago{}, err
	}
	p.Evidencias = evidencias
	return p, nil
}

func (r PagoRepository) Create(p models.Pago) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO pagos (remision_id, monto, recibo, reporte, metodo_pago, fecha)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.RemisionID, p.Monto, p.Recibo, p.Reporte, p.MetodoPago, p.Fecha)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces the editable fields in place. fecha is deliberately not in
// the SET list: the creation date survives every edit.
func (r PagoRepository) Update(p models.Pago) error {
	_, err := r.db().Exec(`
		UPDATE pagos
		SET monto=?, recibo=?, reporte=?, metodo_pago=?
		WHERE id=?`,
		p.Monto, p.Recibo, p.Reporte, p.MetodoPago, p.ID)
	return err
}

func (r PagoRepository) ListEvidencias(pagoID int64) ([]string, error) {
	rows, err := r.db().Query(`SELECT ruta FROM pago_evidencias WHERE pago_id=? ORDER BY id ASC`, pagoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rutas := []string{}
	for rows.Next() {
		var ruta string
		if err := rows.Scan(&ruta); err != nil {
			return nil, err
		}
		rutas = append(rutas, ruta)
	}
	return rutas, rows.Err()
}

func (r PagoRepository) AddEvidencia(pagoID int64, ruta string) error {
	_, err := r.db().Exec(`INSERT INTO pago_evidencias (pago_id, ruta) VALUES (?, ?)`, pagoID, ruta)
	return err
}

func (r PagoRepository) RemoveEvidencia(pagoID int64, ruta string) error {
	res, err := r.db().Exec(`DELETE FROM pago_evidencias WHERE pago_id=? AND ruta=?`, pagoID, ruta)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "evidencia"}
	}
	return nil
}
